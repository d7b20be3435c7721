package service

import (
	"sort"

	"github.com/google/uuid"

	"madrasa_backend/internals/features/academics/exams/dto"
)

const TopN = 3

/*
RankResults mengelompokkan baris per siswa lalu mengurutkan:
persentase desc, total nilai desc, nama asc.
Nilai sama (persentase & total) berbagi peringkat: 1, 1, 3.
Siswa gagal kalau ada satu mapel ber-grade F.
*/
func RankResults(rows []dto.ResultRow) []dto.RankedStudent {
	idx := map[uuid.UUID]int{}
	out := make([]dto.RankedStudent, 0)

	for _, r := range rows {
		i, ok := idx[r.StudentID]
		if !ok {
			i = len(out)
			idx[r.StudentID] = i
			out = append(out, dto.RankedStudent{
				StudentID:   r.StudentID,
				StudentCode: r.StudentCode,
				StudentName: r.StudentName,
				RollNumber:  r.RollNumber,
				ClassID:     r.ClassID,
				ClassName:   r.ClassName,
			})
		}
		s := &out[i]
		s.Subjects++
		s.TotalObtained += r.MarksObtained
		s.TotalMarks += r.TotalMarks
		if SubjectGrade(r.MarksObtained, r.TotalMarks) == GradeFail {
			s.Failed = true
		}
	}

	for i := range out {
		s := &out[i]
		pct := Percent(s.TotalObtained, s.TotalMarks)
		s.Grade = GradeFor(pct)
		s.Percentage = Round2(pct)
		s.TotalObtained = Round2(s.TotalObtained)
		s.TotalMarks = Round2(s.TotalMarks)
	}

	sort.SliceStable(out, func(a, b int) bool {
		x, y := out[a], out[b]
		if x.Percentage != y.Percentage {
			return x.Percentage > y.Percentage
		}
		if x.TotalObtained != y.TotalObtained {
			return x.TotalObtained > y.TotalObtained
		}
		return x.StudentName < y.StudentName
	})

	for i := range out {
		if i > 0 && out[i].Percentage == out[i-1].Percentage && out[i].TotalObtained == out[i-1].TotalObtained {
			out[i].Rank = out[i-1].Rank
		} else {
			out[i].Rank = i + 1
		}
	}
	return out
}

// Top: n entri pertama (daftar sudah terurut)
func Top(ranked []dto.RankedStudent, n int) []dto.RankedStudent {
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]dto.RankedStudent, n)
	copy(out, ranked[:n])
	return out
}

// SubjectMarks: rincian mapel satu siswa, urut nama mapel
func SubjectMarks(rows []dto.ResultRow) []dto.SubjectMark {
	out := make([]dto.SubjectMark, 0, len(rows))
	for _, r := range rows {
		pct := Percent(r.MarksObtained, r.TotalMarks)
		out = append(out, dto.SubjectMark{
			Subject:       r.Subject,
			MarksObtained: r.MarksObtained,
			TotalMarks:    r.TotalMarks,
			Percentage:    Round2(pct),
			Grade:         GradeFor(pct),
			Remarks:       r.Remarks,
		})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Subject < out[b].Subject })
	return out
}
