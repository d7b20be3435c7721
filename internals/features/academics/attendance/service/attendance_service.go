package service

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"madrasa_backend/internals/features/academics/attendance/dto"
	"madrasa_backend/internals/features/academics/attendance/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
)

// Round2: pembulatan 2 desimal (half away from zero)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percentage: (present+late)/total·100, 0 kalau total 0
func Percentage(present, late, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(float64(present+late) / float64(total) * 100)
}

// MergeRoster: semua siswa kelas, ditempeli tanda hadir kalau ada
func MergeRoster(students []studentModel.StudentModel, marks []model.AttendanceModel) []dto.RosterEntry {
	byStudent := make(map[uuid.UUID]model.AttendanceModel, len(marks))
	for _, m := range marks {
		byStudent[m.AttendanceStudentID] = m
	}

	out := make([]dto.RosterEntry, 0, len(students))
	for _, s := range students {
		e := dto.RosterEntry{
			StudentID:         s.StudentID,
			StudentCode:       s.StudentCode,
			StudentFullName:   s.StudentFullName,
			StudentRollNumber: s.StudentRollNumber,
		}
		if m, ok := byStudent[s.StudentID]; ok {
			id := m.AttendanceID
			e.AttendanceID = &id
			e.Status = m.AttendanceStatus
			e.Remarks = m.AttendanceRemarks
		}
		out = append(out, e)
	}
	return out
}

// Summarize: hitung per siswa dalam satu kali jalan; siswa tanpa data tetap muncul (0%)
func Summarize(students []studentModel.StudentModel, rows []model.AttendanceModel) []dto.StudentAttendanceSummary {
	idx := make(map[uuid.UUID]int, len(students))
	out := make([]dto.StudentAttendanceSummary, 0, len(students))
	for _, s := range students {
		idx[s.StudentID] = len(out)
		out = append(out, dto.StudentAttendanceSummary{StudentID: s.StudentID, StudentFullName: s.StudentFullName})
	}

	for _, r := range rows {
		i, ok := idx[r.AttendanceStudentID]
		if !ok {
			continue
		}
		s := &out[i]
		switch r.AttendanceStatus {
		case model.AttendancePresent:
			s.Present++
		case model.AttendanceAbsent:
			s.Absent++
		case model.AttendanceLate:
			s.Late++
		case model.AttendanceLeave:
			s.Leave++
		default:
			continue
		}
		s.Total++
	}

	for i := range out {
		out[i].Percentage = Percentage(out[i].Present, out[i].Late, out[i].Total)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].StudentFullName < out[b].StudentFullName })
	return out
}

// Rate: persentase hadir seluruh baris (dipakai dashboard)
func Rate(rows []model.AttendanceModel) float64 {
	present, late := 0, 0
	for _, r := range rows {
		switch r.AttendanceStatus {
		case model.AttendancePresent:
			present++
		case model.AttendanceLate:
			late++
		}
	}
	return Percentage(present, late, len(rows))
}
