package service

import (
	"sort"
	"strings"

	"madrasa_backend/internals/features/academics/lillah/dto"
	studentModel "madrasa_backend/internals/features/academics/students/model"
)

// Summarize: satu kali jalan atas daftar santri lillah yang sudah difilter
func Summarize(rows []studentModel.StudentModel) dto.LillahSummary {
	out := dto.LillahSummary{BySponsor: []dto.SponsorTotal{}}
	idx := map[string]int{}

	for _, s := range rows {
		out.TotalStudents++
		out.TotalMonthlySupport += s.StudentLillahMonthlySupport

		sponsor := ""
		if s.StudentLillahSponsor != nil {
			sponsor = strings.TrimSpace(*s.StudentLillahSponsor)
		}
		if sponsor == "" {
			out.WithoutSponsor++
			continue
		}
		i, ok := idx[sponsor]
		if !ok {
			i = len(out.BySponsor)
			idx[sponsor] = i
			out.BySponsor = append(out.BySponsor, dto.SponsorTotal{Sponsor: sponsor})
		}
		out.BySponsor[i].Students++
		out.BySponsor[i].MonthlySupport += s.StudentLillahMonthlySupport
	}

	sort.SliceStable(out.BySponsor, func(a, b int) bool {
		if out.BySponsor[a].MonthlySupport != out.BySponsor[b].MonthlySupport {
			return out.BySponsor[a].MonthlySupport > out.BySponsor[b].MonthlySupport
		}
		return out.BySponsor[a].Sponsor < out.BySponsor[b].Sponsor
	})
	return out
}
