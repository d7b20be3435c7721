package service

import "math"

const GradeFail = "F"

// batas bawah persentase per grade, urut dari tertinggi
var gradeScale = []struct {
	min   float64
	grade string
}{
	{80, "A+"},
	{70, "A"},
	{60, "A-"},
	{50, "B"},
	{40, "C"},
	{33, "D"},
}

// GradeFor: grade dari persentase (0..100)
func GradeFor(percentage float64) string {
	for _, g := range gradeScale {
		if percentage >= g.min {
			return g.grade
		}
	}
	return GradeFail
}

// Percent: obtained/total·100, 0 kalau total 0
func Percent(obtained, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return obtained / total * 100
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SubjectGrade: grade satu mapel
func SubjectGrade(obtained, total float64) string {
	return GradeFor(Percent(obtained, total))
}
