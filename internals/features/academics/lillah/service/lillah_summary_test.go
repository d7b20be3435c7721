package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"madrasa_backend/internals/features/academics/lillah/dto"
	studentModel "madrasa_backend/internals/features/academics/students/model"
)

func sp(s string) *string { return &s }

func TestSummarize(t *testing.T) {
	rows := []studentModel.StudentModel{
		{StudentIsLillah: true, StudentLillahSponsor: sp("Haji Karim"), StudentLillahMonthlySupport: 1500},
		{StudentIsLillah: true, StudentLillahSponsor: sp("Haji Karim "), StudentLillahMonthlySupport: 1500},
		{StudentIsLillah: true, StudentLillahSponsor: sp("Baitul Mal"), StudentLillahMonthlySupport: 2000},
		{StudentIsLillah: true, StudentLillahMonthlySupport: 0},
	}

	got := Summarize(rows)

	assert.Equal(t, 4, got.TotalStudents)
	assert.Equal(t, int64(5000), got.TotalMonthlySupport)
	assert.Equal(t, 1, got.WithoutSponsor)
	assert.Equal(t, []dto.SponsorTotal{
		{Sponsor: "Haji Karim", Students: 2, MonthlySupport: 3000},
		{Sponsor: "Baitul Mal", Students: 1, MonthlySupport: 2000},
	}, got.BySponsor)
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)
	assert.Zero(t, got.TotalStudents)
	assert.NotNil(t, got.BySponsor)
	assert.Empty(t, got.BySponsor)
}
