package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/features/academics/exams/dto"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "A+"},
		{80, "A+"},
		{79.99, "A"},
		{70, "A"},
		{60, "A-"},
		{50, "B"},
		{40, "C"},
		{33, "D"},
		{32.99, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.pct), "pct=%v", tt.pct)
	}
}

type student struct {
	id   uuid.UUID
	name string
}

func rows(s student, marks ...[2]float64) []dto.ResultRow {
	out := make([]dto.ResultRow, 0, len(marks))
	for i, m := range marks {
		out = append(out, dto.ResultRow{
			StudentID:     s.id,
			StudentName:   s.name,
			Subject:       []string{"Quran", "Arabic", "Fiqh", "Bangla"}[i],
			MarksObtained: m[0],
			TotalMarks:    m[1],
		})
	}
	return out
}

func TestRankResults_AggregatesAndSorts(t *testing.T) {
	a := student{uuid.New(), "Abdullah"}
	b := student{uuid.New(), "Bilal"}
	c := student{uuid.New(), "Hasan"}

	var in []dto.ResultRow
	in = append(in, rows(a, [2]float64{70, 100}, [2]float64{80, 100})...) // 75%
	in = append(in, rows(b, [2]float64{90, 100}, [2]float64{95, 100})...) // 92.5%
	in = append(in, rows(c, [2]float64{20, 100}, [2]float64{100, 100})...) // 60%, gagal Quran

	got := RankResults(in)
	require.Len(t, got, 3)

	assert.Equal(t, "Bilal", got[0].StudentName)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 92.5, got[0].Percentage)
	assert.Equal(t, float64(185), got[0].TotalObtained)
	assert.Equal(t, float64(200), got[0].TotalMarks)
	assert.Equal(t, "A+", got[0].Grade)
	assert.Equal(t, 2, got[0].Subjects)

	assert.Equal(t, "Abdullah", got[1].StudentName)
	assert.Equal(t, "A", got[1].Grade)
	assert.False(t, got[1].Failed)

	assert.Equal(t, "Hasan", got[2].StudentName)
	assert.Equal(t, "A-", got[2].Grade)
	assert.True(t, got[2].Failed)
}

func TestRankResults_CompetitionRanking(t *testing.T) {
	a := student{uuid.New(), "Zubair"}
	b := student{uuid.New(), "Ali"}
	c := student{uuid.New(), "Musa"}

	var in []dto.ResultRow
	in = append(in, rows(a, [2]float64{80, 100})...)
	in = append(in, rows(b, [2]float64{80, 100})...)
	in = append(in, rows(c, [2]float64{60, 100})...)

	got := RankResults(in)
	require.Len(t, got, 3)

	// nilai sama → nama asc, peringkat sama
	assert.Equal(t, "Ali", got[0].StudentName)
	assert.Equal(t, "Zubair", got[1].StudentName)
	assert.Equal(t, []int{1, 1, 3}, []int{got[0].Rank, got[1].Rank, got[2].Rank})
}

func TestRankResults_SamePercentageHigherTotalWins(t *testing.T) {
	a := student{uuid.New(), "Anas"}
	b := student{uuid.New(), "Bakr"}

	var in []dto.ResultRow
	in = append(in, rows(a, [2]float64{40, 50})...)                          // 80%, 40
	in = append(in, rows(b, [2]float64{80, 100}, [2]float64{80, 100})...)    // 80%, 160

	got := RankResults(in)
	require.Len(t, got, 2)
	assert.Equal(t, "Bakr", got[0].StudentName)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 2, got[1].Rank)
}

func TestRankResults_ZeroTotal(t *testing.T) {
	a := student{uuid.New(), "Idris"}
	got := RankResults(rows(a, [2]float64{0, 0}))
	require.Len(t, got, 1)
	assert.Equal(t, float64(0), got[0].Percentage)
	assert.Equal(t, GradeFail, got[0].Grade)
}

func TestTop(t *testing.T) {
	ranked := []dto.RankedStudent{{Rank: 1}, {Rank: 2}, {Rank: 3}, {Rank: 4}}
	assert.Len(t, Top(ranked, TopN), 3)
	assert.Len(t, Top(ranked[:2], TopN), 2)
	assert.Empty(t, Top(nil, TopN))
}

func TestResultCache_DisabledIsNoop(t *testing.T) {
	var rc *ResultCache
	var dst []dto.RankedStudent
	ctx := context.Background()

	assert.False(t, rc.Get(ctx, "results:x:all", &dst))
	rc.Set(ctx, "results:x:all", dst)
	rc.InvalidateExam(ctx, uuid.New())

	assert.False(t, NewResultCache(nil).Get(ctx, "k", &dst))
}

func TestResultCacheKey(t *testing.T) {
	exam := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	class := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	assert.Equal(t, "results:11111111-1111-1111-1111-111111111111:all", ResultCacheKey(exam, nil))
	assert.Equal(t,
		"results:11111111-1111-1111-1111-111111111111:22222222-2222-2222-2222-222222222222",
		ResultCacheKey(exam, &class))
}
