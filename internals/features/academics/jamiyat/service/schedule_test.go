package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/features/academics/jamiyat/dto"
)

func members(names ...string) []Member {
	out := make([]Member, 0, len(names))
	for _, n := range names {
		out = append(out, Member{StudentID: uuid.New(), Name: n})
	}
	return out
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestFirstMeetingOnOrAfter(t *testing.T) {
	// 2025-01-01 = Rabu
	assert.Equal(t, day("2025-01-03"), FirstMeetingOnOrAfter(day("2025-01-01"), int(time.Friday)))
	assert.Equal(t, day("2025-01-01"), FirstMeetingOnOrAfter(day("2025-01-01"), int(time.Wednesday)))
	assert.Equal(t, day("2025-01-07"), FirstMeetingOnOrAfter(day("2025-01-01"), int(time.Tuesday)))
}

func names(a []dto.Assignment) []string {
	out := make([]string, 0, len(a))
	for _, x := range a {
		out = append(out, x.StudentName)
	}
	return out
}

func TestBuildSchedule_RotatesWeekly(t *testing.T) {
	m := members("A", "B", "C", "D")
	duties := []string{"presiding", "tilawat", "naat"}

	got, err := BuildSchedule(m, duties, day("2025-01-01"), int(time.Thursday), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, day("2025-01-02"), got[0].Date)
	assert.Equal(t, day("2025-01-09"), got[1].Date)
	assert.Equal(t, day("2025-01-16"), got[2].Date)

	assert.Equal(t, []string{"A", "B", "C"}, names(got[0].Assignments))
	assert.Equal(t, []string{"B", "C", "D"}, names(got[1].Assignments))
	assert.Equal(t, []string{"C", "D", "A"}, names(got[2].Assignments))
	assert.Equal(t, "tilawat", got[1].Assignments[1].Duty)
}

func TestBuildSchedule_FewerMembersThanDuties(t *testing.T) {
	m := members("A", "B")
	got, err := BuildSchedule(m, []string{"d1", "d2", "d3"}, day("2025-01-05"), 0, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "A"}, names(got[0].Assignments))
	assert.Equal(t, []string{"B", "A", "B"}, names(got[1].Assignments))
}

func TestBuildSchedule_Errors(t *testing.T) {
	_, err := BuildSchedule(nil, []string{"x"}, day("2025-01-01"), 0, 1)
	assert.ErrorIs(t, err, ErrNoMembers)

	_, err = BuildSchedule(members("A"), nil, day("2025-01-01"), 0, 1)
	assert.ErrorIs(t, err, ErrNoDuties)
}

func TestBuildSchedule_WeeksRange(t *testing.T) {
	got, err := BuildSchedule(members("A"), []string{"x"}, day("2025-01-01"), 0, MaxWeeks)
	require.NoError(t, err)
	assert.Len(t, got, MaxWeeks)

	for _, w := range []int{0, -1, MaxWeeks + 1, 500} {
		_, err = BuildSchedule(members("A"), []string{"x"}, day("2025-01-01"), 0, w)
		assert.ErrorIs(t, err, ErrWeeks, "weeks=%d", w)
	}
}

func TestAssignmentsRoundTrip(t *testing.T) {
	in := []dto.Assignment{{Duty: "hamd", StudentID: uuid.New(), StudentName: "Yahya"}}
	raw, err := EncodeAssignments(in)
	require.NoError(t, err)
	assert.Equal(t, in, DecodeAssignments(raw))
	assert.Empty(t, DecodeAssignments(nil))
}

func TestMemberLoads(t *testing.T) {
	m := members("A", "B", "C")
	plan, err := BuildSchedule(m, []string{"d1", "d2"}, day("2025-01-01"), 3, 4)
	require.NoError(t, err)

	var sessions [][]dto.Assignment
	for _, p := range plan {
		sessions = append(sessions, p.Assignments)
	}
	got := MemberLoads(sessions)
	require.Len(t, got, 3)

	// minggu 0: A,B  1: B,C  2: C,A  3: A,B → A=3, B=3, C=2
	assert.Equal(t, "A", got[0].StudentName)
	assert.Equal(t, 3, got[0].Total)
	assert.Equal(t, "B", got[1].StudentName)
	assert.Equal(t, 3, got[1].Total)
	assert.Equal(t, "C", got[2].StudentName)
	assert.Equal(t, 2, got[2].Total)
	assert.Equal(t, 2, got[0].ByDuty["d1"])
}
