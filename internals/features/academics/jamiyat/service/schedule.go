package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"madrasa_backend/internals/features/academics/jamiyat/dto"
)

var (
	ErrNoMembers = errors.New("grup belum memiliki anggota")
	ErrNoDuties  = errors.New("grup belum memiliki daftar tugas")
	ErrWeeks     = fmt.Errorf("weeks harus antara 1 dan %d", MaxWeeks)
)

const MaxWeeks = 52

type Member struct {
	StudentID uuid.UUID
	Name      string
}

type PlannedSession struct {
	Date        time.Time
	Assignments []dto.Assignment
}

// FirstMeetingOnOrAfter: tanggal pertama >= from yang jatuh di weekday (0=Minggu)
func FirstMeetingOnOrAfter(from time.Time, weekday int) time.Time {
	d := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	diff := (weekday - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, diff)
}

/*
BuildSchedule membuat `weeks` pertemuan mingguan.
Minggu ke-k, tugas ke-j dipegang anggota (k + j) mod n, jadi tugas bergeser
satu anggota tiap minggu. Kalau anggota < tugas, satu anggota bisa pegang beberapa tugas.
*/
func BuildSchedule(members []Member, duties []string, from time.Time, meetingDay, weeks int) ([]PlannedSession, error) {
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	if len(duties) == 0 {
		return nil, ErrNoDuties
	}
	if weeks < 1 || weeks > MaxWeeks {
		return nil, ErrWeeks
	}

	n := len(members)
	first := FirstMeetingOnOrAfter(from, meetingDay)
	out := make([]PlannedSession, 0, weeks)
	for k := 0; k < weeks; k++ {
		s := PlannedSession{Date: first.AddDate(0, 0, 7*k), Assignments: make([]dto.Assignment, 0, len(duties))}
		for j, duty := range duties {
			m := members[(k+j)%n]
			s.Assignments = append(s.Assignments, dto.Assignment{Duty: duty, StudentID: m.StudentID, StudentName: m.Name})
		}
		out = append(out, s)
	}
	return out, nil
}

func EncodeAssignments(a []dto.Assignment) (datatypes.JSON, error) {
	if a == nil {
		a = []dto.Assignment{}
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func DecodeAssignments(raw datatypes.JSON) []dto.Assignment {
	out := []dto.Assignment{}
	if len(raw) == 0 {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}

// MemberLoads: jumlah tugas per anggota, urut total desc lalu nama
func MemberLoads(sessions [][]dto.Assignment) []dto.MemberLoad {
	idx := map[uuid.UUID]int{}
	out := make([]dto.MemberLoad, 0)
	for _, s := range sessions {
		for _, a := range s {
			i, ok := idx[a.StudentID]
			if !ok {
				i = len(out)
				idx[a.StudentID] = i
				out = append(out, dto.MemberLoad{StudentID: a.StudentID, StudentName: a.StudentName, ByDuty: map[string]int{}})
			}
			out[i].Total++
			out[i].ByDuty[a.Duty]++
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Total != out[b].Total {
			return out[a].Total > out[b].Total
		}
		return out[a].StudentName < out[b].StudentName
	})
	return out
}
