// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	locOnce sync.Once
	appLoc  *time.Location
)

// Location madrasah dari APP_TIMEZONE, fallback Asia/Dhaka lalu UTC.
func Location() *time.Location {
	locOnce.Do(func() {
		name := strings.TrimSpace(os.Getenv("APP_TIMEZONE"))
		if name == "" {
			name = "Asia/Dhaka"
		}
		if loc, err := time.LoadLocation(name); err == nil {
			appLoc = loc
			return
		}
		appLoc = time.UTC
	})
	return appLoc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today: tanggal hari ini (00:00 UTC) supaya cocok dengan kolom type:date.
func Today() time.Time {
	return DateOnly(Now())
}

// DateOnly membuang jam, hasilnya UTC midnight di tanggal kalender yang sama.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate "YYYY-MM-DD" → time (UTC midnight)
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal tidak valid (YYYY-MM-DD): %q", s)
	}
	return t, nil
}

// ParseDatePtr: string kosong → nil
func ParseDatePtr(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthKey "YYYY-MM"
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

func CurrentMonth() string {
	return MonthKey(Now())
}

// MonthRange: awal bulan (inklusif) dan awal bulan berikutnya (eksklusif).
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bulan tidak valid (YYYY-MM): %q", month)
	}
	return start, start.AddDate(0, 1, 0), nil
}

// MonthsBetween daftar "YYYY-MM" dari from s/d to (inklusif).
func MonthsBetween(from, to time.Time) []string {
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	var out []string
	for !cur.After(end) {
		out = append(out, MonthKey(cur))
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}
