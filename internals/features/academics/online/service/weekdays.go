package service

import (
	"fmt"
	"sort"
	"strings"

	"madrasa_backend/internals/features/academics/online/model"
)

var weekdayIndex = func() map[string]int {
	m := make(map[string]int, len(model.Weekdays))
	for i, d := range model.Weekdays {
		m[d] = i
	}
	return m
}()

var weekdayAlias = map[string]string{
	"sunday": "sun", "monday": "mon", "tuesday": "tue", "wednesday": "wed",
	"thursday": "thu", "friday": "fri", "saturday": "sat",
}

// NormalizeWeekdays: lower-case, terima nama panjang, buang duplikat, urut Minggu..Sabtu
func NormalizeWeekdays(in []string) ([]string, error) {
	seen := map[string]bool{}
	out := make([]string, 0, len(in))
	for _, raw := range in {
		d := strings.ToLower(strings.TrimSpace(raw))
		if alias, ok := weekdayAlias[d]; ok {
			d = alias
		}
		if _, ok := weekdayIndex[d]; !ok {
			return nil, fmt.Errorf("hari tidak dikenal: %q", raw)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("minimal satu hari")
	}
	sort.Slice(out, func(i, j int) bool { return weekdayIndex[out[i]] < weekdayIndex[out[j]] })
	return out, nil
}
