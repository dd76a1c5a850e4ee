package core

import (
	"testing"
	"time"
)

func TestWeekStringFromDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"monday", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), "05/01/26 - 09/01/26"},
		{"midweek", time.Date(2026, 1, 7, 23, 59, 0, 0, time.UTC), "05/01/26 - 09/01/26"},
		{"friday", time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC), "05/01/26 - 09/01/26"},
		{"saturday maps back", time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC), "05/01/26 - 09/01/26"},
		{"sunday maps back", time.Date(2026, 1, 11, 12, 0, 0, 0, time.UTC), "05/01/26 - 09/01/26"},
		{"next monday", time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC), "12/01/26 - 16/01/26"},
		{"month boundary", time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), "26/01/26 - 30/01/26"},
		{"year boundary", time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), "29/12/25 - 02/01/26"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekStringFromDate(tc.date); got != tc.want {
				t.Errorf("WeekStringFromDate(%s) = %q, want %q", tc.date.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}
