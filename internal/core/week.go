package core

import (
	"fmt"
	"time"
)

// WeekStringFromDate returns the Monday-to-Friday week label containing the
// given date, e.g. "05/01/26 - 09/01/26". Saturdays and Sundays map to the
// week that just ended.
func WeekStringFromDate(date time.Time) string {
	diffToMonday := int(date.Weekday()) - 1
	if date.Weekday() == time.Sunday {
		diffToMonday = 6
	}
	monday := date.AddDate(0, 0, -diffToMonday)
	friday := monday.AddDate(0, 0, 4)
	return fmt.Sprintf("%s - %s", formatDateShort(monday), formatDateShort(friday))
}

func formatDateShort(t time.Time) string {
	return t.Format("02/01/06")
}
