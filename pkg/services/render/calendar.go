package render

import (
	"fmt"
	"strconv"
	"time"
)

// workDays is the number of columns in the Mon-Fri day grids.
const workDays = 5

// Overlaps reports whether the closed ranges [aStart,aEnd] and [bStart,bEnd]
// share at least one day. A single shared boundary day counts.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// WeekDays returns zero-padded day-of-month labels for Monday through Friday
// of the week beginning at weekStart.
func WeekDays(weekStart time.Time) [workDays]string {
	var days [workDays]string
	for i := range days {
		days[i] = fmt.Sprintf("%02d", weekStart.AddDate(0, 0, i).Day())
	}
	return days
}

// DayCovered reports whether the grid day labeled dayLabel lies within
// [start,end]. Only day-of-month components are compared, matching how the
// day grids are built; the check misbehaves when a week straddles a month
// boundary and is kept that way for output compatibility.
func DayCovered(dayLabel string, start, end time.Time) bool {
	day, err := strconv.Atoi(dayLabel)
	if err != nil {
		return false
	}
	return day >= start.Day() && day <= end.Day()
}

// DayChecks maps a record's date range onto a week's day labels.
func DayChecks(start, end time.Time, days [workDays]string) [workDays]bool {
	var checks [workDays]bool
	for i, day := range days {
		checks[i] = DayCovered(day, start, end)
	}
	return checks
}

func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// ShortRange formats a range as MM/DD, or MM/DD~MM/DD when the dates differ.
func ShortRange(start, end time.Time) string {
	s := start.Format("01/02")
	e := end.Format("01/02")
	if s == e {
		return s
	}
	return s + "~" + e
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
