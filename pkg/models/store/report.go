package store

import "time"

// ReportRow mirrors one weekly_reports row.
type ReportRow struct {
	ID         string
	TeamID     string
	Year       int
	WeekNumber int
	WeekStart  time.Time
	WeekEnd    time.Time
}
