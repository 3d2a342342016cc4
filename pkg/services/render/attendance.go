package render

import (
	"github.com/team-tools/weekreport/pkg/models/domain"
)

// minGridRows is the printed height of the trip and leave grids. Shorter
// groups are padded with empty rows so stacked tables keep a fixed layout.
const minGridRows = 5

// tripKey identifies one grouped trip row. Structural equality on the pair
// avoids the collisions a concatenated string key would allow.
type tripKey struct {
	userID  string
	content string
}

// TripGroup is one row of the trip/education grid: a person and description
// with per-day checkmarks across both week windows.
type TripGroup struct {
	Content        string
	UserName       string
	Location       string
	ThisWeekChecks [workDays]bool
	NextWeekChecks [workDays]bool
}

// LeaveSplit partitions leave records by week window. A record spanning both
// weeks appears in both slices.
type LeaveSplit struct {
	ThisWeek []domain.AttendanceRecord
	NextWeek []domain.AttendanceRecord
}

// GroupTrips merges business-trip records sharing (person, description) into
// one row each, even when their date ranges differ. Day checks accumulate
// across the merged records and never reset; the first non-empty location
// wins. Records overlapping neither week window are dropped.
func GroupTrips(records []domain.AttendanceRecord, w domain.ReportWindow) []TripGroup {
	thisDays := WeekDays(w.WeekStart)
	nextDays := WeekDays(w.NextWeekStart)

	groups := make(map[tripKey]*TripGroup)
	var seen []tripKey

	for _, rec := range records {
		if rec.Category != domain.CategoryBusinessTrip {
			continue
		}
		inThisWeek := Overlaps(rec.StartDate, rec.EndDate, w.WeekStart, w.WeekEnd)
		inNextWeek := Overlaps(rec.StartDate, rec.EndDate, w.NextWeekStart, w.NextWeekEnd)
		if !inThisWeek && !inNextWeek {
			continue
		}

		content := rec.Content
		if content == "" {
			content = rec.TypeName
		}
		key := tripKey{userID: rec.UserID, content: content}

		group, ok := groups[key]
		if !ok {
			group = &TripGroup{
				Content:  content,
				UserName: rec.UserName,
				Location: rec.Location,
			}
			groups[key] = group
			seen = append(seen, key)
		}
		if group.Location == "" && rec.Location != "" {
			group.Location = rec.Location
		}

		if inThisWeek {
			for i, day := range thisDays {
				if DayCovered(day, rec.StartDate, rec.EndDate) {
					group.ThisWeekChecks[i] = true
				}
			}
		}
		if inNextWeek {
			for i, day := range nextDays {
				if DayCovered(day, rec.StartDate, rec.EndDate) {
					group.NextWeekChecks[i] = true
				}
			}
		}
	}

	out := make([]TripGroup, 0, len(seen))
	for _, key := range seen {
		out = append(out, *groups[key])
	}
	return out
}

// SplitLeaves buckets leave records into the current and following week.
func SplitLeaves(records []domain.AttendanceRecord, w domain.ReportWindow) LeaveSplit {
	var split LeaveSplit
	for _, rec := range records {
		if rec.Category != domain.CategoryLeave {
			continue
		}
		if Overlaps(rec.StartDate, rec.EndDate, w.WeekStart, w.WeekEnd) {
			split.ThisWeek = append(split.ThisWeek, rec)
		}
		if Overlaps(rec.StartDate, rec.EndDate, w.NextWeekStart, w.NextWeekEnd) {
			split.NextWeek = append(split.NextWeek, rec)
		}
	}
	return split
}

// LongTermCount counts long-term records overlapping the current week. The
// headcount summary subtracts it from the team total.
func LongTermCount(records []domain.AttendanceRecord, w domain.ReportWindow) int {
	count := 0
	for _, rec := range records {
		if rec.IsLongTerm && Overlaps(rec.StartDate, rec.EndDate, w.WeekStart, w.WeekEnd) {
			count++
		}
	}
	return count
}
