package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/team-tools/weekreport/pkg/models/domain"
)

// testWindow spans Mon 2026-08-03 .. Fri 2026-08-07, next week 08-10 .. 08-14.
func testWindow() domain.ReportWindow {
	weekStart := date(2026, time.August, 3)
	return domain.ReportWindow{
		TeamName:      "Platform",
		TotalMembers:  10,
		Year:          2026,
		WeekNumber:    32,
		WeekStart:     weekStart,
		WeekEnd:       weekStart.AddDate(0, 0, 4),
		NextWeekStart: weekStart.AddDate(0, 0, 7),
		NextWeekEnd:   weekStart.AddDate(0, 0, 11),
	}
}

func trip(userID, content string, start, end time.Time) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		UserID:    userID,
		UserName:  "User " + userID,
		Category:  domain.CategoryBusinessTrip,
		TypeName:  "Business trip",
		Content:   content,
		StartDate: start,
		EndDate:   end,
	}
}

func leave(userID, typeName string, start, end time.Time) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		UserID:    userID,
		UserName:  "User " + userID,
		Category:  domain.CategoryLeave,
		TypeName:  typeName,
		StartDate: start,
		EndDate:   end,
	}
}

func TestGroupTrips(t *testing.T) {
	w := testWindow()

	t.Run("single trip sets this-week day checks", func(t *testing.T) {
		groups := GroupTrips([]domain.AttendanceRecord{
			trip("u1", "Factory visit", date(2026, time.August, 4), date(2026, time.August, 6)),
		}, w)

		assert.Len(t, groups, 1)
		assert.Equal(t, [5]bool{false, true, true, true, false}, groups[0].ThisWeekChecks)
		assert.Equal(t, [5]bool{false, false, false, false, false}, groups[0].NextWeekChecks)
	})

	t.Run("same person and content merge across weeks", func(t *testing.T) {
		groups := GroupTrips([]domain.AttendanceRecord{
			trip("u1", "Training", date(2026, time.August, 3), date(2026, time.August, 4)),
			trip("u1", "Training", date(2026, time.August, 10), date(2026, time.August, 12)),
		}, w)

		assert.Len(t, groups, 1)
		assert.Equal(t, [5]bool{true, true, false, false, false}, groups[0].ThisWeekChecks)
		assert.Equal(t, [5]bool{true, true, true, false, false}, groups[0].NextWeekChecks)
	})

	t.Run("different content stays separate", func(t *testing.T) {
		groups := GroupTrips([]domain.AttendanceRecord{
			trip("u1", "Training", date(2026, time.August, 3), date(2026, time.August, 3)),
			trip("u1", "Site audit", date(2026, time.August, 4), date(2026, time.August, 4)),
		}, w)

		assert.Len(t, groups, 2)
	})

	t.Run("empty content falls back to type name", func(t *testing.T) {
		groups := GroupTrips([]domain.AttendanceRecord{
			trip("u1", "", date(2026, time.August, 3), date(2026, time.August, 3)),
		}, w)

		assert.Equal(t, "Business trip", groups[0].Content)
	})

	t.Run("first non-empty location is kept", func(t *testing.T) {
		first := trip("u1", "Training", date(2026, time.August, 3), date(2026, time.August, 3))
		second := trip("u1", "Training", date(2026, time.August, 4), date(2026, time.August, 4))
		second.Location = "Busan"
		third := trip("u1", "Training", date(2026, time.August, 5), date(2026, time.August, 5))
		third.Location = "Seoul"

		groups := GroupTrips([]domain.AttendanceRecord{first, second, third}, w)

		assert.Len(t, groups, 1)
		assert.Equal(t, "Busan", groups[0].Location)
	})

	t.Run("checks accumulate regardless of record order", func(t *testing.T) {
		a := trip("u1", "Training", date(2026, time.August, 3), date(2026, time.August, 4))
		b := trip("u1", "Training", date(2026, time.August, 6), date(2026, time.August, 7))

		forward := GroupTrips([]domain.AttendanceRecord{a, b}, w)
		reversed := GroupTrips([]domain.AttendanceRecord{b, a}, w)

		assert.Len(t, forward, 1)
		assert.Len(t, reversed, 1)
		assert.Equal(t, forward[0].ThisWeekChecks, reversed[0].ThisWeekChecks)
		assert.Equal(t, forward[0].NextWeekChecks, reversed[0].NextWeekChecks)
		assert.Equal(t, [5]bool{true, true, false, true, true}, forward[0].ThisWeekChecks)
	})

	t.Run("leave records and out-of-window trips are ignored", func(t *testing.T) {
		groups := GroupTrips([]domain.AttendanceRecord{
			leave("u1", "Annual", date(2026, time.August, 3), date(2026, time.August, 3)),
			trip("u2", "Old trip", date(2026, time.July, 1), date(2026, time.July, 3)),
		}, w)

		assert.Empty(t, groups)
	})
}

func TestSplitLeaves(t *testing.T) {
	w := testWindow()

	t.Run("partitions by week window", func(t *testing.T) {
		split := SplitLeaves([]domain.AttendanceRecord{
			leave("u1", "Annual", date(2026, time.August, 4), date(2026, time.August, 5)),
			leave("u2", "Annual", date(2026, time.August, 11), date(2026, time.August, 12)),
		}, w)

		assert.Len(t, split.ThisWeek, 1)
		assert.Len(t, split.NextWeek, 1)
		assert.Equal(t, "u1", split.ThisWeek[0].UserID)
		assert.Equal(t, "u2", split.NextWeek[0].UserID)
	})

	t.Run("record spanning both weeks lands in both partitions", func(t *testing.T) {
		split := SplitLeaves([]domain.AttendanceRecord{
			leave("u1", "Annual", date(2026, time.August, 6), date(2026, time.August, 11)),
		}, w)

		assert.Len(t, split.ThisWeek, 1)
		assert.Len(t, split.NextWeek, 1)
	})

	t.Run("business trips are excluded", func(t *testing.T) {
		split := SplitLeaves([]domain.AttendanceRecord{
			trip("u1", "Training", date(2026, time.August, 4), date(2026, time.August, 5)),
		}, w)

		assert.Empty(t, split.ThisWeek)
		assert.Empty(t, split.NextWeek)
	})
}

func TestLongTermCount(t *testing.T) {
	w := testWindow()

	longTerm := leave("u1", "Parental", date(2026, time.July, 1), date(2026, time.December, 31))
	longTerm.IsLongTerm = true

	expired := leave("u2", "Parental", date(2026, time.January, 1), date(2026, time.March, 31))
	expired.IsLongTerm = true

	count := LongTermCount([]domain.AttendanceRecord{
		longTerm,
		expired,
		leave("u3", "Annual", date(2026, time.August, 4), date(2026, time.August, 5)),
	}, w)

	assert.Equal(t, 1, count)
}
