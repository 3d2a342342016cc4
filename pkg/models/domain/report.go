package domain

import "time"

type Position string

const (
	PositionTeamLead Position = "TEAM_LEAD"
	PositionManager  Position = "MANAGER"
	PositionStaff    Position = "STAFF"
)

// Label returns the printable title for a position, or "" for unknown values.
func (p Position) Label() string {
	switch p {
	case PositionTeamLead:
		return "Team Lead"
	case PositionManager:
		return "Manager"
	case PositionStaff:
		return "Staff"
	default:
		return ""
	}
}

// ReportWindow describes the two adjacent Mon-Fri windows a weekly report
// covers. WeekEnd is always WeekStart+4d and the next week is shifted by 7d.
type ReportWindow struct {
	ReportID      string
	TeamID        string
	TeamName      string
	TotalMembers  int
	Year          int
	WeekNumber    int
	WeekStart     time.Time
	WeekEnd       time.Time
	NextWeekStart time.Time
	NextWeekEnd   time.Time
}

// ReportSummary is the list/detail view of a stored weekly report.
type ReportSummary struct {
	ID         string
	TeamID     string
	Year       int
	WeekNumber int
	WeekStart  time.Time
	WeekEnd    time.Time
}

type Assignee struct {
	UserID       string
	Name         string
	Position     Position
	DisplayOrder int
}

// DisplayName is "<name> <position label>", or just the name when the
// position has no label.
func (a Assignee) DisplayName() string {
	if label := a.Position.Label(); label != "" {
		return a.Name + " " + label
	}
	return a.Name
}

type FileRef struct {
	ID   string
	Name string
}

// WeekStats is the aggregate progress line shown for a task when the
// corresponding show flag is set.
type WeekStats struct {
	Completed   int
	Total       int
	ProgressPct int
}

type TaskRecord struct {
	ID              string
	ModuleName      string
	ModuleColor     string
	Title           string
	Purpose         string
	StartDate       *time.Time
	EndDate         *time.Time
	DisplayOrder    int
	Assignees       []Assignee
	ThisWeekContent string
	NextWeekContent string
	ShowThisWeek    bool
	ShowNextWeek    bool
	ThisWeek        WeekStats
	NextWeek        WeekStats
	Files           []FileRef
}

type AttendanceCategory string

const (
	CategoryLeave        AttendanceCategory = "LEAVE"
	CategoryBusinessTrip AttendanceCategory = "BUSINESS_TRIP"
)

type AttendanceRecord struct {
	UserID     string
	UserName   string
	Position   Position
	Category   AttendanceCategory
	TypeName   string
	IsLongTerm bool
	Content    string
	Location   string
	Remarks    string
	StartDate  time.Time
	EndDate    time.Time
}

// DisplayName is "<name> <position label>", matching Assignee.DisplayName.
func (r AttendanceRecord) DisplayName() string {
	if label := r.Position.Label(); label != "" {
		return r.UserName + " " + label
	}
	return r.UserName
}

// ReportSnapshot is the fully joined, read-only input for one render call:
// the window plus every task (with assignees and files resolved) and every
// attendance record overlapping [WeekStart, NextWeekEnd].
type ReportSnapshot struct {
	Window     ReportWindow
	Tasks      []TaskRecord
	Attendance []AttendanceRecord
}
