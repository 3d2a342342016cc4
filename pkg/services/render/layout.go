package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/team-tools/weekreport/pkg/models/domain"
)

// Canvas geometry in inches, fixed by the A4 print layout of the deck.
const (
	logoX      = 9.07
	logoY      = 0.16
	logoWidth  = 1.38
	logoHeight = 0.25

	fileIconX    = 0.52
	fileIconStep = 0.35
	fileIconSize = 0.28

	// Icon rows sit beneath the first and second task cell of a slide.
	firstTaskIconY  = 4.0
	secondTaskIconY = 6.6
)

const (
	deckTitle     = "Operations Improvement"
	noTasksNotice = "No tasks registered for this week."
	tripRowLabel  = "Trips &\nEducation"

	// bulletBaseIndent pushes bullet paragraphs past the field labels.
	bulletBaseIndent = "      "
)

var weekdayNames = [workDays]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// Config carries the assembler knobs that come from server configuration.
type Config struct {
	// FileBaseURL prefixes attached-file download links.
	FileBaseURL string
}

// Assembler composes slide models out of paginated tasks and grouped
// attendance. It holds no per-render state.
type Assembler struct {
	cfg Config
}

func NewAssembler(cfg Config) *Assembler {
	return &Assembler{cfg: cfg}
}

// Assemble builds the ordered slide deck: one slide per task page followed by
// exactly one attendance slide.
func (a *Assembler) Assemble(
	snap domain.ReportSnapshot,
	pages []TaskPage,
	trips []TripGroup,
	leaves LeaveSplit,
) domain.Deck {
	w := snap.Window
	deck := domain.Deck{
		Title:   deckTitle,
		Company: w.TeamName,
		Subject: fmt.Sprintf("Weekly Report %d W%d", w.Year, w.WeekNumber),
	}
	for _, page := range pages {
		deck.Slides = append(deck.Slides, a.taskSlide(w, page))
	}
	deck.Slides = append(deck.Slides, a.attendanceSlide(w, snap.Attendance, trips, leaves))
	return deck
}

func (a *Assembler) taskSlide(w domain.ReportWindow, page TaskPage) domain.Slide {
	slide := domain.Slide{
		Header: domain.HeaderBlock{
			Title:  deckTitle,
			Banner: fmt.Sprintf("%s — Improvements / Changes", w.TeamName),
		},
		Images: []domain.ImagePlacement{logoPlacement()},
	}
	if len(page) == 0 {
		slide.Message = noTasksNotice
		return slide
	}

	table := domain.TableBlock{Columns: 2}
	table.Rows = append(table.Rows, domain.TableRow{
		headerCell(fmt.Sprintf("This week (%s~%s) results", FormatDate(w.WeekStart), FormatDate(w.WeekEnd))),
		headerCell(fmt.Sprintf("Next week (%s~%s) plan", FormatDate(w.NextWeekStart), FormatDate(w.NextWeekEnd))),
	})
	for _, task := range page {
		table.Rows = append(table.Rows, domain.TableRow{
			runCell(taskResultRuns(task)),
			runCell(taskPlanRuns(task)),
		})
	}
	if len(page) < tasksPerPage {
		table.Rows = append(table.Rows, domain.TableRow{dataCell(""), dataCell("")})
	}
	slide.Tables = append(slide.Tables, table)

	for slot, task := range page {
		slide.Images = append(slide.Images, a.fileIcons(task, slot)...)
	}
	return slide
}

// taskResultRuns renders the left ("this week results") cell of a task row.
func taskResultRuns(task domain.TaskRecord) []domain.TextRun {
	runs := taskHeadRuns(task)
	runs = append(runs, domain.TextRun{Text: "▪ Results: ", Bold: true})
	runs = append(runs, statsRun(task.ShowThisWeek, task.ThisWeek))
	runs = append(runs, bulletRuns(task.ThisWeekContent)...)
	return runs
}

// taskPlanRuns renders the right ("next week plan") cell. A task without
// next-week content gets a blank cell rather than repeated headers.
func taskPlanRuns(task domain.TaskRecord) []domain.TextRun {
	if strings.TrimSpace(task.NextWeekContent) == "" {
		return []domain.TextRun{{}}
	}
	runs := taskHeadRuns(task)
	runs = append(runs, domain.TextRun{Text: "▪ Plan: ", Bold: true})
	runs = append(runs, statsRun(task.ShowNextWeek, task.NextWeek))
	runs = append(runs, bulletRuns(task.NextWeekContent)...)
	return runs
}

func taskHeadRuns(task domain.TaskRecord) []domain.TextRun {
	names := make([]string, 0, len(task.Assignees))
	for _, assignee := range task.Assignees {
		names = append(names, assignee.DisplayName())
	}
	return []domain.TextRun{
		{Text: fmt.Sprintf("[%s] %s", task.ModuleName, task.Title), Bold: true, NewLine: true},
		{Text: "▪ Purpose: ", Bold: true},
		{Text: orDash(task.Purpose), NewLine: true},
		{Text: "▪ Schedule: ", Bold: true},
		{Text: scheduleLine(task), NewLine: true},
		{Text: "▪ Assignees: ", Bold: true},
		{Text: strings.Join(names, ", "), NewLine: true},
	}
}

func scheduleLine(task domain.TaskRecord) string {
	start, end := "-", "-"
	if task.StartDate != nil {
		start = FormatDate(*task.StartDate)
	}
	if task.EndDate != nil {
		end = FormatDate(*task.EndDate)
	}
	return start + " ~ " + end
}

func statsRun(show bool, stats domain.WeekStats) domain.TextRun {
	if !show {
		return domain.TextRun{NewLine: true}
	}
	return domain.TextRun{
		Text:    fmt.Sprintf(" [done: %d, total: %d, progress: %d%%]", stats.Completed, stats.Total, stats.ProgressPct),
		NewLine: true,
	}
}

// bulletRuns renders parsed bullets with "-" at level 0 and "└" below,
// indented proportionally to the level.
func bulletRuns(content string) []domain.TextRun {
	var runs []domain.TextRun
	for _, item := range ParseBullets(content) {
		prefix := "-"
		if item.Level > 0 {
			prefix = "└"
		}
		indent := strings.Repeat("  ", item.Level)
		runs = append(runs, domain.TextRun{
			Text:    bulletBaseIndent + indent + prefix + " " + item.Text,
			NewLine: true,
		})
	}
	return runs
}

// fileIcons places one linked icon per attached file, stepped horizontally
// beneath the task's text block.
func (a *Assembler) fileIcons(task domain.TaskRecord, slot int) []domain.ImagePlacement {
	if len(task.Files) == 0 {
		return nil
	}
	y := firstTaskIconY
	if slot > 0 {
		y = secondTaskIconY
	}
	icons := make([]domain.ImagePlacement, 0, len(task.Files))
	for i, file := range task.Files {
		icons = append(icons, domain.ImagePlacement{
			Kind:    domain.ImageFileIcon,
			X:       fileIconX + float64(i)*fileIconStep,
			Y:       y,
			Width:   fileIconSize,
			Height:  fileIconSize,
			Link:    fmt.Sprintf("%s/files/%s/download", a.cfg.FileBaseURL, file.ID),
			Tooltip: file.Name,
		})
	}
	return icons
}

func (a *Assembler) attendanceSlide(
	w domain.ReportWindow,
	records []domain.AttendanceRecord,
	trips []TripGroup,
	leaves LeaveSplit,
) domain.Slide {
	active := w.TotalMembers - LongTermCount(records, w)
	return domain.Slide{
		Header: domain.HeaderBlock{
			Title: fmt.Sprintf("Headcount — %s", w.TeamName),
		},
		Images: []domain.ImagePlacement{logoPlacement()},
		Tables: []domain.TableBlock{
			memberTable(w, active),
			tripTable(w, trips),
			leaveTable(w, leaves),
		},
	}
}

// memberTable is the three-row headcount summary. The category and remarks
// header cells span both header rows.
func memberTable(w domain.ReportWindow, active int) domain.TableBlock {
	count := strconv.Itoa(active)
	return domain.TableBlock{
		Columns: 5,
		Rows: []domain.TableRow{
			{
				spanCell(headerCell("Category"), 2, 1),
				headerCell(w.TeamName),
				spanCell(headerCell("Headcount"), 1, 2),
				spanCell(headerCell("Remarks"), 2, 1),
			},
			{
				headerCell("Ops"),
				headerCell("This week"),
				headerCell("Next week"),
			},
			{
				dataCell("Active staff"),
				dataCell(count),
				dataCell(count),
				dataCell(count),
				dataCell(""),
			},
		},
	}
}

// tripTable is the trip/education grid: a merged three-row header over one
// data row per group, padded to the minimum grid height. The category and
// team label cells span every data row including the padding.
func tripTable(w domain.ReportWindow, trips []TripGroup) domain.TableBlock {
	thisDays := WeekDays(w.WeekStart)
	nextDays := WeekDays(w.NextWeekStart)

	t := domain.TableBlock{Columns: 4 + 2*workDays + 1}
	t.Rows = append(t.Rows, domain.TableRow{
		spanCell(headerCell("Category"), 3, 1),
		spanCell(headerCell("Team"), 3, 1),
		spanCell(headerCell("Content"), 3, 1),
		spanCell(headerCell("Person"), 3, 1),
		spanCell(headerCell("Results"), 1, workDays),
		spanCell(headerCell("Plan"), 1, workDays),
		spanCell(headerCell("Remarks"), 3, 1),
	})
	t.Rows = append(t.Rows, weekdayNameRow(2))
	t.Rows = append(t.Rows, dayNumberRow(thisDays[:], nextDays[:]))

	rowCount := len(trips)
	if rowCount < minGridRows {
		rowCount = minGridRows
	}
	for i := 0; i < rowCount; i++ {
		var row domain.TableRow
		if i == 0 {
			row = append(row,
				spanCell(mergedCell(tripRowLabel), rowCount, 1),
				spanCell(mergedCell(w.TeamName), rowCount, 1),
			)
		}
		if i < len(trips) {
			trip := trips[i]
			row = append(row, dataCell(trip.Content), dataCell(trip.UserName))
			row = append(row, checkCells(trip.ThisWeekChecks)...)
			row = append(row, checkCells(trip.NextWeekChecks)...)
			row = append(row, dataCell(trip.Location))
		} else {
			row = append(row, emptyCells(2+2*workDays+1)...)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// leaveTable is the leave/training table: merged header, a full-width roster
// line for the current week, then a per-day checkbox grid for the next week.
func leaveTable(w domain.ReportWindow, leaves LeaveSplit) domain.TableBlock {
	nextDays := WeekDays(w.NextWeekStart)

	t := domain.TableBlock{Columns: 3 + workDays + 1}
	t.Rows = append(t.Rows, domain.TableRow{
		spanCell(headerCell("Team"), 3, 1),
		spanCell(headerCell("Category"), 3, 1),
		spanCell(headerCell("Person"), 3, 1),
		spanCell(headerCell("Plan"), 1, workDays),
		spanCell(headerCell("Remarks"), 3, 1),
	})
	t.Rows = append(t.Rows, weekdayNameRow(1))
	t.Rows = append(t.Rows, dayNumberRow(nextDays[:]))

	t.Rows = append(t.Rows, domain.TableRow{
		spanCell(dataCell(rosterLine(leaves.ThisWeek)), 1, t.Columns),
	})

	rowCount := len(leaves.NextWeek)
	if rowCount < minGridRows {
		rowCount = minGridRows
	}
	for i := 0; i < rowCount; i++ {
		var row domain.TableRow
		if i == 0 {
			row = append(row, spanCell(mergedCell(w.TeamName), rowCount, 1))
		}
		if i < len(leaves.NextWeek) {
			rec := leaves.NextWeek[i]
			row = append(row, dataCell(leaveLabel(rec)), dataCell(rec.UserName))
			row = append(row, checkCells(DayChecks(rec.StartDate, rec.EndDate, nextDays))...)
			row = append(row, dataCell(rec.Remarks))
		} else {
			row = append(row, emptyCells(2+workDays+1)...)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// rosterLine is the free-text summary of everyone on leave this week:
// "Kim Manager(08/24~08/26, Annual leave), ...".
func rosterLine(recs []domain.AttendanceRecord) string {
	parts := make([]string, 0, len(recs))
	for _, rec := range recs {
		parts = append(parts, fmt.Sprintf("%s(%s, %s)",
			rec.DisplayName(), ShortRange(rec.StartDate, rec.EndDate), leaveLabel(rec)))
	}
	return strings.Join(parts, ", ")
}

// leaveLabel prefers the record's own content over the generic type name.
func leaveLabel(rec domain.AttendanceRecord) string {
	if rec.Content != "" {
		return rec.Content
	}
	if rec.TypeName != "" {
		return rec.TypeName + " leave"
	}
	return ""
}

func weekdayNameRow(repeats int) domain.TableRow {
	row := make(domain.TableRow, 0, repeats*workDays)
	for r := 0; r < repeats; r++ {
		for _, name := range weekdayNames {
			row = append(row, headerCell(name))
		}
	}
	return row
}

func dayNumberRow(weeks ...[]string) domain.TableRow {
	var row domain.TableRow
	for _, days := range weeks {
		for _, day := range days {
			row = append(row, headerCell(day))
		}
	}
	return row
}

func headerCell(text string) domain.Cell {
	return domain.Cell{Style: domain.CellHeader, Text: text, RowSpan: 1, ColSpan: 1}
}

func dataCell(text string) domain.Cell {
	return domain.Cell{Style: domain.CellData, Text: text, RowSpan: 1, ColSpan: 1}
}

func mergedCell(text string) domain.Cell {
	return domain.Cell{Style: domain.CellMergedLabel, Text: text, RowSpan: 1, ColSpan: 1}
}

func checkedCell() domain.Cell {
	return domain.Cell{Style: domain.CellChecked, RowSpan: 1, ColSpan: 1}
}

func runCell(runs []domain.TextRun) domain.Cell {
	return domain.Cell{Style: domain.CellData, Runs: runs, RowSpan: 1, ColSpan: 1}
}

func spanCell(c domain.Cell, rowSpan, colSpan int) domain.Cell {
	c.RowSpan = rowSpan
	c.ColSpan = colSpan
	return c
}

func checkCells(checks [workDays]bool) domain.TableRow {
	row := make(domain.TableRow, 0, workDays)
	for _, checked := range checks {
		if checked {
			row = append(row, checkedCell())
		} else {
			row = append(row, dataCell(""))
		}
	}
	return row
}

func emptyCells(n int) domain.TableRow {
	row := make(domain.TableRow, 0, n)
	for i := 0; i < n; i++ {
		row = append(row, dataCell(""))
	}
	return row
}

func logoPlacement() domain.ImagePlacement {
	return domain.ImagePlacement{
		Kind:   domain.ImageLogo,
		X:      logoX,
		Y:      logoY,
		Width:  logoWidth,
		Height: logoHeight,
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
