package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/team-tools/weekreport/pkg/models/domain"
	"github.com/team-tools/weekreport/pkg/models/store"
)

// ErrReportNotFound marks a report id with no matching row. Handlers map it
// to a 404 before the render engine ever runs.
var ErrReportNotFound = errors.New("weekly report not found")

// Store exposes the weekly-report rows plus the joined snapshot the render
// engine consumes.
type Store interface {
	ListReports(ctx context.Context, teamID string) ([]store.ReportRow, error)
	CreateReport(ctx context.Context, row store.ReportRow) error
	GetReport(ctx context.Context, id string) (*store.ReportRow, error)
	GetSnapshot(ctx context.Context, reportID string) (*domain.ReportSnapshot, error)
}

type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

func (s *reportStore) ListReports(ctx context.Context, teamID string) ([]store.ReportRow, error) {
	query := `
		SELECT id, team_id, year, week_number, week_start, week_end
		FROM weekly_reports
		WHERE team_id = ?
		ORDER BY year DESC, week_number DESC`

	rows, err := s.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var reports []store.ReportRow
	for rows.Next() {
		var r store.ReportRow
		if err := rows.Scan(&r.ID, &r.TeamID, &r.Year, &r.WeekNumber, &r.WeekStart, &r.WeekEnd); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (s *reportStore) CreateReport(ctx context.Context, row store.ReportRow) error {
	query := `
		INSERT INTO weekly_reports (id, team_id, year, week_number, week_start, week_end)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		row.ID, row.TeamID, row.Year, row.WeekNumber, row.WeekStart, row.WeekEnd)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *reportStore) GetReport(ctx context.Context, id string) (*store.ReportRow, error) {
	query := `
		SELECT id, team_id, year, week_number, week_start, week_end
		FROM weekly_reports
		WHERE id = ?`

	var r store.ReportRow
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&r.ID, &r.TeamID, &r.Year, &r.WeekNumber, &r.WeekStart, &r.WeekEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query report: %w", err)
	}
	return &r, nil
}

// GetSnapshot loads the window plus every task (assignees ordered by user
// display order, files by upload time) and all attendance overlapping
// [weekStart, nextWeekEnd] for the report's team.
func (s *reportStore) GetSnapshot(ctx context.Context, reportID string) (*domain.ReportSnapshot, error) {
	window, err := s.getWindow(ctx, reportID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.getTasks(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if err := s.attachAssignees(ctx, reportID, tasks); err != nil {
		return nil, err
	}
	if err := s.attachFiles(ctx, reportID, tasks); err != nil {
		return nil, err
	}

	attendance, err := s.getAttendance(ctx, *window)
	if err != nil {
		return nil, err
	}

	snap := &domain.ReportSnapshot{Window: *window, Attendance: attendance}
	for _, task := range tasks {
		snap.Tasks = append(snap.Tasks, *task)
	}
	return snap, nil
}

func (s *reportStore) getWindow(ctx context.Context, reportID string) (*domain.ReportWindow, error) {
	query := `
		SELECT r.id, r.team_id, t.name, t.total_members, r.year, r.week_number, r.week_start, r.week_end
		FROM weekly_reports r
		JOIN teams t ON t.id = r.team_id
		WHERE r.id = ?`

	var w domain.ReportWindow
	err := s.db.QueryRowContext(ctx, query, reportID).Scan(
		&w.ReportID, &w.TeamID, &w.TeamName, &w.TotalMembers,
		&w.Year, &w.WeekNumber, &w.WeekStart, &w.WeekEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query report window: %w", err)
	}

	w.NextWeekStart = w.WeekStart.AddDate(0, 0, 7)
	w.NextWeekEnd = w.WeekEnd.AddDate(0, 0, 7)
	return &w, nil
}

func (s *reportStore) getTasks(ctx context.Context, reportID string) ([]*domain.TaskRecord, error) {
	query := `
		SELECT tk.id, COALESCE(c.name, ''), COALESCE(c.color, ''), tk.title, COALESCE(tk.purpose, ''),
			tk.start_date, tk.end_date, tk.display_order,
			COALESCE(tk.this_week_content, ''), COALESCE(tk.next_week_content, ''),
			tk.show_this_week_stats, tk.show_next_week_stats,
			COALESCE(tk.completed_count, 0), COALESCE(tk.total_count, 0), COALESCE(tk.progress, 0),
			COALESCE(tk.next_completed_count, 0), COALESCE(tk.next_total_count, 0), COALESCE(tk.next_progress, 0)
		FROM tasks tk
		LEFT JOIN chains c ON c.id = tk.chain_id
		WHERE tk.report_id = ?
		ORDER BY tk.display_order`

	rows, err := s.db.QueryContext(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.TaskRecord
	for rows.Next() {
		var t domain.TaskRecord
		var start, end sql.NullTime
		err := rows.Scan(
			&t.ID, &t.ModuleName, &t.ModuleColor, &t.Title, &t.Purpose,
			&start, &end, &t.DisplayOrder,
			&t.ThisWeekContent, &t.NextWeekContent,
			&t.ShowThisWeek, &t.ShowNextWeek,
			&t.ThisWeek.Completed, &t.ThisWeek.Total, &t.ThisWeek.ProgressPct,
			&t.NextWeek.Completed, &t.NextWeek.Total, &t.NextWeek.ProgressPct)
		if err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		if start.Valid {
			t.StartDate = &start.Time
		}
		if end.Valid {
			t.EndDate = &end.Time
		}
		tasks = append(tasks, &t)
	}
	return tasks, rows.Err()
}

func (s *reportStore) attachAssignees(ctx context.Context, reportID string, tasks []*domain.TaskRecord) error {
	query := `
		SELECT ta.task_id, u.id, u.name, COALESCE(u.position, ''), u.display_order
		FROM task_assignees ta
		JOIN users u ON u.id = ta.user_id
		JOIN tasks tk ON tk.id = ta.task_id
		WHERE tk.report_id = ?
		ORDER BY u.display_order`

	rows, err := s.db.QueryContext(ctx, query, reportID)
	if err != nil {
		return fmt.Errorf("query task assignees: %w", err)
	}
	defer rows.Close()

	byID := taskIndex(tasks)
	for rows.Next() {
		var taskID string
		var a domain.Assignee
		var position string
		if err := rows.Scan(&taskID, &a.UserID, &a.Name, &position, &a.DisplayOrder); err != nil {
			return fmt.Errorf("scan assignee row: %w", err)
		}
		a.Position = domain.Position(position)
		if task, ok := byID[taskID]; ok {
			task.Assignees = append(task.Assignees, a)
		}
	}
	return rows.Err()
}

func (s *reportStore) attachFiles(ctx context.Context, reportID string, tasks []*domain.TaskRecord) error {
	query := `
		SELECT tf.task_id, tf.id, tf.original_name
		FROM task_files tf
		JOIN tasks tk ON tk.id = tf.task_id
		WHERE tk.report_id = ?
		ORDER BY tf.created_at`

	rows, err := s.db.QueryContext(ctx, query, reportID)
	if err != nil {
		return fmt.Errorf("query task files: %w", err)
	}
	defer rows.Close()

	byID := taskIndex(tasks)
	for rows.Next() {
		var taskID string
		var f domain.FileRef
		if err := rows.Scan(&taskID, &f.ID, &f.Name); err != nil {
			return fmt.Errorf("scan file row: %w", err)
		}
		if task, ok := byID[taskID]; ok {
			task.Files = append(task.Files, f)
		}
	}
	return rows.Err()
}

func (s *reportStore) getAttendance(ctx context.Context, w domain.ReportWindow) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT u.id, u.name, COALESCE(u.position, ''), at.category, at.name, at.is_long_term,
			COALESCE(a.content, ''), COALESCE(a.location, ''), COALESCE(a.remarks, ''),
			a.start_date, a.end_date
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		JOIN attendance_types at ON at.id = a.type_id
		WHERE u.team_id = ? AND a.start_date <= ? AND a.end_date >= ?
		ORDER BY at.category, a.start_date`

	rows, err := s.db.QueryContext(ctx, query, w.TeamID, w.NextWeekEnd, w.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("query attendances: %w", err)
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		var r domain.AttendanceRecord
		var position, category string
		err := rows.Scan(
			&r.UserID, &r.UserName, &position, &category, &r.TypeName, &r.IsLongTerm,
			&r.Content, &r.Location, &r.Remarks, &r.StartDate, &r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("scan attendance row: %w", err)
		}
		r.Position = domain.Position(position)
		r.Category = domain.AttendanceCategory(category)
		records = append(records, r)
	}
	return records, rows.Err()
}

func taskIndex(tasks []*domain.TaskRecord) map[string]*domain.TaskRecord {
	byID := make(map[string]*domain.TaskRecord, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}
	return byID
}
