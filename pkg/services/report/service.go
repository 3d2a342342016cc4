package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/team-tools/weekreport/pkg/models/domain"
	storemodels "github.com/team-tools/weekreport/pkg/models/store"
	reportstore "github.com/team-tools/weekreport/pkg/store/sqlite/report"
)

// Service is the thin management surface over stored weekly reports. The
// render engine sits behind its own Source interface and does not go
// through here.
type Service interface {
	ListReports(ctx context.Context, teamID string) ([]domain.ReportSummary, error)
	CreateReport(ctx context.Context, teamID string, year, week int, weekStart time.Time) (*domain.ReportSummary, error)
	GetReport(ctx context.Context, id string) (*domain.ReportSummary, error)
}

type service struct {
	store reportstore.Store
}

func NewService(store reportstore.Store) Service {
	return &service{store: store}
}

func (s *service) ListReports(ctx context.Context, teamID string) ([]domain.ReportSummary, error) {
	rows, err := s.store.ListReports(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	summaries := make([]domain.ReportSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, toSummary(row))
	}
	return summaries, nil
}

func (s *service) CreateReport(ctx context.Context, teamID string, year, week int, weekStart time.Time) (*domain.ReportSummary, error) {
	if weekStart.Weekday() != time.Monday {
		return nil, fmt.Errorf("week start %s is not a Monday", weekStart.Format("2006-01-02"))
	}

	row := storemodels.ReportRow{
		ID:         uuid.NewString(),
		TeamID:     teamID,
		Year:       year,
		WeekNumber: week,
		WeekStart:  weekStart,
		WeekEnd:    weekStart.AddDate(0, 0, 4),
	}
	if err := s.store.CreateReport(ctx, row); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	summary := toSummary(row)
	return &summary, nil
}

func (s *service) GetReport(ctx context.Context, id string) (*domain.ReportSummary, error) {
	row, err := s.store.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := toSummary(*row)
	return &summary, nil
}

func toSummary(row storemodels.ReportRow) domain.ReportSummary {
	return domain.ReportSummary{
		ID:         row.ID,
		TeamID:     row.TeamID,
		Year:       row.Year,
		WeekNumber: row.WeekNumber,
		WeekStart:  row.WeekStart,
		WeekEnd:    row.WeekEnd,
	}
}
