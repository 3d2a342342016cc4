package render

import (
	"context"
	"fmt"

	"github.com/team-tools/weekreport/pkg/models/domain"
)

// Source supplies the fully joined data for one report. Implemented by the
// report store; mocked in tests.
type Source interface {
	GetSnapshot(ctx context.Context, reportID string) (*domain.ReportSnapshot, error)
}

// Engine turns a week's stored data into a slide-deck model. Rendering is a
// pure in-memory transformation; the only suspension point is the snapshot
// fetch.
type Engine struct {
	source    Source
	assembler *Assembler
}

func NewEngine(source Source, cfg Config) *Engine {
	return &Engine{
		source:    source,
		assembler: NewAssembler(cfg),
	}
}

// Render fetches the report snapshot and assembles the deck. Task pages and
// attendance groupings are derived fresh per call; nothing is retained
// between invocations.
func (e *Engine) Render(ctx context.Context, reportID string) (*domain.Deck, error) {
	snap, err := e.source.GetSnapshot(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("load report snapshot: %w", err)
	}

	pages := PaginateTasks(snap.Tasks)
	trips := GroupTrips(snap.Attendance, snap.Window)
	leaves := SplitLeaves(snap.Attendance, snap.Window)

	deck := e.assembler.Assemble(*snap, pages, trips, leaves)
	return &deck, nil
}
