package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/team-tools/weekreport/pkg/models/api"
	"github.com/team-tools/weekreport/pkg/models/domain"
	"github.com/team-tools/weekreport/pkg/services/deck"
	reportsvc "github.com/team-tools/weekreport/pkg/services/report"
	reportstore "github.com/team-tools/weekreport/pkg/store/sqlite/report"
)

// Renderer produces the slide-deck model for one report.
type Renderer interface {
	Render(ctx context.Context, reportID string) (*domain.Deck, error)
}

type Handler struct {
	reports  reportsvc.Service
	renderer Renderer
	encoder  deck.Encoder
}

func NewHandler(reports reportsvc.Service, renderer Renderer, encoder deck.Encoder) *Handler {
	return &Handler{
		reports:  reports,
		renderer: renderer,
		encoder:  encoder,
	}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	team := chi.URLParam(r, "team")

	summaries, err := h.reports.ListReports(ctx, team)
	if err != nil {
		logger.Error().Err(err).Str("team", team).Msg("failed to list reports")
		writeError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	response := make([]api.Report, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, toAPIReport(summary))
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("team", team).Msg("failed to encode reports")
	}
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	team := chi.URLParam(r, "team")

	var req api.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := h.reports.CreateReport(ctx, team, req.Year, req.WeekNumber, req.WeekStart)
	if err != nil {
		logger.Error().Err(err).Str("team", team).Msg("failed to create report")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toAPIReport(*summary)); err != nil {
		logger.Error().Err(err).Str("team", team).Msg("failed to encode created report")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "report")

	summary, err := h.reports.GetReport(ctx, id)
	if errors.Is(err, reportstore.ErrReportNotFound) {
		writeError(w, http.StatusNotFound, "weekly report not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to get report")
		writeError(w, http.StatusInternalServerError, "failed to get report")
		return
	}

	if err := json.NewEncoder(w).Encode(toAPIReport(*summary)); err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to encode report")
	}
}

// ExportReport runs the render engine and streams the encoded deck. The
// not-found check happens before rendering; an encode failure mid-stream can
// only be logged since headers are already out.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "report")

	summary, err := h.reports.GetReport(ctx, id)
	if errors.Is(err, reportstore.ErrReportNotFound) {
		writeError(w, http.StatusNotFound, "weekly report not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to load report for export")
		writeError(w, http.StatusInternalServerError, "failed to export report")
		return
	}

	deckModel, err := h.renderer.Render(ctx, id)
	if err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to render report")
		writeError(w, http.StatusInternalServerError, "failed to export report")
		return
	}

	filename := deck.Filename(deckModel.Company, summary.Year, summary.WeekNumber, h.encoder.FileExt())
	w.Header().Set("Content-Type", h.encoder.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.encoder.Encode(w, deckModel); err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to stream deck")
	}
}

func toAPIReport(summary domain.ReportSummary) api.Report {
	return api.Report{
		ID:         summary.ID,
		TeamID:     summary.TeamID,
		Year:       summary.Year,
		WeekNumber: summary.WeekNumber,
		WeekStart:  summary.WeekStart,
		WeekEnd:    summary.WeekEnd,
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Message: message})
}
