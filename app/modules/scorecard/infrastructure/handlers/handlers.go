// Package scorecardhandlers exposes the scorecard engine over HTTP for
// the scorecard UI: stats computation, course resolution, submission,
// import/export, and the feed preview chart.
package scorecardhandlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/strideclub/scorecard/internal/observability/attr"

	courseservice "github.com/strideclub/scorecard/app/modules/course/application"
	coursedb "github.com/strideclub/scorecard/app/modules/course/infrastructure/repositories"
	scorecardservice "github.com/strideclub/scorecard/app/modules/scorecard/application"
	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
	"github.com/strideclub/scorecard/app/modules/scorecard/infrastructure/parsers"
	summaryservice "github.com/strideclub/scorecard/app/modules/summary/application"
	summarytypes "github.com/strideclub/scorecard/app/modules/summary/domain"
)

// maxUploadBytes bounds scorecard uploads.
const maxUploadBytes = 2 << 20

// Handlers serves the scorecard HTTP surface.
type Handlers struct {
	scorecard scorecardservice.Service
	courses   *courseservice.CourseService
	logger    *slog.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(scorecard scorecardservice.Service, courses *courseservice.CourseService, logger *slog.Logger) *Handlers {
	return &Handlers{
		scorecard: scorecard,
		courses:   courses,
		logger:    logger,
	}
}

// ComputeStatsRequest is the body of POST /rounds/stats.
type ComputeStatsRequest struct {
	Holes    []scorecardtypes.HoleRecord `json:"holes"`
	Handicap *float64                    `json:"handicap,omitempty"`
}

// ComputeStats recomputes the aggregate for the current hole array. A
// JSON null body means no hole has a score yet.
func (h *Handlers) ComputeStats(w http.ResponseWriter, r *http.Request) {
	var req ComputeStatsRequest
	if !h.decode(w, r, &req) {
		return
	}

	stats, err := h.scorecard.ComputeStats(r.Context(), req.Holes, req.Handicap)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, stats)
}

// ResolveCourseRequest is the body of POST /rounds/resolve.
type ResolveCourseRequest struct {
	CourseID     string                      `json:"courseId"`
	TeeColor     scorecardtypes.TeeColor     `json:"teeColor"`
	UnitCount    int                         `json:"unitCount"`
	StartSegment scorecardtypes.StartSegment `json:"startSegment,omitempty"`
	Holes        []scorecardtypes.HoleRecord `json:"holes"`
}

// ResolveCourse merges a catalog course onto the caller's hole array.
func (h *Handlers) ResolveCourse(w http.ResponseWriter, r *http.Request) {
	var req ResolveCourseRequest
	if !h.decode(w, r, &req) {
		return
	}

	course, err := h.courses.GetCourse(r.Context(), req.CourseID)
	if err != nil {
		if errors.Is(err, coursedb.ErrNotFound) {
			http.Error(w, "course not found", http.StatusNotFound)
			return
		}
		h.serverError(w, r, err)
		return
	}

	holes, meta, err := h.scorecard.ResolveCourse(r.Context(), course, req.TeeColor, req.UnitCount, req.StartSegment, req.Holes)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, map[string]any{
		"holes": holes,
		"meta":  meta,
	})
}

// GenerateHoles builds synthetic placeholder holes before a course is
// selected. Query params: count, segment.
func (h *Handlers) GenerateHoles(w http.ResponseWriter, r *http.Request) {
	count := queryInt(r, "count", 18)
	if count < 1 || count > 36 {
		http.Error(w, "count must be between 1 and 36", http.StatusBadRequest)
		return
	}
	segment := scorecardtypes.StartSegment(r.URL.Query().Get("segment"))

	holes, err := h.scorecard.GenerateHoles(r.Context(), count, segment)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, holes)
}

// SubmitRoundRequest is the body of POST /rounds.
type SubmitRoundRequest struct {
	Config   scorecardtypes.RoundConfiguration `json:"config"`
	DateText string                            `json:"dateText,omitempty"`
	Holes    []scorecardtypes.HoleRecord       `json:"holes"`
	Meta     ResolveMeta                       `json:"meta,omitempty"`
}

// ResolveMeta mirrors the resolver metadata a client got back from
// ResolveCourse.
type ResolveMeta struct {
	CourseRating *float64 `json:"courseRating,omitempty"`
	CourseSlope  *int     `json:"courseSlope,omitempty"`
	Sourced      bool     `json:"sourced"`
}

// SubmitRound publishes a finished round to the feed backend.
func (h *Handlers) SubmitRound(w http.ResponseWriter, r *http.Request) {
	var req SubmitRoundRequest
	if !h.decode(w, r, &req) {
		return
	}

	input := scorecardservice.SubmitRoundInput{
		Config:   req.Config,
		DateText: req.DateText,
		Holes:    req.Holes,
	}
	input.Meta.CourseRating = req.Meta.CourseRating
	input.Meta.CourseSlope = req.Meta.CourseSlope
	input.Meta.Sourced = req.Meta.Sourced

	payload, err := h.scorecard.SubmitRound(r.Context(), input)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.serverError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusCreated, payload)
}

// ImportScorecard parses an uploaded XLSX scorecard into hole records
// and the resulting aggregate.
func (h *Handlers) ImportScorecard(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	holes, err := parsers.ParseScorecard(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	stats, err := h.scorecard.ComputeStats(r.Context(), holes, nil)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, map[string]any{
		"holes": holes,
		"stats": stats,
	})
}

// ExportScorecard writes the round as an XLSX attachment.
func (h *Handlers) ExportScorecard(w http.ResponseWriter, r *http.Request) {
	var req ComputeStatsRequest
	if !h.decode(w, r, &req) {
		return
	}

	stats, err := h.scorecard.ComputeStats(r.Context(), req.Holes, req.Handicap)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	workbook, err := parsers.ExportScorecard(req.Holes, stats)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="scorecard.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}

// PreviewChart renders the score-versus-par PNG for feed previews.
func (h *Handlers) PreviewChart(w http.ResponseWriter, r *http.Request) {
	var req ComputeStatsRequest
	if !h.decode(w, r, &req) {
		return
	}

	png, err := h.scorecard.RenderRoundChart(r.Context(), req.Holes)
	if err != nil {
		if errors.Is(err, scorecardservice.ErrNothingToChart) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// SummaryRequest is the body of POST /summary: exactly one of the two
// payloads should be set.
type SummaryRequest struct {
	Golf    *summarytypes.GolfStatsPayload   `json:"golf,omitempty"`
	Generic summarytypes.GenericStatsPayload `json:"generic,omitempty"`
}

// Summary renders the two-line stats summary for feed cards. A JSON
// null body means nothing was renderable.
func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if !h.decode(w, r, &req) {
		return
	}

	var lines *summarytypes.SummaryLines
	if req.Golf != nil {
		lines = summaryservice.FormatSportStats(req.Golf)
	} else {
		lines = summaryservice.FormatSportStats(req.Generic)
	}
	h.respondJSON(w, r, http.StatusOK, lines)
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handlers) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response", attr.Error(err))
	}
}

func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "Request failed",
		attr.String("path", r.URL.Path),
		attr.Error(err),
	)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, scorecardservice.ErrMissingCourseName),
		errors.Is(err, scorecardservice.ErrInvalidTee),
		errors.Is(err, scorecardservice.ErrNoHoles),
		errors.Is(err, scorecardservice.ErrNoScores),
		errors.Is(err, scorecardservice.ErrUnparseableDate):
		return true
	}
	return false
}
