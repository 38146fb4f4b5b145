// Package coursehandlers serves the course catalog lookups behind the
// scorecard UI's search-as-you-type box.
package coursehandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/strideclub/scorecard/internal/observability/attr"

	courseservice "github.com/strideclub/scorecard/app/modules/course/application"
)

// Handlers serves the course catalog HTTP surface.
type Handlers struct {
	courses *courseservice.CourseService
	logger  *slog.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(courses *courseservice.CourseService, logger *slog.Logger) *Handlers {
	return &Handlers{courses: courses, logger: logger}
}

// Search answers GET /courses?q=. Short queries return an empty list so
// typing clients never see errors mid-keystroke.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	courses, err := h.courses.LookupCourses(r.Context(), query)
	if err != nil {
		if errors.Is(err, courseservice.ErrRateLimited) {
			http.Error(w, err.Error(), http.StatusTooManyRequests)
			return
		}
		h.logger.ErrorContext(r.Context(), "Course search failed",
			attr.String("query", query),
			attr.Error(err),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(courses); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response", attr.Error(err))
	}
}
