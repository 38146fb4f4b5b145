package courseservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/strideclub/scorecard/internal/observability/attr"
	"github.com/strideclub/scorecard/internal/observability/metrics/scorecardmetrics"

	coursetypes "github.com/strideclub/scorecard/app/modules/course/domain"
	coursedb "github.com/strideclub/scorecard/app/modules/course/infrastructure/repositories"
)

const (
	// minQueryLength keeps search-as-you-type clients from hitting the
	// catalog with one-character queries.
	minQueryLength = 2
	searchLimit    = 10
)

// ErrRateLimited is returned when catalog searches arrive faster than
// the configured budget allows.
var ErrRateLimited = errors.New("course lookup rate limit exceeded")

// CourseService answers course catalog lookups for the scorecard UI.
type CourseService struct {
	repo    coursedb.Repository
	logger  *slog.Logger
	metrics scorecardmetrics.ScorecardMetrics
	tracer  trace.Tracer
	limiter *rate.Limiter
}

// NewCourseService creates a new CourseService. A nil limiter disables
// rate limiting.
func NewCourseService(
	repo coursedb.Repository,
	logger *slog.Logger,
	metrics scorecardmetrics.ScorecardMetrics,
	tracer trace.Tracer,
	limiter *rate.Limiter,
) *CourseService {
	return &CourseService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		limiter: limiter,
	}
}

// LookupCourses searches the catalog by free-text query. Queries shorter
// than two characters return an empty result without touching storage;
// superseded queries are the caller's concern, not tracked here.
func (s *CourseService) LookupCourses(ctx context.Context, query string) ([]coursetypes.Course, error) {
	ctx, span := s.tracer.Start(ctx, "LookupCourses", trace.WithAttributes(
		attribute.String("query", query),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "LookupCourses")

	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return []coursetypes.Course{}, nil
	}

	if s.limiter != nil && !s.limiter.Allow() {
		s.metrics.RecordOperationFailure(ctx, "LookupCourses")
		return nil, ErrRateLimited
	}

	courses, err := s.repo.SearchByName(ctx, query, searchLimit)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "LookupCourses")
		s.logger.ErrorContext(ctx, "Course lookup failed",
			attr.String("query", query),
			attr.Error(err),
		)
		span.RecordError(err)
		return nil, err
	}

	s.metrics.RecordCourseLookup(ctx, len(courses))
	s.logger.DebugContext(ctx, "Course lookup completed",
		attr.String("query", query),
		attr.Int("results", len(courses)),
	)
	return courses, nil
}

// GetCourse fetches one catalog entry by ID for resolution onto a
// scorecard.
func (s *CourseService) GetCourse(ctx context.Context, id string) (*coursetypes.Course, error) {
	ctx, span := s.tracer.Start(ctx, "GetCourse")
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "GetCourse")

	parsed, err := parseCourseID(id)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "GetCourse")
		return nil, err
	}

	course, err := s.repo.GetByID(ctx, parsed)
	if err != nil {
		if !errors.Is(err, coursedb.ErrNotFound) {
			s.metrics.RecordOperationFailure(ctx, "GetCourse")
			span.RecordError(err)
		}
		return nil, err
	}
	return course, nil
}

// SeedCatalog upserts a batch of catalog entries, assigning IDs to new
// courses. Used by catalog bootstrap/import jobs.
func (s *CourseService) SeedCatalog(ctx context.Context, courses []coursetypes.Course) error {
	ctx, span := s.tracer.Start(ctx, "SeedCatalog")
	defer span.End()

	for i := range courses {
		if courses[i].ID == uuid.Nil {
			courses[i].ID = uuid.New()
		}
		if err := s.repo.Upsert(ctx, courses[i]); err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to seed course %q: %w", courses[i].Name, err)
		}
	}

	s.logger.InfoContext(ctx, "Course catalog seeded",
		attr.Int("courses", len(courses)),
	)
	return nil
}
