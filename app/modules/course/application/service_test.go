package courseservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/time/rate"

	"github.com/strideclub/scorecard/internal/observability"
	"github.com/strideclub/scorecard/internal/observability/metrics/scorecardmetrics"

	coursetypes "github.com/strideclub/scorecard/app/modules/course/domain"
	coursedb "github.com/strideclub/scorecard/app/modules/course/infrastructure/repositories"
)

func newTestCourseService(repo coursedb.Repository, limiter *rate.Limiter) *CourseService {
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewCourseService(repo, observability.NoOpLogger, scorecardmetrics.NoOpMetrics{}, tracer, limiter)
}

func catalogCourse(name string) coursetypes.Course {
	return coursetypes.Course{
		ID:       uuid.New(),
		Name:     name,
		TotalPar: 72,
	}
}

func TestLookupCourses_ShortQuerySkipsStorage(t *testing.T) {
	repo := &coursedb.FakeRepository{
		SearchByNameFunc: func(ctx context.Context, query string, limit int) ([]coursetypes.Course, error) {
			t.Fatalf("SearchByName called for query %q", query)
			return nil, nil
		},
	}
	svc := newTestCourseService(repo, nil)

	for _, q := range []string{"", "p", "  p  "} {
		got, err := svc.LookupCourses(context.Background(), q)
		if err != nil {
			t.Fatalf("LookupCourses(%q) error = %v", q, err)
		}
		if len(got) != 0 {
			t.Errorf("LookupCourses(%q) = %d results, want 0", q, len(got))
		}
	}
}

func TestLookupCourses_TrimsAndSearches(t *testing.T) {
	var gotQuery string
	var gotLimit int
	repo := &coursedb.FakeRepository{
		SearchByNameFunc: func(ctx context.Context, query string, limit int) ([]coursetypes.Course, error) {
			gotQuery, gotLimit = query, limit
			return []coursetypes.Course{catalogCourse("Pebble Beach")}, nil
		},
	}
	svc := newTestCourseService(repo, nil)

	got, err := svc.LookupCourses(context.Background(), "  pebble ")
	if err != nil {
		t.Fatalf("LookupCourses() error = %v", err)
	}
	if gotQuery != "pebble" {
		t.Errorf("query passed to repo = %q, want pebble", gotQuery)
	}
	if gotLimit != searchLimit {
		t.Errorf("limit passed to repo = %d, want %d", gotLimit, searchLimit)
	}
	if len(got) != 1 || got[0].Name != "Pebble Beach" {
		t.Errorf("results = %+v, want one Pebble Beach", got)
	}
}

func TestLookupCourses_RateLimited(t *testing.T) {
	repo := &coursedb.FakeRepository{
		Courses: []coursetypes.Course{catalogCourse("Pebble Beach")},
	}
	// One token, no refill within the test.
	svc := newTestCourseService(repo, rate.NewLimiter(rate.Limit(0.001), 1))

	if _, err := svc.LookupCourses(context.Background(), "pebble"); err != nil {
		t.Fatalf("first lookup error = %v", err)
	}
	_, err := svc.LookupCourses(context.Background(), "pebble")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("second lookup error = %v, want %v", err, ErrRateLimited)
	}
}

func TestLookupCourses_RepositoryErrorSurfaces(t *testing.T) {
	wantErr := errors.New("connection reset")
	repo := &coursedb.FakeRepository{
		SearchByNameFunc: func(ctx context.Context, query string, limit int) ([]coursetypes.Course, error) {
			return nil, wantErr
		},
	}
	svc := newTestCourseService(repo, nil)

	_, err := svc.LookupCourses(context.Background(), "pebble")
	if !errors.Is(err, wantErr) {
		t.Errorf("LookupCourses() error = %v, want %v", err, wantErr)
	}
}

func TestGetCourse(t *testing.T) {
	course := catalogCourse("Pebble Beach")
	repo := &coursedb.FakeRepository{Courses: []coursetypes.Course{course}}
	svc := newTestCourseService(repo, nil)

	got, err := svc.GetCourse(context.Background(), course.ID.String())
	if err != nil {
		t.Fatalf("GetCourse() error = %v", err)
	}
	if got.ID != course.ID || got.Name != course.Name {
		t.Errorf("GetCourse() = %+v, want %+v", got, course)
	}

	_, err = svc.GetCourse(context.Background(), uuid.NewString())
	if !errors.Is(err, coursedb.ErrNotFound) {
		t.Errorf("GetCourse(unknown) error = %v, want %v", err, coursedb.ErrNotFound)
	}

	_, err = svc.GetCourse(context.Background(), "not-a-uuid")
	if err == nil {
		t.Error("GetCourse(malformed) error = nil, want parse failure")
	}
}

func TestSeedCatalog(t *testing.T) {
	repo := &coursedb.FakeRepository{}
	svc := newTestCourseService(repo, nil)

	courses := []coursetypes.Course{
		catalogCourse("Pebble Beach"),
		{Name: "Muni North", TotalPar: 70},
	}
	if err := svc.SeedCatalog(context.Background(), courses); err != nil {
		t.Fatalf("SeedCatalog() error = %v", err)
	}
	if len(repo.Courses) != 2 {
		t.Fatalf("seeded %d courses, want 2", len(repo.Courses))
	}
	for _, c := range repo.Courses {
		if c.ID == uuid.Nil {
			t.Errorf("course %q seeded without an ID", c.Name)
		}
	}

	repo.UpsertFunc = func(ctx context.Context, course coursetypes.Course) error {
		return errors.New("write failed")
	}
	if err := svc.SeedCatalog(context.Background(), courses[:1]); err == nil {
		t.Error("SeedCatalog() error = nil, want upsert failure")
	}
}
