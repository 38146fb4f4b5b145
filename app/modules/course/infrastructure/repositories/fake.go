package coursedb

import (
	"context"

	"github.com/google/uuid"

	coursetypes "github.com/strideclub/scorecard/app/modules/course/domain"
)

// FakeRepository is a programmable in-memory Repository for tests. Each
// method falls back to the Courses slice when its Func field is unset.
type FakeRepository struct {
	Courses []coursetypes.Course

	SearchByNameFunc func(ctx context.Context, query string, limit int) ([]coursetypes.Course, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*coursetypes.Course, error)
	UpsertFunc       func(ctx context.Context, course coursetypes.Course) error
}

func (f *FakeRepository) SearchByName(ctx context.Context, query string, limit int) ([]coursetypes.Course, error) {
	if f.SearchByNameFunc != nil {
		return f.SearchByNameFunc(ctx, query, limit)
	}
	out := make([]coursetypes.Course, 0, limit)
	for _, c := range f.Courses {
		if len(out) == limit {
			break
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *FakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*coursetypes.Course, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	for i := range f.Courses {
		if f.Courses[i].ID == id {
			course := f.Courses[i]
			return &course, nil
		}
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) Upsert(ctx context.Context, course coursetypes.Course) error {
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, course)
	}
	for i := range f.Courses {
		if f.Courses[i].ID == course.ID {
			f.Courses[i] = course
			return nil
		}
	}
	f.Courses = append(f.Courses, course)
	return nil
}

var _ Repository = (*FakeRepository)(nil)
