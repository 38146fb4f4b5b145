package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursetypes "github.com/strideclub/scorecard/app/modules/course/domain"
)

// CourseDBImpl implements Repository on bun.
type CourseDBImpl struct {
	DB *bun.DB
}

func (db *CourseDBImpl) SearchByName(ctx context.Context, query string, limit int) ([]coursetypes.Course, error) {
	var models []Course
	pattern := "%" + query + "%"

	err := db.DB.NewSelect().
		Model(&models).
		Where("name ILIKE ? OR location ILIKE ?", pattern, pattern).
		OrderExpr("name ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search courses for %q: %w", query, err)
	}

	courses := make([]coursetypes.Course, 0, len(models))
	for i := range models {
		courses = append(courses, models[i].toDomain())
	}
	return courses, nil
}

func (db *CourseDBImpl) GetByID(ctx context.Context, id uuid.UUID) (*coursetypes.Course, error) {
	var model Course
	err := db.DB.NewSelect().
		Model(&model).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch course %s: %w", id, err)
	}

	course := model.toDomain()
	return &course, nil
}

func (db *CourseDBImpl) Upsert(ctx context.Context, course coursetypes.Course) error {
	model := fromDomain(course)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}

	_, err := db.DB.NewInsert().
		Model(&model).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name, location = EXCLUDED.location, total_par = EXCLUDED.total_par, ratings = EXCLUDED.ratings, holes = EXCLUDED.holes, updated_at = now()").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert course %q: %w", course.Name, err)
	}
	return nil
}

var _ Repository = (*CourseDBImpl)(nil)
