package coursedb

import (
	"context"

	"github.com/google/uuid"

	coursetypes "github.com/strideclub/scorecard/app/modules/course/domain"
)

// Repository is the course catalog storage surface.
type Repository interface {
	// SearchByName returns catalog entries whose name or location
	// matches the query, case-insensitively, up to limit.
	SearchByName(ctx context.Context, query string, limit int) ([]coursetypes.Course, error)

	// GetByID returns one course or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*coursetypes.Course, error)

	// Upsert inserts or replaces a catalog entry.
	Upsert(ctx context.Context, course coursetypes.Course) error
}
