package coursedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursetypes "github.com/strideclub/scorecard/app/modules/course/domain"
	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

// Course is the persistence model for a course catalog entry. Per-hole
// definitions and per-tee ratings are stored as JSONB documents; search
// only ever touches name and location.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID        uuid.UUID                                         `bun:"id,pk,type:uuid"`
	Name      string                                            `bun:"name,notnull"`
	Location  string                                            `bun:"location"`
	TotalPar  int                                               `bun:"total_par,notnull"`
	Ratings   map[scorecardtypes.TeeColor]coursetypes.TeeRating `bun:"ratings,type:jsonb"`
	Holes     []coursetypes.CourseHole                          `bun:"holes,type:jsonb"`
	CreatedAt time.Time                                         `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time                                         `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func (c *Course) toDomain() coursetypes.Course {
	return coursetypes.Course{
		ID:       c.ID,
		Name:     c.Name,
		Location: c.Location,
		TotalPar: c.TotalPar,
		Ratings:  c.Ratings,
		Holes:    c.Holes,
	}
}

func fromDomain(course coursetypes.Course) Course {
	return Course{
		ID:       course.ID,
		Name:     course.Name,
		Location: course.Location,
		TotalPar: course.TotalPar,
		Ratings:  course.Ratings,
		Holes:    course.Holes,
	}
}
