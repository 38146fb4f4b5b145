// Package testutils generates domain fixtures for tests.
package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	coursetypes "github.com/strideclub/scorecard/app/modules/course/domain"
	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

// TestDataGenerator provides methods to create test data. Seed it for
// reproducible fixtures.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new generator with an optional seed.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}
	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// GenerateCourse builds a catalog entry with the given hole count, full
// yardage maps, and ratings for every tee.
func (g *TestDataGenerator) GenerateCourse(holeCount int) coursetypes.Course {
	tees := []scorecardtypes.TeeColor{
		scorecardtypes.TeeBlack,
		scorecardtypes.TeeBlue,
		scorecardtypes.TeeWhite,
		scorecardtypes.TeeGold,
		scorecardtypes.TeeRed,
	}

	course := coursetypes.Course{
		ID:       uuid.New(),
		Name:     g.faker.City() + " Golf Club",
		Location: g.faker.City() + ", " + g.faker.StateAbr(),
		Ratings:  map[scorecardtypes.TeeColor]coursetypes.TeeRating{},
	}

	for _, tee := range tees {
		course.Ratings[tee] = coursetypes.TeeRating{
			Rating: float64(g.faker.IntRange(670, 760)) / 10,
			Slope:  g.faker.IntRange(110, 145),
		}
	}

	pars := []int{4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 3, 5, 4, 4, 4, 3, 5}
	for n := 1; n <= holeCount; n++ {
		par := pars[(n-1)%18]
		hole := coursetypes.CourseHole{
			Number:  n,
			Par:     par,
			Yardage: map[scorecardtypes.TeeColor]int{},
		}
		base := map[int]int{3: 150, 4: 380, 5: 520}[par]
		for i, tee := range tees {
			// Longer tees first, stepped down toward the reds.
			hole.Yardage[tee] = base + (2-i)*25 + g.faker.IntRange(-10, 10)
		}
		course.TotalPar += par
		course.Holes = append(course.Holes, hole)
	}
	return course
}

// GenerateHoles builds a hole array with scores, putts, and fairway
// results filled in.
func (g *TestDataGenerator) GenerateHoles(count int, startHole int) []scorecardtypes.HoleRecord {
	pars := []int{4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 3, 5, 4, 4, 4, 3, 5}

	holes := make([]scorecardtypes.HoleRecord, 0, count)
	for i := 0; i < count; i++ {
		number := startHole + i
		par := pars[(number-1)%18]
		score := par + g.faker.IntRange(-1, 3)
		putts := g.faker.IntRange(1, 3)

		record := scorecardtypes.HoleRecord{
			HoleNumber: number,
			Par:        par,
			Score:      &score,
			Putts:      &putts,
		}
		if par > 3 {
			results := []scorecardtypes.FairwayResult{
				scorecardtypes.FairwayHit,
				scorecardtypes.FairwayLeft,
				scorecardtypes.FairwayRight,
			}
			r := results[g.faker.IntRange(0, 2)]
			record.FairwayResult = &r
		} else {
			na := scorecardtypes.FairwayNotApplicable
			record.FairwayResult = &na
		}
		holes = append(holes, record)
	}
	return holes
}
