package courseservice

import (
	"fmt"

	"github.com/google/uuid"
)

func parseCourseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid course id %q: %w", id, err)
	}
	return parsed, nil
}
