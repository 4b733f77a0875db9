package league

import (
	"errors"
	"fmt"
)

// ErrMissingData is matched by errors.Is for every MissingDataError.
var ErrMissingData = errors.New("missing roster data")

// MissingDataError reports a season or team that is not present in the roster.
type MissingDataError struct {
	Season string
	Team   string
}

func (e *MissingDataError) Error() string {
	if e.Team == "" {
		return fmt.Sprintf("season %q: %v", e.Season, ErrMissingData)
	}
	return fmt.Sprintf("team %q in season %q: %v", e.Team, e.Season, ErrMissingData)
}

func (e *MissingDataError) Is(target error) bool {
	return target == ErrMissingData
}
