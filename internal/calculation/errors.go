package calculation

import (
	"errors"

	"github.com/cottington/wealth-calculator/internal/domain"
)

// ErrInvalidParameter is wrapped by every input rejected before a run starts.
var ErrInvalidParameter = domain.ErrInvalidParameter

// ErrUnsolvableGoal is returned when the unit escalating contribution series
// accumulates to nothing, so no starting contribution can reach the target.
var ErrUnsolvableGoal = errors.New("goal cannot be reached by any contribution")
