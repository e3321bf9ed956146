package config

import (
	"errors"
	"fmt"
)

// ErrConfig is the root of every configuration failure.
var ErrConfig = errors.New("config")

var (
	// ErrNonPositive indicates a requested dimension <= 0.
	ErrNonPositive = fmt.Errorf("%w: dimension must be positive", ErrConfig)

	// ErrConflictingFlags indicates --size combined with --row or --col.
	ErrConflictingFlags = fmt.Errorf("%w: use either --size or --row/--col, not both", ErrConfig)

	// ErrInvalidFlag indicates a flag the parser rejected: a value that is not a
	// base-10 integer, an unknown flag, or a missing value.
	ErrInvalidFlag = fmt.Errorf("%w: invalid flag", ErrConfig)

	// ErrTooLarge indicates a matrix (plus padding) above MaxElements elements.
	ErrTooLarge = fmt.Errorf("%w: matrix too large", ErrConfig)

	// ErrIterations indicates an iteration count <= 0.
	ErrIterations = fmt.Errorf("%w: iterations must be positive", ErrConfig)

	// ErrMisalign indicates a negative misalignment offset.
	ErrMisalign = fmt.Errorf("%w: misalign must be >= 0", ErrConfig)
)
