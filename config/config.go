package config

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/stridebench/matrix"
)

const (
	// DefaultDimension is used for any dimension the operator did not request.
	DefaultDimension = 1000

	// DefaultIterations is the number of full passes per traversal.
	DefaultIterations = 1

	// DefaultMisalign is the padding, in elements, of the misaligned test case.
	DefaultMisalign = 1

	// MaxElements caps Offset + Rows*Cols of any buffer a run allocates
	// (1<<30 int32 elements, 4 GiB).
	MaxElements = 1 << 30
)

// Request carries the parsed flags. A nil dimension pointer means the flag
// was not given.
type Request struct {
	Size *int
	Row  *int
	Col  *int

	Iterations int
	Misalign   int
}

// Config is the resolved, immutable run configuration. It is passed by value.
type Config struct {
	Spec       matrix.Spec // offset is always 0 here; test cases add their own
	Iterations int
	Misalign   int
}

// Resolver turns a Request into a Config.
type Resolver struct {
	log logr.Logger
}

// NewResolver returns a Resolver that reports diagnostics to log.
func NewResolver(log logr.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve validates the whole request.
func (r *Resolver) Resolve(req Request) (Config, error) {
	spec, err := r.Spec(req)
	if err != nil {
		return Config{}, err
	}
	if req.Iterations <= 0 {
		return Config{}, fmt.Errorf("%w: --iterations=%d", ErrIterations, req.Iterations)
	}
	if req.Misalign < 0 {
		return Config{}, fmt.Errorf("%w: --misalign=%d", ErrMisalign, req.Misalign)
	}
	if req.Misalign > MaxElements-spec.Elements() {
		return Config{}, fmt.Errorf("%w: %s + %d padding exceeds %d elements", ErrTooLarge, spec, req.Misalign, MaxElements)
	}

	return Config{Spec: spec, Iterations: req.Iterations, Misalign: req.Misalign}, nil
}

// Spec resolves only the dimensions. Shapes above MaxElements fail with
// ErrTooLarge.
func (r *Resolver) Spec(req Request) (matrix.Spec, error) {
	spec, err := r.dims(req)
	if err != nil {
		return matrix.Spec{}, err
	}
	if spec.Rows > MaxElements/spec.Cols { // Rows*Cols > MaxElements without overflowing
		return matrix.Spec{}, fmt.Errorf("%w: %s exceeds %d elements", ErrTooLarge, spec, MaxElements)
	}

	return spec, nil
}

// dims applies the flag rules; both returned dimensions are > 0 on success.
func (r *Resolver) dims(req Request) (matrix.Spec, error) {
	switch {
	case req.Size != nil:
		if *req.Size <= 0 {
			return matrix.Spec{}, fmt.Errorf("%w: --size=%d", ErrNonPositive, *req.Size)
		}
		if req.Row != nil || req.Col != nil {
			return matrix.Spec{}, ErrConflictingFlags
		}
		return matrix.Spec{Rows: *req.Size, Cols: *req.Size}, nil

	case req.Row != nil && req.Col != nil:
		if *req.Row <= 0 || *req.Col <= 0 {
			return matrix.Spec{}, fmt.Errorf("%w: --row=%d --col=%d", ErrNonPositive, *req.Row, *req.Col)
		}
		return matrix.Spec{Rows: *req.Row, Cols: *req.Col}, nil

	case req.Row != nil || req.Col != nil:
		spec := matrix.Spec{Rows: DefaultDimension, Cols: DefaultDimension}
		name, v := "--row", req.Row
		if v == nil {
			name, v = "--col", req.Col
		}
		if *v <= 0 {
			return matrix.Spec{}, fmt.Errorf("%w: %s=%d", ErrNonPositive, name, *v)
		}
		if req.Row != nil {
			spec.Rows = *req.Row
		} else {
			spec.Cols = *req.Col
		}
		r.log.V(1).Info("missing dimension falls back to default", "given", name, "rows", spec.Rows, "cols", spec.Cols)
		return spec, nil

	default:
		r.log.Info("no dimensions given, using defaults", "rows", DefaultDimension, "cols", DefaultDimension)
		return matrix.Spec{Rows: DefaultDimension, Cols: DefaultDimension}, nil
	}
}
