package bench

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stridebench/matrix"
)

// ErrIterations indicates a test case with iterations <= 0.
var ErrIterations = errors.New("bench: iterations must be > 0")

// TestCase is one benchmark scenario. Treat it as immutable once built.
type TestCase struct {
	Name       string
	Spec       matrix.Spec
	Iterations int
}

// Validate checks the spec and the iteration count.
func (tc TestCase) Validate() error {
	if err := tc.Spec.Validate(); err != nil {
		return fmt.Errorf("TestCase %q: %w", tc.Name, err)
	}
	if tc.Iterations <= 0 {
		return fmt.Errorf("TestCase %q: %w", tc.Name, ErrIterations)
	}

	return nil
}

// Scenario names used by Suite.
const (
	NameAligned    = "Row vs column major"
	nameMisaligned = "Misaligned start (+%d elements)"
)

// MisalignedName returns the title of the misaligned case for an offset.
func MisalignedName(offset int) string {
	return fmt.Sprintf(nameMisaligned, offset)
}

// Suite builds the default scenario list for a resolved shape: the aligned
// comparison, followed (when misalign > 0) by the same shape shifted by
// misalign padding elements. spec.Offset is ignored.
func Suite(spec matrix.Spec, iterations, misalign int) []TestCase {
	cases := []TestCase{{
		Name:       NameAligned,
		Spec:       spec.WithOffset(0),
		Iterations: iterations,
	}}
	if misalign > 0 {
		cases = append(cases, TestCase{
			Name:       MisalignedName(misalign),
			Spec:       spec.WithOffset(misalign),
			Iterations: iterations,
		})
	}

	return cases
}
