package bench

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/stridebench/matrix"
	"github.com/katalvlaran/stridebench/report"
	"github.com/katalvlaran/stridebench/timer"
	"github.com/katalvlaran/stridebench/traverse"
)

// orders is the measurement sequence of every case: row-major first.
var orders = [2]traverse.Order{traverse.RowMajorOrder, traverse.ColMajorOrder}

// Runner executes test cases one at a time.
type Runner struct {
	log     logr.Logger
	clock   timer.Clock
	bufOpts []matrix.Option
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the diagnostics sink (default: discard).
func WithLogger(log logr.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithClock replaces the stopwatch time source, for tests.
func WithClock(c timer.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithBufferOptions forwards options to matrix.NewBuffer.
func WithBufferOptions(opts ...matrix.Option) Option {
	return func(r *Runner) { r.bufOpts = append(r.bufOpts, opts...) }
}

// NewRunner returns a Runner with the given options applied.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{log: logr.Discard()}
	for _, o := range opts {
		o(r)
	}

	return r
}

// Run measures one case: row-major first, then column-major, each timed
// around traverse.Run on a buffer owned by this call.
func (r *Runner) Run(tc TestCase) (report.Result, error) {
	if err := tc.Validate(); err != nil {
		return report.Result{}, err
	}
	buf, err := matrix.NewBuffer(tc.Spec, r.bufOpts...)
	if err != nil {
		return report.Result{}, fmt.Errorf("Runner.Run %q: %w", tc.Name, err)
	}

	sw := timer.New(timer.WithClock(r.clock))
	var ms [2]float64
	var acc [2]int32
	for k, order := range orders {
		var runErr error
		ms[k] = sw.Measure(func() { acc[k], runErr = traverse.Run(buf, order, tc.Iterations) })
		if runErr != nil {
			return report.Result{}, fmt.Errorf("Runner.Run %q: %w", tc.Name, runErr)
		}
	}

	opts := matrix.NewOptions(r.bufOpts...)
	r.log.V(1).Info("case done",
		"name", tc.Name,
		"buffer", buf.String(),
		"aligned", opts.Aligned(),
		"cacheLine", opts.CacheLine(),
		"misalignBytes", buf.Misalignment(),
		"rowStride", traverse.Stride(buf, traverse.RowMajorOrder),
		"colStride", traverse.Stride(buf, traverse.ColMajorOrder),
		"iterations", tc.Iterations,
		"rowAcc", acc[0],
		"colAcc", acc[1],
		"rowMS", ms[0],
		"colMS", ms[1])

	return report.Result{
		Name:      tc.Name,
		Rows:      tc.Spec.Rows,
		Cols:      tc.Spec.Cols,
		RowTimeMS: ms[0],
		ColTimeMS: ms[1],
	}, nil
}

// RunAll runs cases in order and stops at the first failure; results of the
// cases before it are discarded along with the error.
func (r *Runner) RunAll(cases []TestCase) ([]report.Result, error) {
	results := make([]report.Result, 0, len(cases))
	for _, tc := range cases {
		res, err := r.Run(tc)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}
