// Package timer measures elapsed time around a benchmark run.
//
// Stopwatch reads time.Now, whose values carry Go's monotonic clock reading;
// Time.Sub uses that reading, so wall-clock adjustments during a measurement
// cannot corrupt the result.
package timer

import "time"

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces time.Now as the time source. A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(s *Stopwatch) {
		if c != nil {
			s.now = c
		}
	}
}

// Stopwatch records a start and a stop timestamp.
// The zero value is not usable; call New.
type Stopwatch struct {
	now     Clock
	start   time.Time
	stop    time.Time
	started bool
	stopped bool
}

// New returns a stopped Stopwatch reading the monotonic clock.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{now: time.Now}
	for _, o := range opts {
		o(s)
	}

	return s
}

// Start records the start timestamp and clears any previous stop.
func (s *Stopwatch) Start() {
	s.start = s.now()
	s.started, s.stopped = true, false
}

// Stop records the stop timestamp. Stop without Start is a no-op.
func (s *Stopwatch) Stop() {
	if !s.started {
		return
	}
	s.stop = s.now()
	s.stopped = true
}

// Duration returns stop-start, or now-start while running, or 0 before Start.
// Never negative.
func (s *Stopwatch) Duration() time.Duration {
	if !s.started {
		return 0
	}
	end := s.stop
	if !s.stopped {
		end = s.now()
	}
	if d := end.Sub(s.start); d > 0 {
		return d
	}

	return 0
}

// Elapsed returns Duration in milliseconds as a real number.
func (s *Stopwatch) Elapsed() float64 {
	return Milliseconds(s.Duration())
}

// Measure runs fn between Start and Stop and returns the elapsed milliseconds.
func (s *Stopwatch) Measure(fn func()) float64 {
	s.Start()
	fn()
	s.Stop()

	return s.Elapsed()
}

// Milliseconds converts d to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
