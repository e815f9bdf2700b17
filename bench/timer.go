package bench

import "time"

// Stopwatch measures one interval on the monotonic clock.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
}

// Start resets the stopwatch and begins timing.
func (s *Stopwatch) Start() {
	s.elapsed = 0
	s.start = time.Now()
}

// Stop ends timing and returns the elapsed interval.
func (s *Stopwatch) Stop() time.Duration {
	s.elapsed = time.Since(s.start)
	return s.elapsed
}

// Elapsed returns the interval recorded by the last Stop.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Measure runs fn and returns how long it took.
func Measure(fn func()) time.Duration {
	var sw Stopwatch
	sw.Start()
	fn()
	return sw.Stop()
}

// Micros converts d to fractional microseconds, the unit of the report.
func Micros(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e3
}
