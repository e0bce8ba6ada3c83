package clock

import "time"

// Clock abstracts "now" so services stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

// Fixed returns a Clock frozen at t. Set advances it manually, which lets
// tests walk through a working day step by step.
func Fixed(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

type FixedClock struct {
	t time.Time
}

func (f *FixedClock) Now() time.Time {
	return f.t
}

func (f *FixedClock) Set(t time.Time) {
	f.t = t
}
