package usecases

import "time"

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	// whole seconds, like the unix timestamps the times are reported in
	return time.Now().Truncate(time.Second)
}

type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
