package ports

import "time"

// Clock abstracts the current time so tests can pin timestamps.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns a Clock backed by the ambient system time.
func SystemClock() Clock { return ClockFunc(time.Now) }
