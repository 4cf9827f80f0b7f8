package service

import "time"

// Clock provides the current time in the library's time zone.
type Clock interface {
	// Now returns the current instant in the library's location.
	Now() time.Time

	// Today returns the current calendar date in the library's location as midnight UTC.
	Today() time.Time
}
