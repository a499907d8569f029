package syncer

import "time"

type systemClock struct{}

// Now returns current UTC time truncated to seconds.
func (c systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
