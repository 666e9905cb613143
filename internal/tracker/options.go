package tracker

import "time"

// Option configures a Tracker at construction time.
type Option func(*Tracker)

// WithClock overrides the time source. Tests use it to pin "now".
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithLocation sets the location used for calendar-day boundaries in
// reports. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		t.loc = loc
	}
}
