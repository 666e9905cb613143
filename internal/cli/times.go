package cli

import (
	"fmt"
	"time"
)

// timeLayouts are the accepted input formats for time flags, tried in
// order. Layouts without a zone are interpreted in the App's location.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimeArg(input string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}
	for _, layout := range timeLayouts[1:] {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, expected one of: RFC3339, YYYY-MM-DD HH:MM[:SS], YYYY-MM-DD", input)
}

// dayBounds returns the start of the calendar day containing t and the
// start of the next day, in loc.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc),
		time.Date(year, month, day+1, 0, 0, 0, 0, loc)
}
