package handlers

import "time"

const dateLayout = "2006-01-02"

// parseDateParam interprets a YYYY-MM-DD parameter as a calendar day in
// the given location. Parsing in UTC and converting afterwards would
// shift the day for deployments west of UTC.
func parseDateParam(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(dateLayout, value, loc)
}
