// Package timerange resolves the time window a diagnostic run covers.
package timerange

import (
	"fmt"
	"time"
)

const dateTimeFormat = "2006-01-02 15:04:05"

// DateTimeRange is the resolved time window, in epoch milliseconds.
// StartTime is always <= EndTime. Location is used only when rendering
// extracted timestamps for display.
type DateTimeRange struct {
	StartTime int64
	EndTime   int64
	Location  *time.Location
}

// Resolve builds the range from the command line arguments. When both start
// and end are given they override the duration; providing only one of them
// is a usage error.
func Resolve(durationSecs uint64, start, end string, loc *time.Location) (DateTimeRange, error) {
	switch {
	case start != "" && end != "":
		startTime, err := parseDateTime(start, loc)
		if err != nil {
			return DateTimeRange{}, err
		}
		endTime, err := parseDateTime(end, loc)
		if err != nil {
			return DateTimeRange{}, err
		}
		if startTime > endTime {
			return DateTimeRange{}, fmt.Errorf("start time %q is after end time %q", start, end)
		}
		return DateTimeRange{StartTime: startTime, EndTime: endTime, Location: loc}, nil
	case start == "" && end == "":
		endTime := time.Now().UnixMilli()
		startTime := endTime - int64(durationSecs)*1000
		return DateTimeRange{StartTime: startTime, EndTime: endTime, Location: loc}, nil
	default:
		return DateTimeRange{}, fmt.Errorf("both start and end arguments must be provided")
	}
}

func parseDateTime(s string, loc *time.Location) (int64, error) {
	t, err := time.ParseInLocation(dateTimeFormat, s, loc)
	if err != nil {
		return 0, fmt.Errorf("failed to parse date time %q: %w", s, err)
	}
	return t.UnixMilli(), nil
}
