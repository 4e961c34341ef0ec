package services

import (
	"errors"
	"fmt"
	"time"

	"erpulse/backend/pkg/models"
)

// WindowMode selects how a reference date expands into a date range.
type WindowMode string

const (
	WindowSingleDay    WindowMode = "single-day"
	WindowTrailingWeek WindowMode = "trailing-7-day"
)

// trailingWeekDays is the span of the trailing window including the
// reference date itself.
const trailingWeekDays = 7

// ErrInvalidInput marks caller-supplied parameters the engine cannot use:
// unparseable dates or an unsupported window mode. Handlers map it to a
// client error instead of a server failure.
var ErrInvalidInput = errors.New("invalid input")

// TimeWindow is a concrete inclusive date range plus the fully materialized
// list of dates, the zero-fill skeleton every downstream count is built on.
type TimeWindow struct {
	Mode  WindowMode
	Start time.Time
	End   time.Time
	Dates []time.Time
}

// Contains reports whether a date falls inside the window.
func (w TimeWindow) Contains(d time.Time) bool {
	d = midnightUTC(d)
	return !d.Before(w.Start) && !d.After(w.End)
}

// ComputeWindow derives the concrete date range for a reference date and
// mode. The trailing-7-day window is [reference-6, reference] inclusive,
// computed with calendar arithmetic so month and year rollovers hold.
func ComputeWindow(reference time.Time, mode WindowMode) (TimeWindow, error) {
	ref := midnightUTC(reference)
	var start time.Time
	switch mode {
	case WindowSingleDay:
		start = ref
	case WindowTrailingWeek:
		start = ref.AddDate(0, 0, -(trailingWeekDays - 1))
	default:
		return TimeWindow{}, fmt.Errorf("%w: unsupported window mode %q", ErrInvalidInput, mode)
	}

	w := TimeWindow{Mode: mode, Start: start, End: ref}
	for d := start; !d.After(ref); d = d.AddDate(0, 0, 1) {
		w.Dates = append(w.Dates, d)
	}
	return w, nil
}

// parseDate parses a YYYY-MM-DD wire date into a UTC midnight time.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, s)
	}
	return t, nil
}

// midnightUTC strips the clock and zone from a timestamp, leaving the
// calendar date the record store keys on.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
