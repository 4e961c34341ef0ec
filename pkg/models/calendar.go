package models

import (
	"time"
)

// HoursPerDay is the number of slots in a full hourly histogram.
const HoursPerDay = 24

// DateLayout is the wire format of every date parameter and date field.
const DateLayout = "2006-01-02"

// WeekdayLabels maps weekday index 0=Sunday..6=Saturday to a display label.
var WeekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayIndex returns the weekday index of a date, 0=Sunday..6=Saturday.
func WeekdayIndex(t time.Time) int {
	return int(t.Weekday())
}

// WeekdayLabel returns the display label of a date's weekday.
func WeekdayLabel(t time.Time) string {
	return WeekdayLabels[WeekdayIndex(t)]
}

// HourCount is one slot of an hourly histogram.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// EmptyHourHistogram materializes the 24-slot zero-fill skeleton so hours
// with no matching records still render as an explicit zero.
func EmptyHourHistogram() []HourCount {
	slots := make([]HourCount, HoursPerDay)
	for h := range slots {
		slots[h].Hour = h
	}
	return slots
}
