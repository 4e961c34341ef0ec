package models

// ShiftPeriod represents the nursing shift a visit was registered under
type ShiftPeriod string

const (
	PeriodMorning   ShiftPeriod = "morning"
	PeriodAfternoon ShiftPeriod = "afternoon"
	PeriodNight     ShiftPeriod = "night"
	PeriodDay       ShiftPeriod = "day"
	PeriodOvernight ShiftPeriod = "overnight"
)

// PeriodOrder is the fixed sequence the period series is reported in.
var PeriodOrder = []ShiftPeriod{
	PeriodMorning,
	PeriodAfternoon,
	PeriodNight,
	PeriodDay,
	PeriodOvernight,
}

// PeriodRank returns the position of a period label in the canonical
// sequence, or len(PeriodOrder) for labels outside it so they sort last.
func PeriodRank(label string) int {
	for i, p := range PeriodOrder {
		if string(p) == label {
			return i
		}
	}
	return len(PeriodOrder)
}
