package repository

import (
	"context"
	"time"

	"erpulse/backend/pkg/models"
)

// VisitOutcomeRow is one visit's raw triage and leave-status codes, one row
// per non-cancelled record in range.
type VisitOutcomeRow struct {
	TriageLevel *int16
	LeaveStatus *int16
}

// PeriodRow is one visit's shift period label.
type PeriodRow struct {
	Period string
}

// DepartureHourRow carries the hour extracted from a visit's departure
// timestamp. Visits without a departure timestamp produce no row.
type DepartureHourRow struct {
	VisitDate time.Time
	Hour      int
}

// DemographicRow joins one visit to its patient's sex code and age derived
// as of query time. Visits without a patient link carry nils.
type DemographicRow struct {
	VisitDate time.Time
	SexCode   *string
	Age       *int
}

// DayTotalRow is the raw visit count of one calendar date.
type DayTotalRow struct {
	Date  time.Time
	Count int
}

// VisitStore is the read-only capability the stats engine needs from the
// record store. Every aggregation query takes the same inclusive date range
// and applies the same exclusion rule: cancelled visits excluded, visits
// with a null leave-status retained.
type VisitStore interface {
	// TriageOutcomeRows returns one row per record for the matrix facet.
	TriageOutcomeRows(ctx context.Context, start, end time.Time) ([]VisitOutcomeRow, error)
	// PeriodRows returns one row per record for the period-of-day facet.
	PeriodRows(ctx context.Context, start, end time.Time) ([]PeriodRow, error)
	// DepartureHourRows returns one row per record with a departure timestamp.
	DepartureHourRows(ctx context.Context, start, end time.Time) ([]DepartureHourRow, error)
	// DemographicRows returns one row per record joined to patient attributes.
	DemographicRows(ctx context.Context, start, end time.Time) ([]DemographicRow, error)
	// DayTotalRows returns the raw per-date totals for the weekly series.
	DayTotalRows(ctx context.Context, start, end time.Time) ([]DayTotalRow, error)

	// LatestVisits returns the newest visits of a date for the live feed.
	LatestVisits(ctx context.Context, date time.Time, limit int) ([]models.LiveVisit, error)
	// CasesForDate returns all visits of a date joined to the patient name.
	CasesForDate(ctx context.Context, date time.Time) ([]models.CaseRow, error)
}
