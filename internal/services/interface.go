package services

import (
	"context"

	"erpulse/backend/pkg/models"
)

// VisitStats is the surface the transport layer consumes. Every operation
// returns either a complete, internally consistent aggregate or an error,
// never a partial one.
type VisitStats interface {
	// GetSummary returns the triage x outcome matrix and totals for a date.
	GetSummary(ctx context.Context, date string) (*models.SummaryReport, error)
	// GetPeriodSeries returns the per-shift counts for a date.
	GetPeriodSeries(ctx context.Context, date string) (*models.PeriodSeries, error)
	// GetHourlyPattern returns the departure histogram for a date,
	// truncated to the elapsed hours when asked for and the date is today.
	GetHourlyPattern(ctx context.Context, date string, truncateToNow bool) (*models.HourlyReport, error)
	// GetWeeklyAggregate returns the trailing-7-day charts aggregate.
	GetWeeklyAggregate(ctx context.Context, referenceDate string) (*models.WeeklyReport, error)
	// GetDemographics returns the gender and age bins for a date range.
	GetDemographics(ctx context.Context, start, end string) (*models.DemographicsReport, error)
	// GetLiveVisits returns the newest visits of a date.
	GetLiveVisits(ctx context.Context, date string, limit int) ([]models.LiveVisit, error)
	// GetCases returns the full case list of a date.
	GetCases(ctx context.Context, date string) ([]models.CaseRow, error)
}
