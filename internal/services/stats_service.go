package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"erpulse/backend/internal/logging"
	"erpulse/backend/internal/repository"
	"erpulse/backend/pkg/models"
)

// StatsService computes the canonical statistical views over the visit log.
// It is stateless per call: all bucketing state is local to the request and
// the only shared resource is the store's connection pool.
type StatsService struct {
	store  repository.VisitStore
	logger *logging.Logger
	now    func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(store repository.VisitStore, logger *logging.Logger) *StatsService {
	return &StatsService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the service's notion of "now". The hourly truncation
// compares the requested date against this clock, so it must be explicit
// rather than read ambiently at the comparison site.
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

// GetSummary returns the triage x outcome matrix and totals for one date.
func (s *StatsService) GetSummary(ctx context.Context, date string) (*models.SummaryReport, error) {
	ref, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	win, err := ComputeWindow(ref, WindowSingleDay)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.TriageOutcomeRows(ctx, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	matrix, totals := assembleMatrix(rows)
	return &models.SummaryReport{
		Date:   win.End.Format(models.DateLayout),
		Rows:   matrix,
		Totals: totals,
	}, nil
}

// GetPeriodSeries returns the per-shift counts for one date, in the fixed
// period sequence.
func (s *StatsService) GetPeriodSeries(ctx context.Context, date string) (*models.PeriodSeries, error) {
	ref, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	win, err := ComputeWindow(ref, WindowSingleDay)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.PeriodRows(ctx, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("period series: %w", err)
	}

	return &models.PeriodSeries{
		Date: win.End.Format(models.DateLayout),
		Rows: assemblePeriodSeries(rows),
	}, nil
}

// GetHourlyPattern returns the departure histogram for one date: 24 slots
// for a completed day, or only the elapsed hours when truncateToNow is set
// and the date is the clock's current date.
func (s *StatsService) GetHourlyPattern(ctx context.Context, date string, truncateToNow bool) (*models.HourlyReport, error) {
	ref, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	win, err := ComputeWindow(ref, WindowSingleDay)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.DepartureHourRows(ctx, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("hourly pattern: %w", err)
	}

	slots, warnings := assembleHourly(rows, win)
	s.logWarnings("hourly pattern", warnings)

	now := s.now()
	truncated := truncateToNow && win.End.Equal(midnightUTC(now))
	if truncated {
		slots = truncateToElapsed(slots, now.Hour())
	}

	return &models.HourlyReport{
		Date:      win.End.Format(models.DateLayout),
		Truncated: truncated,
		Slots:     slots,
		Warnings:  warnings,
	}, nil
}

// GetWeeklyAggregate computes every facet of the trailing-7-day view. The
// four queries run concurrently and join before assembly; if any one fails
// the whole request fails, because a half-computed dashboard is worse than
// an error.
func (s *StatsService) GetWeeklyAggregate(ctx context.Context, referenceDate string) (*models.WeeklyReport, error) {
	ref, err := parseDate(referenceDate)
	if err != nil {
		return nil, err
	}
	win, err := ComputeWindow(ref, WindowTrailingWeek)
	if err != nil {
		return nil, err
	}

	var (
		dayRows    []repository.DayTotalRow
		hourRows   []repository.DepartureHourRow
		matrixRows []repository.VisitOutcomeRow
		demoRows   []repository.DemographicRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dayRows, err = s.store.DayTotalRows(gctx, win.Start, win.End)
		return err
	})
	g.Go(func() error {
		var err error
		hourRows, err = s.store.DepartureHourRows(gctx, win.Start, win.End)
		return err
	})
	g.Go(func() error {
		var err error
		matrixRows, err = s.store.TriageOutcomeRows(gctx, win.Start, win.End)
		return err
	})
	g.Go(func() error {
		var err error
		demoRows, err = s.store.DemographicRows(gctx, win.Start, win.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("weekly aggregate: %w", err)
	}

	daily, dailyWarn := assembleDailySeries(dayRows, win)
	hourly, hourlyWarn := assembleHourly(hourRows, win)
	matrix, _ := assembleMatrix(matrixRows)
	gender, age, demoWarn := assembleDemographics(demoRows, win)

	warnings := append(append(dailyWarn, hourlyWarn...), demoWarn...)
	s.logWarnings("weekly aggregate", warnings)

	return &models.WeeklyReport{
		ReferenceDate: win.End.Format(models.DateLayout),
		Start:         win.Start.Format(models.DateLayout),
		End:           win.End.Format(models.DateLayout),
		DailySeries:   daily,
		HourlyPattern: hourly,
		TriageMatrix:  matrix,
		Gender:        gender,
		Age:           age,
		Warnings:      warnings,
	}, nil
}

// GetDemographics returns the gender and age bins over an inclusive range.
func (s *StatsService) GetDemographics(ctx context.Context, start, end string) (*models.DemographicsReport, error) {
	from, err := parseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(end)
	if err != nil {
		return nil, err
	}
	from, to = midnightUTC(from), midnightUTC(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end %s before start %s", ErrInvalidInput, end, start)
	}

	rows, err := s.store.DemographicRows(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("demographics: %w", err)
	}

	win := TimeWindow{Start: from, End: to}
	gender, age, warnings := assembleDemographics(rows, win)
	s.logWarnings("demographics", warnings)

	return &models.DemographicsReport{
		Start:    from.Format(models.DateLayout),
		End:      to.Format(models.DateLayout),
		Gender:   gender,
		Age:      age,
		Warnings: warnings,
	}, nil
}

// GetLiveVisits returns the newest visits of a date for the live feed.
func (s *StatsService) GetLiveVisits(ctx context.Context, date string, limit int) ([]models.LiveVisit, error) {
	ref, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}
	visits, err := s.store.LatestVisits(ctx, midnightUTC(ref), limit)
	if err != nil {
		return nil, fmt.Errorf("live visits: %w", err)
	}
	return visits, nil
}

// GetCases returns the full case list of a date.
func (s *StatsService) GetCases(ctx context.Context, date string) ([]models.CaseRow, error) {
	ref, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	cases, err := s.store.CasesForDate(ctx, midnightUTC(ref))
	if err != nil {
		return nil, fmt.Errorf("case list: %w", err)
	}
	return cases, nil
}

func (s *StatsService) logWarnings(op string, warnings []string) {
	for _, w := range warnings {
		s.logger.Warn("inconsistent rows filtered", "op", op, "detail", w)
	}
}
