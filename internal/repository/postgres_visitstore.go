package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"erpulse/backend/pkg/models"
)

// notCancelled is the shared exclusion predicate: the cancelled status code
// is removed from every aggregate, but a null leave-status is retained.
const notCancelled = "(leave_status <> 7 OR leave_status IS NULL)"

// PostgresVisitStore is a PostgreSQL implementation of the VisitStore
// interface.
type PostgresVisitStore struct {
	db *pgxpool.Pool
}

// NewPostgresVisitStore creates a new PostgresVisitStore.
func NewPostgresVisitStore(db *pgxpool.Pool) *PostgresVisitStore {
	return &PostgresVisitStore{db: db}
}

// TriageOutcomeRows returns one row per non-cancelled record in range.
func (s *PostgresVisitStore) TriageOutcomeRows(ctx context.Context, start, end time.Time) ([]VisitOutcomeRow, error) {
	rows, err := s.db.Query(ctx,
		`SELECT triage_level, leave_status
		   FROM er_visit
		  WHERE visit_date BETWEEN $1 AND $2 AND `+notCancelled,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("triage outcome query: %w", err)
	}
	defer rows.Close()

	var out []VisitOutcomeRow
	for rows.Next() {
		var r VisitOutcomeRow
		if err := rows.Scan(&r.TriageLevel, &r.LeaveStatus); err != nil {
			return nil, fmt.Errorf("triage outcome scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// PeriodRows returns one row per non-cancelled record with its shift label.
func (s *PostgresVisitStore) PeriodRows(ctx context.Context, start, end time.Time) ([]PeriodRow, error) {
	rows, err := s.db.Query(ctx,
		`SELECT COALESCE(shift_period, '')
		   FROM er_visit
		  WHERE visit_date BETWEEN $1 AND $2 AND `+notCancelled,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("period query: %w", err)
	}
	defer rows.Close()

	var out []PeriodRow
	for rows.Next() {
		var r PeriodRow
		if err := rows.Scan(&r.Period); err != nil {
			return nil, fmt.Errorf("period scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DepartureHourRows returns the departure hour of every non-cancelled record
// that has a departure timestamp. Records still in the department cannot
// populate an hourly bucket and are excluded from this query only.
func (s *PostgresVisitStore) DepartureHourRows(ctx context.Context, start, end time.Time) ([]DepartureHourRow, error) {
	rows, err := s.db.Query(ctx,
		`SELECT visit_date, EXTRACT(HOUR FROM departure_time)::int
		   FROM er_visit
		  WHERE visit_date BETWEEN $1 AND $2
		    AND departure_time IS NOT NULL AND `+notCancelled,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("departure hour query: %w", err)
	}
	defer rows.Close()

	var out []DepartureHourRow
	for rows.Next() {
		var r DepartureHourRow
		if err := rows.Scan(&r.VisitDate, &r.Hour); err != nil {
			return nil, fmt.Errorf("departure hour scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DemographicRows returns one row per non-cancelled record, left-joined to
// the patient's sex code and age. Age is computed as of query time so it is
// always relative to now, never stored.
func (s *PostgresVisitStore) DemographicRows(ctx context.Context, start, end time.Time) ([]DemographicRow, error) {
	rows, err := s.db.Query(ctx,
		`SELECT v.visit_date, p.sex_code,
		        EXTRACT(YEAR FROM age(CURRENT_DATE, p.birth_date))::int
		   FROM er_visit v
		   LEFT JOIN patient p ON v.hn = p.hn
		  WHERE v.visit_date BETWEEN $1 AND $2 AND `+notCancelled,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("demographic query: %w", err)
	}
	defer rows.Close()

	var out []DemographicRow
	for rows.Next() {
		var r DemographicRow
		if err := rows.Scan(&r.VisitDate, &r.SexCode, &r.Age); err != nil {
			return nil, fmt.Errorf("demographic scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DayTotalRows returns the raw visit count per calendar date in range. Dates
// with no records produce no row; the assembler zero-fills them.
func (s *PostgresVisitStore) DayTotalRows(ctx context.Context, start, end time.Time) ([]DayTotalRow, error) {
	rows, err := s.db.Query(ctx,
		`SELECT visit_date, COUNT(*)::int
		   FROM er_visit
		  WHERE visit_date BETWEEN $1 AND $2 AND `+notCancelled+`
		  GROUP BY visit_date
		  ORDER BY visit_date`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("day total query: %w", err)
	}
	defer rows.Close()

	var out []DayTotalRow
	for rows.Next() {
		var r DayTotalRow
		if err := rows.Scan(&r.Date, &r.Count); err != nil {
			return nil, fmt.Errorf("day total scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LatestVisits returns the newest visits of a date, newest first. The live
// feed is a raw view of the log, so cancelled visits stay visible here.
func (s *PostgresVisitStore) LatestVisits(ctx context.Context, date time.Time, limit int) ([]models.LiveVisit, error) {
	rows, err := s.db.Query(ctx,
		`SELECT vn, triage_level, patient_type, visit_time
		   FROM er_visit
		  WHERE visit_date = $1
		  ORDER BY visit_time DESC
		  LIMIT $2`,
		date, limit)
	if err != nil {
		return nil, fmt.Errorf("latest visits query: %w", err)
	}
	defer rows.Close()

	var out []models.LiveVisit
	for rows.Next() {
		var v models.LiveVisit
		var visited time.Time
		if err := rows.Scan(&v.VN, &v.TriageLevel, &v.PatientType, &visited); err != nil {
			return nil, fmt.Errorf("latest visits scan: %w", err)
		}
		v.VisitedAt = visited.Format("2006-01-02 15:04:05")
		out = append(out, v)
	}
	return out, rows.Err()
}

// CasesForDate returns every visit of a date joined to the patient name,
// newest first.
func (s *PostgresVisitStore) CasesForDate(ctx context.Context, date time.Time) ([]models.CaseRow, error) {
	rows, err := s.db.Query(ctx,
		`SELECT v.vn, to_char(v.visit_time, 'HH24:MI'),
		        trim(COALESCE(p.first_name, '') || ' ' || COALESCE(p.last_name, '')),
		        v.symptom, v.triage_level, v.leave_status
		   FROM er_visit v
		   LEFT JOIN patient p ON v.hn = p.hn
		  WHERE v.visit_date = $1
		  ORDER BY v.visit_time DESC`,
		date)
	if err != nil {
		return nil, fmt.Errorf("case list query: %w", err)
	}
	defer rows.Close()

	var out []models.CaseRow
	for rows.Next() {
		var c models.CaseRow
		if err := rows.Scan(&c.VN, &c.Time, &c.Name, &c.Symptom, &c.TriageLevel, &c.StatusID); err != nil {
			return nil, fmt.Errorf("case list scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
