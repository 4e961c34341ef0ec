package models

// TriageOutcomeRow is one row of the triage x outcome matrix. Every category
// in TriageOrder appears exactly once regardless of data sparsity.
type TriageOutcomeRow struct {
	Triage  TriageCategory `json:"triage"`
	Count   int            `json:"count"`
	Admit   int            `json:"admit"`
	AdmitHW int            `json:"admitHW"`
	Refer   int            `json:"refer"`
	DC      int            `json:"dc"`
	EMS     int            `json:"ems"`
}

// OutcomeTotals are the column sums of the triage x outcome matrix.
type OutcomeTotals struct {
	Total   int `json:"total"`
	Admit   int `json:"admit"`
	AdmitHW int `json:"admitHW"`
	Refer   int `json:"refer"`
	DC      int `json:"dc"`
	EMS     int `json:"ems"`
}

// SummaryReport is the per-date summary view of the visit log.
type SummaryReport struct {
	Date   string             `json:"date"`
	Rows   []TriageOutcomeRow `json:"rows"`
	Totals OutcomeTotals      `json:"totals"`
}

// PeriodCount is one entry of the period-of-day series.
type PeriodCount struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// PeriodSeries is the per-date shift period breakdown, in PeriodOrder.
type PeriodSeries struct {
	Date string        `json:"date"`
	Rows []PeriodCount `json:"rows"`
}

// HourlyReport is the per-date departure histogram. Slots holds 24 entries
// for a completed day, or only the elapsed hours when truncated for today.
type HourlyReport struct {
	Date      string      `json:"date"`
	Truncated bool        `json:"truncated"`
	Slots     []HourCount `json:"slots"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// DayCount is one entry of the weekly per-day series.
type DayCount struct {
	Date    string `json:"date"`
	Weekday int    `json:"weekday"`
	DayName string `json:"day_name"`
	Count   int    `json:"count"`
}

// GenderBins are the gender demographic counts with per-bin shares.
type GenderBins struct {
	Male      int     `json:"male"`
	Female    int     `json:"female"`
	MalePct   float64 `json:"male_pct"`
	FemalePct float64 `json:"female_pct"`
}

// AgeBins are the age band counts with per-bin shares.
type AgeBins struct {
	Child      int     `json:"child"`
	Adult      int     `json:"adult"`
	Elderly    int     `json:"elderly"`
	ChildPct   float64 `json:"child_pct"`
	AdultPct   float64 `json:"adult_pct"`
	ElderlyPct float64 `json:"elderly_pct"`
}

// DemographicsReport is the gender and age breakdown over a date range.
type DemographicsReport struct {
	Start    string     `json:"start"`
	End      string     `json:"end"`
	Gender   GenderBins `json:"gender"`
	Age      AgeBins    `json:"age"`
	Warnings []string   `json:"warnings,omitempty"`
}

// WeeklyReport is the trailing-7-day aggregate feeding the charts page.
type WeeklyReport struct {
	ReferenceDate string             `json:"reference_date"`
	Start         string             `json:"start"`
	End           string             `json:"end"`
	DailySeries   []DayCount         `json:"daily_series"`
	HourlyPattern []HourCount        `json:"hourly_pattern"`
	TriageMatrix  []TriageOutcomeRow `json:"triage_matrix"`
	Gender        GenderBins         `json:"gender"`
	Age           AgeBins            `json:"age"`
	Warnings      []string           `json:"warnings,omitempty"`
}

// LiveVisit is one entry of the latest-visits feed.
type LiveVisit struct {
	VN          string `json:"vn"`
	TriageLevel *int16 `json:"triage"`
	PatientType *int16 `json:"patient_type"`
	VisitedAt   string `json:"visited_at"`
}

// CaseRow is one entry of the per-date case list, joined to the patient name.
type CaseRow struct {
	VN          string  `json:"vn"`
	Time        string  `json:"time"`
	Name        string  `json:"name"`
	Symptom     *string `json:"symptom"`
	TriageLevel *int16  `json:"triage"`
	StatusID    *int16  `json:"status_id"`
}
