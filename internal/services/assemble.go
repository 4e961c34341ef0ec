package services

import (
	"fmt"
	"sort"

	"erpulse/backend/internal/repository"
	"erpulse/backend/pkg/models"
)

// assembleMatrix folds raw per-record rows into the triage x outcome matrix.
// The skeleton is initialized first so every category appears in output even
// with zero matching records. Rows classifying as Excluded are dropped from
// every count.
func assembleMatrix(rows []repository.VisitOutcomeRow) ([]models.TriageOutcomeRow, models.OutcomeTotals) {
	index := make(map[models.TriageCategory]*models.TriageOutcomeRow, len(models.TriageOrder))
	out := make([]models.TriageOutcomeRow, len(models.TriageOrder))
	for i, cat := range models.TriageOrder {
		out[i] = models.TriageOutcomeRow{Triage: cat}
		index[cat] = &out[i]
	}

	var totals models.OutcomeTotals
	for _, r := range rows {
		bucket := models.ClassifyOutcome(r.LeaveStatus)
		if bucket == models.OutcomeExcluded {
			continue
		}
		row := index[models.ClassifyTriage(r.TriageLevel)]
		row.Count++
		totals.Total++
		switch bucket {
		case models.OutcomeAdmitted:
			row.Admit++
			totals.Admit++
		case models.OutcomeAdmittedOtherWard:
			row.AdmitHW++
			totals.AdmitHW++
		case models.OutcomeReferred:
			row.Refer++
			totals.Refer++
		case models.OutcomeDischarged:
			row.DC++
			totals.DC++
		case models.OutcomeEMSTransport:
			row.EMS++
			totals.EMS++
		}
	}
	return out, totals
}

// assemblePeriodSeries counts records per shift label and reports them in
// the fixed period sequence, zero-filling the canonical periods. Labels
// outside the canonical set keep their counts and sort after it.
func assemblePeriodSeries(rows []repository.PeriodRow) []models.PeriodCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Period]++
	}

	for _, p := range models.PeriodOrder {
		if _, ok := counts[string(p)]; !ok {
			counts[string(p)] = 0
		}
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ri, rj := models.PeriodRank(labels[i]), models.PeriodRank(labels[j])
		if ri != rj {
			return ri < rj
		}
		return labels[i] < labels[j]
	})

	out := make([]models.PeriodCount, 0, len(labels))
	for _, label := range labels {
		out = append(out, models.PeriodCount{Period: label, Count: counts[label]})
	}
	return out
}

// assembleHourly folds departure hours into the 24-slot histogram. Rows
// whose visit date falls outside the window are a store defect: they are
// dropped and surfaced as a warning rather than failing assembly.
func assembleHourly(rows []repository.DepartureHourRow, win TimeWindow) ([]models.HourCount, []string) {
	slots := models.EmptyHourHistogram()
	dropped := 0
	for _, r := range rows {
		if !win.Contains(r.VisitDate) {
			dropped++
			continue
		}
		if r.Hour < 0 || r.Hour >= models.HoursPerDay {
			dropped++
			continue
		}
		slots[r.Hour].Count++
	}

	var warnings []string
	if dropped > 0 {
		warnings = append(warnings, fmt.Sprintf("hourly: dropped %d rows outside window or hour range", dropped))
	}
	return slots, warnings
}

// truncateToElapsed cuts a full histogram down to the hours elapsed so far.
// Future hours of the current day must not render as zero, which is
// indistinguishable from a confirmed zero.
func truncateToElapsed(slots []models.HourCount, elapsedHour int) []models.HourCount {
	if elapsedHour >= models.HoursPerDay-1 {
		return slots
	}
	return slots[:elapsedHour+1]
}

// assembleDailySeries walks the window's materialized date list and looks up
// a matching day total per date, emitting an explicit zero where none
// exists. A sparse join would silently drop quiet days.
func assembleDailySeries(rows []repository.DayTotalRow, win TimeWindow) ([]models.DayCount, []string) {
	byDate := make(map[string]int, len(rows))
	dropped := 0
	for _, r := range rows {
		if !win.Contains(r.Date) {
			dropped++
			continue
		}
		byDate[midnightUTC(r.Date).Format(models.DateLayout)] = r.Count
	}

	out := make([]models.DayCount, 0, len(win.Dates))
	for _, d := range win.Dates {
		key := d.Format(models.DateLayout)
		out = append(out, models.DayCount{
			Date:    key,
			Weekday: models.WeekdayIndex(d),
			DayName: models.WeekdayLabel(d),
			Count:   byDate[key],
		})
	}

	var warnings []string
	if dropped > 0 {
		warnings = append(warnings, fmt.Sprintf("daily series: dropped %d rows outside window", dropped))
	}
	return out, warnings
}

// assembleDemographics bins rows by gender and age band in a single pass.
// Rows with an unrecognized sex code are skipped from the gender bins and
// rows without an age from the age bins; there is no unknown bucket.
// Shares are derived against each bin's own total, not the grand total.
func assembleDemographics(rows []repository.DemographicRow, win TimeWindow) (models.GenderBins, models.AgeBins, []string) {
	var gender models.GenderBins
	var age models.AgeBins
	dropped := 0

	for _, r := range rows {
		if !win.Contains(r.VisitDate) {
			dropped++
			continue
		}
		switch models.GenderFromCode(r.SexCode) {
		case models.GenderMale:
			gender.Male++
		case models.GenderFemale:
			gender.Female++
		}
		if r.Age != nil {
			switch models.AgeBandOf(*r.Age) {
			case models.AgeBandChild:
				age.Child++
			case models.AgeBandAdult:
				age.Adult++
			case models.AgeBandElderly:
				age.Elderly++
			}
		}
	}

	if total := gender.Male + gender.Female; total > 0 {
		gender.MalePct = share(gender.Male, total)
		gender.FemalePct = share(gender.Female, total)
	}
	if total := age.Child + age.Adult + age.Elderly; total > 0 {
		age.ChildPct = share(age.Child, total)
		age.AdultPct = share(age.Adult, total)
		age.ElderlyPct = share(age.Elderly, total)
	}

	var warnings []string
	if dropped > 0 {
		warnings = append(warnings, fmt.Sprintf("demographics: dropped %d rows outside window", dropped))
	}
	return gender, age, warnings
}

func share(count, total int) float64 {
	return float64(count) * 100 / float64(total)
}
