package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"erpulse/backend/internal/repository"
	"erpulse/backend/pkg/models"
)

func code(v int16) *int16 { return &v }

func TestAssembleMatrix(t *testing.T) {
	rows := []repository.VisitOutcomeRow{
		{TriageLevel: code(1), LeaveStatus: code(1)}, // Resuscitation, admit
		{TriageLevel: code(1), LeaveStatus: code(9)}, // Resuscitation, ems
		{TriageLevel: code(3), LeaveStatus: code(2)}, // Urgency, refer
		{TriageLevel: code(3), LeaveStatus: nil},     // Urgency, null -> dc
		{TriageLevel: code(5), LeaveStatus: code(8)}, // Non-Urgency, admitHW
		{TriageLevel: nil, LeaveStatus: code(4)},     // Unknown, dc
	}

	matrix, totals := assembleMatrix(rows)

	t.Run("every category appears in canonical order", func(t *testing.T) {
		assert.Len(t, matrix, len(models.TriageOrder))
		for i, cat := range models.TriageOrder {
			assert.Equal(t, cat, matrix[i].Triage)
		}
		// zero-filled categories stay present
		assert.Zero(t, matrix[1].Count) // Emergency
		assert.Zero(t, matrix[3].Count) // Semi-Urgency
	})

	t.Run("counts land in the right cells", func(t *testing.T) {
		assert.Equal(t, 2, matrix[0].Count)
		assert.Equal(t, 1, matrix[0].Admit)
		assert.Equal(t, 1, matrix[0].EMS)
		assert.Equal(t, 2, matrix[2].Count)
		assert.Equal(t, 1, matrix[2].Refer)
		assert.Equal(t, 1, matrix[2].DC)
		assert.Equal(t, 1, matrix[4].AdmitHW)
		assert.Equal(t, 1, matrix[5].DC)
	})

	t.Run("matrix sum equals non-excluded record count", func(t *testing.T) {
		sum := 0
		for _, row := range matrix {
			sum += row.Count
		}
		assert.Equal(t, len(rows), sum)
		assert.Equal(t, len(rows), totals.Total)
	})
}

func TestAssembleMatrixDropsCancelled(t *testing.T) {
	rows := []repository.VisitOutcomeRow{
		{TriageLevel: code(2), LeaveStatus: code(7)}, // cancelled
		{TriageLevel: code(2), LeaveStatus: nil},     // null is NOT cancelled
	}

	matrix, totals := assembleMatrix(rows)
	assert.Equal(t, 1, totals.Total)
	assert.Equal(t, 1, totals.DC)
	assert.Equal(t, 1, matrix[1].Count)
	assert.Equal(t, 1, matrix[1].DC)
}

func TestAssemblePeriodSeries(t *testing.T) {
	rows := []repository.PeriodRow{
		{Period: "night"}, {Period: "morning"}, {Period: "morning"},
		{Period: "graveyard"}, {Period: "afternoon"}, {Period: "dusk"},
	}

	series := assemblePeriodSeries(rows)

	// canonical periods zero-filled in order, unknown labels after,
	// alphabetical among themselves
	want := []models.PeriodCount{
		{Period: "morning", Count: 2},
		{Period: "afternoon", Count: 1},
		{Period: "night", Count: 1},
		{Period: "day", Count: 0},
		{Period: "overnight", Count: 0},
		{Period: "dusk", Count: 1},
		{Period: "graveyard", Count: 1},
	}
	assert.Equal(t, want, series)
}

func TestAssembleHourly(t *testing.T) {
	win, _ := ComputeWindow(date(2025, 6, 15), WindowSingleDay)
	rows := []repository.DepartureHourRow{
		{VisitDate: date(2025, 6, 15), Hour: 0},
		{VisitDate: date(2025, 6, 15), Hour: 9},
		{VisitDate: date(2025, 6, 15), Hour: 9},
		{VisitDate: date(2025, 6, 15), Hour: 23},
	}

	slots, warnings := assembleHourly(rows, win)
	assert.Empty(t, warnings)
	assert.Len(t, slots, models.HoursPerDay)
	assert.Equal(t, 1, slots[0].Count)
	assert.Equal(t, 2, slots[9].Count)
	assert.Equal(t, 1, slots[23].Count)
	assert.Zero(t, slots[12].Count)
}

func TestAssembleHourlyDropsOutOfWindowRows(t *testing.T) {
	win, _ := ComputeWindow(date(2025, 6, 15), WindowSingleDay)
	rows := []repository.DepartureHourRow{
		{VisitDate: date(2025, 6, 15), Hour: 8},
		{VisitDate: date(2025, 6, 14), Hour: 8}, // store defect: outside window
		{VisitDate: date(2025, 6, 15), Hour: 99},
	}

	slots, warnings := assembleHourly(rows, win)
	assert.Equal(t, 1, slots[8].Count)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "dropped 2")
}

func TestTruncateToElapsed(t *testing.T) {
	slots := models.EmptyHourHistogram()

	assert.Len(t, truncateToElapsed(slots, 0), 1)
	assert.Len(t, truncateToElapsed(slots, 10), 11)
	assert.Len(t, truncateToElapsed(slots, 23), 24)
}

func TestAssembleDailySeries(t *testing.T) {
	win, _ := ComputeWindow(date(2025, 3, 2), WindowTrailingWeek)
	rows := []repository.DayTotalRow{
		{Date: date(2025, 2, 24), Count: 12},
		{Date: date(2025, 2, 28), Count: 7},
		{Date: date(2025, 3, 2), Count: 3},
	}

	series, warnings := assembleDailySeries(rows, win)
	assert.Empty(t, warnings)

	t.Run("all seven dates present across the month boundary", func(t *testing.T) {
		assert.Len(t, series, 7)
		assert.Equal(t, "2025-02-24", series[0].Date)
		assert.Equal(t, "2025-03-02", series[6].Date)
	})

	t.Run("dates with no rows are zero-filled", func(t *testing.T) {
		assert.Equal(t, 12, series[0].Count)
		assert.Zero(t, series[1].Count)
		assert.Zero(t, series[2].Count)
		assert.Equal(t, 7, series[4].Count)
		assert.Equal(t, 3, series[6].Count)
	})

	t.Run("weekday labels follow the calendar", func(t *testing.T) {
		for _, day := range series {
			d, err := time.Parse(models.DateLayout, day.Date)
			assert.NoError(t, err)
			assert.Equal(t, int(d.Weekday()), day.Weekday)
			assert.Equal(t, models.WeekdayLabel(d), day.DayName)
		}
	})
}

func TestAssembleDailySeriesDropsOutOfWindowRows(t *testing.T) {
	win, _ := ComputeWindow(date(2025, 6, 15), WindowTrailingWeek)
	rows := []repository.DayTotalRow{
		{Date: date(2025, 6, 15), Count: 4},
		{Date: date(2025, 6, 22), Count: 9}, // outside window
	}

	series, warnings := assembleDailySeries(rows, win)
	assert.Len(t, series, 7)
	assert.Equal(t, 4, series[6].Count)
	assert.Len(t, warnings, 1)
}

func TestAssembleDemographics(t *testing.T) {
	win, _ := ComputeWindow(date(2025, 6, 15), WindowTrailingWeek)
	male, female, odd := "1", "2", "0"
	age := func(v int) *int { return &v }

	rows := []repository.DemographicRow{
		{VisitDate: date(2025, 6, 15), SexCode: &male, Age: age(8)},
		{VisitDate: date(2025, 6, 14), SexCode: &male, Age: age(34)},
		{VisitDate: date(2025, 6, 13), SexCode: &female, Age: age(62)},
		{VisitDate: date(2025, 6, 12), SexCode: &female, Age: age(71)},
		{VisitDate: date(2025, 6, 11), SexCode: &odd, Age: age(40)}, // skipped from gender
		{VisitDate: date(2025, 6, 10), SexCode: nil, Age: nil},      // skipped from both
	}

	gender, ageBins, warnings := assembleDemographics(rows, win)
	assert.Empty(t, warnings)

	t.Run("unrecognized sex codes are skipped, not bucketed", func(t *testing.T) {
		assert.Equal(t, 2, gender.Male)
		assert.Equal(t, 2, gender.Female)
	})

	t.Run("age bands", func(t *testing.T) {
		assert.Equal(t, 1, ageBins.Child)
		assert.Equal(t, 2, ageBins.Adult) // includes the unknown-gender row
		assert.Equal(t, 2, ageBins.Elderly)
	})

	t.Run("shares divide by the bin's own total", func(t *testing.T) {
		assert.InDelta(t, 50.0, gender.MalePct, 0.001)
		assert.InDelta(t, 50.0, gender.FemalePct, 0.001)
		assert.InDelta(t, 20.0, ageBins.ChildPct, 0.001)
		assert.InDelta(t, 40.0, ageBins.AdultPct, 0.001)
		assert.InDelta(t, 40.0, ageBins.ElderlyPct, 0.001)
	})
}

func TestAssembleDemographicsEmpty(t *testing.T) {
	win, _ := ComputeWindow(date(2025, 6, 15), WindowSingleDay)
	gender, ageBins, warnings := assembleDemographics(nil, win)
	assert.Empty(t, warnings)
	assert.Zero(t, gender.Male)
	assert.Zero(t, gender.MalePct)
	assert.Zero(t, ageBins.ElderlyPct)
}
