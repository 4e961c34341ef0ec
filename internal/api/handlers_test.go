package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"erpulse/backend/internal/logging"
	"erpulse/backend/internal/services"
	"erpulse/backend/pkg/models"
)

// MockStats satisfies services.VisitStats
type MockStats struct {
	mock.Mock
}

func (m *MockStats) GetSummary(ctx context.Context, date string) (*models.SummaryReport, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SummaryReport), args.Error(1)
}

func (m *MockStats) GetPeriodSeries(ctx context.Context, date string) (*models.PeriodSeries, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PeriodSeries), args.Error(1)
}

func (m *MockStats) GetHourlyPattern(ctx context.Context, date string, truncateToNow bool) (*models.HourlyReport, error) {
	args := m.Called(ctx, date, truncateToNow)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HourlyReport), args.Error(1)
}

func (m *MockStats) GetWeeklyAggregate(ctx context.Context, referenceDate string) (*models.WeeklyReport, error) {
	args := m.Called(ctx, referenceDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeeklyReport), args.Error(1)
}

func (m *MockStats) GetDemographics(ctx context.Context, start, end string) (*models.DemographicsReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DemographicsReport), args.Error(1)
}

func (m *MockStats) GetLiveVisits(ctx context.Context, date string, limit int) ([]models.LiveVisit, error) {
	args := m.Called(ctx, date, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LiveVisit), args.Error(1)
}

func (m *MockStats) GetCases(ctx context.Context, date string) ([]models.CaseRow, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CaseRow), args.Error(1)
}

func newTestServer(stats services.VisitStats) (*echo.Echo, *Server) {
	e := echo.New()
	s := NewServer(stats, logging.NewLogger(), 10)
	s.RegisterRoutes(e.Group("/api"))
	e.GET("/healthz", s.HandleHealth)
	return e, s
}

func TestGetSummaryHandler(t *testing.T) {
	stats := new(MockStats)
	stats.On("GetSummary", mock.Anything, "2025-06-15").
		Return(&models.SummaryReport{Date: "2025-06-15", Totals: models.OutcomeTotals{Total: 3}}, nil)

	e, _ := newTestServer(stats)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary?date=2025-06-15", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var report models.SummaryReport
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "2025-06-15", report.Date)
	assert.Equal(t, 3, report.Totals.Total)
	stats.AssertExpectations(t)
}

func TestGetSummaryHandlerBadDate(t *testing.T) {
	stats := new(MockStats)
	stats.On("GetSummary", mock.Anything, "nope").
		Return(nil, services.ErrInvalidInput)

	e, _ := newTestServer(stats)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary?date=nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSummaryHandlerStoreFailure(t *testing.T) {
	stats := new(MockStats)
	stats.On("GetSummary", mock.Anything, "2025-06-15").
		Return(nil, errors.New("connection refused"))

	e, _ := newTestServer(stats)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary?date=2025-06-15", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "rows", "error path carries no aggregate fields")
}

func TestGetHourlyPatternHandler(t *testing.T) {
	t.Run("truncate parameter is forwarded", func(t *testing.T) {
		stats := new(MockStats)
		stats.On("GetHourlyPattern", mock.Anything, "2025-06-15", true).
			Return(&models.HourlyReport{Date: "2025-06-15", Truncated: true}, nil)

		e, _ := newTestServer(stats)
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/hourly?date=2025-06-15&truncate=true", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		stats.AssertExpectations(t)
	})

	t.Run("invalid truncate parameter is a client error", func(t *testing.T) {
		stats := new(MockStats)
		e, _ := newTestServer(stats)
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/hourly?date=2025-06-15&truncate=maybe", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		stats.AssertNotCalled(t, "GetHourlyPattern")
	})
}

func TestGetWeeklyAggregateHandler(t *testing.T) {
	stats := new(MockStats)
	stats.On("GetWeeklyAggregate", mock.Anything, "2025-06-15").
		Return(&models.WeeklyReport{ReferenceDate: "2025-06-15", Start: "2025-06-09", End: "2025-06-15"}, nil)

	e, _ := newTestServer(stats)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/charts?date=2025-06-15", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var report models.WeeklyReport
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "2025-06-09", report.Start)
}

func TestGetDemographicsHandler(t *testing.T) {
	stats := new(MockStats)
	stats.On("GetDemographics", mock.Anything, "2025-06-01", "2025-06-15").
		Return(&models.DemographicsReport{Gender: models.GenderBins{Male: 4, Female: 6}}, nil)

	e, _ := newTestServer(stats)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/demographics?start=2025-06-01&end=2025-06-15", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var report models.DemographicsReport
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 6, report.Gender.Female)
}

func TestGetLiveVisitsHandler(t *testing.T) {
	stats := new(MockStats)
	stats.On("GetLiveVisits", mock.Anything, "2025-06-15", 10).
		Return([]models.LiveVisit{{VN: "250615-0001"}}, nil)

	e, _ := newTestServer(stats)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/live?date=2025-06-15", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "250615-0001")
}

func TestHandleHealth(t *testing.T) {
	e, _ := newTestServer(new(MockStats))
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var health models.HealthStatus
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "erpulse", health.Service)
}
