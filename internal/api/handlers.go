// Package api contains the HTTP handlers for the dashboard service
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"erpulse/backend/internal/logging"
	"erpulse/backend/internal/services"
	"erpulse/backend/pkg/models"
)

// Server holds the dependencies for the API server.
type Server struct {
	Stats         services.VisitStats
	Logger        *logging.Logger
	LiveFeedLimit int
}

// NewServer creates a new Server.
func NewServer(stats services.VisitStats, logger *logging.Logger, liveFeedLimit int) *Server {
	return &Server{Stats: stats, Logger: logger, LiveFeedLimit: liveFeedLimit}
}

// RegisterRoutes mounts the dashboard endpoints on an echo group.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard/summary", s.GetSummary)
	g.GET("/dashboard/series", s.GetPeriodSeries)
	g.GET("/dashboard/hourly", s.GetHourlyPattern)
	g.GET("/dashboard/charts", s.GetWeeklyAggregate)
	g.GET("/dashboard/demographics", s.GetDemographics)
	g.GET("/dashboard/live", s.GetLiveVisits)
	g.GET("/dashboard/er-cases", s.GetCases)
}

// GetSummary returns the triage x outcome matrix for a date
// (GET /api/dashboard/summary?date=YYYY-MM-DD)
func (s *Server) GetSummary(c echo.Context) error {
	report, err := s.Stats.GetSummary(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return s.httpError(err, "summary")
	}
	return c.JSON(http.StatusOK, report)
}

// GetPeriodSeries returns the per-shift counts for a date
// (GET /api/dashboard/series?date=YYYY-MM-DD)
func (s *Server) GetPeriodSeries(c echo.Context) error {
	series, err := s.Stats.GetPeriodSeries(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return s.httpError(err, "series")
	}
	return c.JSON(http.StatusOK, series)
}

// GetHourlyPattern returns the departure histogram for a date
// (GET /api/dashboard/hourly?date=YYYY-MM-DD&truncate=true)
func (s *Server) GetHourlyPattern(c echo.Context) error {
	truncate := false
	if v := c.QueryParam("truncate"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid truncate parameter: "+v)
		}
		truncate = parsed
	}

	report, err := s.Stats.GetHourlyPattern(c.Request().Context(), c.QueryParam("date"), truncate)
	if err != nil {
		return s.httpError(err, "hourly")
	}
	return c.JSON(http.StatusOK, report)
}

// GetWeeklyAggregate returns the trailing-7-day charts aggregate
// (GET /api/dashboard/charts?date=YYYY-MM-DD)
func (s *Server) GetWeeklyAggregate(c echo.Context) error {
	report, err := s.Stats.GetWeeklyAggregate(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return s.httpError(err, "charts")
	}
	return c.JSON(http.StatusOK, report)
}

// GetDemographics returns the gender and age bins for a date range
// (GET /api/dashboard/demographics?start=YYYY-MM-DD&end=YYYY-MM-DD)
func (s *Server) GetDemographics(c echo.Context) error {
	report, err := s.Stats.GetDemographics(c.Request().Context(), c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return s.httpError(err, "demographics")
	}
	return c.JSON(http.StatusOK, report)
}

// GetLiveVisits returns the newest visits of a date
// (GET /api/dashboard/live?date=YYYY-MM-DD)
func (s *Server) GetLiveVisits(c echo.Context) error {
	visits, err := s.Stats.GetLiveVisits(c.Request().Context(), c.QueryParam("date"), s.LiveFeedLimit)
	if err != nil {
		return s.httpError(err, "live")
	}
	return c.JSON(http.StatusOK, map[string]any{"rows": visits})
}

// GetCases returns the full case list of a date
// (GET /api/dashboard/er-cases?date=YYYY-MM-DD)
func (s *Server) GetCases(c echo.Context) error {
	cases, err := s.Stats.GetCases(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return s.httpError(err, "er-cases")
	}
	return c.JSON(http.StatusOK, map[string]any{"rows": cases})
}

// HandleHealth returns basic health status (always returns 200 OK)
func (s *Server) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "ok",
		Service:   "erpulse",
		Version:   "1.0.0",
		Timestamp: time.Now(),
	})
}

// httpError maps engine errors to transport errors: malformed caller input
// is a client error, everything else surfaces as a store failure. No
// partial aggregate is ever written on the error path.
func (s *Server) httpError(err error, op string) *echo.HTTPError {
	if errors.Is(err, services.ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.Logger.Error("query failed", "op", op, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, op+" query error")
}
