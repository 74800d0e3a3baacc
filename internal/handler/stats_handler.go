package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"openeye/internal/errors"
	"openeye/internal/service"
)

// StatsHandler serves the aggregate statistics endpoint.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// StatsResponse wraps the aggregate counts.
type StatsResponse struct {
	Success bool          `json:"success"`
	Stats   service.Stats `json:"stats"`
}

// Overview godoc
// @Summary Aggregate complaint and directory counts
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} errors.Response
// @Router /stats [get]
func (h *StatsHandler) Overview(c echo.Context) error {
	stats, err := h.statsService.Overview(c.Request().Context())
	if err != nil {
		he := errors.MapError(err)
		return c.JSON(he.StatusCode, he.ToResponse())
	}

	return c.JSON(http.StatusOK, StatsResponse{
		Success: true,
		Stats:   *stats,
	})
}
