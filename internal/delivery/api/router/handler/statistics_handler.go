package handler

import (
	"haatbazar/internal/delivery/api/response"
	"haatbazar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatisticsHandler serves the public storefront counts.
type StatisticsHandler struct {
	statisticsUC usecase.StatisticsUsecase
}

// NewStatisticsHandler is the constructor for StatisticsHandler
func NewStatisticsHandler(statisticsUC usecase.StatisticsUsecase) *StatisticsHandler {
	return &StatisticsHandler{statisticsUC: statisticsUC}
}

// PublicStatistics handles GET /api/statistics
func (h *StatisticsHandler) PublicStatistics(c echo.Context) error {
	stats, err := h.statisticsUC.PublicStatistics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats)
}
