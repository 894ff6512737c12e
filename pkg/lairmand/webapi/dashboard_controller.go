package webapi

import (
	"net/http"

	"github.com/lairworks/lairman/pkg/lairsvc"
	"github.com/labstack/echo/v4"
)

type DashboardController struct {
	statisticsService *lairsvc.StatisticsService
}

func NewDashboardController(statisticsService *lairsvc.StatisticsService) *DashboardController {
	return &DashboardController{statisticsService: statisticsService}
}

func (c *DashboardController) GetDashboardStatistics(ctx echo.Context) error {
	stats, err := c.statisticsService.CalculateDashboardStatistics()
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

func (c *DashboardController) GetAlerts(ctx echo.Context) error {
	alerts, err := c.statisticsService.GenerateAlerts()
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string][]string{"alerts": alerts})
}
