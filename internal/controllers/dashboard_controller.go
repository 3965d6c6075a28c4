package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bordados-backend/internal/services"
	"bordados-backend/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) GetStats(ctx echo.Context) error {
	var dateFrom, dateTo *time.Time
	if s := ctx.QueryParam("dateFrom"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			dateFrom = &t
		}
	}
	if s := ctx.QueryParam("dateTo"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			dateTo = &t
		}
	}

	res, err := c.dashboardService.GetStats(ctx.Request().Context(), dateFrom, dateTo)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Estadísticas obtenidas", http.StatusOK)
}
