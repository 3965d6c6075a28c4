package routes

import (
	"github.com/labstack/echo/v4"

	"bordados-backend/internal/controllers"
)

func runReportRouter(group *echo.Group, ctrl *controllers.ReportController) {
	group.GET("/reports/orders", ctrl.GetOrderBook)
}
