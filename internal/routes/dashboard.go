package routes

import (
	"github.com/labstack/echo/v4"

	"bordados-backend/internal/controllers"
)

func runDashboardRouter(group *echo.Group, ctrl *controllers.DashboardController) {
	group.GET("/dashboard", ctrl.GetStats)
}
