package routes

import (
	"github.com/labstack/echo/v4"

	"bordados-backend/internal/controllers"
)

func runOrderHistoryRouter(group *echo.Group, ctrl *controllers.OrderHistoryController) {
	group.GET("/orders/:id/history", ctrl.GetTimeline)
}
