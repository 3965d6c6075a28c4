package routes

import (
	"github.com/labstack/echo/v4"

	"bordados-backend/internal/controllers"
)

func runOrderRouter(group *echo.Group, ctrl *controllers.OrderController) {
	group.GET("/orders", ctrl.GetOrders)
	group.POST("/orders", ctrl.CreateOrder)
	group.GET("/orders/:id", ctrl.FindOrder)
	group.PUT("/orders/:id", ctrl.UpdateOrder)
	group.DELETE("/orders/:id", ctrl.DeleteOrder)

	// La única puerta de entrada a la máquina de estados.
	group.POST("/orders/:id/status", ctrl.TransitionStatus)
}
