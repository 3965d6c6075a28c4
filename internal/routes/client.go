package routes

import (
	"github.com/labstack/echo/v4"

	"bordados-backend/internal/controllers"
)

func runClientRouter(group *echo.Group, ctrl *controllers.ClientController) {
	group.GET("/clients", ctrl.GetClients)
	group.GET("/clients/:id", ctrl.FindClient)
}
