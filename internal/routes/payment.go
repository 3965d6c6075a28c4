package routes

import (
	"github.com/labstack/echo/v4"

	"bordados-backend/internal/controllers"
)

func runPaymentRouter(group *echo.Group, ctrl *controllers.PaymentController) {
	group.POST("/orders/:id/payments", ctrl.RecordPayment)
	group.GET("/orders/:id/payments", ctrl.ListPayments)
}
