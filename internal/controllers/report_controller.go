package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"bordados-backend/internal/dto"
	"bordados-backend/internal/services"
	"bordados-backend/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetOrderBook exporta el libro de pedidos. Con ?format=xlsx devuelve el
// archivo Excel; si no, el JSON de siempre.
func (c *ReportController) GetOrderBook(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	format := strings.ToLower(ctx.QueryParam("format"))

	data, total, err := c.reportService.GetOrderBook(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}
	return utils.SuccessResponse(ctx, data, "Libro de pedidos generado", http.StatusOK, total)
}

var orderBookHeaders = []string{
	"N° Pedido", "Cliente", "Descripción", "Servicio", "Cantidad",
	"Total", "Pagado", "Saldo", "Estado", "Urgente", "Fecha de entrega",
	"Atrasado", "Creado",
}

func orderBookRow(item dto.OrderListItemDTO) []interface{} {
	boolStr := func(b bool) string {
		if b {
			return "Sí"
		}
		return "No"
	}
	return []interface{}{
		item.OrderNumber, item.ClientName, item.Description, item.ServiceType, item.Quantity,
		item.Total.StringFixed(2), item.TotalPaid.StringFixed(2), item.RemainingBalance.StringFixed(2),
		item.Status, boolStr(item.Urgent), item.DueDate, boolStr(item.IsDelayed), item.CreatedAt,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.OrderListItemDTO) error {
	f := excelize.NewFile()
	sheet := "Libro de pedidos"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &orderBookHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := orderBookRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 25)
	f.SetColWidth(sheet, "C", "C", 40)
	f.SetColWidth(sheet, "D", "D", 15)
	f.SetColWidth(sheet, "K", "M", 20)

	fileName := fmt.Sprintf("pedidos_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
