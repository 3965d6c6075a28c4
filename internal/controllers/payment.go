package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bordados-backend/internal/dto"
	"bordados-backend/internal/services"
	apperrors "bordados-backend/pkg/errors"
	"bordados-backend/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
	deduplicator   *RequestDeduplicator
	maxFileSize    int64
	logger         *zap.Logger
}

func NewPaymentController(
	paymentService services.PaymentServiceInterface,
	deduplicator *RequestDeduplicator,
	maxFileSize int64,
	logger *zap.Logger,
) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		deduplicator:   deduplicator,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// RecordPayment registra un abono. Multipart: "data" con el JSON del pago,
// "photos" con los comprobantes. La cabecera Idempotency-Key es opcional;
// si viene, una repetición dentro de la ventana responde 409 sin tocar la BD.
func (c *PaymentController) RecordPayment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if key := ctx.Request().Header.Get("Idempotency-Key"); key != "" {
		if !c.deduplicator.TryAcquire(id, key) {
			c.logger.Warn("Pago duplicado rechazado",
				zap.Uint64("orderID", id), zap.String("idempotencyKey", key))
			return utils.ErrorResponse(ctx, apperrors.ErrDuplicateRequest, c.logger)
		}
	}

	dataString := ctx.FormValue("data")
	if dataString == "" {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "falta el campo 'data' con el JSON del pago"), c.logger)
	}
	var payload dto.RecordPaymentDTO
	if err := json.Unmarshal([]byte(dataString), &payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "JSON inválido en el campo 'data'"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	photos, closePhotos, err := evidenceFromForm(ctx, c.maxFileSize)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer closePhotos()

	res, err := c.paymentService.RecordPayment(ctx.Request().Context(), id, payload, photos)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Pago registrado", http.StatusCreated)
}

func (c *PaymentController) ListPayments(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.paymentService.ListPayments(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Pagos obtenidos", http.StatusOK)
}
