package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "bordados-backend/pkg/errors"
)

type HTTPResponse struct {
	Status     bool        `json:"status"`
	Body       interface{} `json:"body,omitempty"`
	Message    string      `json:"message"`
	TotalCount *uint64     `json:"total_count,omitempty"`
}

// SuccessResponse responde con el sobre estándar. El total es opcional y
// solo lo mandan los listados paginados.
func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(total) > 0 {
		response.TotalCount = &total[0]
	}
	return ctx.JSON(code, response)
}

func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := err.Error()

	if httpErr, ok := err.(*apperrors.HttpError); ok {
		code = httpErr.Code
		message = httpErr.Message
	} else if echoErr, ok := err.(*echo.HTTPError); ok {
		code = echoErr.Code
		if m, ok := echoErr.Message.(string); ok {
			message = m
		}
	} else {
		code = apperrors.StatusCodeFor(err)
	}

	if code >= http.StatusInternalServerError && logger != nil {
		logger.Error("error interno respondido al cliente", zap.Error(err))
	}

	return ctx.JSON(code, &HTTPResponse{
		Status:  false,
		Message: message,
	})
}
