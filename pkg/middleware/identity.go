package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bordados-backend/pkg/contextkeys"
)

// IdentityMiddleware resuelve al usuario actuante desde las cabeceras que
// inyecta el proxy de autenticación. La autenticación en sí vive fuera de
// este servicio: acá solo se confía en la cabecera y se expone el nombre
// como string opaco para las filas de auditoría.
type IdentityMiddleware struct {
	logger *zap.Logger
}

func NewIdentityMiddleware(logger *zap.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{logger: logger}
}

const actorHeader = "X-User-Name"

func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := c.Request().Header.Get(actorHeader)
		if actor == "" {
			m.logger.Warn("solicitud sin identidad",
				zap.String("uri", c.Request().RequestURI))
			return echo.NewHTTPError(http.StatusUnauthorized, "falta la identidad del usuario")
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.ActorKey, actor)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
