package main

import (
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"bordados-backend/internal/routes"
	"bordados-backend/pkg/config"
	"bordados-backend/pkg/customvalidator"
	"bordados-backend/pkg/database/postgresql"
	apperrors "bordados-backend/pkg/errors"
	applogger "bordados-backend/pkg/logger"
	"bordados-backend/pkg/utils"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("PÁNICO recuperado",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Error interno del servidor", err)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"http://localhost:5173"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-User-Name", "Idempotency-Key"},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	e.Use(middleware.BodyLimit("25M"))

	// Las evidencias se sirven como archivos estáticos.
	absPath, err := filepath.Abs(cfg.Uploads.Dir)
	if err != nil {
		logger.Fatal("no se pudo resolver el directorio de subidas", zap.Error(err))
	}
	e.Static("/uploads", absPath)

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("error registrando validaciones propias", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	routes.InitRouter(e, dbConn, logger, cfg)

	logger.Info("🚀 Servidor escuchando", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("error arrancando el servidor", zap.Error(err))
	}
}
