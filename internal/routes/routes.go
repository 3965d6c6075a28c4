package routes

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bordados-backend/internal/controllers"
	"bordados-backend/internal/listeners"
	"bordados-backend/internal/repositories"
	"bordados-backend/internal/services"
	"bordados-backend/pkg/config"
	"bordados-backend/pkg/eventbus"
	"bordados-backend/pkg/filestorage"
	"bordados-backend/pkg/middleware"
)

// InitRouter arma todo el grafo de dependencias y registra las rutas.
// Todo cuelga de /api y pasa por el middleware de identidad: cada
// escritura queda atribuida a un usuario con nombre.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: registrando rutas")

	api := e.Group("/api")
	identityMW := middleware.NewIdentityMiddleware(logger)
	secureGroup := api.Group("", identityMW.Resolve)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Uploads.Dir)
	if err != nil {
		logger.Fatal("no se pudo crear el almacén de archivos", zap.Error(err))
	}
	txManager := repositories.NewTxManager(dbConn)

	bus := eventbus.New(logger)
	listeners.NewAuditListener(logger).Register(bus)

	// --- Repositorios ---
	orderRepo := repositories.NewOrderRepository(dbConn, logger)
	historyRepo := repositories.NewOrderHistoryRepository(dbConn)
	paymentRepo := repositories.NewPaymentRepository(dbConn)
	clientRepo := repositories.NewClientRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)

	// --- Servicios ---
	orderService := services.NewOrderService(
		orderRepo, historyRepo, paymentRepo, clientRepo, txManager, fileStorage, bus, logger)
	paymentService := services.NewPaymentService(
		orderRepo, paymentRepo, txManager, fileStorage, bus, logger)
	historyService := services.NewOrderHistoryService(orderRepo, historyRepo, logger)
	clientService := services.NewClientService(clientRepo, orderRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, logger)
	reportService := services.NewReportService(orderRepo, logger)

	// --- Controladores ---
	deduplicator := controllers.NewRequestDeduplicator(cfg.Payments.DedupTTL)
	go deduplicator.Cleanup(context.Background(), time.Minute)
	orderCtrl := controllers.NewOrderController(orderService, cfg.Uploads.MaxFileSize, logger)
	paymentCtrl := controllers.NewPaymentController(paymentService, deduplicator, cfg.Uploads.MaxFileSize, logger)
	historyCtrl := controllers.NewOrderHistoryController(historyService, logger)
	clientCtrl := controllers.NewClientController(clientService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	// --- Rutas ---
	runOrderRouter(secureGroup, orderCtrl)
	runPaymentRouter(secureGroup, paymentCtrl)
	runOrderHistoryRouter(secureGroup, historyCtrl)
	runClientRouter(secureGroup, clientCtrl)
	runDashboardRouter(secureGroup, dashboardCtrl)
	runReportRouter(secureGroup, reportCtrl)

	logger.Info("InitRouter: rutas registradas")
}
