package services

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"bordados-backend/internal/dto"
	"bordados-backend/internal/repositories"
)

const (
	dashboardMonths     = 12
	dashboardTopClients = 5
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context, dateFrom, dateTo *time.Time) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(dashboardRepo repositories.DashboardRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo, logger: logger}
}

// periodFilter arma la condición de rango sobre la fecha de creación del
// pedido. Sin rango devuelve nil y las consultas van sin filtro de período.
func periodFilter(dateFrom, dateTo *time.Time) sq.Sqlizer {
	conds := sq.And{}
	if dateFrom != nil {
		conds = append(conds, sq.GtOrEq{"o.created_at": *dateFrom})
	}
	if dateTo != nil {
		conds = append(conds, sq.LtOrEq{"o.created_at": *dateTo})
	}
	if len(conds) == 0 {
		return nil
	}
	return conds
}

// GetStats recalcula todas las cifras del tablero sobre las filas actuales.
// No hay caché ni rollup: cada request refleja exactamente la BD de ese
// momento.
func (s *DashboardService) GetStats(ctx context.Context, dateFrom, dateTo *time.Time) (*dto.DashboardStatsDTO, error) {
	period := periodFilter(dateFrom, dateTo)

	countByStatus, err := s.dashboardRepo.GetCountByStatus(ctx, period)
	if err != nil {
		return nil, err
	}
	monthly, err := s.dashboardRepo.GetMonthlySeries(ctx, dashboardMonths)
	if err != nil {
		return nil, err
	}
	byService, err := s.dashboardRepo.GetServiceTypeStats(ctx, period)
	if err != nil {
		return nil, err
	}
	delays, err := s.dashboardRepo.GetDelayStats(ctx, period)
	if err != nil {
		return nil, err
	}
	topClients, err := s.dashboardRepo.GetTopClients(ctx, period, dashboardTopClients)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsDTO{
		CountByStatus: countByStatus,
		Monthly:       monthly,
		ByServiceType: byService,
		Delays:        delays,
		TopClients:    topClients,
	}, nil
}
