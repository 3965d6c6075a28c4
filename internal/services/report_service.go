package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bordados-backend/internal/dto"
	"bordados-backend/internal/repositories"
	"bordados-backend/pkg/types"
)

// Tope de filas para la exportación: el libro de pedidos completo de un
// taller cabe acá con holgura.
const reportExportLimit = 100000

type ReportServiceInterface interface {
	GetOrderBook(ctx context.Context, filter types.Filter) ([]dto.OrderListItemDTO, uint64, error)
}

type ReportService struct {
	orderRepo repositories.OrderRepositoryInterface
	logger    *zap.Logger
}

func NewReportService(orderRepo repositories.OrderRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{orderRepo: orderRepo, logger: logger}
}

// GetOrderBook devuelve el libro de pedidos para exportar, con los mismos
// derivados (saldo, atraso) que se ven en los listados.
func (s *ReportService) GetOrderBook(ctx context.Context, filter types.Filter) ([]dto.OrderListItemDTO, uint64, error) {
	filter.Limit = reportExportLimit
	filter.Offset = 0

	rows, total, err := s.orderRepo.GetOrders(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	items := make([]dto.OrderListItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, listItemFromRow(row, now))
	}
	return items, total, nil
}
