package services

import (
	"context"

	"go.uber.org/zap"

	"bordados-backend/internal/dto"
	"bordados-backend/internal/repositories"
)

type OrderHistoryServiceInterface interface {
	GetTimeline(ctx context.Context, orderID uint64) ([]dto.HistoryEntryDTO, error)
}

type OrderHistoryService struct {
	orderRepo   repositories.OrderRepositoryInterface
	historyRepo repositories.OrderHistoryRepositoryInterface
	logger      *zap.Logger
}

func NewOrderHistoryService(
	orderRepo repositories.OrderRepositoryInterface,
	historyRepo repositories.OrderHistoryRepositoryInterface,
	logger *zap.Logger,
) OrderHistoryServiceInterface {
	return &OrderHistoryService{orderRepo: orderRepo, historyRepo: historyRepo, logger: logger}
}

// GetTimeline devuelve el historial completo en orden cronológico.
func (s *OrderHistoryService) GetTimeline(ctx context.Context, orderID uint64) ([]dto.HistoryEntryDTO, error) {
	if _, err := s.orderRepo.FindOrder(ctx, orderID); err != nil {
		return nil, err
	}
	history, err := s.historyRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return historyDTOs(history), nil
}
