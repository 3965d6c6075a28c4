package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bordados-backend/internal/dto"
	"bordados-backend/internal/entities"
	"bordados-backend/internal/repositories"
	"bordados-backend/pkg/types"
)

type ClientServiceInterface interface {
	GetClients(ctx context.Context, filter types.Filter) ([]dto.ClientDTO, uint64, error)
	FindClient(ctx context.Context, id uint64) (*dto.ClientDetailDTO, error)
}

type ClientService struct {
	clientRepo repositories.ClientRepositoryInterface
	orderRepo  repositories.OrderRepositoryInterface
	logger     *zap.Logger
}

func NewClientService(
	clientRepo repositories.ClientRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	logger *zap.Logger,
) ClientServiceInterface {
	return &ClientService{clientRepo: clientRepo, orderRepo: orderRepo, logger: logger}
}

func clientDTO(c entities.Client) dto.ClientDTO {
	return dto.ClientDTO{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Local().Format(timeFormat),
	}
}

func (s *ClientService) GetClients(ctx context.Context, filter types.Filter) ([]dto.ClientDTO, uint64, error) {
	clients, total, err := s.clientRepo.GetClients(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ClientDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientDTO(c))
	}
	return out, total, nil
}

// FindClient devuelve el cliente con sus pedidos (los más recientes primero).
func (s *ClientService) FindClient(ctx context.Context, id uint64) (*dto.ClientDetailDTO, error) {
	client, err := s.clientRepo.FindClient(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, _, err := s.orderRepo.GetOrders(ctx, types.Filter{ClientID: id, Limit: 100})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	orders := make([]dto.OrderListItemDTO, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, listItemFromRow(row, now))
	}

	return &dto.ClientDetailDTO{
		ClientDTO: clientDTO(*client),
		Orders:    orders,
	}, nil
}
