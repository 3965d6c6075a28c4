package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"bordados-backend/internal/dto"
	"bordados-backend/internal/entities"
	"bordados-backend/internal/events"
	"bordados-backend/internal/repositories"
	"bordados-backend/pkg/constants"
	apperrors "bordados-backend/pkg/errors"
	"bordados-backend/pkg/eventbus"
	"bordados-backend/pkg/filestorage"
	"bordados-backend/pkg/types"
	"bordados-backend/pkg/utils"
)

// EvidenceFile es una foto de evidencia recibida en el multipart, ya abierta.
type EvidenceFile struct {
	Reader   io.Reader
	Filename string
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderAggregateDTO, error)
	GetOrders(ctx context.Context, filter types.Filter) ([]dto.OrderListItemDTO, uint64, error)
	FindOrderAggregate(ctx context.Context, id uint64) (*dto.OrderAggregateDTO, error)
	UpdateOrderFields(ctx context.Context, id uint64, payload dto.UpdateOrderDTO) (*dto.OrderAggregateDTO, error)
	SoftDeleteOrder(ctx context.Context, id uint64) error
	TransitionStatus(ctx context.Context, orderID uint64, payload dto.TransitionStatusDTO, photos []EvidenceFile) (*dto.TransitionResultDTO, error)
}

type OrderService struct {
	orderRepo   repositories.OrderRepositoryInterface
	historyRepo repositories.OrderHistoryRepositoryInterface
	paymentRepo repositories.PaymentRepositoryInterface
	clientRepo  repositories.ClientRepositoryInterface
	txManager   repositories.TxManagerInterface
	fileStorage filestorage.FileStorageInterface
	bus         *eventbus.Bus
	logger      *zap.Logger
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	historyRepo repositories.OrderHistoryRepositoryInterface,
	paymentRepo repositories.PaymentRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
	txManager repositories.TxManagerInterface,
	fileStorage filestorage.FileStorageInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		txManager:   txManager,
		fileStorage: fileStorage,
		bus:         bus,
		logger:      logger,
	}
}

// CreateOrder da de alta un pedido. El pedido y su primer registro de
// historial (RECIBIDO, sintético) se insertan en la misma transacción:
// un pedido sin historial violaría la invariante desde el primer segundo.
func (s *OrderService) CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderAggregateDTO, error) {
	actor, err := utils.GetActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.clientRepo.FindClient(ctx, payload.ClientID); err != nil {
		return nil, err
	}

	dueDate, err := time.Parse(time.RFC3339, payload.DueDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("fecha de entrega inválida: %q", payload.DueDate)
	}

	order := &entities.Order{
		ClientID:    payload.ClientID,
		Description: payload.Description,
		ServiceType: payload.ServiceType,
		Quantity:    payload.Quantity,
		Total:       payload.Total,
		DueDate:     dueDate,
		Urgent:      payload.Urgent,
		Status:      constants.StatusRecibido,
	}

	observation := "Pedido recibido"
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.orderRepo.CreateOrderInTx(ctx, tx, order); err != nil {
			return err
		}
		entry := &entities.OrderStatusHistory{
			OrderID:     order.ID,
			Status:      constants.StatusRecibido,
			Observation: &observation,
			PhotoURLs:   []string{},
			ChangedBy:   actor,
		}
		_, err := s.historyRepo.CreateInTx(ctx, tx, entry)
		return err
	})
	if err != nil {
		s.logger.Error("No se pudo crear el pedido", zap.Error(err), zap.Uint64("clientID", payload.ClientID))
		return nil, err
	}

	s.logger.Info("Pedido creado",
		zap.Uint64("orderID", order.ID),
		zap.Uint64("orderNumber", order.OrderNumber),
		zap.String("actor", actor))

	s.bus.Publish(ctx, events.OrderCreatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		ClientID:    order.ClientID,
		Actor:       actor,
	})

	return s.FindOrderAggregate(ctx, order.ID)
}

func (s *OrderService) GetOrders(ctx context.Context, filter types.Filter) ([]dto.OrderListItemDTO, uint64, error) {
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

// FindOrderAggregate arma la vista completa y además verifica la invariante:
// si orders.status no coincide con el último registro del historial, el
// agregado sale marcado para reconciliación y queda registrado en el log.
func (s *OrderService) FindOrderAggregate(ctx context.Context, id uint64) (*dto.OrderAggregateDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := s.historyRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}

	agg := BuildOrderAggregate(order, history, payments, time.Now())
	if agg.NeedsReconciliation {
		s.logger.Error("Estado del pedido divergente de su historial",
			zap.Uint64("orderID", id),
			zap.String("orderStatus", string(order.Status)),
			zap.Error(apperrors.ErrStatusDiverged))
	}
	return &agg, nil
}

// UpdateOrderFields edita los campos que no pasan por la máquina de estados.
// Reglas: la cantidad nueva no puede quedar por debajo de lo ya entregado,
// y el total nuevo no puede quedar por debajo de lo ya cobrado.
func (s *OrderService) UpdateOrderFields(ctx context.Context, id uint64, payload dto.UpdateOrderDTO) (*dto.OrderAggregateDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if constants.IsFinalStatus(order.Status) {
		return nil, apperrors.ErrOrderTerminal
	}

	if payload.Description != nil {
		order.Description = *payload.Description
	}
	if payload.ServiceType != nil {
		order.ServiceType = *payload.ServiceType
	}
	if payload.Urgent != nil {
		order.Urgent = *payload.Urgent
	}
	if payload.DueDate != nil {
		dueDate, err := time.Parse(time.RFC3339, *payload.DueDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("fecha de entrega inválida: %q", *payload.DueDate)
		}
		order.DueDate = dueDate
	}

	if payload.Quantity != nil {
		history, err := s.historyRepo.FindByOrderID(ctx, id)
		if err != nil {
			return nil, err
		}
		delivered := totalDeliveredOf(order, history)
		if *payload.Quantity < delivered {
			return nil, fmt.Errorf("%w: ya se entregaron %d unidades", apperrors.ErrQuantityExceeded, delivered)
		}
		order.Quantity = *payload.Quantity
	}

	if payload.Total != nil {
		totalPaid, err := s.paymentRepo.SumPaid(ctx, id)
		if err != nil {
			return nil, err
		}
		if payload.Total.LessThan(totalPaid) {
			return nil, apperrors.NewInvalidInputError(
				"el total nuevo (%s) es menor a lo ya cobrado (%s)",
				payload.Total.StringFixed(2), totalPaid.StringFixed(2))
		}
		order.Total = *payload.Total
	}

	if err := s.orderRepo.UpdateOrderFields(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Pedido actualizado", zap.Uint64("orderID", id))
	return s.FindOrderAggregate(ctx, id)
}

func (s *OrderService) SoftDeleteOrder(ctx context.Context, id uint64) error {
	if err := s.orderRepo.SoftDeleteOrder(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Pedido eliminado (soft delete)", zap.Uint64("orderID", id))
	return nil
}

// TransitionStatus es el único camino por el que cambia el estado de un
// pedido. La secuencia es deliberada:
//
//  1. validaciones que no tocan la BD (estado conocido, observación);
//  2. subida de las fotos de evidencia, FUERA de la transacción: si algo
//     falla después, los archivos huérfanos son basura tolerable, mientras
//     que una fila de historial apuntando a fotos inexistentes no lo es;
//  3. transacción: lock de la fila del pedido, revalidación de la
//     transición contra el estado fresco, tope de entregas parciales,
//     insert del historial y update del estado desnormalizado.
func (s *OrderService) TransitionStatus(ctx context.Context, orderID uint64, payload dto.TransitionStatusDTO, photos []EvidenceFile) (*dto.TransitionResultDTO, error) {
	actor, err := utils.GetActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	target := constants.OrderStatus(payload.TargetStatus)
	if !constants.IsValidStatus(target) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidTransition, payload.TargetStatus)
	}
	if payload.Observation == "" {
		return nil, apperrors.ErrMissingObservation
	}
	if target == constants.StatusEntregaParcial && payload.QuantityDelivered == nil {
		return nil, apperrors.ErrQuantityRequired
	}

	photoURLs := make([]string, 0, len(photos))
	for _, photo := range photos {
		url, err := s.fileStorage.Save(photo.Reader, photo.Filename, "status")
		if err != nil {
			s.logger.Error("No se pudo subir la evidencia", zap.Error(err), zap.Uint64("orderID", orderID))
			return nil, apperrors.ErrEvidenceUpload
		}
		photoURLs = append(photoURLs, url)
	}

	result := &dto.TransitionResultDTO{OrderID: orderID}
	var fromStatus constants.OrderStatus
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		order, err := s.orderRepo.FindOrderForUpdateInTx(ctx, tx, orderID)
		if err != nil {
			return err
		}
		fromStatus = order.Status

		if constants.IsFinalStatus(order.Status) {
			return apperrors.ErrOrderTerminal
		}
		if !constants.CanTransition(order.Status, target) {
			return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, order.Status, target)
		}

		if target == constants.StatusEntregaParcial {
			delivered, err := s.historyRepo.SumDeliveredInTx(ctx, tx, orderID)
			if err != nil {
				return err
			}
			if delivered+*payload.QuantityDelivered > order.Quantity {
				return fmt.Errorf("%w: entregadas %d de %d, se intentó entregar %d",
					apperrors.ErrQuantityExceeded, delivered, order.Quantity, *payload.QuantityDelivered)
			}
		}

		entry := &entities.OrderStatusHistory{
			OrderID:           orderID,
			Status:            target,
			Observation:       utils.StringPtr(payload.Observation),
			QuantityDelivered: payload.QuantityDelivered,
			PhotoURLs:         photoURLs,
			ChangedBy:         actor,
		}
		if _, err := s.historyRepo.CreateInTx(ctx, tx, entry); err != nil {
			return err
		}
		if err := s.orderRepo.UpdateStatusInTx(ctx, tx, orderID, target); err != nil {
			return err
		}

		result.Status = string(target)
		result.HistoryEntryID = entry.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transición de estado aplicada",
		zap.Uint64("orderID", orderID),
		zap.String("target", string(target)),
		zap.String("actor", actor))

	s.bus.Publish(ctx, events.OrderStatusChangedEvent{
		OrderID:        orderID,
		FromStatus:     string(fromStatus),
		ToStatus:       string(target),
		HistoryEntryID: result.HistoryEntryID,
		Actor:          actor,
	})
	return result, nil
}
