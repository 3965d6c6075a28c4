package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bordados-backend/internal/dto"
	"bordados-backend/internal/entities"
	"bordados-backend/internal/events"
	"bordados-backend/internal/repositories"
	"bordados-backend/pkg/constants"
	apperrors "bordados-backend/pkg/errors"
	"bordados-backend/pkg/eventbus"
	"bordados-backend/pkg/filestorage"
	"bordados-backend/pkg/utils"
)

type PaymentServiceInterface interface {
	RecordPayment(ctx context.Context, orderID uint64, payload dto.RecordPaymentDTO, photos []EvidenceFile) (*dto.PaymentResultDTO, error)
	ListPayments(ctx context.Context, orderID uint64) (*dto.PaymentListDTO, error)
}

type PaymentService struct {
	orderRepo   repositories.OrderRepositoryInterface
	paymentRepo repositories.PaymentRepositoryInterface
	txManager   repositories.TxManagerInterface
	fileStorage filestorage.FileStorageInterface
	bus         *eventbus.Bus
	logger      *zap.Logger
}

func NewPaymentService(
	orderRepo repositories.OrderRepositoryInterface,
	paymentRepo repositories.PaymentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	fileStorage filestorage.FileStorageInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) PaymentServiceInterface {
	return &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		fileStorage: fileStorage,
		bus:         bus,
		logger:      logger,
	}
}

// RecordPayment registra un abono contra un pedido. La regla central es el
// recorte: si el monto supera el saldo restante, se aplica solo el saldo y
// el recorte queda visible en AmountApplied. El total acumulado de pagos
// nunca supera el total del pedido.
//
// El estado del pedido no interviene: cobranza y avance del trabajo se
// llevan por separado. Un pedido cancelado con saldo pendiente (por
// ejemplo, cancelado después de una entrega parcial) sigue aceptando
// abonos hasta saldarse.
//
// Saldo y recorte se calculan DENTRO de la transacción, con la fila del
// pedido bloqueada: dos cajeros cobrando a la vez no pueden sobrepasar el
// total entre los dos.
func (s *PaymentService) RecordPayment(ctx context.Context, orderID uint64, payload dto.RecordPaymentDTO, photos []EvidenceFile) (*dto.PaymentResultDTO, error) {
	actor, err := utils.GetActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if payload.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}
	if !constants.IsValidPaymentMethod(payload.Method) {
		return nil, apperrors.ErrInvalidPayMethod
	}

	photoURLs := make([]string, 0, len(photos))
	for _, photo := range photos {
		url, err := s.fileStorage.Save(photo.Reader, photo.Filename, "payments")
		if err != nil {
			s.logger.Error("No se pudo subir el comprobante", zap.Error(err), zap.Uint64("orderID", orderID))
			return nil, apperrors.ErrEvidenceUpload
		}
		photoURLs = append(photoURLs, url)
	}

	result := &dto.PaymentResultDTO{}
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		order, err := s.orderRepo.FindOrderForUpdateInTx(ctx, tx, orderID)
		if err != nil {
			return err
		}

		alreadyPaid, err := s.paymentRepo.SumPaidInTx(ctx, tx, orderID)
		if err != nil {
			return err
		}

		remaining := order.Total.Sub(alreadyPaid)
		if remaining.LessThanOrEqual(decimal.Zero) {
			return apperrors.ErrOrderFullyPaid
		}

		applied := payload.Amount
		if applied.GreaterThan(remaining) {
			s.logger.Warn("Sobrepago recortado al saldo restante",
				zap.Uint64("orderID", orderID),
				zap.String("solicitado", payload.Amount.StringFixed(2)),
				zap.String("aplicado", remaining.StringFixed(2)))
			applied = remaining
		}

		payment := &entities.Payment{
			OrderID:    orderID,
			Amount:     applied,
			Method:     payload.Method,
			Notes:      payload.Notes,
			PhotoURLs:  photoURLs,
			ReceivedBy: actor,
		}
		if _, err := s.paymentRepo.CreateInTx(ctx, tx, payment); err != nil {
			return err
		}

		totalPaid := alreadyPaid.Add(applied)
		result.PaymentID = payment.ID
		result.AmountApplied = applied
		result.TotalPaid = totalPaid
		result.RemainingBalance = order.Total.Sub(totalPaid)
		result.PaymentProgress = paymentProgress(totalPaid, order.Total)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Pago registrado",
		zap.Uint64("orderID", orderID),
		zap.Uint64("paymentID", result.PaymentID),
		zap.String("aplicado", result.AmountApplied.StringFixed(2)),
		zap.String("actor", actor))

	s.bus.Publish(ctx, events.PaymentRecordedEvent{
		OrderID:          orderID,
		PaymentID:        result.PaymentID,
		AmountApplied:    result.AmountApplied,
		RemainingBalance: result.RemainingBalance,
		Actor:            actor,
	})
	return result, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, orderID uint64) (*dto.PaymentListDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	totalPaid := totalPaidOf(payments)
	return &dto.PaymentListDTO{
		Payments:         paymentDTOs(payments),
		TotalPaid:        totalPaid,
		RemainingBalance: order.Total.Sub(totalPaid),
		PaymentProgress:  paymentProgress(totalPaid, order.Total),
	}, nil
}
