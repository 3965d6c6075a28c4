package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bordados-backend/internal/events"
	"bordados-backend/pkg/eventbus"
)

// AuditListener deja una línea estructurada por cada suceso del ciclo de
// vida. Es también el punto de enganche para futuras notificaciones al
// cliente (WhatsApp, correo) sin tocar los servicios.
type AuditListener struct {
	logger *zap.Logger
}

func NewAuditListener(logger *zap.Logger) *AuditListener {
	return &AuditListener{logger: logger}
}

func (l *AuditListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.OrderCreatedEvent{}.Name(), l.onOrderCreated)
	bus.Subscribe(events.OrderStatusChangedEvent{}.Name(), l.onStatusChanged)
	bus.Subscribe(events.PaymentRecordedEvent{}.Name(), l.onPaymentRecorded)
}

func (l *AuditListener) onOrderCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderCreatedEvent)
	if !ok {
		return fmt.Errorf("tipo de evento inesperado: %T", event)
	}
	l.logger.Info("AUDIT pedido creado",
		zap.Uint64("orderID", e.OrderID),
		zap.Uint64("orderNumber", e.OrderNumber),
		zap.Uint64("clientID", e.ClientID),
		zap.String("actor", e.Actor))
	return nil
}

func (l *AuditListener) onStatusChanged(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderStatusChangedEvent)
	if !ok {
		return fmt.Errorf("tipo de evento inesperado: %T", event)
	}
	l.logger.Info("AUDIT transición de estado",
		zap.Uint64("orderID", e.OrderID),
		zap.String("from", e.FromStatus),
		zap.String("to", e.ToStatus),
		zap.Uint64("historyEntryID", e.HistoryEntryID),
		zap.String("actor", e.Actor))
	return nil
}

func (l *AuditListener) onPaymentRecorded(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.PaymentRecordedEvent)
	if !ok {
		return fmt.Errorf("tipo de evento inesperado: %T", event)
	}
	l.logger.Info("AUDIT pago registrado",
		zap.Uint64("orderID", e.OrderID),
		zap.Uint64("paymentID", e.PaymentID),
		zap.String("aplicado", e.AmountApplied.StringFixed(2)),
		zap.String("saldo", e.RemainingBalance.StringFixed(2)),
		zap.String("actor", e.Actor))
	return nil
}
