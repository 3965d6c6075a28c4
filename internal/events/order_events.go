package events

import "github.com/shopspring/decimal"

// OrderCreatedEvent se publica al dar de alta un pedido.
type OrderCreatedEvent struct {
	OrderID     uint64
	OrderNumber uint64
	ClientID    uint64
	Actor       string
}

func (e OrderCreatedEvent) Name() string { return "order.created" }

// OrderStatusChangedEvent se publica después de confirmar una transición.
type OrderStatusChangedEvent struct {
	OrderID        uint64
	FromStatus     string
	ToStatus       string
	HistoryEntryID uint64
	Actor          string
}

func (e OrderStatusChangedEvent) Name() string { return "order.status.changed" }

// PaymentRecordedEvent se publica después de confirmar un abono.
type PaymentRecordedEvent struct {
	OrderID          uint64
	PaymentID        uint64
	AmountApplied    decimal.Decimal
	RemainingBalance decimal.Decimal
	Actor            string
}

func (e PaymentRecordedEvent) Name() string { return "order.payment.recorded" }
