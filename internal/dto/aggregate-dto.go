package dto

import "github.com/shopspring/decimal"

// OrderAggregateDTO es la vista derivada de un pedido: pedido + historial +
// pagos, con todos los cálculos que la UI necesita. Es una función pura de
// sus filas; nunca se persiste.
type OrderAggregateDTO struct {
	ID          uint64          `json:"id"`
	OrderNumber uint64          `json:"order_number"`
	ClientID    uint64          `json:"client_id"`
	Description string          `json:"description"`
	ServiceType string          `json:"service_type"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	DueDate     string          `json:"due_date"`
	Urgent      bool            `json:"urgent"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`

	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	PaymentProgress  float64         `json:"payment_progress"`
	IsPaid           bool            `json:"is_paid"`

	TotalDelivered     int `json:"total_delivered"`
	RemainingToDeliver int `json:"remaining_to_deliver"`

	IsDelayed      bool `json:"is_delayed"`
	DaysRemaining  int  `json:"days_remaining"`
	StatusPriority int  `json:"status_priority"`

	// true cuando orders.status no coincide con el último registro del
	// historial: falla de integridad que requiere reconciliación manual.
	NeedsReconciliation bool `json:"needs_reconciliation,omitempty"`

	History  []HistoryEntryDTO `json:"history"`
	Payments []PaymentDTO      `json:"payments"`
}
