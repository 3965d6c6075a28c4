package dto

import (
	"github.com/shopspring/decimal"
)

type CreateOrderDTO struct {
	ClientID    uint64          `json:"client_id" validate:"required,gt=0"`
	Description string          `json:"description" validate:"required"`
	ServiceType string          `json:"service_type" validate:"required,service_type"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	Total       decimal.Decimal `json:"total" validate:"positive_decimal"`
	DueDate     string          `json:"due_date" validate:"required"` // RFC3339
	Urgent      bool            `json:"urgent"`
}

// UpdateOrderDTO edita campos que NO pasan por la máquina de estados.
// El estado solo cambia por POST /orders/:id/status.
type UpdateOrderDTO struct {
	Description *string          `json:"description"`
	ServiceType *string          `json:"service_type" validate:"omitempty,service_type"`
	Quantity    *int             `json:"quantity" validate:"omitempty,gt=0"`
	Total       *decimal.Decimal `json:"total"`
	DueDate     *string          `json:"due_date"`
	Urgent      *bool            `json:"urgent"`
}

// TransitionStatusDTO es la solicitud de cambio de estado. Las fotos de
// evidencia viajan aparte, en el multipart.
type TransitionStatusDTO struct {
	TargetStatus      string `json:"target_status" validate:"required,order_status"`
	Observation       string `json:"observation"`
	QuantityDelivered *int   `json:"quantity_delivered" validate:"omitempty,gt=0"`
}

type TransitionResultDTO struct {
	OrderID        uint64 `json:"order_id"`
	Status         string `json:"status"`
	HistoryEntryID uint64 `json:"history_entry_id"`
}

// OrderListItemDTO es la fila de los listados, con los derivados que la UI
// usa para pintar badges y ordenar.
type OrderListItemDTO struct {
	ID               uint64          `json:"id"`
	OrderNumber      uint64          `json:"order_number"`
	ClientID         uint64          `json:"client_id"`
	ClientName       string          `json:"client_name"`
	Description      string          `json:"description"`
	ServiceType      string          `json:"service_type"`
	Quantity         int             `json:"quantity"`
	Total            decimal.Decimal `json:"total"`
	DueDate          string          `json:"due_date"`
	Urgent           bool            `json:"urgent"`
	Status           string          `json:"status"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	IsPaid           bool            `json:"is_paid"`
	IsDelayed        bool            `json:"is_delayed"`
	StatusPriority   int             `json:"status_priority"`
	CreatedAt        string          `json:"created_at"`
}
