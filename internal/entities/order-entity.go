package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"bordados-backend/pkg/constants"
)

// Order es la unidad de trabajo del taller. El campo Status está
// desnormalizado: por invariante SIEMPRE debe coincidir con el estado del
// último registro de order_status_history. Solo se escribe dentro de la
// misma transacción que agrega ese registro.
type Order struct {
	ID          uint64                `json:"id" db:"id"`
	OrderNumber uint64                `json:"order_number" db:"order_number"`
	ClientID    uint64                `json:"client_id" db:"client_id"`
	Description string                `json:"description" db:"description"`
	ServiceType string                `json:"service_type" db:"service_type"`
	Quantity    int                   `json:"quantity" db:"quantity"`
	Total       decimal.Decimal       `json:"total" db:"total"`
	DueDate     time.Time             `json:"due_date" db:"due_date"`
	Urgent      bool                  `json:"urgent" db:"urgent"`
	Status      constants.OrderStatus `json:"status" db:"status"`
	CreatedAt   time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time            `json:"deleted_at" db:"deleted_at"`
}
