package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment es un recibo de dinero contra un pedido. Append-only: una
// corrección es un registro nuevo, nunca una edición.
type Payment struct {
	ID         uint64          `json:"id" db:"id"`
	OrderID    uint64          `json:"order_id" db:"order_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Method     string          `json:"method" db:"method"`
	Notes      *string         `json:"notes" db:"notes"`
	PhotoURLs  []string        `json:"photo_urls" db:"photo_urls"`
	ReceivedBy string          `json:"received_by" db:"received_by"`
	PaidAt     time.Time       `json:"paid_at" db:"paid_at"`
}
