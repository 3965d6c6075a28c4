package dto

import "github.com/shopspring/decimal"

type RecordPaymentDTO struct {
	Amount decimal.Decimal `json:"amount" validate:"positive_decimal"`
	Method string          `json:"method" validate:"required,payment_method"`
	Notes  *string         `json:"notes"`
}

// PaymentResultDTO devuelve lo que realmente se aplicó. AmountApplied puede
// ser menor que lo solicitado: un sobrepago se recorta al saldo restante.
type PaymentResultDTO struct {
	PaymentID        uint64          `json:"payment_id"`
	AmountApplied    decimal.Decimal `json:"amount_applied"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	PaymentProgress  float64         `json:"payment_progress"`
}

type PaymentDTO struct {
	ID         uint64          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Notes      *string         `json:"notes"`
	PhotoURLs  []string        `json:"photo_urls"`
	ReceivedBy string          `json:"received_by"`
	PaidAt     string          `json:"paid_at"`
}

type PaymentListDTO struct {
	Payments         []PaymentDTO    `json:"payments"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	PaymentProgress  float64         `json:"payment_progress"`
}
