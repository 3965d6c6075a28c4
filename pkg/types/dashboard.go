package types

import "github.com/shopspring/decimal"

// Cifras del tablero. Todo se recalcula sobre las filas actuales en cada
// request: no existe ninguna tabla de rollup que mantener sincronizada.

type DashboardCountByStatus struct {
	Status string `json:"status" db:"status"`
	Count  int64  `json:"count" db:"count"`
}

type DashboardMonthlyPoint struct {
	Month   string          `json:"month" db:"month"` // "2026-08"
	Orders  int64           `json:"orders" db:"orders"`
	Revenue decimal.Decimal `json:"revenue" db:"revenue"`
}

type DashboardServiceTypeStat struct {
	ServiceType string          `json:"service_type" db:"service_type"`
	Orders      int64           `json:"orders" db:"orders"`
	Revenue     decimal.Decimal `json:"revenue" db:"revenue"`
}

type DashboardDelayStats struct {
	Delayed int64 `json:"delayed"`
	OnTime  int64 `json:"on_time"`
}

type DashboardTopClient struct {
	ClientID uint64          `json:"client_id" db:"client_id"`
	Name     string          `json:"name" db:"name"`
	Orders   int64           `json:"orders" db:"orders"`
	Revenue  decimal.Decimal `json:"revenue" db:"revenue"`
}
