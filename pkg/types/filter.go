package types

import "time"

// Filter representa los parámetros de filtrado, orden y paginación de los
// listados.
type Filter struct {
	Search     string            `json:"search,omitempty"`
	Status     string            `json:"status,omitempty"`
	ClientID   uint64            `json:"client_id,omitempty"`
	OnlyUrgent bool              `json:"only_urgent,omitempty"`
	DateFrom   *time.Time        `json:"date_from,omitempty"`
	DateTo     *time.Time        `json:"date_to,omitempty"`
	Sort       map[string]string `json:"sort,omitempty"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}
