package dto

type HistoryEntryDTO struct {
	ID                uint64   `json:"id"`
	Status            string   `json:"status"`
	Observation       *string  `json:"observation"`
	QuantityDelivered *int     `json:"quantity_delivered,omitempty"`
	PhotoURLs         []string `json:"photo_urls"`
	ChangedBy         string   `json:"changed_by"`
	ChangedAt         string   `json:"changed_at"`
}
