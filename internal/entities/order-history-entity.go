package entities

import (
	"time"

	"bordados-backend/pkg/constants"
)

// OrderStatusHistory es el registro inmutable de una transición de estado.
// Solo se agrega, nunca se edita ni se borra: el multiconjunto de estas
// filas es la única fuente de verdad del estado del pedido.
type OrderStatusHistory struct {
	ID          uint64                `json:"id" db:"id"`
	OrderID     uint64                `json:"order_id" db:"order_id"`
	Status      constants.OrderStatus `json:"status" db:"status"`
	Observation *string               `json:"observation" db:"observation"`
	// Solo tiene sentido cuando Status es ENTREGA_PARCIAL: unidades
	// entregadas en ESTA transición, no el acumulado.
	QuantityDelivered *int      `json:"quantity_delivered" db:"quantity_delivered"`
	PhotoURLs         []string  `json:"photo_urls" db:"photo_urls"`
	ChangedBy         string    `json:"changed_by" db:"changed_by"`
	ChangedAt         time.Time `json:"changed_at" db:"changed_at"`
}
