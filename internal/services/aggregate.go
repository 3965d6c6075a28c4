package services

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"bordados-backend/internal/dto"
	"bordados-backend/internal/entities"
	"bordados-backend/internal/repositories"
	"bordados-backend/pkg/constants"
)

// Derivación pura del agregado de un pedido. Mismas filas de entrada,
// mismo resultado: acá no hay estado oculto ni caché que pueda divergir
// de las tablas.

const timeFormat = "2006-01-02 15:04:05"

func totalPaidOf(payments []entities.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// paymentProgress devuelve el avance de pago en porcentaje. Un total en
// cero se reporta como 0%, nunca como división por cero.
func paymentProgress(totalPaid, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := totalPaid.Div(total).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}

// totalDeliveredOf: la cantidad completa una vez ENTREGADO; si no, la suma
// de las entregas parciales del historial.
func totalDeliveredOf(order *entities.Order, history []entities.OrderStatusHistory) int {
	if order.Status == constants.StatusEntregado {
		return order.Quantity
	}
	sum := 0
	for _, h := range history {
		if h.Status == constants.StatusEntregaParcial && h.QuantityDelivered != nil {
			sum += *h.QuantityDelivered
		}
	}
	return sum
}

func isDelayed(order *entities.Order, now time.Time) bool {
	if order.Status == constants.StatusEntregado || order.Status == constants.StatusCancelado {
		return false
	}
	return order.DueDate.Before(now)
}

// daysRemaining: diferencia en días con signo; negativa cuando ya venció.
func daysRemaining(dueDate, now time.Time) int {
	return int(math.Floor(dueDate.Sub(now).Hours() / 24))
}

// statusPriority ordena los listados: urgentes en curso primero, después
// por etapa nominal, y los finales al fondo.
func statusPriority(status constants.OrderStatus, urgent bool) int {
	p := constants.StatusPriority(status)
	if urgent && !constants.IsFinalStatus(status) {
		p -= 100
	}
	return p
}

func historyDTOs(history []entities.OrderStatusHistory) []dto.HistoryEntryDTO {
	out := make([]dto.HistoryEntryDTO, 0, len(history))
	for _, h := range history {
		out = append(out, dto.HistoryEntryDTO{
			ID:                h.ID,
			Status:            string(h.Status),
			Observation:       h.Observation,
			QuantityDelivered: h.QuantityDelivered,
			PhotoURLs:         h.PhotoURLs,
			ChangedBy:         h.ChangedBy,
			ChangedAt:         h.ChangedAt.Local().Format(timeFormat),
		})
	}
	return out
}

func paymentDTOs(payments []entities.Payment) []dto.PaymentDTO {
	out := make([]dto.PaymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentDTO{
			ID:         p.ID,
			Amount:     p.Amount,
			Method:     p.Method,
			Notes:      p.Notes,
			PhotoURLs:  p.PhotoURLs,
			ReceivedBy: p.ReceivedBy,
			PaidAt:     p.PaidAt.Local().Format(timeFormat),
		})
	}
	return out
}

// BuildOrderAggregate arma la vista derivada completa de un pedido.
// NeedsReconciliation se enciende cuando orders.status no coincide con el
// último registro del historial: eso es corrupción de datos, no un error
// del usuario, y no se corrige acá.
func BuildOrderAggregate(
	order *entities.Order,
	history []entities.OrderStatusHistory,
	payments []entities.Payment,
	now time.Time,
) dto.OrderAggregateDTO {
	totalPaid := totalPaidOf(payments)
	remaining := order.Total.Sub(totalPaid)
	delivered := totalDeliveredOf(order, history)

	remainingToDeliver := order.Quantity - delivered
	if remainingToDeliver < 0 {
		remainingToDeliver = 0
	}

	agg := dto.OrderAggregateDTO{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		ClientID:    order.ClientID,
		Description: order.Description,
		ServiceType: order.ServiceType,
		Quantity:    order.Quantity,
		Total:       order.Total,
		DueDate:     order.DueDate.Local().Format(timeFormat),
		Urgent:      order.Urgent,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt.Local().Format(timeFormat),

		TotalPaid:        totalPaid,
		RemainingBalance: remaining,
		PaymentProgress:  paymentProgress(totalPaid, order.Total),
		IsPaid:           remaining.LessThanOrEqual(decimal.Zero),

		TotalDelivered:     delivered,
		RemainingToDeliver: remainingToDeliver,

		IsDelayed:      isDelayed(order, now),
		DaysRemaining:  daysRemaining(order.DueDate, now),
		StatusPriority: statusPriority(order.Status, order.Urgent),

		History:  historyDTOs(history),
		Payments: paymentDTOs(payments),
	}

	if len(history) > 0 {
		latest := history[len(history)-1]
		if latest.Status != order.Status {
			agg.NeedsReconciliation = true
		}
	}

	return agg
}

// listItemFromRow deriva la fila de listado a partir del query enriquecido.
func listItemFromRow(row repositories.OrderListRow, now time.Time) dto.OrderListItemDTO {
	remaining := row.Total.Sub(row.TotalPaid)
	return dto.OrderListItemDTO{
		ID:               row.ID,
		OrderNumber:      row.OrderNumber,
		ClientID:         row.ClientID,
		ClientName:       row.ClientName,
		Description:      row.Description,
		ServiceType:      row.ServiceType,
		Quantity:         row.Quantity,
		Total:            row.Total,
		DueDate:          row.DueDate.Local().Format(timeFormat),
		Urgent:           row.Urgent,
		Status:           string(row.Status),
		TotalPaid:        row.TotalPaid,
		RemainingBalance: remaining,
		IsPaid:           remaining.LessThanOrEqual(decimal.Zero),
		IsDelayed:        isDelayed(&row.Order, now),
		StatusPriority:   statusPriority(row.Status, row.Urgent),
		CreatedAt:        row.CreatedAt.Local().Format(timeFormat),
	}
}
