package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bordados-backend/internal/entities"
	"bordados-backend/pkg/constants"
)

func intPtr(v int) *int { return &v }

func orderFixture(status constants.OrderStatus) *entities.Order {
	return &entities.Order{
		ID:          1,
		OrderNumber: 1001,
		ClientID:    1,
		Description: "Bordado de escudo en poleras",
		ServiceType: constants.ServiceBordado,
		Quantity:    100,
		Total:       decimal.NewFromInt(500),
		DueDate:     time.Now().Add(72 * time.Hour),
		Status:      status,
		CreatedAt:   time.Now(),
	}
}

func historyEntry(status constants.OrderStatus, qty *int) entities.OrderStatusHistory {
	return entities.OrderStatusHistory{
		OrderID:           1,
		Status:            status,
		QuantityDelivered: qty,
		ChangedBy:         "carla",
		ChangedAt:         time.Now(),
	}
}

func TestBuildOrderAggregate_SinPagosNiEntregas(t *testing.T) {
	order := orderFixture(constants.StatusRecibido)
	history := []entities.OrderStatusHistory{historyEntry(constants.StatusRecibido, nil)}

	agg := BuildOrderAggregate(order, history, nil, time.Now())

	assert.True(t, agg.TotalPaid.IsZero())
	assert.True(t, agg.RemainingBalance.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, float64(0), agg.PaymentProgress)
	assert.False(t, agg.IsPaid)
	assert.Equal(t, 0, agg.TotalDelivered)
	assert.Equal(t, 100, agg.RemainingToDeliver)
	assert.False(t, agg.IsDelayed)
	assert.False(t, agg.NeedsReconciliation)
}

func TestBuildOrderAggregate_EntregasParcialesSeAcumulan(t *testing.T) {
	order := orderFixture(constants.StatusEntregaParcial)
	history := []entities.OrderStatusHistory{
		historyEntry(constants.StatusRecibido, nil),
		historyEntry(constants.StatusEnProceso, nil),
		historyEntry(constants.StatusEntregaParcial, intPtr(40)),
		historyEntry(constants.StatusEntregaParcial, intPtr(25)),
	}

	agg := BuildOrderAggregate(order, history, nil, time.Now())

	assert.Equal(t, 65, agg.TotalDelivered)
	assert.Equal(t, 35, agg.RemainingToDeliver)
}

func TestBuildOrderAggregate_EntregadoCuentaTodo(t *testing.T) {
	// Una vez ENTREGADO, lo entregado es la cantidad del pedido aunque las
	// entregas parciales registradas no sumen el total.
	order := orderFixture(constants.StatusEntregado)
	history := []entities.OrderStatusHistory{
		historyEntry(constants.StatusRecibido, nil),
		historyEntry(constants.StatusEntregaParcial, intPtr(40)),
		historyEntry(constants.StatusEntregado, nil),
	}

	agg := BuildOrderAggregate(order, history, nil, time.Now())

	assert.Equal(t, 100, agg.TotalDelivered)
	assert.Equal(t, 0, agg.RemainingToDeliver)
}

func TestBuildOrderAggregate_PagosYProgreso(t *testing.T) {
	order := orderFixture(constants.StatusEnProceso)
	payments := []entities.Payment{
		{OrderID: 1, Amount: decimal.NewFromInt(200)},
		{OrderID: 1, Amount: decimal.NewFromInt(50)},
	}

	agg := BuildOrderAggregate(order, nil, payments, time.Now())

	assert.True(t, agg.TotalPaid.Equal(decimal.NewFromInt(250)))
	assert.True(t, agg.RemainingBalance.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, float64(50), agg.PaymentProgress)
	assert.False(t, agg.IsPaid)
}

func TestBuildOrderAggregate_PagadoCompleto(t *testing.T) {
	order := orderFixture(constants.StatusListo)
	payments := []entities.Payment{{OrderID: 1, Amount: decimal.NewFromInt(500)}}

	agg := BuildOrderAggregate(order, nil, payments, time.Now())

	assert.True(t, agg.IsPaid)
	assert.True(t, agg.RemainingBalance.IsZero())
	assert.Equal(t, float64(100), agg.PaymentProgress)
}

func TestBuildOrderAggregate_TotalCeroNoDividePorCero(t *testing.T) {
	order := orderFixture(constants.StatusRecibido)
	order.Total = decimal.Zero

	agg := BuildOrderAggregate(order, nil, nil, time.Now())

	assert.Equal(t, float64(0), agg.PaymentProgress)
	assert.True(t, agg.IsPaid) // saldo restante <= 0
}

func TestBuildOrderAggregate_Atraso(t *testing.T) {
	now := time.Now()

	vencido := orderFixture(constants.StatusEnProceso)
	vencido.DueDate = now.Add(-48 * time.Hour)
	agg := BuildOrderAggregate(vencido, nil, nil, now)
	assert.True(t, agg.IsDelayed)
	assert.Equal(t, -2, agg.DaysRemaining)

	// Un pedido entregado o cancelado nunca figura atrasado.
	for _, st := range []constants.OrderStatus{constants.StatusEntregado, constants.StatusCancelado} {
		terminado := orderFixture(st)
		terminado.DueDate = now.Add(-48 * time.Hour)
		agg := BuildOrderAggregate(terminado, nil, nil, now)
		assert.Falsef(t, agg.IsDelayed, "estado %s", st)
	}
}

func TestBuildOrderAggregate_PrioridadUrgente(t *testing.T) {
	normal := orderFixture(constants.StatusEnProceso)
	urgente := orderFixture(constants.StatusEnProceso)
	urgente.Urgent = true

	aggNormal := BuildOrderAggregate(normal, nil, nil, time.Now())
	aggUrgente := BuildOrderAggregate(urgente, nil, nil, time.Now())
	assert.Less(t, aggUrgente.StatusPriority, aggNormal.StatusPriority)

	// Lo urgente ya terminado no se adelanta.
	entregado := orderFixture(constants.StatusEntregado)
	entregado.Urgent = true
	aggEntregado := BuildOrderAggregate(entregado, nil, nil, time.Now())
	assert.Equal(t, constants.StatusPriority(constants.StatusEntregado), aggEntregado.StatusPriority)
}

func TestBuildOrderAggregate_DetectaDivergencia(t *testing.T) {
	order := orderFixture(constants.StatusListo)
	history := []entities.OrderStatusHistory{
		historyEntry(constants.StatusRecibido, nil),
		historyEntry(constants.StatusEnProceso, nil),
	}

	agg := BuildOrderAggregate(order, history, nil, time.Now())
	assert.True(t, agg.NeedsReconciliation)

	// Coincidiendo el último registro, no hay divergencia.
	history = append(history, historyEntry(constants.StatusListo, nil))
	agg = BuildOrderAggregate(order, history, nil, time.Now())
	assert.False(t, agg.NeedsReconciliation)
}
