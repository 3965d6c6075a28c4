package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_TablaCompleta(t *testing.T) {
	all := []OrderStatus{
		StatusRecibido, StatusEnProceso, StatusListo,
		StatusEntregaParcial, StatusEntregado, StatusCancelado,
	}

	// allowed[from][to]
	allowed := map[OrderStatus]map[OrderStatus]bool{
		StatusRecibido: {
			StatusEnProceso: true, StatusListo: true,
			StatusEntregaParcial: true, StatusEntregado: true, StatusCancelado: true,
		},
		StatusEnProceso: {
			StatusListo: true, StatusEntregaParcial: true,
			StatusEntregado: true, StatusCancelado: true,
		},
		StatusListo: {
			StatusEntregaParcial: true, StatusEntregado: true, StatusCancelado: true,
		},
		StatusEntregaParcial: {
			StatusEntregaParcial: true, StatusEntregado: true, StatusCancelado: true,
		},
		StatusEntregado: {},
		StatusCancelado: {},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			got := CanTransition(from, to)
			assert.Equalf(t, want, got, "transición %s -> %s", from, to)
		}
	}
}

func TestCanTransition_NuncaSeRetrocede(t *testing.T) {
	assert.False(t, CanTransition(StatusListo, StatusEnProceso))
	assert.False(t, CanTransition(StatusEnProceso, StatusRecibido))
	assert.False(t, CanTransition(StatusEntregaParcial, StatusListo))
}

func TestCanTransition_EstadoDesconocido(t *testing.T) {
	assert.False(t, CanTransition(StatusRecibido, OrderStatus("PERDIDO")))
	assert.False(t, CanTransition(OrderStatus("PERDIDO"), StatusListo))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusRecibido, StatusEnProceso, StatusListo,
		StatusEntregaParcial, StatusEntregado, StatusCancelado,
	} {
		assert.Truef(t, IsValidStatus(s), "%s debería ser válido", s)
	}
	assert.False(t, IsValidStatus(OrderStatus("EN_CAMINO")))
	assert.False(t, IsValidStatus(OrderStatus("")))
}

func TestIsFinalStatus(t *testing.T) {
	assert.True(t, IsFinalStatus(StatusEntregado))
	assert.True(t, IsFinalStatus(StatusCancelado))
	assert.False(t, IsFinalStatus(StatusRecibido))
	assert.False(t, IsFinalStatus(StatusEntregaParcial))
}

func TestStatusPriority_Orden(t *testing.T) {
	assert.Less(t, StatusPriority(StatusRecibido), StatusPriority(StatusEnProceso))
	assert.Less(t, StatusPriority(StatusEnProceso), StatusPriority(StatusListo))
	assert.Less(t, StatusPriority(StatusListo), StatusPriority(StatusEntregaParcial))
	assert.Less(t, StatusPriority(StatusEntregaParcial), StatusPriority(StatusEntregado))
	assert.Less(t, StatusPriority(StatusEntregado), StatusPriority(StatusCancelado))
}
