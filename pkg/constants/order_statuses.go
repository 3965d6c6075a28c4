package constants

// --- ESTADOS DE PEDIDO (coinciden con los codigos en la BD) ---
type OrderStatus string

const (
	StatusRecibido       OrderStatus = "RECIBIDO"
	StatusEnProceso      OrderStatus = "EN_PROCESO"
	StatusListo          OrderStatus = "LISTO"
	StatusEntregaParcial OrderStatus = "ENTREGA_PARCIAL"
	StatusEntregado      OrderStatus = "ENTREGADO"
	StatusCancelado      OrderStatus = "CANCELADO"
)

// Orden nominal de avance. CANCELADO queda fuera: no es una etapa,
// es una salida lateral alcanzable desde cualquier estado no terminal.
var statusOrder = []OrderStatus{
	StatusRecibido,
	StatusEnProceso,
	StatusListo,
	StatusEntregaParcial,
	StatusEntregado,
}

// Estados finales: no aceptan mas transiciones.
var FinalStatuses = []OrderStatus{
	StatusEntregado,
	StatusCancelado,
}

func IsValidStatus(s OrderStatus) bool {
	if s == StatusCancelado {
		return true
	}
	return StageIndex(s) >= 0
}

func IsFinalStatus(s OrderStatus) bool {
	for _, f := range FinalStatuses {
		if f == s {
			return true
		}
	}
	return false
}

// StageIndex devuelve la posicion de un estado dentro del avance nominal,
// o -1 si el estado no pertenece a la secuencia (CANCELADO, desconocidos).
func StageIndex(s OrderStatus) int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// CanTransition decide si un pedido puede pasar de `from` a `to`.
// Reglas:
//   - desde un estado final no se sale nunca;
//   - ENTREGA_PARCIAL -> ENTREGA_PARCIAL es legal (entregas sucesivas);
//   - CANCELADO es alcanzable desde cualquier estado no final;
//   - en el resto de casos solo se avanza: indice(to) > indice(from).
//     Saltarse etapas (RECIBIDO -> ENTREGADO) es valido a proposito:
//     los trabajos chicos se entregan sin pasar por produccion.
func CanTransition(from, to OrderStatus) bool {
	if IsFinalStatus(from) {
		return false
	}
	if to == StatusCancelado {
		return true
	}
	if from == StatusEntregaParcial && to == StatusEntregaParcial {
		return true
	}
	fi, ti := StageIndex(from), StageIndex(to)
	if fi < 0 || ti < 0 {
		return false
	}
	return ti > fi
}

// StatusPriority se usa para ordenar listados: cuanto menor, mas arriba.
func StatusPriority(s OrderStatus) int {
	switch s {
	case StatusRecibido:
		return 0
	case StatusEnProceso:
		return 1
	case StatusListo:
		return 2
	case StatusEntregaParcial:
		return 3
	case StatusEntregado:
		return 4
	case StatusCancelado:
		return 5
	}
	return 6
}
