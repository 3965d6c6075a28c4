package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	// Errores de validacion (culpa del que llama, nunca se reintentan solos)
	ErrInvalidTransition  = fmt.Errorf("transición de estado no permitida")
	ErrMissingObservation = fmt.Errorf("la observación es obligatoria para cada cambio de estado")
	ErrQuantityExceeded   = fmt.Errorf("la cantidad entregada supera la cantidad del pedido")
	ErrQuantityRequired   = fmt.Errorf("una entrega parcial requiere la cantidad entregada")
	ErrInvalidAmount      = fmt.Errorf("el monto del pago debe ser mayor a cero")
	ErrOrderFullyPaid     = fmt.Errorf("el pedido ya está pagado por completo")
	ErrInvalidPayMethod   = fmt.Errorf("método de pago desconocido")

	// No encontrado
	ErrOrderNotFound  = fmt.Errorf("pedido no encontrado")
	ErrClientNotFound = fmt.Errorf("cliente no encontrado")
	ErrNotFound       = fmt.Errorf("registro no encontrado")

	// Terminalidad
	ErrOrderTerminal = fmt.Errorf("el pedido está en un estado final y no admite más cambios")

	// Fallas de colaboradores (reintenables: nada quedó escrito)
	ErrEvidenceUpload    = fmt.Errorf("no se pudo subir la evidencia fotográfica")
	ErrLedgerUnavailable = fmt.Errorf("la base de datos no está disponible")

	// Violacion de invariante: orders.status no coincide con el último
	// registro del historial. Jamás se "corrige" en silencio.
	ErrStatusDiverged = fmt.Errorf("integridad violada: el estado del pedido no coincide con su historial")

	// Pagos duplicados (Idempotency-Key repetida dentro de la ventana)
	ErrDuplicateRequest = fmt.Errorf("solicitud duplicada, el pago ya fue procesado")

	// Contexto
	ErrActorNotFoundInContext = fmt.Errorf("usuario no encontrado en el contexto de la solicitud")

	ErrBadRequest = fmt.Errorf("solicitud inválida")
)

// HttpError lleva el código HTTP junto al mensaje para el cliente.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

// StatusCodeFor mapea los errores de dominio a códigos HTTP.
func StatusCodeFor(err error) int {
	switch {
	case isAny(err, ErrOrderNotFound, ErrClientNotFound, ErrNotFound):
		return http.StatusNotFound
	case isAny(err, ErrInvalidTransition, ErrMissingObservation, ErrQuantityExceeded,
		ErrQuantityRequired, ErrInvalidAmount, ErrOrderFullyPaid, ErrInvalidPayMethod,
		ErrBadRequest):
		return http.StatusUnprocessableEntity
	case isAny(err, ErrOrderTerminal, ErrDuplicateRequest):
		return http.StatusConflict
	case isAny(err, ErrEvidenceUpload, ErrLedgerUnavailable):
		return http.StatusServiceUnavailable
	case isAny(err, ErrActorNotFoundInContext):
		return http.StatusUnauthorized
	case isAny(err, ErrStatusDiverged):
		return http.StatusInternalServerError
	}
	var invalid *InvalidInputError
	if stderrors.As(err, &invalid) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// InvalidInputError lleva un mensaje armado para el cliente.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if stderrors.Is(err, t) {
			return true
		}
	}
	return false
}
