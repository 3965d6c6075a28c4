package constants

// --- METODOS DE PAGO ---
const (
	PaymentEfectivo      = "EFECTIVO"
	PaymentTransferencia = "TRANSFERENCIA"
	PaymentTarjeta       = "TARJETA"
	PaymentOtro          = "OTRO"
)

var PaymentMethods = []string{
	PaymentEfectivo,
	PaymentTransferencia,
	PaymentTarjeta,
	PaymentOtro,
}

func IsValidPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// --- TIPOS DE SERVICIO ---
const (
	ServiceBordado     = "BORDADO"
	ServiceSerigrafia  = "SERIGRAFIA"
	ServiceEstampado   = "ESTAMPADO"
	ServiceSublimacion = "SUBLIMACION"
	ServiceOtro        = "OTRO"
)

var ServiceTypes = []string{
	ServiceBordado,
	ServiceSerigrafia,
	ServiceEstampado,
	ServiceSublimacion,
	ServiceOtro,
}

func IsValidServiceType(s string) bool {
	for _, st := range ServiceTypes {
		if st == s {
			return true
		}
	}
	return false
}
