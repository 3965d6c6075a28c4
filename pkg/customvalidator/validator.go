// Archivo: pkg/customvalidator/validator.go
package customvalidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bordados-backend/pkg/constants"
)

// RegisterCustomValidations registra las reglas propias del taller en el
// validador compartido.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("payment_method", isPaymentMethod); err != nil {
		return err
	}
	if err := v.RegisterValidation("order_status", isOrderStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("service_type", isServiceType); err != nil {
		return err
	}
	if err := v.RegisterValidation("positive_decimal", isPositiveDecimal); err != nil {
		return err
	}
	return nil
}

func isPaymentMethod(fl validator.FieldLevel) bool {
	return constants.IsValidPaymentMethod(fl.Field().String())
}

func isOrderStatus(fl validator.FieldLevel) bool {
	return constants.IsValidStatus(constants.OrderStatus(fl.Field().String()))
}

func isServiceType(fl validator.FieldLevel) bool {
	return constants.IsValidServiceType(fl.Field().String())
}

// Acepta tanto decimal.Decimal como su representación string en los DTOs.
func isPositiveDecimal(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return v.IsPositive()
	case string:
		d, err := decimal.NewFromString(v)
		return err == nil && d.IsPositive()
	}
	return false
}
