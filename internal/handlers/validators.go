package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// registerCustomValidators wires decimal-aware rules into gin's binding
// validator so DTO tags can reject bad money amounts before the service runs.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// decimalpositive: the field is a decimal.Decimal strictly greater than
	// zero.
	_ = v.RegisterValidation("decimalpositive", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	})
}
