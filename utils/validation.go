// utils/validation.go
package utils

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var futureDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	datetime, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return datetime.UTC().After(time.Now().UTC())
}

// RegisterValidators hooks the custom binding validators into gin.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("futuredate", futureDateValidatorFunc)
	}
}
