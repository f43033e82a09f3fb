package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var fiscalYearPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// RegisterValidators installs the custom binding validators used by the
// request DTOs in this package. Call once before serving requests.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("finyear", func(fl validator.FieldLevel) bool {
			return fiscalYearPattern.MatchString(fl.Field().String())
		})
	}
}
