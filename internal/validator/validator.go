package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	// "notblank": non-empty after trimming whitespace
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(regexp.MustCompile(`\S`).FindString(s)) > 0
	})

	// "txtype": one of the two transaction types
	_ = Validate.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "income" || s == "expense"
	})
}
