package service

import (
	"regexp"
	"strings"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^(0|\+84)[0-9]{9}$`)

var phoneSeparators = strings.NewReplacer(" ", "", ".", "", "-", "")

// IsPhone accepts ten-digit local numbers and their +84 form. Spaces, dots
// and dashes are ignored.
func IsPhone(s string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(s))
}

// ValidatePhone is the "phone" validation tag.
func ValidatePhone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	_ = v.RegisterValidation("phone", ValidatePhone)
	return v
}

// ValidateForm checks an order form with the same rules the HTTP binding uses.
func ValidateForm(form entity.OrderForm) error {
	return formValidator.Struct(form)
}
