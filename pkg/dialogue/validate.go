package dialogue

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// looseEmailPattern accepts anything shaped local@domain.tld. It is
// deliberately more permissive than an RFC check; the address is only
// used for confirmation mail.
var looseEmailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// NewValidator returns a validator with the checkout rules registered:
// "looseemail" for the permissive email shape and "intlphone" for a
// phone number of exactly 13 characters starting with "+".
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("intlphone", func(fl validator.FieldLevel) bool {
		phone := fl.Field().String()
		return len(phone) == 13 && strings.HasPrefix(phone, "+")
	})
	return v
}
