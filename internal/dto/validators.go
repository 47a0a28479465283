package dto

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var handlePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// RegisterValidators installs the custom binding rules on gin's validator
// engine. Call once at startup before any request binding happens.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("handle", validHandle); err != nil {
		return err
	}
	return v.RegisterValidation("noroffemail", noroffEmail)
}

// validHandle permits letters, digits and underscores only.
func validHandle(fl validator.FieldLevel) bool {
	return handlePattern.MatchString(fl.Field().String())
}

// noroffEmail requires a stud.noroff.no address.
func noroffEmail(fl validator.FieldLevel) bool {
	return strings.HasSuffix(strings.ToLower(fl.Field().String()), "@stud.noroff.no")
}
