package web

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators installs the custom rules used by the request DTOs
// on gin's binding validator. Safe to call more than once.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("containsdigit", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if r >= '0' && r <= '9' {
				return true
			}
		}
		return false
	})
}

// fieldErrorMessage renders one user-facing message per failed rule,
// field by field.
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "Name can't be empty"
	case "Number":
		switch fe.Tag() {
		case "required":
			return "Number can't be empty"
		case "numeric":
			return "Number must only consist of digits"
		default:
			return "Number must consist of 10 digits"
		}
	case "Email":
		if fe.Tag() == "required" {
			return "Email can't be empty"
		}
		return "Email format is invalid"
	case "Password":
		switch fe.Tag() {
		case "required":
			return "Password can't be empty"
		case "min":
			return "Password must be at least 6 characters long"
		case "containsdigit":
			return "Password must contain a number"
		default:
			return "Password can only contain alphabets and numbers"
		}
	case "ConfirmPassword":
		return "Confirm Password can't be empty"
	case "Message":
		return "Message can't be empty"
	default:
		return "Invalid value"
	}
}
