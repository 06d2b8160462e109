package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate returns tag failures keyed by struct field name, nil when clean.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// IsEmail reports whether s passes the email tag. The schema module uses it
// for advisory field checks on free-form form values.
func IsEmail(s string) bool {
	return validate.Var(s, "email") == nil
}
