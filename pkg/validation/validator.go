// Package validation wraps a shared go-playground validator instance for
// request structs decoded from form input.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct-tag validation on req and returns the first failure
// as an error, or nil when req is valid.
func Validate(req any) error {
	return validate.Struct(req)
}

// FirstFailedField returns the lowercased name of the first failing field,
// or "" when err carries no field information.
func FirstFailedField(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return ""
	}
	return strings.ToLower(verrs[0].Field())
}
