package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessage renders binding violations into the single human-readable
// string carried by the error envelope, one clause per failed field.
func ValidationMessage(errs validator.ValidationErrors) string {
	clauses := make([]string, 0, len(errs))
	for _, fe := range errs {
		clauses = append(clauses, violationClause(fe))
	}
	return strings.Join(clauses, "; ")
}

func violationClause(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
