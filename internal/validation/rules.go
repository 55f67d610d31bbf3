// Package validation provides custom validation rules for the application.
package validation

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/moviecatalog/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
// Field errors are flattened into "field message" pairs sorted by field name.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for field := range fieldErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, field+" "+fieldErrs[field].Error())
		}
		return apperrors.Wrap(apperrors.ErrInvalidInput, strings.Join(parts, "; "))
	}

	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Role validates that a role is one of the roles the service knows.
var Role = validation.In("user", "admin").Error("must be either user or admin")
