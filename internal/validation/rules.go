// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/poketrade/pokecards/internal/errors"
)

// emailRegex mirrors the login endpoint's syntactic email check: something
// before the @, a domain, and a TLD, with no whitespace anywhere.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex.
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "cannot be blank"),
)

// ValidEmail reports whether s passes the Email rule. Convenience for use
// cases that check a single field outside a struct validation.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}
