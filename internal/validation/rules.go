// Package validation carries the request validation rules shared by the
// HTTP handlers.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/Arpan-gl/mirfa-test-app/internal/errors"
)

// WrapValidationError turns a rule failure into a domain ErrInvalidInput,
// keeping the rule's message as context.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank rejects strings that are empty once surrounding whitespace is
// trimmed.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
