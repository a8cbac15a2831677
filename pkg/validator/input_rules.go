package validator

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/secureinput/pkg/sanitizer"
)

// SanitizedText validates that value passes sanitizer.Text with the given limit.
func SanitizedText(field, value string, maxLen int) Rule {
	_, err := sanitizer.Text(value, maxLen)
	return ruleFromResult(field, err)
}

// DisplayLabel validates that value passes sanitizer.Label with the given limit.
func DisplayLabel(field, value string, maxLen int) Rule {
	_, err := sanitizer.Label(value, maxLen)
	return ruleFromResult(field, err)
}

// PositiveNumber validates that value parses with sanitizer.ParseUint32.
func PositiveNumber(field, value string) Rule {
	_, err := sanitizer.ParseUint32(value)
	return ruleFromResult(field, err)
}

func ruleFromResult(field string, err error) Rule {
	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: FromInputError(field, err),
	}
}

// FromInputError converts a sanitizer failure into a field-level
// ValidationError with a translation key. Errors that are not
// *sanitizer.InputError produce a generic invalid value error.
// A nil err yields a zero ValidationError.
func FromInputError(field string, err error) ValidationError {
	if err == nil {
		return ValidationError{}
	}

	var ie *sanitizer.InputError
	if !errors.As(err, &ie) {
		return ValidationError{
			Field:             field,
			Message:           "invalid value",
			TranslationKey:    "validation.invalid",
			TranslationValues: map[string]any{"field": field},
		}
	}

	switch ie.Kind {
	case sanitizer.KindEmpty:
		return ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		}
	case sanitizer.KindTooLong:
		return ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", ie.Max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field":  field,
				"max":    ie.Max,
				"actual": ie.Actual,
			},
		}
	case sanitizer.KindInvalidCharacter:
		return ValidationError{
			Field:          field,
			Message:        "contains an invalid character",
			TranslationKey: "validation.invalid_character",
			TranslationValues: map[string]any{
				"field": field,
				"char":  fmt.Sprintf("%U", ie.Char),
			},
		}
	case sanitizer.KindNumericOverflow:
		return ValidationError{
			Field:             field,
			Message:           "number is out of range",
			TranslationKey:    "validation.out_of_range",
			TranslationValues: map[string]any{"field": field},
		}
	default:
		return ValidationError{
			Field:             field,
			Message:           "could not be read",
			TranslationKey:    "validation.read_failed",
			TranslationValues: map[string]any{"field": field},
		}
	}
}
