package sanitizer

import (
	"errors"
	"fmt"
	"unicode"
)

// Kind identifies which rule rejected an input.
type Kind uint8

const (
	// KindEmpty means the input was blank after trimming.
	KindEmpty Kind = iota + 1
	// KindTooLong means the trimmed input exceeded the allowed character count.
	KindTooLong
	// KindInvalidCharacter means the input contained a disallowed character.
	KindInvalidCharacter
	// KindNumericOverflow means an all-digit input does not fit the target integer type.
	KindNumericOverflow
	// KindIO means the input source itself failed.
	KindIO
)

// String returns the snake_case name of the kind, suitable for log attributes.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindTooLong:
		return "too_long"
	case KindInvalidCharacter:
		return "invalid_character"
	case KindNumericOverflow:
		return "numeric_overflow"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per Kind. Every *InputError matches the sentinel of its
// kind with errors.Is.
var (
	// ErrEmpty is matched by inputs that were blank after trimming.
	ErrEmpty = errors.New("input was empty")

	// ErrTooLong is matched by inputs exceeding the maximum character count.
	ErrTooLong = errors.New("input was too long")

	// ErrInvalidCharacter is matched by inputs containing a disallowed character.
	ErrInvalidCharacter = errors.New("input contained invalid character")

	// ErrNumericOverflow is matched by numbers larger than the supported range.
	ErrNumericOverflow = errors.New("number was larger than supported range")

	// ErrIO is matched by failures of the underlying input source.
	ErrIO = errors.New("failed to read input")
)

// InputError describes why an untrusted input was rejected.
// Only the fields relevant to Kind are populated:
//
//   - KindTooLong: Max and Actual
//   - KindInvalidCharacter: Char
//   - KindIO: Err
type InputError struct {
	Kind   Kind
	Max    int
	Actual int
	Char   rune
	Err    error
}

func (e *InputError) Error() string {
	switch e.Kind {
	case KindEmpty:
		return ErrEmpty.Error()
	case KindTooLong:
		return fmt.Sprintf("%s: %d characters (max %d)", ErrTooLong, e.Actual, e.Max)
	case KindInvalidCharacter:
		// Control characters are rendered as code points so that the message
		// itself is safe to print on a terminal.
		if unicode.IsControl(e.Char) {
			return fmt.Sprintf("input contained control character %U", e.Char)
		}
		return fmt.Sprintf("%s %q", ErrInvalidCharacter, e.Char)
	case KindNumericOverflow:
		return ErrNumericOverflow.Error()
	case KindIO:
		return fmt.Sprintf("%s: %v", ErrIO, e.Err)
	default:
		return "invalid input"
	}
}

// Unwrap returns the source failure for KindIO errors.
func (e *InputError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for e.Kind.
func (e *InputError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case KindEmpty:
		return ErrEmpty
	case KindTooLong:
		return ErrTooLong
	case KindInvalidCharacter:
		return ErrInvalidCharacter
	case KindNumericOverflow:
		return ErrNumericOverflow
	case KindIO:
		return ErrIO
	default:
		return nil
	}
}

// KindOf returns the Kind of the first *InputError in err's chain, or zero if
// there is none.
func KindOf(err error) Kind {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return 0
}

func errEmpty() error {
	return &InputError{Kind: KindEmpty}
}

func errTooLong(max, actual int) error {
	return &InputError{Kind: KindTooLong, Max: max, Actual: actual}
}

func errInvalidCharacter(r rune) error {
	return &InputError{Kind: KindInvalidCharacter, Char: r}
}

func errNumericOverflow() error {
	return &InputError{Kind: KindNumericOverflow}
}

func errIO(err error) error {
	return &InputError{Kind: KindIO, Err: err}
}
