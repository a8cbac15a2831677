package logger

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/secureinput/pkg/sanitizer"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the name of the input field being processed.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// SessionID records the session identifier under the key "session_id".
// If id is nil, it returns an empty Attr.
func SessionID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("session_id", id)
}

// InputError groups the structured details of a sanitizer rejection under
// the key "input". The rejected value itself is never logged; an offending
// character is logged as its code point only.
// If err carries no *sanitizer.InputError, it returns an empty Attr.
func InputError(err error) slog.Attr {
	var ie *sanitizer.InputError
	if !errors.As(err, &ie) {
		return slog.Attr{}
	}

	attrs := []slog.Attr{slog.String("kind", ie.Kind.String())}
	switch ie.Kind {
	case sanitizer.KindTooLong:
		attrs = append(attrs, slog.Int("max", ie.Max), slog.Int("actual", ie.Actual))
	case sanitizer.KindInvalidCharacter:
		attrs = append(attrs, slog.String("char", fmt.Sprintf("%U", ie.Char)))
	case sanitizer.KindIO:
		attrs = append(attrs, slog.Any("cause", ie.Err))
	}
	return slog.Attr{Key: "input", Value: slog.GroupValue(attrs...)}
}
