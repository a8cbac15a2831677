// Package sanitizer turns untrusted input into values that are safe to use
// past a trust boundary: a cleaned string or a bounded unsigned integer.
//
// The package exposes a small set of functions that all share one policy:
//
//   - Text: strips a trailing line terminator, trims Unicode whitespace and
//     rejects blank results, results longer than a maximum number of
//     characters, and control characters.
//
//   - Label: Text for strings shown to users; additionally rejects results
//     that consist only of invisible code points (zero-width spaces, fillers).
//
//   - ReadLine: reads one line from a rune reader with a bounded buffer and
//     sanitizes it with Text. Overlong lines are consumed through their line
//     feed so that the stream stays aligned on line boundaries.
//
//   - ParseUint32: sanitizes with a ten-character limit, accepts ASCII
//     digits only and rejects values above math.MaxUint32.
//
// # Usage
//
//	in := bufio.NewReader(os.Stdin)
//
//	name, err := sanitizer.ReadLine(in, 64)
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, "Error:", err)
//	    return
//	}
//
//	n, err := sanitizer.ParseUint32(" 42 ") // 42
//
// # Error handling
//
// Every failure is an *InputError whose Kind says which rule rejected the
// input. Each kind has a sentinel usable with errors.Is:
//
//	switch {
//	case errors.Is(err, sanitizer.ErrEmpty):
//	case errors.Is(err, sanitizer.ErrTooLong):
//	case errors.Is(err, sanitizer.ErrInvalidCharacter):
//	case errors.Is(err, sanitizer.ErrNumericOverflow):
//	case errors.Is(err, sanitizer.ErrIO):
//	}
//
// The payload (length bounds, offending rune, read failure) is available
// through errors.As:
//
//	var ie *sanitizer.InputError
//	if errors.As(err, &ie) && ie.Kind == sanitizer.KindTooLong {
//	    log.Printf("got %d characters, limit is %d", ie.Actual, ie.Max)
//	}
//
// Error messages never echo control characters; they are rendered as U+XXXX.
// No function returns partial output alongside an error.
//
// # Concurrency
//
// The package holds no state. Text, Label and ParseUint32 are safe for
// concurrent use. ReadLine blocks on its source and must be the only reader
// of that source while it runs; there is no internal timeout, deadlines are
// enforced by closing or interrupting the source.
package sanitizer
