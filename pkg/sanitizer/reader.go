package sanitizer

import (
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// peekDiscarder is the subset of *bufio.Reader used to skip the remainder of
// an overlong line without decoding it rune by rune.
type peekDiscarder interface {
	Peek(n int) ([]byte, error)
	Discard(n int) (int, error)
	Buffered() int
}

// ReadLine reads one line from src and sanitizes it with Text.
//
// At most maxLen characters of the line are buffered. Leading whitespace is
// skipped while reading and trailing whitespace is only kept while it could
// still become interior whitespace of a line that fits. When a line turns out
// to be longer than maxLen, the rest of it is consumed up to and including the
// next line feed, so the following call starts at the next line. The returned
// ErrTooLong carries the exact trimmed length of the whole line.
//
// A final line without a terminator is accepted as is. A source that is
// already at end-of-stream yields ErrEmpty.
//
// Read failures other than io.EOF are returned as ErrIO wrapping the cause.
// The position of src after such a failure is unspecified.
//
// src must not be shared with other readers for the duration of the call.
// Pass the same buffered reader on every call: wrapping an io.Reader in a
// fresh bufio.Reader per line loses whatever the previous one had buffered.
func ReadLine(src io.RuneReader, maxLen int) (string, error) {
	var (
		line    strings.Builder
		pending strings.Builder // whitespace after the last non-space rune
		count   lineCounter
		started bool
	)

	for {
		r, size, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", errIO(err)
		}
		if r == '\n' {
			break
		}

		space := unicode.IsSpace(r)
		if !started {
			if space {
				continue
			}
			started = true
		}

		if space {
			if count.total+count.pending < maxLen {
				pending.WriteRune(r)
			}
			count.add(r)
			continue
		}

		count.add(r)
		if count.total > maxLen {
			if err := skipLine(src, &count); err != nil {
				return "", errIO(err)
			}
			return "", errTooLong(maxLen, count.total)
		}

		line.WriteString(pending.String())
		pending.Reset()
		if r == utf8.RuneError && size == 1 {
			// Keep the sequence invalid so that Text reports it in place.
			line.WriteByte(0xff)
		} else {
			line.WriteRune(r)
		}
	}

	return Text(line.String(), maxLen)
}

// ReadLabel reads one line from src and sanitizes it with Label.
func ReadLabel(src io.RuneReader, maxLen int) (string, error) {
	line, err := ReadLine(src, maxLen)
	if err != nil {
		return "", err
	}
	return Label(line, maxLen)
}

// ReadUint32 reads one line from src and parses it with ParseUint32.
func ReadUint32(src io.RuneReader) (uint32, error) {
	line, err := ReadLine(src, MaxUint32Digits)
	if err != nil {
		return 0, err
	}
	return ParseUint32(line)
}

// lineCounter tracks the trimmed length of a line without buffering it.
// Whitespace is held in pending until a non-space rune proves it interior.
type lineCounter struct {
	total   int
	pending int
}

func (c *lineCounter) add(r rune) {
	if unicode.IsSpace(r) {
		c.pending++
		return
	}
	c.total += c.pending + 1
	c.pending = 0
}

// skipLine consumes src up to and including the next line feed, or to the
// end of the stream, counting the skipped runes into c.
func skipLine(src io.RuneReader, c *lineCounter) error {
	if pd, ok := src.(peekDiscarder); ok {
		return discardLine(pd, c)
	}

	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r == '\n' {
			return nil
		}
		c.add(r)
	}
}

// discardLine is skipLine for buffered sources: it scans whatever is already
// buffered and discards it in chunks instead of reading one rune at a time.
func discardLine(src peekDiscarder, c *lineCounter) error {
	want := 1
	for {
		chunk, peekErr := src.Peek(max(src.Buffered(), want))

		i := 0
		for i < len(chunk) {
			if chunk[i] == '\n' {
				_, err := src.Discard(i + 1)
				return err
			}
			// A rune split across the end of the buffer is decoded on the
			// next round, once more bytes are available.
			if peekErr == nil && !utf8.FullRune(chunk[i:]) {
				break
			}
			r, size := utf8.DecodeRune(chunk[i:])
			c.add(r)
			i += size
		}

		if _, err := src.Discard(i); err != nil {
			return err
		}
		if peekErr != nil {
			if errors.Is(peekErr, io.EOF) {
				return nil
			}
			return peekErr
		}

		want = 1
		if i == 0 {
			want = len(chunk) + 1
		}
	}
}
