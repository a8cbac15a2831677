package sanitizer_test

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secureinput/pkg/sanitizer"
)

// sources returns the same input behind a plain rune reader and behind a
// buffered reader, so both recovery paths are exercised.
func sources(input string) map[string]func() io.RuneReader {
	return map[string]func() io.RuneReader{
		"strings.Reader": func() io.RuneReader { return strings.NewReader(input) },
		"bufio.Reader":   func() io.RuneReader { return bufio.NewReader(strings.NewReader(input)) },
		"one byte reads": func() io.RuneReader {
			return bufio.NewReaderSize(iotest.OneByteReader(strings.NewReader(input)), 16)
		},
	}
}

// failingRuneReader yields the runes of data and then fails with err.
type failingRuneReader struct {
	data []rune
	err  error
}

func (r *failingRuneReader) ReadRune() (rune, int, error) {
	if len(r.data) == 0 {
		return 0, 0, r.err
	}
	ch := r.data[0]
	r.data = r.data[1:]
	return ch, len(string(ch)), nil
}

func TestReadLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected []string
	}{
		{
			name:     "accepts valid input",
			input:    "  safe value  \n",
			maxLen:   16,
			expected: []string{"safe value"},
		},
		{
			name:     "reads consecutive lines",
			input:    "first\nsecond\nthird\n",
			maxLen:   8,
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "handles CRLF terminators",
			input:    "abc\r\ndef\r\n",
			maxLen:   3,
			expected: []string{"abc", "def"},
		},
		{
			name:     "accepts a final line without terminator",
			input:    "one\nlast line",
			maxLen:   16,
			expected: []string{"one", "last line"},
		},
		{
			name:     "accepts a line exactly at the limit",
			input:    "exact\nnext\n",
			maxLen:   5,
			expected: []string{"exact", "next"},
		},
		{
			name:     "leading whitespace does not count towards the limit",
			input:    "          ab\nok\n",
			maxLen:   3,
			expected: []string{"ab", "ok"},
		},
		{
			name:     "trailing whitespace does not count towards the limit",
			input:    "ab" + strings.Repeat(" ", 100) + "\nok\n",
			maxLen:   3,
			expected: []string{"ab", "ok"},
		},
		{
			name:     "interior whitespace is kept",
			input:    "a  b\n",
			maxLen:   4,
			expected: []string{"a  b"},
		},
		{
			name:     "counts characters not bytes",
			input:    "日本語\nok\n",
			maxLen:   3,
			expected: []string{"日本語", "ok"},
		},
	}

	for _, tt := range tests {
		for kind, newSource := range sources(tt.input) {
			t.Run(tt.name+"/"+kind, func(t *testing.T) {
				t.Parallel()

				src := newSource()
				for _, want := range tt.expected {
					got, err := sanitizer.ReadLine(src, tt.maxLen)
					require.NoError(t, err)
					assert.Equal(t, want, got)
				}

				_, err := sanitizer.ReadLine(src, tt.maxLen)
				assert.ErrorIs(t, err, sanitizer.ErrEmpty, "stream should be exhausted")
			})
		}
	}
}

func TestReadLine_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected *sanitizer.InputError
	}{
		{
			name:     "empty stream",
			input:    "",
			maxLen:   16,
			expected: &sanitizer.InputError{Kind: sanitizer.KindEmpty},
		},
		{
			name:     "blank line",
			input:    "\n",
			maxLen:   16,
			expected: &sanitizer.InputError{Kind: sanitizer.KindEmpty},
		},
		{
			name:     "whitespace only line",
			input:    " \t \r\n",
			maxLen:   16,
			expected: &sanitizer.InputError{Kind: sanitizer.KindEmpty},
		},
		{
			name:     "control character",
			input:    "\x1bbad\n",
			maxLen:   16,
			expected: &sanitizer.InputError{Kind: sanitizer.KindInvalidCharacter, Char: '\x1b'},
		},
		{
			name:     "interior tab",
			input:    "a\tb\n",
			maxLen:   16,
			expected: &sanitizer.InputError{Kind: sanitizer.KindInvalidCharacter, Char: '\t'},
		},
		{
			name:     "invalid utf-8",
			input:    "ok\xfe\n",
			maxLen:   16,
			expected: &sanitizer.InputError{Kind: sanitizer.KindInvalidCharacter, Char: utf8.RuneError},
		},
		{
			name:     "too long",
			input:    "six chars\n",
			maxLen:   5,
			expected: &sanitizer.InputError{Kind: sanitizer.KindTooLong, Max: 5, Actual: 9},
		},
		{
			name:     "too long without terminator",
			input:    "abcdefgh",
			maxLen:   5,
			expected: &sanitizer.InputError{Kind: sanitizer.KindTooLong, Max: 5, Actual: 8},
		},
		{
			name:     "trailing whitespace of overlong line is not counted",
			input:    "abcdefg    \r\n",
			maxLen:   5,
			expected: &sanitizer.InputError{Kind: sanitizer.KindTooLong, Max: 5, Actual: 7},
		},
		{
			name:     "interior whitespace of overlong line is counted",
			input:    "a" + strings.Repeat(" ", 10) + "b\n",
			maxLen:   5,
			expected: &sanitizer.InputError{Kind: sanitizer.KindTooLong, Max: 5, Actual: 12},
		},
		{
			name:     "multibyte overlong line",
			input:    "日本語日本語\n",
			maxLen:   5,
			expected: &sanitizer.InputError{Kind: sanitizer.KindTooLong, Max: 5, Actual: 6},
		},
		{
			name:     "length is reported before control characters",
			input:    "\x1babcdef\n",
			maxLen:   3,
			expected: &sanitizer.InputError{Kind: sanitizer.KindTooLong, Max: 3, Actual: 7},
		},
	}

	for _, tt := range tests {
		for kind, newSource := range sources(tt.input) {
			t.Run(tt.name+"/"+kind, func(t *testing.T) {
				t.Parallel()

				got, err := sanitizer.ReadLine(newSource(), tt.maxLen)
				require.Error(t, err)
				assert.Empty(t, got)

				var ie *sanitizer.InputError
				require.ErrorAs(t, err, &ie)
				assert.Equal(t, tt.expected, ie)
			})
		}
	}
}

func TestReadLine_RecoversAfterOverlongLine(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"ascii":     "abcdefg\nok\n",
		"multibyte": "abcdé日本\nok\n",
		"long tail": "abcdef" + strings.Repeat("x", 10000) + "\nok\n",
	}

	for name, input := range inputs {
		for kind, newSource := range sources(input) {
			t.Run(name+"/"+kind, func(t *testing.T) {
				t.Parallel()

				src := newSource()

				_, err := sanitizer.ReadLine(src, 5)
				require.ErrorIs(t, err, sanitizer.ErrTooLong)

				second, err := sanitizer.ReadLine(src, 5)
				require.NoError(t, err)
				assert.Equal(t, "ok", second)
			})
		}
	}
}

func TestReadLine_ReportsExactLength(t *testing.T) {
	t.Parallel()

	for kind, newSource := range sources("abcdefg\nok\n") {
		t.Run(kind, func(t *testing.T) {
			t.Parallel()

			_, err := sanitizer.ReadLine(newSource(), 5)

			var ie *sanitizer.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, sanitizer.KindTooLong, ie.Kind)
			assert.Equal(t, 5, ie.Max)
			assert.Equal(t, 7, ie.Actual)
		})
	}

	for kind, newSource := range sources("abcdé日本\n") {
		t.Run("multibyte/"+kind, func(t *testing.T) {
			t.Parallel()

			_, err := sanitizer.ReadLine(newSource(), 3)

			var ie *sanitizer.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, 7, ie.Actual)
		})
	}
}

func TestReadLine_IOError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	t.Run("before any data", func(t *testing.T) {
		t.Parallel()

		src := bufio.NewReader(iotest.ErrReader(boom))
		_, err := sanitizer.ReadLine(src, 16)
		require.ErrorIs(t, err, sanitizer.ErrIO)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("in the middle of a line", func(t *testing.T) {
		t.Parallel()

		src := &failingRuneReader{data: []rune("abc"), err: boom}
		_, err := sanitizer.ReadLine(src, 16)
		require.ErrorIs(t, err, sanitizer.ErrIO)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("while discarding an overlong line", func(t *testing.T) {
		t.Parallel()

		src := &failingRuneReader{data: []rune("abcdefgh"), err: boom}
		_, err := sanitizer.ReadLine(src, 3)
		require.ErrorIs(t, err, sanitizer.ErrIO)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("while discarding from a buffered reader", func(t *testing.T) {
		t.Parallel()

		src := bufio.NewReader(io.MultiReader(strings.NewReader("abcdefgh"), iotest.ErrReader(boom)))
		_, err := sanitizer.ReadLine(src, 3)
		require.ErrorIs(t, err, sanitizer.ErrIO)
		assert.ErrorIs(t, err, boom)
	})
}

func TestReadLabel(t *testing.T) {
	t.Parallel()

	src := strings.NewReader("  Alice  \n\u200B\u200B\nBob\n")

	got, err := sanitizer.ReadLabel(src, 16)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got)

	_, err = sanitizer.ReadLabel(src, 16)
	assert.ErrorIs(t, err, sanitizer.ErrEmpty)

	got, err = sanitizer.ReadLabel(src, 16)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got)
}

func TestReadUint32(t *testing.T) {
	t.Parallel()

	src := strings.NewReader(" 42 \n-1\n42949672960\n7")

	v, err := sanitizer.ReadUint32(src)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	_, err = sanitizer.ReadUint32(src)
	assert.ErrorIs(t, err, sanitizer.ErrInvalidCharacter)

	_, err = sanitizer.ReadUint32(src)
	assert.ErrorIs(t, err, sanitizer.ErrTooLong)

	v, err = sanitizer.ReadUint32(src)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v)
}
