package sanitizer

import "strconv"

// MaxUint32Digits is the number of decimal digits in math.MaxUint32.
const MaxUint32Digits = 10

// ParseUint32 parses a non-negative decimal integer that fits in a uint32.
//
// The input is sanitized with Text using MaxUint32Digits as the length limit,
// so values with more than ten digits fail with ErrTooLong before conversion.
// Anything other than ASCII digits, including signs, separators and decimal
// points, fails with ErrInvalidCharacter on the first such character.
// Ten-digit values above math.MaxUint32 fail with ErrNumericOverflow.
func ParseUint32(raw string) (uint32, error) {
	s, err := Text(raw, MaxUint32Digits)
	if err != nil {
		return 0, err
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errInvalidCharacter(r)
		}
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		// Only ASCII digits remain, so range is the one possible failure.
		return 0, errNumericOverflow()
	}

	return uint32(v), nil
}
