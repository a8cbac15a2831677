package sanitizer

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// invisible holds code points that render as nothing or as blank space:
// whitespace, format characters (zero-width spaces and joiners, bidi marks,
// BOM, tag characters), variation selectors and a few letters and symbols
// that are drawn as blanks.
var invisible = rangetable.Merge(
	unicode.White_Space,
	unicode.Cf,
	unicode.Variation_Selector,
	rangetable.New(
		'\u034F', // combining grapheme joiner
		'\u115F', // hangul choseong filler
		'\u1160', // hangul jungseong filler
		'\u17B4', // khmer vowel inherent aq
		'\u17B5', // khmer vowel inherent aa
		'\u2800', // braille pattern blank
		'\u3164', // hangul filler
		'\uFFA0', // halfwidth hangul filler
	),
)

// Label sanitizes a string meant to be shown to users, such as a name or a
// title. It applies Text and additionally rejects results made up entirely of
// invisible code points with ErrEmpty, so a label can never render blank.
func Label(raw string, maxLen int) (string, error) {
	s, err := Text(raw, maxLen)
	if err != nil {
		return "", err
	}

	if !hasVisible(s) {
		return "", errEmpty()
	}

	return s, nil
}

func hasVisible(s string) bool {
	for _, r := range s {
		if !unicode.Is(invisible, r) {
			return true
		}
	}
	return false
}
