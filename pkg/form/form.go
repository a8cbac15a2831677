package form

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/secureinput/pkg/sanitizer"
	"github.com/dmitrymomot/secureinput/pkg/validator"
)

// Kind selects how a field's line is sanitized.
type Kind string

const (
	// KindText accepts any line that passes sanitizer.Text.
	KindText Kind = "text"
	// KindLabel additionally requires a visible character, see sanitizer.Label.
	KindLabel Kind = "label"
	// KindNumber parses the line as a positive uint32.
	KindNumber Kind = "number"
)

// DefaultMaxLen is the line bound of the default form.
const DefaultMaxLen = 64

// maxNameLen bounds field names, which end up in logs and output.
const maxNameLen = 64

// Field is a single prompt.
type Field struct {
	Name   string `yaml:"name"`
	Prompt string `yaml:"prompt"`
	Kind   Kind   `yaml:"kind"`
	// MaxLen is the line bound in characters. Number fields may leave it
	// unset, in which case the line is bounded by sanitizer.MaxUint32Digits.
	MaxLen int `yaml:"max_len"`
}

// Form is an ordered list of fields.
type Form struct {
	Fields []Field `yaml:"fields"`
}

// Default returns the single-field form that asks for a positive number.
func Default() *Form {
	return &Form{
		Fields: []Field{{
			Name:   "number",
			Prompt: "Please enter a positive number (max 10 digits):",
			Kind:   KindNumber,
			MaxLen: DefaultMaxLen,
		}},
	}
}

// Parse decodes a YAML form definition and validates it.
func Parse(content []byte) (*Form, error) {
	var f Form
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile reads and parses the form definition at path.
func LoadFile(path string) (*Form, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(content)
}

// Validate checks that the form has at least one field, that names are
// non-blank labels and unique, that kinds are known and that text and
// label fields have a positive MaxLen. Names that pass are replaced with
// their sanitized form, so " email " becomes "email" and clashes with an
// existing "email". The returned error matches both ErrInvalidForm and
// validator.ErrValidationFailed.
func (f *Form) Validate() error {
	if len(f.Fields) == 0 {
		return errors.Join(ErrInvalidForm, validator.ValidationErrors{{
			Field:          "fields",
			Message:        "form has no fields",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": "fields",
			},
		}})
	}

	rules := make([]validator.Rule, 0, len(f.Fields)*4)
	seen := make(map[string]bool, len(f.Fields))
	for i, field := range f.Fields {
		path := fmt.Sprintf("fields[%d]", i)

		name, nameErr := sanitizer.Label(field.Name, maxNameLen)
		rules = append(rules, validator.Rule{
			Check: func() bool { return nameErr == nil },
			Error: validator.FromInputError(path+".name", nameErr),
		})
		if nameErr == nil {
			f.Fields[i].Name = name
		}

		duplicate := nameErr == nil && seen[name]
		if nameErr == nil {
			seen[name] = true
		}
		rules = append(rules, validator.Rule{
			Check: func() bool { return !duplicate },
			Error: validator.ValidationError{
				Field:             path + ".name",
				Message:           fmt.Sprintf("duplicate field name %q", name),
				TranslationKey:    "validation.unique",
				TranslationValues: map[string]any{"field": path + ".name"},
			},
		})

		rules = append(rules, validator.Rule{
			Check: field.Kind.valid,
			Error: validator.ValidationError{
				Field:          path + ".kind",
				Message:        fmt.Sprintf("unknown kind %q", field.Kind),
				TranslationKey: "validation.one_of",
				TranslationValues: map[string]any{
					"field":   path + ".kind",
					"allowed": []Kind{KindText, KindLabel, KindNumber},
				},
			},
		})

		rules = append(rules, validator.Rule{
			Check: func() bool { return field.Kind == KindNumber || field.MaxLen > 0 },
			Error: validator.ValidationError{
				Field:             path + ".max_len",
				Message:           "must be positive",
				TranslationKey:    "validation.positive",
				TranslationValues: map[string]any{"field": path + ".max_len"},
			},
		})
	}

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidForm, err)
	}
	return nil
}

func (k Kind) valid() bool {
	switch k {
	case KindText, KindLabel, KindNumber:
		return true
	}
	return false
}

// Value is the sanitized answer to one field.
type Value struct {
	Field string
	Kind  Kind
	// Text holds the sanitized line for text and label fields.
	Text string
	// Number holds the parsed value for number fields.
	Number uint32
}

func (v Value) String() string {
	if v.Kind == KindNumber {
		return strconv.FormatUint(uint64(v.Number), 10)
	}
	return v.Text
}
