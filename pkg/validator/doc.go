// Package validator turns sanitizer failures into field-level validation
// errors that can be reported together and translated.
//
// Each helper sanitizes one value and returns a Rule; Apply evaluates a list of
// rules and aggregates the failures into ValidationErrors, which implements
// error:
//
//	err := validator.Apply(
//	    validator.DisplayLabel("name", form.Name, 64),
//	    validator.SanitizedText("comment", form.Comment, 500),
//	    validator.PositiveNumber("quantity", form.Quantity),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
//
// # Translation keys
//
// FromInputError maps every sanitizer.Kind to a stable key:
//
//   - validation.required         : blank or visually empty input
//   - validation.max_length       : too long; values "max" and "actual"
//   - validation.invalid_character: disallowed character; value "char" as U+XXXX
//   - validation.out_of_range     : number above the supported range
//   - validation.read_failed      : the input source failed
//
// The offending character is only ever exposed as a code point so that
// rendered messages cannot carry terminal control sequences.
package validator
