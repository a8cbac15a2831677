// Package form describes and runs sequences of sanitized prompts.
//
// A Form is an ordered list of fields, each read as one line from an
// io.RuneReader and passed through the matching sanitizer:
//
//	text    sanitizer.ReadLine
//	label   sanitizer.ReadLabel
//	number  sanitizer.ReadLine then sanitizer.ParseUint32
//
// Forms are usually loaded from YAML:
//
//	fields:
//	  - name: nickname
//	    prompt: "Nickname:"
//	    kind: label
//	    max_len: 32
//	  - name: age
//	    prompt: "Age:"
//	    kind: number
//
// and run against a buffered reader:
//
//	f, err := form.LoadFile("signup.yaml")
//	if err != nil {
//	    return err
//	}
//	values, err := form.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, f)
//
// Run returns the first rejection as the sanitizer's *sanitizer.InputError,
// so callers can inspect it with errors.Is and errors.As. Definition errors
// from Parse, LoadFile and Validate match ErrInvalidForm and carry
// validator.ValidationErrors with one entry per problem.
package form
