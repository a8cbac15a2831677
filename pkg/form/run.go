package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/secureinput/pkg/logger"
	"github.com/dmitrymomot/secureinput/pkg/sanitizer"
)

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	log *slog.Logger
}

// WithLogger sets the logger used to report each field's outcome.
// Raw input is never logged.
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// Run prompts for each field of f in order, reading one line per field from
// src. Prompts are written to out followed by a newline; a nil out suppresses
// them. Run stops at the first failing field and returns the values collected
// so far together with the error, which is the sanitizer error unchanged.
//
// ctx is checked between fields only. A blocked read on src is not
// interrupted.
func Run(ctx context.Context, src io.RuneReader, out io.Writer, f *Form, opts ...RunOption) ([]Value, error) {
	cfg := runConfig{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.log.With(logger.Component("form"))

	values := make([]Value, 0, len(f.Fields))
	for _, field := range f.Fields {
		if err := ctx.Err(); err != nil {
			return values, errors.Join(ErrRunCancelled, err)
		}

		if out != nil && field.Prompt != "" {
			if _, err := fmt.Fprintln(out, field.Prompt); err != nil {
				return values, errors.Join(ErrFailedToWritePrompt, err)
			}
		}

		v, err := readField(src, field)
		if err != nil {
			log.WarnContext(ctx, "input rejected", logger.Field(field.Name), logger.InputError(err))
			return values, err
		}

		log.DebugContext(ctx, "input accepted", logger.Field(field.Name))
		values = append(values, v)
	}
	return values, nil
}

func readField(src io.RuneReader, field Field) (Value, error) {
	v := Value{Field: field.Name, Kind: field.Kind}

	var err error
	switch field.Kind {
	case KindText:
		v.Text, err = sanitizer.ReadLine(src, field.MaxLen)
	case KindLabel:
		v.Text, err = sanitizer.ReadLabel(src, field.MaxLen)
	case KindNumber:
		if field.MaxLen <= 0 {
			v.Number, err = sanitizer.ReadUint32(src)
			break
		}
		var line string
		if line, err = sanitizer.ReadLine(src, field.MaxLen); err == nil {
			v.Number, err = sanitizer.ParseUint32(line)
		}
	default:
		err = fmt.Errorf("%w: unknown kind %q for field %q", ErrInvalidForm, field.Kind, field.Name)
	}
	return v, err
}
