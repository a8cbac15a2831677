// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the Format
// option and wraps it with LogHandlerDecorator, which injects attributes taken
// from the record's context (for example a session id) on every call.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "secureinput"),
//	    logger.WithContextValue("session_id", sessionKey{}),
//	)
//
//	log.WarnContext(ctx, "input rejected",
//	    logger.Field("quantity"),
//	    logger.InputError(err),
//	)
//
// Output defaults to stderr so logs never mix with a tool's regular output.
//
// # Input errors
//
// InputError renders a sanitizer rejection as a group with its kind and
// payload. The rejected value is never logged, and an offending character is
// logged as a code point (U+001B) rather than raw.
//
// Helpers such as Error and SessionID return an empty slog.Attr for nil values,
// which slog skips, so callers need no nil checks.
package logger
