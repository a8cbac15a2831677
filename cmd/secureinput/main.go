// Command secureinput prompts for a form on stdin and prints each sanitized
// answer. Without configuration it asks for a single positive number.
//
// Configuration is read from the environment (and ./.env):
//
//	SECUREINPUT_APP_ENV       development, staging or production
//	SECUREINPUT_LOG_LEVEL     debug, info, warn or error (default error)
//	SECUREINPUT_LOG_FORMAT    text or json (default depends on APP_ENV)
//	SECUREINPUT_FORM_FILE     YAML form definition to run instead of the default
//	SECUREINPUT_MAX_LINE_LEN  line bound of the default form (default 64)
//
// Logs go to stderr. On failure the command prints "Error: <reason>" to
// stderr and exits with status 1.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/dmitrymomot/secureinput/pkg/config"
	"github.com/dmitrymomot/secureinput/pkg/environment"
	"github.com/dmitrymomot/secureinput/pkg/form"
	"github.com/dmitrymomot/secureinput/pkg/logger"
)

const serviceName = "secureinput"

type appConfig struct {
	AppEnv     string `env:"SECUREINPUT_APP_ENV" envDefault:"production"`
	LogLevel   string `env:"SECUREINPUT_LOG_LEVEL" envDefault:"error"`
	LogFormat  string `env:"SECUREINPUT_LOG_FORMAT"`
	FormFile   string `env:"SECUREINPUT_FORM_FILE"`
	MaxLineLen int    `env:"SECUREINPUT_MAX_LINE_LEN" envDefault:"64"`
}

type sessionKey struct{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var cfg appConfig
	err := config.Load(&cfg)
	if err == nil {
		interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		err = run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr, interactive)
	}
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one form session. Prompts are written to stdout only when
// interactive is set, so piped output carries answers alone.
func run(ctx context.Context, cfg appConfig, stdin io.Reader, stdout, stderr io.Writer, interactive bool) error {
	log, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	ctx = context.WithValue(ctx, sessionKey{}, uuid.NewString())

	f, err := loadForm(cfg)
	if err != nil {
		log.ErrorContext(ctx, "form definition rejected", logger.Error(err))
		return err
	}
	log.DebugContext(ctx, "session started", slog.Int("fields", len(f.Fields)), slog.Bool("interactive", interactive))

	var prompts io.Writer
	if interactive {
		prompts = stdout
	}

	values, err := form.Run(ctx, bufio.NewReader(stdin), prompts, f, form.WithLogger(log))
	if err != nil {
		return err
	}

	for _, v := range values {
		if _, err := fmt.Fprintf(stdout, "Sanitized %s: %s\n", v.Field, v); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	log.DebugContext(ctx, "session finished")
	return nil
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.AppEnv), serviceName),
		logger.WithOutput(w),
		logger.WithContextValue("session_id", sessionKey{}),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	if cfg.LogFormat != "" {
		format := logger.Format(cfg.LogFormat)
		if format != logger.FormatJSON && format != logger.FormatText {
			return nil, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.LogFormat, logger.FormatJSON, logger.FormatText)
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}

func loadForm(cfg appConfig) (*form.Form, error) {
	if cfg.FormFile != "" {
		return form.LoadFile(cfg.FormFile)
	}

	if cfg.MaxLineLen <= 0 {
		return nil, fmt.Errorf("invalid SECUREINPUT_MAX_LINE_LEN %d: must be positive", cfg.MaxLineLen)
	}
	f := form.Default()
	f.Fields[0].MaxLen = cfg.MaxLineLen
	return f, nil
}
