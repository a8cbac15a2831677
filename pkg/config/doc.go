// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - Each configuration type is parsed once and cached for the lifetime of
//     the process; ForceReload and ResetCache refresh it.
//   - MustLoadEnv and MustLoad panic on failure for configuration a program
//     cannot start without.
//
// # Usage
//
//	type Config struct {
//	    FormFile   string `env:"SECUREINPUT_FORM_FILE"`
//	    MaxLineLen int    `env:"SECUREINPUT_MAX_LINE_LEN" envDefault:"64"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Load reads ./.env once per process if it exists. Values from that file never
// override variables already present in the environment. Files passed to
// LoadEnv do override them, in argument order.
//
// # Errors
//
// Failures wrap one of the sentinels below and can be checked with errors.Is:
//
//   - ErrParsingConfig: the environment did not satisfy the struct tags.
//   - ErrLoadingEnvFile: an explicitly requested `.env` file could not be read.
//   - ErrNilPointer: a nil pointer was passed to Load or ForceReload.
//
// Failed parses are not cached.
//
// # Concurrency
//
// All functions are safe for concurrent use. The cache is global, so tests that
// change the environment should call ResetCache first.
package config
