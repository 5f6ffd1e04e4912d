package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/easypass/core/config"
	"github.com/dmitrymomot/easypass/core/logger"
	"github.com/dmitrymomot/easypass/pkg/passgen"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// ErrConflictingSource is returned when both a fixed seed and secure randomness are requested.
var ErrConflictingSource = errors.New("EASYPASS_SEED and EASYPASS_SECURE cannot be combined")

// Env holds defaults read from the environment and .env file. Flags override them.
type Env struct {
	PasswordLength uint8   `env:"EASYPASS_PASSWORD_LENGTH" envDefault:"20"`
	NumberChance   uint8   `env:"EASYPASS_NUMBER_CHANCE" envDefault:"30"`
	Secure         bool    `env:"EASYPASS_SECURE" envDefault:"false"`
	Seed           *uint64 `env:"EASYPASS_SEED"`
	LogLevel       string  `env:"EASYPASS_LOG_LEVEL" envDefault:"error"`
	LogFormat      string  `env:"EASYPASS_LOG_FORMAT" envDefault:"text"`
}

// ParseConfig registers flags on fs, parses args and returns the generation config.
// Remaining positional arguments become seed words.
func ParseConfig(fs *pflag.FlagSet, args []string, defaults Env) (passgen.Config, error) {
	cfg := passgen.Config{
		PasswordLength: defaults.PasswordLength,
		NumberChance:   defaults.NumberChance,
	}

	fs.BoolVarP(&cfg.Substitute, "substitute", "s", false, "replace characters with similar looking ones")
	fs.BoolVarP(&cfg.IncludeSpecial, "include-special", "S", false, "include special characters like ~!@#$%^&*()_+=[]{};:'\"\\|/?")
	fs.BoolVarP(&cfg.HexValue, "hex-value", "h", false, "generate a random hex value instead of a password")
	fs.Uint8VarP(&cfg.PasswordLength, "password-length", "l", cfg.PasswordLength, "length of the password")
	fs.Uint8VarP(&cfg.NumberChance, "number-chance", "c", cfg.NumberChance, "chance in percent that a character is a digit")

	if err := fs.Parse(args); err != nil {
		return passgen.Config{}, err
	}

	cfg.Words = fs.Args()
	if err := cfg.Validate(); err != nil {
		return passgen.Config{}, err
	}
	return cfg, nil
}

// NewSource picks the random source described by env.
func NewSource(env Env) (passgen.Source, string, error) {
	switch {
	case env.Seed != nil && env.Secure:
		return nil, "", ErrConflictingSource
	case env.Seed != nil:
		return passgen.NewSeededSource(*env.Seed), "seeded", nil
	case env.Secure:
		return passgen.NewCryptoSource(), "crypto", nil
	default:
		return passgen.NewSource(), "math", nil
	}
}

// NewLogger builds the diagnostics logger. It never writes to stdout.
func NewLogger(env Env, stderr io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(env.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithOutput(stderr),
		logger.WithLevel(level),
		logger.WithAttr(slog.String("service", "easypass")),
	}
	switch strings.ToLower(env.LogFormat) {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "text", "":
		opts = append(opts, logger.WithTextFormatter())
	default:
		return nil, fmt.Errorf("unknown log format %q", env.LogFormat)
	}
	return logger.New(opts...), nil
}

// Run generates the password described by cfg and writes it as a single line to out.
func Run(cfg passgen.Config, src passgen.Source, out io.Writer) (string, error) {
	if out == nil {
		return "", errors.New("output is required")
	}
	pw := passgen.New(src).Generate(cfg)
	if _, err := fmt.Fprintln(out, pw); err != nil {
		return "", fmt.Errorf("write password: %w", err)
	}
	return pw, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	var env Env
	if err := config.Load(&env); err != nil {
		fmt.Fprintf(stderr, "easypass: %v\n", err)
		return exitError
	}

	log, err := NewLogger(env, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "easypass: %v\n", err)
		return exitError
	}

	fs := pflag.NewFlagSet("easypass", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: easypass [flags] [words...]")
		fs.PrintDefaults()
	}

	cfg, err := ParseConfig(fs, args, env)
	switch {
	case errors.Is(err, pflag.ErrHelp):
		return exitOK
	case err != nil:
		log.Error("invalid arguments", logger.Error(err), logger.Action("parse_flags"))
		fs.Usage()
		return exitUsage
	}

	src, srcName, err := NewSource(env)
	if err != nil {
		log.Error("invalid configuration", logger.Error(err), logger.Action("select_source"))
		return exitError
	}

	pw, err := Run(cfg, src, stdout)
	if err != nil {
		log.Error("generation failed", logger.Error(err), logger.Component("cli"))
		return exitError
	}

	log.Debug("password generated",
		logger.Component("cli"),
		logger.Type(mode(cfg)),
		logger.Key("source", srcName),
		logger.Count("requested_length", int(cfg.PasswordLength)),
		logger.Count("length", len([]rune(pw))),
		logger.Count("words", len(cfg.Words)),
		logger.Elapsed(start),
	)
	return exitOK
}

func mode(cfg passgen.Config) string {
	switch {
	case cfg.HexValue:
		return "hex"
	case passgen.Seed(cfg.Words) != "":
		return "words"
	default:
		return "random"
	}
}
