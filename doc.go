// Package easypass generates passwords and hexadecimal strings from a handful of options:
// length, special characters, leetspeak substitution, seed words and digit probability.
//
// The root package holds no code; it indexes the packages of the module.
//
// # Packages
//
//   - github.com/dmitrymomot/easypass/pkg/passgen: password and hex generation, substitution table, random sources
//   - github.com/dmitrymomot/easypass/core/config: cached environment loading with .env support
//   - github.com/dmitrymomot/easypass/core/logger: slog logger factory and attribute helpers
//   - github.com/dmitrymomot/easypass/cmd/easypass: command-line entry point
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/easypass/pkg/passgen
//	go doc -all github.com/dmitrymomot/easypass/core/config
//
// # Command Line
//
//	easypass [-s] [-S] [-h] [-l length] [-c chance] [words...]
//
// Flags:
//
//	-s, --substitute             replace characters with similar looking ones
//	-S, --include-special        include special symbols
//	-h, --hex-value              print a random hex value instead of a password
//	-l, --password-length uint8  target length (default 20)
//	-c, --number-chance uint8    percent chance a random character is a digit (default 30)
//
// Environment (read from the process and an optional .env file, overridden by flags):
//
//	EASYPASS_PASSWORD_LENGTH, EASYPASS_NUMBER_CHANCE, EASYPASS_SECURE,
//	EASYPASS_SEED, EASYPASS_LOG_LEVEL, EASYPASS_LOG_FORMAT
package easypass
