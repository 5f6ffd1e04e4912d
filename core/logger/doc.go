// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
// Create loggers using the factory function with configuration options:
//
//	import "github.com/dmitrymomot/easypass/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("easypass"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("easypass"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "easypass")),
//		logger.WithOutput(os.Stderr),
//	)
//
// Output defaults to os.Stderr so that command-line tools can keep stdout for their result.
//
// # Attribute Helpers
//
//	log.Debug("Password generated",
//		logger.Component("passgen"),
//		logger.Type("hex"),
//		logger.Count("length", 32),
//		logger.Elapsed(start),
//	)
//
//	log.Error("Invalid arguments",
//		logger.Error(err),
//		logger.Action("parse_flags"),
//	)
//
// Helpers that receive a zero value (nil error, empty version) return an empty
// slog.Attr, which handlers skip.
package logger
