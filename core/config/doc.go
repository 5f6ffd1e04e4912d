// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use (a
// missing file is not an error) and uses the caarlos0/env library for parsing
// environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/easypass/core/config"
//
//	type Defaults struct {
//		PasswordLength uint8 `env:"EASYPASS_PASSWORD_LENGTH" envDefault:"20"`
//		NumberChance   uint8 `env:"EASYPASS_NUMBER_CHANCE" envDefault:"30"`
//	}
//
//	func main() {
//		var d Defaults
//
//		// Load with error handling
//		if err := config.Load(&d); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure
//		config.MustLoad(&d)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process:
//
//	var cfg1 Defaults
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 Defaults
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Tests that change the environment between loads should call Reset.
package config
