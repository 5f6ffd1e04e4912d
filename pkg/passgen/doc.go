// Package passgen builds passwords and hexadecimal strings from a small set of options.
//
// A password is made of an optional seed (the configured words joined together with no
// separator) followed by a random fragment that fills the remaining length. Fragment
// characters are drawn from the allowed alphabet (uppercase Latin letters, plus special
// symbols when enabled) and emitted in random case. Each position has a configurable chance
// of being a decimal digit instead. With substitution enabled, letters of both the seed and
// the fragment are replaced using a fixed leetspeak table.
//
// # Usage
//
// Default generation:
//
//	pw := passgen.Generate(passgen.Config{
//		PasswordLength: 20,
//		NumberChance:   30,
//	})
//
// With seed words and substitution:
//
//	pw := passgen.Generate(passgen.Config{
//		Substitute:     true,
//		PasswordLength: 16,
//		NumberChance:   30,
//		Words:          []string{"correct", "horse"},
//	})
//	// Example: "U0rr3Uth0r53" followed by 4 random characters
//
// Hexadecimal mode ignores everything except the length:
//
//	hex := passgen.Generate(passgen.Config{HexValue: true, PasswordLength: 8})
//	// Example: "3fa09c1e"
//
// # Seed Length
//
// The requested length is a target, not a cap. When the seed is already at least as long
// as PasswordLength it is returned verbatim: no substitution and no random filler.
//
// # Random Sources
//
// Generation reads randomness through the Source interface:
//
//   - NewSource: math/rand/v2, unseeded (default)
//   - NewSeededSource: PCG seeded, reproducible output
//   - NewCryptoSource: crypto/rand backed
//
// Passwords from the default source are not suitable where a cryptographic guarantee is
// required; use NewCryptoSource for that.
//
//	g := passgen.New(passgen.NewCryptoSource())
//	pw := g.Generate(cfg)
package passgen
