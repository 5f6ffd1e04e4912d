package passgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Config describes a single generation request.
type Config struct {
	// Substitute replaces letters and digits with look-alike characters.
	Substitute bool
	// IncludeSpecial adds special symbols to the allowed alphabet.
	IncludeSpecial bool
	// HexValue produces a lowercase hex string and ignores every other option but the length.
	HexValue bool
	// PasswordLength is the target length in characters.
	PasswordLength uint8
	// NumberChance is the percentage chance that a random position is a digit.
	// Values of 100 or more make every random position a digit.
	NumberChance uint8
	// Words are joined in order, without separator, to form the password prefix.
	Words []string
}

// Validate reports whether the config can be used to produce a non-empty result.
func (c Config) Validate() error {
	if c.PasswordLength == 0 {
		return ErrInvalidLength
	}
	return nil
}

// Generator produces passwords using its Source.
type Generator struct {
	src Source
}

// New creates a Generator. A nil src falls back to NewSource.
func New(src Source) *Generator {
	if src == nil {
		src = NewSource()
	}
	return &Generator{src: src}
}

var defaultGenerator = New(NewSource())

// Generate builds a password using the package default source.
func Generate(cfg Config) string {
	return defaultGenerator.Generate(cfg)
}

// Generate builds a password or hex string according to cfg.
//
// When the joined words are at least PasswordLength characters long they are returned
// verbatim, so the result may be longer than requested.
func (g *Generator) Generate(cfg Config) string {
	if cfg.HexValue {
		return Hex(g.src, int(cfg.PasswordLength))
	}

	alphabet := Alphabet(cfg.IncludeSpecial)
	length := int(cfg.PasswordLength)

	seed := Seed(cfg.Words)
	if seed == "" {
		return g.fragment(cfg, alphabet, length)
	}

	seedLen := utf8.RuneCountInString(seed)
	if seedLen >= length {
		return seed
	}

	filler := g.fragment(cfg, alphabet, length-seedLen)
	if cfg.Substitute {
		seed = SubstituteWord(seed)
	}
	return seed + filler
}

// fragment returns exactly length random characters.
func (g *Generator) fragment(cfg Config, alphabet []rune, length int) string {
	var sb strings.Builder
	sb.Grow(length)

	for range length {
		// Digit unless the draw beats the number chance.
		if int(cfg.NumberChance) >= g.src.IntN(100) {
			sb.WriteByte(digits[g.src.IntN(len(digits))])
			continue
		}

		ch := alphabet[g.src.IntN(len(alphabet))]
		if cfg.Substitute {
			ch = SubstituteChar(ch)
		}
		if g.src.Bool() {
			sb.WriteRune(ch)
		} else {
			sb.WriteRune(unicode.ToLower(ch))
		}
	}

	return sb.String()
}

// Seed joins words with no separator.
func Seed(words []string) string {
	return strings.Join(words, "")
}

// Hex returns length characters drawn uniformly from 0-9a-f.
func Hex(src Source, length int) string {
	if length <= 0 {
		return ""
	}
	if src == nil {
		src = NewSource()
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = hexChars[src.IntN(len(hexChars))]
	}
	return string(buf)
}
