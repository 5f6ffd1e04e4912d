package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/easypass/core/config"
	"github.com/dmitrymomot/easypass/pkg/passgen"
)

func defaultEnv() Env {
	return Env{PasswordLength: 20, NumberChance: 30, LogLevel: "error", LogFormat: "text"}
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("easypass", pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	return fs
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig(newFlagSet(), nil, defaultEnv())
		require.NoError(t, err)
		assert.Equal(t, uint8(20), cfg.PasswordLength)
		assert.Equal(t, uint8(30), cfg.NumberChance)
		assert.False(t, cfg.Substitute)
		assert.False(t, cfg.IncludeSpecial)
		assert.False(t, cfg.HexValue)
		assert.Empty(t, cfg.Words)
	})

	t.Run("long flags and words", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig(newFlagSet(), []string{
			"--substitute", "--include-special", "--password-length", "15", "--number-chance", "50", "one", "two",
		}, defaultEnv())
		require.NoError(t, err)
		assert.True(t, cfg.Substitute)
		assert.True(t, cfg.IncludeSpecial)
		assert.False(t, cfg.HexValue)
		assert.Equal(t, uint8(15), cfg.PasswordLength)
		assert.Equal(t, uint8(50), cfg.NumberChance)
		assert.Equal(t, []string{"one", "two"}, cfg.Words)
	})

	t.Run("combined short flags", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig(newFlagSet(), []string{"-Sl", "15", "words"}, defaultEnv())
		require.NoError(t, err)
		assert.True(t, cfg.IncludeSpecial)
		assert.Equal(t, uint8(15), cfg.PasswordLength)
		assert.Equal(t, []string{"words"}, cfg.Words)
	})

	t.Run("short hex flag", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig(newFlagSet(), []string{"-h", "-l", "8"}, defaultEnv())
		require.NoError(t, err)
		assert.True(t, cfg.HexValue)
		assert.Equal(t, uint8(8), cfg.PasswordLength)
	})

	t.Run("env defaults are overridable", func(t *testing.T) {
		t.Parallel()
		env := defaultEnv()
		env.PasswordLength = 40
		env.NumberChance = 0

		cfg, err := ParseConfig(newFlagSet(), nil, env)
		require.NoError(t, err)
		assert.Equal(t, uint8(40), cfg.PasswordLength)
		assert.Equal(t, uint8(0), cfg.NumberChance)

		cfg, err = ParseConfig(newFlagSet(), []string{"-c", "10"}, env)
		require.NoError(t, err)
		assert.Equal(t, uint8(10), cfg.NumberChance)
	})

	t.Run("rejects out of range length", func(t *testing.T) {
		t.Parallel()
		_, err := ParseConfig(newFlagSet(), []string{"-l", "256"}, defaultEnv())
		assert.Error(t, err)
	})

	t.Run("rejects zero length", func(t *testing.T) {
		t.Parallel()
		_, err := ParseConfig(newFlagSet(), []string{"-l", "0"}, defaultEnv())
		assert.ErrorIs(t, err, passgen.ErrInvalidLength)
	})

	t.Run("rejects unknown flag", func(t *testing.T) {
		t.Parallel()
		_, err := ParseConfig(newFlagSet(), []string{"--bogus"}, defaultEnv())
		assert.Error(t, err)
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		_, err := ParseConfig(newFlagSet(), []string{"--help"}, defaultEnv())
		assert.ErrorIs(t, err, pflag.ErrHelp)
	})
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	seed := uint64(7)

	_, name, err := NewSource(Env{})
	require.NoError(t, err)
	assert.Equal(t, "math", name)

	_, name, err = NewSource(Env{Secure: true})
	require.NoError(t, err)
	assert.Equal(t, "crypto", name)

	_, name, err = NewSource(Env{Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, "seeded", name)

	_, _, err = NewSource(Env{Seed: &seed, Secure: true})
	assert.ErrorIs(t, err, ErrConflictingSource)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := NewLogger(Env{LogLevel: "debug", LogFormat: "json"}, &buf)
	require.NoError(t, err)
	log.Debug("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "easypass", rec["service"])

	_, err = NewLogger(Env{LogLevel: "loud"}, &buf)
	assert.Error(t, err)

	_, err = NewLogger(Env{LogLevel: "info", LogFormat: "xml"}, &buf)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("writes a single line", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		pw, err := Run(passgen.Config{PasswordLength: 12, NumberChance: 30}, passgen.NewSource(), &out)
		require.NoError(t, err)
		assert.Len(t, pw, 12)
		assert.Equal(t, pw+"\n", out.String())
	})

	t.Run("nil output", func(t *testing.T) {
		t.Parallel()
		_, err := Run(passgen.Config{PasswordLength: 4}, nil, nil)
		assert.Error(t, err)
	})

	t.Run("write error", func(t *testing.T) {
		t.Parallel()
		_, err := Run(passgen.Config{PasswordLength: 4}, nil, failingWriter{})
		assert.Error(t, err)
	})
}

// The tests below go through run, which reads the environment, so they are not parallel.

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunCLI(t *testing.T) {
	t.Run("default password", func(t *testing.T) {
		code, out, errOut := runCLI(t)
		require.Equal(t, exitOK, code, errOut)
		assert.Empty(t, errOut)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 1)
		assert.Len(t, lines[0], 20)
	})

	t.Run("words prefix", func(t *testing.T) {
		code, out, _ := runCLI(t, "one", "two", "three")
		require.Equal(t, exitOK, code)
		pw := strings.TrimSpace(out)
		assert.Len(t, pw, 20)
		assert.True(t, strings.HasPrefix(pw, "onetwothree"))
	})

	t.Run("long words verbatim", func(t *testing.T) {
		code, out, _ := runCLI(t, "-s", "-l", "10", "abcdefghij", "klmno")
		require.Equal(t, exitOK, code)
		assert.Equal(t, "abcdefghijklmno\n", out)
	})

	t.Run("hex", func(t *testing.T) {
		code, out, _ := runCLI(t, "-h", "-l", "8")
		require.Equal(t, exitOK, code)
		assert.Regexp(t, "^[0-9a-f]{8}\n$", out)
	})

	t.Run("env defaults", func(t *testing.T) {
		t.Setenv("EASYPASS_PASSWORD_LENGTH", "33")
		code, out, _ := runCLI(t)
		require.Equal(t, exitOK, code)
		assert.Len(t, strings.TrimSpace(out), 33)

		code, out, _ = runCLI(t, "-l", "5")
		require.Equal(t, exitOK, code)
		assert.Len(t, strings.TrimSpace(out), 5)
	})

	t.Run("seeded runs repeat", func(t *testing.T) {
		t.Setenv("EASYPASS_SEED", "12345")
		_, first, _ := runCLI(t, "-sS", "-l", "40")
		_, second, _ := runCLI(t, "-sS", "-l", "40")
		assert.Equal(t, first, second)
	})

	t.Run("secure source", func(t *testing.T) {
		t.Setenv("EASYPASS_SECURE", "true")
		code, out, _ := runCLI(t, "-l", "16")
		require.Equal(t, exitOK, code)
		assert.Len(t, strings.TrimSpace(out), 16)
	})

	t.Run("conflicting sources", func(t *testing.T) {
		t.Setenv("EASYPASS_SECURE", "true")
		t.Setenv("EASYPASS_SEED", "1")
		code, out, errOut := runCLI(t)
		assert.Equal(t, exitError, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "invalid configuration")
	})

	t.Run("debug logs go to stderr", func(t *testing.T) {
		t.Setenv("EASYPASS_LOG_LEVEL", "debug")
		code, out, errOut := runCLI(t, "-l", "12")
		require.Equal(t, exitOK, code)
		assert.Len(t, strings.TrimSpace(out), 12)
		assert.Contains(t, errOut, "password generated")
		assert.NotContains(t, errOut, strings.TrimSpace(out))
	})

	t.Run("zero length is a usage error", func(t *testing.T) {
		code, out, errOut := runCLI(t, "-l", "0")
		assert.Equal(t, exitUsage, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "Usage: easypass")
	})

	t.Run("malformed flag", func(t *testing.T) {
		code, out, _ := runCLI(t, "-c", "lots")
		assert.Equal(t, exitUsage, code)
		assert.Empty(t, out)
	})

	t.Run("help", func(t *testing.T) {
		code, out, errOut := runCLI(t, "--help")
		assert.Equal(t, exitOK, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "--password-length")
	})

	t.Run("invalid env", func(t *testing.T) {
		t.Setenv("EASYPASS_NUMBER_CHANCE", "-1")
		code, out, errOut := runCLI(t)
		assert.Equal(t, exitError, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "failed to parse config")
	})
}
