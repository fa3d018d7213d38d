package config

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := ParseFlags([]string{"games/PONG"}, io.Discard)
	require.NoError(t, err)

	assert.Equal("games/PONG", cfg.ROM)
	assert.Equal(FrontendSDL, cfg.Frontend)
	assert.Equal(60, cfg.Hz)
	assert.Equal(8, cfg.Scale)
	assert.Equal(uint64(0), cfg.Seed)
	assert.False(cfg.QuirkAddIndex)
	assert.False(cfg.Debug)
	assert.False(cfg.Quiet)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(*assert.Assertions, Config)
	}{
		{
			name:  "no rom for sdl",
			args:  nil,
			check: func(a *assert.Assertions, c Config) { a.Empty(c.ROM) },
		},
		{
			name:  "terminal",
			args:  []string{"-frontend", "TERM", "rom.ch8"},
			check: func(a *assert.Assertions, c Config) { a.Equal(FrontendTerm, c.Frontend) },
		},
		{
			name:  "rate and scale",
			args:  []string{"-hz", "500", "-scale", "4", "rom.ch8"},
			check: func(a *assert.Assertions, c Config) { a.Equal(500, c.Hz); a.Equal(4, c.Scale) },
		},
		{
			name:  "seed and quirk",
			args:  []string{"-seed", "99", "-quirk-addi", "rom.ch8"},
			check: func(a *assert.Assertions, c Config) { a.Equal(uint64(99), c.Seed); a.True(c.QuirkAddIndex) },
		},
		{
			name:  "log levels",
			args:  []string{"-debug", "-q", "rom.ch8"},
			check: func(a *assert.Assertions, c Config) { a.True(c.Debug); a.True(c.Quiet) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args, io.Discard)
			require.NoError(t, err)
			tt.check(assert.New(t), cfg)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"unknown flag", []string{"-nope", "rom.ch8"}, true},
		{"flag after rom", []string{"rom.ch8", "-debug"}, true},
		{"bad frontend", []string{"-frontend", "gl", "rom.ch8"}, false},
		{"terminal without rom", []string{"-frontend", "term"}, false},
		{"zero rate", []string{"-hz", "0", "rom.ch8"}, false},
		{"negative scale", []string{"-scale", "-1", "rom.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args, io.Discard)
			require.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}

func TestShowUsage(t *testing.T) {
	_, err := ParseFlags([]string{"-nope"}, io.Discard)

	var usageErr *UsageError
	require.True(t, errors.As(err, &usageErr))

	var buf bytes.Buffer
	usageErr.ShowUsage(&buf)

	assert.Contains(t, buf.String(), "usage: chip-8")
	assert.Contains(t, buf.String(), "-frontend")
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
