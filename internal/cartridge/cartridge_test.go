package cartridge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/massung/chip-8/chip8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PONG")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0xE0, 0x12, 0x02}, 0o600))

	cart, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "PONG", cart.Name)
	assert.Equal(t, []byte{0x00, 0xE0, 0x12, 0x02}, cart.Data)
	assert.False(t, cart.Truncated)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReadTruncates(t *testing.T) {
	assert := assert.New(t)

	full, err := Read(bytes.NewReader(make([]byte, chip8.ProgramSize)))
	require.NoError(t, err)
	assert.Len(full.Data, chip8.ProgramSize)
	assert.False(full.Truncated)

	big, err := Read(bytes.NewReader(make([]byte, 2*chip8.ProgramSize)))
	require.NoError(t, err)
	assert.Len(big.Data, chip8.ProgramSize)
	assert.True(big.Truncated)
}
