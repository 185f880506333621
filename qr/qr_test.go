package qr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestEncodePNG(t *testing.T) {
	out, err := EncodePNG("BEGIN:VCARD\nFN:Alice\nEND:VCARD", 0)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, out[:4])
}

func TestEncodePNG_Empty(t *testing.T) {
	_, err := EncodePNG("", DefaultSize)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	require.NoError(t, WriteFile("hello", path, 256))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data[:4])
}
