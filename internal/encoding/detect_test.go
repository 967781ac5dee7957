package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/angsur/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "bank,transaction,monthlyPayment\nMandiri,\"Bidan Nuriti 62,500\",70000\n"
	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("bank,transaction\n")...)
	assert.Equal(t, "bank,transaction\n", decode(t, input))
}

func TestNewUTF8Reader_Windows1252Fallback(t *testing.T) {
	// "Café" with é as the single Windows-1252 byte 0xE9.
	input := []byte{'C', 'a', 'f', 0xE9, ',', '1', '0', '0', '\n'}
	assert.Equal(t, "Café,100\n", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	text := "bank\n"
	input := []byte{0xFF, 0xFE}

	for _, r := range text {
		input = append(input, byte(r), 0x00)
	}

	assert.Equal(t, text, decode(t, input))
}
