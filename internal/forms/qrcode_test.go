package forms

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestMenuQRGenerator(t *testing.T) {
	gen := MenuQRGenerator{BaseURL: "https://pickfoo.example.com"}

	png, err := gen.Generate("r1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}
