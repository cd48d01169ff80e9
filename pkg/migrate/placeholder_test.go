package migrate

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderIsValidPNG(t *testing.T) {
	b := PlaceholderPNG()
	require.Len(t, b, 70)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
}

func TestPlaceholderCallersGetCopies(t *testing.T) {
	a := PlaceholderPNG()
	a[0] = 0
	assert.NotEqual(t, a[0], PlaceholderPNG()[0])
}
