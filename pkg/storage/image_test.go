package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompressImage(t *testing.T) {
	t.Run("Wide images are capped on width", func(t *testing.T) {
		data, err := CompressImage(encodePNG(t, 400, 100), 200, 80)
		require.NoError(t, err)

		img, format, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 200, img.Bounds().Dx())
		assert.Equal(t, 50, img.Bounds().Dy())
	})

	t.Run("Tall images are capped on height", func(t *testing.T) {
		data, err := CompressImage(encodePNG(t, 100, 400), 200, 80)
		require.NoError(t, err)

		img, _, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 50, img.Bounds().Dx())
		assert.Equal(t, 200, img.Bounds().Dy())
	})

	t.Run("Small images keep their dimensions", func(t *testing.T) {
		data, err := CompressImage(encodePNG(t, 80, 60), 200, 80)
		require.NoError(t, err)

		img, _, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 80, img.Bounds().Dx())
		assert.Equal(t, 60, img.Bounds().Dy())
	})

	t.Run("Garbage input errors", func(t *testing.T) {
		_, err := CompressImage([]byte("not an image"), 200, 80)
		assert.Error(t, err)
	})
}
