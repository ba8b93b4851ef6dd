package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func writeBitmap(t *testing.T, fs afero.Fs, file string, img image.Image) {
	f, err := fs.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, bmp.Encode(f, img))
}

func TestLoadBitmap(t *testing.T) {
	t.Run("should decode a bitmap", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeBitmap(t, fs, "paddle.bmp", filledImage(100, 16, color.RGBA{R: 30, G: 30, B: 30, A: 255}))

		img, err := LoadBitmap(fs, "paddle.bmp")

		require.NoError(t, err)
		assert.Equal(t, 100, img.Bounds().Dx())
		assert.Equal(t, 16, img.Bounds().Dy())
		r, g, b, _ := img.At(50, 8).RGBA()
		assert.Equal(t, uint32(30*0x101), r)
		assert.Equal(t, uint32(30*0x101), g)
		assert.Equal(t, uint32(30*0x101), b)
	})
	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := LoadBitmap(afero.NewMemMapFs(), "dot.bmp")
		assert.Error(t, err)
	})
	t.Run("should fail on a file that is not a bitmap", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "dot.bmp", []byte("GIF89a"), 0644))
		_, err := LoadBitmap(fs, "dot.bmp")
		assert.ErrorContains(t, err, "dot.bmp")
	})
}
