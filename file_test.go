package gbctile

import (
	"errors"
	"image"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	gbimage "github.com/bodgit/gbctile/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, file string, m image.Image) {
	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()
	require.Nil(t, png.Encode(f, m))
}

func TestConvertFile(t *testing.T) {
	t.Parallel()

	m := image.NewNRGBA(image.Rect(0, 0, 16, 8))
	drawBlock(m, 0, 0, glyph, white, black)
	drawBlock(m, 1, 0, flipRowsV(glyph), white, black)

	file := filepath.Join(t.TempDir(), "glyph.png")
	writePNG(t, file, m)

	r, err := newConverter().ConvertFile(file)
	require.Nil(t, err)
	assert.Equal(t, 16, r.Width)
	assert.Equal(t, 8, r.Height)
	assert.Equal(t, 1, r.Tiles.Len())
	assert.True(t, r.Map.At(1, 0).VFlip)
}

func TestConvertFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := newConverter().ConvertFile(filepath.Join(dir, "missing.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	text := filepath.Join(dir, "text.png")
	require.Nil(t, ioutil.WriteFile(text, []byte("not an image"), 0644))
	_, err = newConverter().ConvertFile(text)
	assert.True(t, errors.Is(err, image.ErrFormat))

	odd := filepath.Join(dir, "odd.png")
	writePNG(t, odd, image.NewNRGBA(image.Rect(0, 0, 10, 8)))
	_, err = newConverter().ConvertFile(odd)
	assert.True(t, errors.Is(err, gbimage.ErrDimensions))
	assert.EqualError(t, err, odd+": image: width and height must be multiples of 8 (got 10x8)")

	big := filepath.Join(dir, "big.png")
	writePNG(t, big, image.NewNRGBA(image.Rect(0, 0, 264, 8)))
	_, err = newConverter().ConvertFile(big)
	assert.True(t, errors.Is(err, gbimage.ErrTooLarge))
}
