package gbctile

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	gbimage "github.com/bodgit/gbctile/image"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ConvertFile decodes the image in file and converts it. Any format with a
// registered decoder is accepted; PNG, GIF, JPEG, BMP, TIFF and WebP are
// registered by this package.
func (c *Converter) ConvertFile(file string) (*Result, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	b := m.Bounds()
	c.logger.Printf("%s: %dx%d %s\n", file, b.Dx(), b.Dy(), format)

	g, err := gbimage.NewGrid(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return c.Convert(g)
}
