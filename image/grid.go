package image

import (
	"errors"
	"fmt"
	"image"

	"github.com/bodgit/gbctile/rgb555"
)

var (
	// ErrDimensions is returned when the width or height isn't a multiple
	// of 8
	ErrDimensions = errors.New("image: width and height must be multiples of 8")
	// ErrTooLarge is returned when the image doesn't fit the background
	// map
	ErrTooLarge = errors.New("image: image larger than 256x256")
	// ErrEmpty is returned for an image with no pixels
	ErrEmpty = errors.New("image: image is empty")
)

// DimensionError reports an image with unsupported dimensions.
type DimensionError struct {
	Width, Height int
	Err           error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v (got %dx%d)", e.Err, e.Width, e.Height)
}

// Unwrap returns the underlying error.
func (e *DimensionError) Unwrap() error {
	return e.Err
}

// Grid is a rectangle of truecolor pixels with its top-left corner at (0, 0).
type Grid struct {
	Width  int
	Height int
	Pix    []uint32
}

func checkDimensions(w, h int) error {
	var err error
	switch {
	case w <= 0 || h <= 0:
		err = ErrEmpty
	case w%blockWidth != 0 || h%blockHeight != 0:
		err = ErrDimensions
	case w > MaxWidth || h > MaxHeight:
		err = ErrTooLarge
	default:
		return nil
	}
	return &DimensionError{Width: w, Height: h, Err: err}
}

// NewGrid converts m into a Grid. Any color model is accepted; colors are
// converted to non-premultiplied RGBA first.
func NewGrid(m image.Image) (*Grid, error) {
	b := m.Bounds()
	if err := checkDimensions(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}

	g := &Grid{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]uint32, b.Dx()*b.Dy()),
	}

	// Adjust so that the top-left corner is at (0, 0)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Pix[(y-b.Min.Y)*g.Width+x-b.Min.X] = rgb555.Truecolor(m.At(x, y))
		}
	}

	return g, nil
}

// BlocksX returns the number of blocks in each row.
func (g *Grid) BlocksX() int {
	return g.Width / blockWidth
}

// BlocksY returns the number of rows of blocks.
func (g *Grid) BlocksY() int {
	return g.Height / blockHeight
}

// Block returns the pixels of the block at (tx, ty) in row order.
func (g *Grid) Block(tx, ty int) (p [BlockPixels]uint32) {
	base := ty*blockHeight*g.Width + tx*blockWidth
	for y := 0; y < blockHeight; y++ {
		copy(p[y*blockWidth:(y+1)*blockWidth], g.Pix[base+y*g.Width:])
	}
	return
}
