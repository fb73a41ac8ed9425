/*
Package image adapts decoded images into the pixel grid consumed by the tile
converter and renders converted output back into an image.

The grid must be a multiple of 8 pixels in each direction, and no larger than
the 256 by 256 pixels covered by the 32 by 32 background map. Each pixel is
held as a 32-bit truecolor value with the red byte least significant, then
green, blue and alpha.
*/
package image

const (
	blockWidth  = 8
	blockHeight = blockWidth
	// BlockPixels is the number of pixels in a block
	BlockPixels = blockWidth * blockHeight
	// MaxWidth is the widest image that fits the background map
	MaxWidth = blockWidth * 32
	// MaxHeight is the tallest image that fits the background map
	MaxHeight = blockHeight * 32

	colorsPerPalette = 4
)
