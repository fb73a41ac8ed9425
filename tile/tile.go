/*
Package tile implements the Game Boy Color 2 bits per pixel tile format and
the table of unique tiles referenced by a background map.

Each tile is 8 by 8 pixels stored as 16 bytes; for each row a byte holding
bit 0 of every pixel's color index is followed by a byte holding bit 1, with
the leftmost pixel in the most significant bit.
*/
package tile

import (
	"errors"
	"math/bits"
)

const (
	tileWidth  = 8
	tileHeight = tileWidth
	// Pixels is the number of pixels in a tile
	Pixels = tileWidth * tileHeight
	// Size is the number of bytes used to store a tile
	Size = tileHeight * 2
	// MaxTiles is the capacity of a Table
	MaxTiles = 1024
	maxIndex = 3
)

var (
	// ErrTooManyTiles is returned when adding a tile to a full Table
	ErrTooManyTiles = errors.New("tile: more than 1024 unique tiles")
	// ErrColorIndex is returned when encoding a pixel that doesn't fit in
	// two bits
	ErrColorIndex = errors.New("tile: invalid color index")
)

// Tile is a single encoded tile.
type Tile [Size]byte

// Encode packs 64 color indices, in row order, into a Tile.
func Encode(indices [Pixels]uint8) (Tile, error) {
	var t Tile
	for y := 0; y < tileHeight; y++ {
		var lower, upper byte
		for x := 0; x < tileWidth; x++ {
			i := indices[y*tileWidth+x]
			if i > maxIndex {
				return Tile{}, ErrColorIndex
			}
			lower = lower<<1 | i&1
			upper = upper<<1 | i>>1&1
		}
		t[y<<1] = lower
		t[y<<1+1] = upper
	}
	return t, nil
}

// Indices unpacks the tile back into 64 color indices in row order.
func (t Tile) Indices() (indices [Pixels]uint8) {
	for y := 0; y < tileHeight; y++ {
		lower, upper := t[y<<1], t[y<<1+1]
		for x := 0; x < tileWidth; x++ {
			shift := uint(tileWidth - 1 - x)
			indices[y*tileWidth+x] = lower>>shift&1 | (upper>>shift&1)<<1
		}
	}
	return
}

// FlipH returns the tile mirrored left to right.
func (t Tile) FlipH() Tile {
	for i := range t {
		t[i] = bits.Reverse8(t[i])
	}
	return t
}

// FlipV returns the tile mirrored top to bottom.
func (t Tile) FlipV() Tile {
	var r Tile
	for y := 0; y < tileHeight; y++ {
		copy(r[y<<1:y<<1+2], t[(tileHeight-1-y)<<1:])
	}
	return r
}
