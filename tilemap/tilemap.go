/*
Package tilemap implements the 32 by 32 Game Boy Color background map and its
attribute table.

Each cell references a tile by index and selects one of eight palettes plus
optional horizontal and vertical mirroring. The map is written as 1024 bytes
of tile numbers, offset by 0x80 to address the shared tile bank, followed by
1024 attribute bytes.
*/
package tilemap

import (
	"errors"
	"fmt"
)

const (
	// Width is the number of cells in each map row
	Width = 32
	// Height is the number of rows in the map
	Height = 32
	// IndexOffset is added to each tile index when written to the map
	IndexOffset = 0x80
	// MaxAddressable is the number of distinct tiles a map byte can select
	MaxAddressable = 256

	numCells = Width * Height

	attrPalette = 0x07
	attrHFlip   = 1 << 5
	attrVFlip   = 1 << 6
)

var errInvalidLength = errors.New("tilemap: invalid length")

// Cell is a single map position.
type Cell struct {
	Index   uint16
	Palette uint8
	HFlip   bool
	VFlip   bool
}

// Pack returns the tile number and attribute bytes for the cell. Only the
// low 8 bits of the offset tile index fit in the tile number.
func (c Cell) Pack() (tile, attr byte) {
	tile = byte(c.Index + IndexOffset)
	attr = c.Palette & attrPalette
	if c.HFlip {
		attr |= attrHFlip
	}
	if c.VFlip {
		attr |= attrVFlip
	}
	return
}

// Unpack is the inverse of Pack for tile indices below 256.
func Unpack(tile, attr byte) Cell {
	return Cell{
		Index:   uint16(tile - IndexOffset),
		Palette: attr & attrPalette,
		HFlip:   attr&attrHFlip != 0,
		VFlip:   attr&attrVFlip != 0,
	}
}

// Map is the background map. The zero value has every cell referencing tile
// zero with palette zero.
type Map struct {
	cells [numCells]Cell
}

func inRange(x, y int) error {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return fmt.Errorf("tilemap: cell (%d, %d) out of range", x, y)
	}
	return nil
}

// Set stores c at (x, y).
func (m *Map) Set(x, y int, c Cell) error {
	if err := inRange(x, y); err != nil {
		return err
	}
	m.cells[y*Width+x] = c
	return nil
}

// At returns the cell at (x, y). It panics if (x, y) is out of range.
func (m *Map) At(x, y int) Cell {
	if err := inRange(x, y); err != nil {
		panic(err)
	}
	return m.cells[y*Width+x]
}

// Tiles returns the packed tile number of every cell in row order.
func (m *Map) Tiles() []byte {
	b := make([]byte, numCells)
	for i, c := range m.cells {
		b[i], _ = c.Pack()
	}
	return b
}

// Attributes returns the packed attribute byte of every cell in row order.
func (m *Map) Attributes() []byte {
	b := make([]byte, numCells)
	for i, c := range m.cells {
		_, b[i] = c.Pack()
	}
	return b
}

// MarshalBinary encodes the map as the tile numbers followed by the
// attributes.
func (m *Map) MarshalBinary() ([]byte, error) {
	return append(m.Tiles(), m.Attributes()...), nil
}

// UnmarshalBinary decodes the map from binary form.
func (m *Map) UnmarshalBinary(b []byte) error {
	if len(b) != numCells*2 {
		return errInvalidLength
	}
	for i := range m.cells {
		m.cells[i] = Unpack(b[i], b[numCells+i])
	}
	return nil
}
