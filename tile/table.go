package tile

// Table is the list of unique tiles, in the order they were first seen.
type Table struct {
	tiles []Tile
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		tiles: make([]Tile, 0, MaxTiles),
	}
}

// Len returns the number of tiles in the table.
func (tb *Table) Len() int {
	return len(tb.tiles)
}

// At returns the tile at index i.
func (tb *Table) At(i int) Tile {
	return tb.tiles[i]
}

// Add looks for t in the table, either as is or mirrored. It returns the
// index of the stored tile and which flips reproduce t from it. If no
// existing tile matches, t is appended.
func (tb *Table) Add(t Tile) (index int, hflip, vflip bool, err error) {
	h := t.FlipH()
	v := t.FlipV()
	hv := h.FlipV()

	for i, e := range tb.tiles {
		switch e {
		case t:
			return i, false, false, nil
		case h:
			return i, true, false, nil
		case v:
			return i, false, true, nil
		case hv:
			return i, true, true, nil
		}
	}

	if len(tb.tiles) == MaxTiles {
		return -1, false, false, ErrTooManyTiles
	}
	tb.tiles = append(tb.tiles, t)

	return len(tb.tiles) - 1, false, false, nil
}

// MarshalBinary encodes every tile in table order.
func (tb *Table) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, len(tb.tiles)*Size)
	for _, t := range tb.tiles {
		b = append(b, t[:]...)
	}
	return b, nil
}
