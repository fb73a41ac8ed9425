package gbctile

import (
	gbimage "github.com/bodgit/gbctile/image"
	"github.com/bodgit/gbctile/palette"
	"github.com/bodgit/gbctile/rgb555"
	"github.com/bodgit/gbctile/tile"
	"github.com/bodgit/gbctile/tilemap"
)

// block carries one 8 by 8 block through the conversion. Each pass fills in
// the fields it is responsible for
type block struct {
	x, y   int
	pixels [gbimage.BlockPixels]uint32

	// First pass
	distinct []uint32
	colors   []rgb555.Color
	palette  int

	// Second pass
	tile tile.Tile
}

func containsPixel(s []uint32, px uint32) bool {
	for _, v := range s {
		if v == px {
			return true
		}
	}
	return false
}

// Colors are compared as raw pixel values, so two pixels that quantize to
// the same color still count separately towards the limit
func (b *block) extractColors() error {
	b.distinct = make([]uint32, 0, palette.ColorsPerPalette)
	for _, px := range b.pixels {
		if containsPixel(b.distinct, px) {
			continue
		}
		if len(b.distinct) == palette.ColorsPerPalette {
			return &BlockError{
				X:      b.x,
				Y:      b.y,
				Colors: append(b.distinct, px),
				Err:    ErrTooManyColors,
			}
		}
		b.distinct = append(b.distinct, px)
	}

	b.colors = make([]rgb555.Color, len(b.distinct))
	for i, px := range b.distinct {
		b.colors[i] = rgb555.FromTruecolor(px)
	}

	return nil
}

func (b *block) encode(p *palette.Palette) error {
	var indices [tile.Pixels]uint8
	for i, px := range b.pixels {
		j, err := p.Index(rgb555.FromTruecolor(px))
		if err != nil {
			return &BlockError{X: b.x, Y: b.y, Err: err}
		}
		indices[i] = uint8(j)
	}

	t, err := tile.Encode(indices)
	if err != nil {
		return &BlockError{X: b.x, Y: b.y, Err: err}
	}
	b.tile = t

	return nil
}

// Convert converts the pixel grid g.
//
// Palettes are allocated for every block before any tile is encoded, as
// allocating a later block can add colors to a palette already used by an
// earlier one. The palettes are then sorted and every block is encoded and
// deduplicated in a second pass.
func (c *Converter) Convert(g *gbimage.Grid) (*Result, error) {
	blocks := make([]block, 0, g.BlocksX()*g.BlocksY())
	palettes := palette.NewSet()

	for ty := 0; ty < g.BlocksY(); ty++ {
		for tx := 0; tx < g.BlocksX(); tx++ {
			b := block{
				x:      tx,
				y:      ty,
				pixels: g.Block(tx, ty),
			}
			if err := b.extractColors(); err != nil {
				return nil, err
			}

			p, err := palettes.Allocate(b.colors)
			if err != nil {
				return nil, &BlockError{X: tx, Y: ty, Colors: b.distinct, Err: err}
			}
			b.palette = p

			blocks = append(blocks, b)
		}
	}

	palettes.Normalize()
	c.logger.Printf("Allocated %d palette(s)\n", palettes.Len())

	r := &Result{
		Width:    g.Width,
		Height:   g.Height,
		Palettes: palettes,
		Tiles:    tile.NewTable(),
		Map:      new(tilemap.Map),
	}

	for i := range blocks {
		b := &blocks[i]
		if err := b.encode(palettes.Palette(b.palette)); err != nil {
			return nil, err
		}

		index, hflip, vflip, err := r.Tiles.Add(b.tile)
		if err != nil {
			return nil, &BlockError{X: b.x, Y: b.y, Err: err}
		}

		if err := r.Map.Set(b.x, b.y, tilemap.Cell{
			Index:   uint16(index),
			Palette: uint8(b.palette),
			HFlip:   hflip,
			VFlip:   vflip,
		}); err != nil {
			return nil, err
		}
	}

	c.logger.Printf("Found %d unique tile(s)\n", r.Tiles.Len())
	if r.Tiles.Len() > tilemap.MaxAddressable {
		c.logger.Printf("Warning: map bytes only address the first %d of %d tiles\n", tilemap.MaxAddressable, r.Tiles.Len())
	}

	return r, nil
}
