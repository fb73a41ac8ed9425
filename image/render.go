package image

import (
	"fmt"
	"image"
	"image/color"

	"github.com/bodgit/gbctile/palette"
	"github.com/bodgit/gbctile/tile"
	"github.com/bodgit/gbctile/tilemap"
)

// Render draws the top-left w by h pixels of the background map using the
// given palettes and tiles. Palette p occupies entries 4p to 4p+3 of the
// returned image's palette; unused entries are black.
func Render(w, h int, ps *palette.Set, tb *tile.Table, m *tilemap.Map) (*image.Paletted, error) {
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}

	cp := make(color.Palette, 0, ps.Len()*colorsPerPalette)
	for i := 0; i < ps.Len(); i++ {
		p := ps.Palette(i)
		for _, c := range p.Colors() {
			cp = append(cp, c)
		}
		for j := p.Len(); j < colorsPerPalette; j++ {
			cp = append(cp, color.Black)
		}
	}

	pm := image.NewPaletted(image.Rect(0, 0, w, h), cp)

	for ty := 0; ty < h/blockHeight; ty++ {
		for tx := 0; tx < w/blockWidth; tx++ {
			c := m.At(tx, ty)
			if int(c.Index) >= tb.Len() {
				return nil, fmt.Errorf("image: cell (%d, %d) references missing tile %d", tx, ty, c.Index)
			}
			if int(c.Palette) >= ps.Len() {
				return nil, fmt.Errorf("image: cell (%d, %d) references missing palette %d", tx, ty, c.Palette)
			}

			t := tb.At(int(c.Index))
			if c.HFlip {
				t = t.FlipH()
			}
			if c.VFlip {
				t = t.FlipV()
			}

			base := c.Palette * colorsPerPalette
			for i, v := range t.Indices() {
				pm.SetColorIndex(tx*blockWidth+i%blockWidth, ty*blockHeight+i/blockWidth, base+v)
			}
		}
	}

	return pm, nil
}
