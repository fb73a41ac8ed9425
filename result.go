package gbctile

import (
	"bytes"
	"fmt"
	"image"
	"io"

	gbimage "github.com/bodgit/gbctile/image"
	"github.com/bodgit/gbctile/palette"
	"github.com/bodgit/gbctile/tile"
	"github.com/bodgit/gbctile/tilemap"
)

// Result is the converted form of an image. It implements the io.WriterTo
// and encoding.BinaryMarshaler interfaces.
type Result struct {
	// Width and Height are the dimensions of the source image
	Width, Height int

	Palettes *palette.Set
	Tiles    *tile.Table
	Map      *tilemap.Map
}

func writeLabel(b *bytes.Buffer, label string) {
	b.WriteString(label)
	b.WriteString(":\n")
}

// writeBytes writes p as a single assembler db directive
func writeBytes(b *bytes.Buffer, p []byte) {
	b.WriteString("  db ")
	for i, v := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "$%02X", v)
	}
	b.WriteByte('\n')
}

// WriteTo writes r to w as an assembler listing of the palettes, tiles, map
// and attributes, followed by the number of unique tiles.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	b := new(bytes.Buffer)

	for i := 0; i < r.Palettes.Len(); i++ {
		writeLabel(b, fmt.Sprintf("Palette%d", i))
		p, err := r.Palettes.Palette(i).MarshalBinary()
		if err != nil {
			return 0, err
		}
		for j := 0; j < len(p); j += 2 {
			writeBytes(b, p[j:j+2])
		}
	}

	writeLabel(b, "TileData")
	for i := 0; i < r.Tiles.Len(); i++ {
		t := r.Tiles.At(i)
		writeBytes(b, t[:])
	}

	writeLabel(b, "Map")
	tiles := r.Map.Tiles()
	for y := 0; y < tilemap.Height; y++ {
		writeBytes(b, tiles[y*tilemap.Width:(y+1)*tilemap.Width])
	}

	writeLabel(b, "Attributes")
	attrs := r.Map.Attributes()
	for y := 0; y < tilemap.Height; y++ {
		writeBytes(b, attrs[y*tilemap.Width:(y+1)*tilemap.Width])
	}

	fmt.Fprintf(b, "Found %d tiles\n", r.Tiles.Len())

	return b.WriteTo(w)
}

// MarshalBinary returns the same bytes as WriteTo without any formatting;
// the palettes in use, the tiles, then the map and attributes.
func (r *Result) MarshalBinary() ([]byte, error) {
	var b []byte

	p, err := r.Palettes.MarshalBinary()
	if err != nil {
		return nil, err
	}
	b = append(b, p...)

	t, err := r.Tiles.MarshalBinary()
	if err != nil {
		return nil, err
	}
	b = append(b, t...)

	m, err := r.Map.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return append(b, m...), nil
}

// Image renders r back into an image the size of the source image.
func (r *Result) Image() (*image.Paletted, error) {
	return gbimage.Render(r.Width, r.Height, r.Palettes, r.Tiles, r.Map)
}
