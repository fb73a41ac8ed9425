package image

import (
	"errors"
	"image/color"
	"testing"

	"github.com/bodgit/gbctile/palette"
	"github.com/bodgit/gbctile/rgb555"
	"github.com/bodgit/gbctile/tile"
	"github.com/bodgit/gbctile/tilemap"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	ps := palette.NewSet()
	_, err := ps.Allocate([]rgb555.Color{0x0000, 0x7fff})
	require.Nil(t, err)
	_, err = ps.Allocate([]rgb555.Color{0x001f, 0x03e0, 0x7c00, 0x4210, 0x0001})
	require.NotNil(t, err)
	_, err = ps.Allocate([]rgb555.Color{0x001f, 0x03e0, 0x7c00})
	require.Nil(t, err)
	ps.Normalize()

	// A single diagonal pixel in the top-left corner
	var indices [tile.Pixels]uint8
	indices[0] = 1
	tl, err := tile.Encode(indices)
	require.Nil(t, err)

	tb := tile.NewTable()
	_, _, _, err = tb.Add(tl)
	require.Nil(t, err)

	m := new(tilemap.Map)
	require.Nil(t, m.Set(1, 0, tilemap.Cell{HFlip: true}))
	require.Nil(t, m.Set(0, 1, tilemap.Cell{Palette: 1, VFlip: true}))
	require.Nil(t, m.Set(1, 1, tilemap.Cell{Palette: 1, HFlip: true, VFlip: true}))

	pm, err := Render(16, 16, ps, tb, m)
	require.Nil(t, err)

	want := make([]uint8, 16*16)
	want[0] = 1            // (0, 0) palette 0
	want[15] = 1           // (15, 0) palette 0, mirrored
	want[15*16] = 4 + 1    // (0, 15) palette 1, flipped
	want[15*16+15] = 4 + 1 // (15, 15) palette 1, both
	if diff := deep.Equal(pm.Pix, want); diff != nil {
		t.Fatalf("rendered pixels differ: %v\n%s", diff, spew.Sdump(pm.Pix))
	}

	wantPalette := color.Palette{
		rgb555.Color(0x0000), rgb555.Color(0x001f), rgb555.Color(0x03e0), rgb555.Color(0x7fff),
		rgb555.Color(0x001f), rgb555.Color(0x03e0), rgb555.Color(0x7c00), color.Black,
	}
	if diff := deep.Equal(pm.Palette, wantPalette); diff != nil {
		t.Fatalf("palette differs: %v\n%s", diff, spew.Sdump(pm.Palette))
	}
}

func TestRenderMissing(t *testing.T) {
	t.Parallel()

	ps := palette.NewSet()
	_, err := ps.Allocate([]rgb555.Color{0})
	require.Nil(t, err)
	ps.Normalize()

	tb := tile.NewTable()
	m := new(tilemap.Map)

	_, err = Render(8, 8, ps, tb, m)
	require.EqualError(t, err, "image: cell (0, 0) references missing tile 0")

	_, _, _, err = tb.Add(tile.Tile{})
	require.Nil(t, err)
	require.Nil(t, m.Set(0, 0, tilemap.Cell{Palette: 3}))

	_, err = Render(8, 8, ps, tb, m)
	require.EqualError(t, err, "image: cell (0, 0) references missing palette 3")

	_, err = Render(12, 8, ps, tb, m)
	require.True(t, errors.Is(err, ErrDimensions))
}
