package rgb555

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromTruecolor(t *testing.T) {
	t.Parallel()

	tables := []struct {
		name  string
		pixel uint32
		want  Color
	}{
		{"black", 0xff000000, 0x0000},
		{"white", 0xffffffff, 0x7fff},
		{"red", 0xff0000ff, 0x001f},
		{"green", 0xff00ff00, 0x03e0},
		{"blue", 0xffff0000, 0x7c00},
		{"low bits dropped", 0xff070707, 0x0000},
		{"alpha ignored", 0x00f8f8f8, 0x7fff},
		{"mixed", 0xff104080, 0x0910},
	}

	for _, table := range tables {
		table := table
		t.Run(table.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, table.want, FromTruecolor(table.pixel))
		})
	}
}

func TestChannelRange(t *testing.T) {
	t.Parallel()

	for i := uint32(0); i < 1<<24; i += 0x010307 {
		c := FromTruecolor(i | 0xff000000)
		assert.LessOrEqual(t, int(c), 0x7fff)
		assert.LessOrEqual(t, c.R(), uint8(31))
		assert.LessOrEqual(t, c.G(), uint8(31))
		assert.LessOrEqual(t, c.B(), uint8(31))
	}
}

func TestTruecolor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0xff302010), Truecolor(color.NRGBA{0x10, 0x20, 0x30, 0xff}))
	assert.Equal(t, uint32(0xff000000), Truecolor(color.Black))
	assert.Equal(t, uint32(0xffffffff), Truecolor(color.White))
}

func TestComponents(t *testing.T) {
	t.Parallel()

	c := Color(3 | 7<<5 | 11<<10)
	assert.Equal(t, uint8(3), c.R())
	assert.Equal(t, uint8(7), c.G())
	assert.Equal(t, uint8(11), c.B())
	assert.Equal(t, 21, c.Sum())
	assert.Equal(t, [2]byte{0xe3, 0x2c}, c.Bytes())
}

func TestModel(t *testing.T) {
	t.Parallel()

	c := Model.Convert(color.NRGBA{0xff, 0x00, 0x00, 0xff})
	assert.Equal(t, Color(0x001f), c)
	assert.Equal(t, c, Model.Convert(c))

	r, g, b, a := Color(0x7fff).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})

	r, g, b, a = Color(0).RGBA()
	assert.Equal(t, []uint32{0, 0, 0, 0xffff}, []uint32{r, g, b, a})
}
