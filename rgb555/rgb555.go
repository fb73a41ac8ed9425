/*
Package rgb555 implements the 15-bit color format used by the Game Boy Color
palette memory.

Each color is packed as 0BBBBBGGGGGRRRRR and stored little-endian, two bytes
per color.
*/
package rgb555

import "image/color"

// Color is a packed 15-bit color. It implements the color.Color interface.
type Color uint16

// Model converts any color.Color to a Color.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if x, ok := c.(Color); ok {
		return x
	}
	return FromColor(c)
}

// FromTruecolor quantizes a 32-bit pixel laid out in memory as R, G, B, A
// bytes, i.e. R in the least significant byte. The low three bits of each
// channel are discarded and the alpha byte is ignored.
func FromTruecolor(p uint32) Color {
	r := p >> 3 & 0x1f
	g := p >> 11 & 0x1f
	b := p >> 19 & 0x1f
	return Color(r | g<<5 | b<<10)
}

// Truecolor returns c as a non-premultiplied 32-bit pixel in the layout
// expected by FromTruecolor.
func Truecolor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.R) | uint32(n.G)<<8 | uint32(n.B)<<16 | uint32(n.A)<<24
}

// FromColor quantizes any color.Color.
func FromColor(c color.Color) Color {
	return FromTruecolor(Truecolor(c))
}

// R returns the 5-bit red component.
func (c Color) R() uint8 {
	return uint8(c & 0x1f)
}

// G returns the 5-bit green component.
func (c Color) G() uint8 {
	return uint8(c >> 5 & 0x1f)
}

// B returns the 5-bit blue component.
func (c Color) B() uint8 {
	return uint8(c >> 10 & 0x1f)
}

// Sum returns the sum of the three 5-bit components, used to order palettes
// from dark to light.
func (c Color) Sum() int {
	return int(c.R()) + int(c.G()) + int(c.B())
}

// Bytes returns c in little-endian order, as written to palette memory.
func (c Color) Bytes() [2]byte {
	return [2]byte{byte(c), byte(c >> 8)}
}

func expand(v uint8) uint32 {
	x := uint32(v<<3 | v>>2)
	return x | x<<8
}

// RGBA implements the color.Color interface. Each 5-bit component is scaled
// up to the full 16-bit range; colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return expand(c.R()), expand(c.G()), expand(c.B()), 0xffff
}
