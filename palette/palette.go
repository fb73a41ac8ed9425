/*
Package palette implements the Game Boy Color background palette table.

Up to eight palettes of four colors each are available. Palettes are built up
by allocating the colors of each 8 by 8 block in turn, sharing a palette
between blocks whenever the combined colors still fit. Once every block has
been allocated the set is normalized, which seals it and sorts each palette
from darkest to lightest.
*/
package palette

import (
	"errors"
	"sort"

	"github.com/bodgit/gbctile/rgb555"
)

const (
	// ColorsPerPalette is the number of colors in each palette
	ColorsPerPalette = 4
	// MaxPalettes is the number of palettes available
	MaxPalettes = 8
	// Size is the number of bytes used to store a palette
	Size = ColorsPerPalette * 2
)

var (
	// ErrTooManyPalettes is returned when no palette can accommodate the
	// colors of a block
	ErrTooManyPalettes = errors.New("palette: more than 8 palettes needed")
	// ErrColorNotFound is returned when looking up a color that was never
	// allocated to the palette
	ErrColorNotFound = errors.New("palette: color not in palette")

	errTooManyColors = errors.New("palette: more than 4 colors")
	errSealed        = errors.New("palette: set already normalized")
)

// Palette is an ordered list of up to four colors.
type Palette struct {
	colors [ColorsPerPalette]rgb555.Color
	n      int
}

// Len returns the number of colors stored in the palette.
func (p *Palette) Len() int {
	return p.n
}

// Colors returns a copy of the stored colors.
func (p *Palette) Colors() []rgb555.Color {
	return append([]rgb555.Color(nil), p.colors[:p.n]...)
}

// Index returns the position of c within the palette.
func (p *Palette) Index(c rgb555.Color) (int, error) {
	for i := 0; i < p.n; i++ {
		if p.colors[i] == c {
			return i, nil
		}
	}
	return -1, ErrColorNotFound
}

// merge appends any colors from cs that aren't already present, stopping
// at the first one that doesn't fit. Colors added before that point are kept.
func (p *Palette) merge(cs []rgb555.Color) bool {
	for _, c := range cs {
		if _, err := p.Index(c); err == nil {
			continue
		}
		if p.n == ColorsPerPalette {
			return false
		}
		p.colors[p.n] = c
		p.n++
	}
	return true
}

func (p *Palette) sort() {
	s := p.colors[:p.n]
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Sum() < s[j].Sum()
	})
}

// MarshalBinary encodes the palette as four little-endian colors. Unused
// entries are written as zero.
func (p *Palette) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, Size)
	for _, c := range p.colors {
		tmp := c.Bytes()
		b = append(b, tmp[:]...)
	}
	return b, nil
}

// Set is the table of palettes shared by all blocks of an image.
type Set struct {
	palettes [MaxPalettes]Palette
	used     int
	sealed   bool
}

// NewSet returns an empty palette set.
func NewSet() *Set {
	return new(Set)
}

// Len returns the number of palettes in use.
func (s *Set) Len() int {
	return s.used
}

// Palette returns the palette at index i.
func (s *Set) Palette(i int) *Palette {
	return &s.palettes[i]
}

// Allocate finds the first palette that either already holds all of cs or
// has enough free entries to add the missing colors, and returns its index.
// Palettes are tried in order so the result depends on the order blocks are
// allocated in. Colors added to a palette before it runs out of room stay
// there even though the palette is then skipped.
func (s *Set) Allocate(cs []rgb555.Color) (int, error) {
	if s.sealed {
		return -1, errSealed
	}
	if len(cs) > ColorsPerPalette {
		return -1, errTooManyColors
	}
	for i := range s.palettes {
		if s.palettes[i].merge(cs) {
			if i >= s.used {
				s.used = i + 1
			}
			return i, nil
		}
	}
	return -1, ErrTooManyPalettes
}

// Normalize seals the set and sorts the colors of each palette in ascending
// order of their summed components. Colors with equal sums keep their
// allocation order. Only the first call has any effect.
func (s *Set) Normalize() {
	if s.sealed {
		return
	}
	s.sealed = true
	for i := 0; i < s.used; i++ {
		s.palettes[i].sort()
	}
}

// MarshalBinary encodes each palette in use, in order.
func (s *Set) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, s.used*Size)
	for i := 0; i < s.used; i++ {
		tmp, err := s.palettes[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		b = append(b, tmp...)
	}
	return b, nil
}
