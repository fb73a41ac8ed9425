/*
Package gbctile converts images into Game Boy Color background graphics.

An image is split into 8 by 8 blocks, each of which may use at most four
colors. Blocks are assigned one of up to eight shared four color palettes,
encoded as 2 bits per pixel tiles and deduplicated, with mirrored copies of
an existing tile reusing it via the flip flags in the attribute table. The
result is a palette table, a tile table, and a 32 by 32 background map with
its attributes.
*/
package gbctile

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrTooManyColors is returned when a block contains more than four colors.
var ErrTooManyColors = errors.New("more than 4 colors")

// BlockError records an error converting the block at (X, Y). Colors holds
// the distinct pixel values of the block when they are relevant; for
// ErrTooManyColors that is the first five.
type BlockError struct {
	X, Y   int
	Colors []uint32
	Err    error
}

func (e *BlockError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "block (%d, %d): %v", e.X, e.Y, e.Err)
	for i, c := range e.Colors {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%08X", c)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *BlockError) Unwrap() error {
	return e.Err
}

// Converter converts images, logging progress to its logger.
type Converter struct {
	logger *log.Logger
}

// New returns a Converter that logs to logger.
func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}
