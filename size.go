package radial

import (
	"fmt"
	"math"
)

// Size is the extent of a drawing area.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Ceil returns a new size with width and height rounded up to the nearest integers.
func (sz Size) Ceil() Size {
	return Size{
		Width:  math.Ceil(sz.Width),
		Height: math.Ceil(sz.Height),
	}
}

// Grow returns a new size with d added to both sides of each dimension.
func (sz Size) Grow(d float64) Size {
	return Size{
		Width:  sz.Width + 2*d,
		Height: sz.Height + 2*d,
	}
}
