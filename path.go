package radial

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// joinTolerance is the largest gap between the end of one segment and the
// start of the next that is still drawn as a continuous path.
const joinTolerance = 1e-9

// PathOptions specifies optional settings for [PathStringOpt] and [WritePath].
type PathOptions struct {
	// Offset is added to every coordinate.
	Offset Vec2
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// PathString converts a sequence of segments to a path description, moving
// every point by offset. If closed is true, the path is closed with a Z
// command.
//
// See [WritePath] for the grammar of the output.
func PathString(segs []Segment, closed bool, offset Point) string {
	return PathStringOpt(segs, closed, PathOptions{Offset: Vec2(offset)})
}

// PathStringOpt is like [PathString] but allows more control over the output.
func PathStringOpt(segs []Segment, closed bool, opts PathOptions) string {
	sb := &strings.Builder{}
	WritePath(sb, segs, closed, opts)
	return sb.String()
}

// WritePath converts a sequence of segments to a path description and writes
// it to w.
//
// The output uses the commands
//
//	M x,y                  move to the start of the path
//	L x,y                  line to
//	A r,r 0 large,sweep x,y  circular arc to
//	Z                      close path
//
// The sweep flag is 1 for arcs traversed with increasing angle and 0
// otherwise; the large-arc flag is 1 only for arcs spanning more than 180
// degrees. Full circles are written as two half circles. Arcs of zero length,
// such as the arcs of unrounded corners, are omitted.
//
// Segments are expected to be connected. If a segment doesn't start where the
// previous one ended, a new subpath is started with another M command.
// An empty sequence produces no output, not even a Z.
func WritePath(w io.Writer, segs []Segment, closed bool, opts PathOptions) error {
	var err error
	first := true
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		if !first {
			_, err = io.WriteString(w, " ")
		}
		first = false
		if err == nil {
			_, err = fmt.Fprintf(w, s, v...)
		}
	}
	format := func(n float64) string {
		return FormatNumber(n, opts.MaxPrecision)
	}
	point := func(pt Point) (string, string) {
		pt = pt.Translate(opts.Offset)
		return format(pt.X), format(pt.Y)
	}
	arc := func(a Arc) {
		sweep := a.Sweep()
		large, positive := 0, 0
		if math.Abs(sweep) > 180 {
			large = 1
		}
		if sweep > 0 {
			positive = 1
		}
		r := format(a.Radius)
		x, y := point(a.End())
		writef("A%s,%s 0 %d,%d %s,%s", r, r, large, positive, x, y)
	}

	var pen Point
	started := false
	for _, seg := range segs {
		if err != nil {
			return err
		}
		if a, ok := seg.(Arc); ok && a.IsDegenerate() {
			continue
		}
		if start := seg.Start(); !started || !start.Near(pen, joinTolerance) {
			x, y := point(start)
			writef("M%s,%s", x, y)
			started = true
		}
		switch seg := seg.(type) {
		case Line:
			x, y := point(seg.P1)
			writef("L%s,%s", x, y)
		case Arc:
			if math.Abs(seg.Sweep()) >= 360 {
				// The endpoints of a full circle coincide, which doesn't
				// describe an arc.
				mid := seg.StartAngle + seg.Sweep()/2
				arc(Arc{seg.Center, seg.Radius, seg.StartAngle, mid})
				arc(Arc{seg.Center, seg.Radius, mid, seg.EndAngle})
			} else {
				arc(seg)
			}
		default:
			panic(fmt.Sprintf("unhandled segment type %T", seg))
		}
		pen = seg.End()
	}
	if closed && started {
		writef("Z")
	}
	return err
}

// FormatNumber formats a coordinate for a path description. With a positive
// maxPrecision, at most that many decimals are written and trailing zeros are
// dropped; otherwise the shortest exact representation is used. Negative zero
// is written as 0.
func FormatNumber(n float64, maxPrecision int) string {
	if n == 0 {
		// Avoid printing -0.
		n = 0
	}
	if maxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', maxPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
