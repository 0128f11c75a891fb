package radial

import (
	"math"
)

// cornerTolerance is the largest distance between two endpoints that still
// counts as a shared corner.
const cornerTolerance = 1e-6

// Fillet is an arc that replaces the sharp corner between two primitives. It
// is tangent to both of them.
type Fillet struct {
	// Arc runs from A to B. It has a zero radius if the corner isn't rounded.
	Arc Arc
	// A is the tangent point on the first primitive, B the one on the second.
	A, B Point
}

// IsDegenerate reports whether the fillet leaves the corner sharp.
func (f Fillet) IsDegenerate() bool {
	return f.Arc.Radius == 0
}

// NewFillet computes the arc of the given radius that rounds the corner at
// which a and b meet. The corner is the closest pair of endpoints of a and b,
// which must coincide within a small tolerance. The arc lies on the side of
// the corner that both primitives extend into, and it is tangent to both.
//
// A radius of 0 yields a zero-radius fillet at the corner. Arc–line,
// line–arc and line–line corners are supported.
//
// NewFillet returns a [*GeometryError] if the radius is negative, if the
// primitives don't meet, or if the fillet would extend past the far end of
// either primitive. It doesn't modify a or b; use the returned tangent points
// to trim them.
func NewFillet(a, b Segment, radius float64) (Fillet, error) {
	c, ok := findCorner(a, b)
	if !ok {
		if err := checkFilletRadius(radius); err != nil {
			return Fillet{}, err
		}
		return Fillet{}, filletError(radius, "primitives do not meet")
	}
	return filletAt(a, c.aStart, b, c.bStart, c.at, radius)
}

func checkFilletRadius(radius float64) error {
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return filletError(radius, "radius must be finite and non-negative")
	}
	return nil
}

// filletAt rounds the corner at which the start (aStart) or end of a meets
// the start (bStart) or end of b. Callers that know which ends meet use it
// directly; primitives whose own endpoints coincide, such as full rings, are
// ambiguous to findCorner.
func filletAt(a Segment, aStart bool, b Segment, bStart bool, at Point, radius float64) (Fillet, error) {
	if err := checkFilletRadius(radius); err != nil {
		return Fillet{}, err
	}
	if radius == 0 {
		return Fillet{Arc: Arc{Center: at}, A: at, B: at}, nil
	}
	if a.Length() == 0 || b.Length() == 0 {
		return Fillet{}, filletError(radius, "cannot round a zero-length primitive")
	}

	switch sa := a.(type) {
	case Arc:
		if sb, ok := b.(Line); ok {
			return filletArcLine(sa, aStart, sb, bStart, at, radius)
		}
	case Line:
		switch sb := b.(type) {
		case Line:
			return filletLines(sa, aStart, sb, bStart, at, radius)
		case Arc:
			f, err := filletArcLine(sb, bStart, sa, aStart, at, radius)
			if err != nil {
				return Fillet{}, err
			}
			return Fillet{Arc: f.Arc.Reverse(), A: f.B, B: f.A}, nil
		}
	}
	return Fillet{}, filletError(radius, "cannot round the corner between %T and %T", a, b)
}

type corner struct {
	at Point
	// Whether the corner is at the start, rather than the end, of each
	// primitive.
	aStart, bStart bool
}

func findCorner(a, b Segment) (corner, bool) {
	best := math.Inf(1)
	var c corner
	for _, as := range [2]bool{true, false} {
		pa := endpoint(a, as)
		for _, bs := range [2]bool{true, false} {
			pb := endpoint(b, bs)
			if d := pa.Distance(pb); d < best {
				best = d
				c = corner{at: pa.Midpoint(pb), aStart: as, bStart: bs}
			}
		}
	}
	return c, best <= cornerTolerance
}

func endpoint(seg Segment, start bool) Point {
	if start {
		return seg.Start()
	}
	return seg.End()
}

// away returns the unit direction pointing from the corner into seg.
func away(seg Segment, atStart bool) Vec2 {
	t0, t1 := seg.Tangents()
	if atStart {
		return t0
	}
	return t1.Negate()
}

func filletArcLine(arc Arc, arcStart bool, line Line, lineStart bool, at Point, r float64) (Fillet, error) {
	t := away(arc, arcStart)
	d := away(line, lineStart)
	if math.Abs(t.Cross(d)) < 1e-12 {
		return Fillet{}, filletError(r, "line is tangent to the arc at the corner")
	}

	// The fillet's center lies on the line offset by r towards the arc, and
	// on the circle concentric with the arc that is r closer to the corner's
	// inside.
	n := d.Perp()
	if n.Dot(t) < 0 {
		n = n.Negate()
	}
	rc := arc.Radius + r
	if d.Dot(at.Sub(arc.Center)) < 0 {
		rc = arc.Radius - r
	}
	if rc <= 0 {
		return Fillet{}, filletError(r, "radius exceeds the arc's radius %g", arc.Radius)
	}

	// Solve |base + s·d - center| = rc for the distance s along the line.
	base := at.Translate(n.Mul(r))
	w := base.Sub(arc.Center)
	half := w.Dot(d)
	disc := half*half - (w.Dot(w) - rc*rc)
	if disc < 0 {
		return Fillet{}, filletError(r, "no room between the arc and the line")
	}
	sq := math.Sqrt(disc)
	s := -half - sq
	if s < -cornerTolerance {
		s = -half + sq
	}
	if s < -cornerTolerance {
		return Fillet{}, filletError(r, "no room between the arc and the line")
	}
	s = max(s, 0)
	if l := line.Length(); s > l+cornerTolerance {
		return Fillet{}, filletError(r, "fillet overruns the line (tangent at %g, line length %g)", s, l)
	}

	center := base.Translate(d.Mul(s))
	onLine := at.Translate(d.Mul(s))
	// The circles touch on the ray from the arc's center through the
	// fillet's center, whether the fillet sits inside or outside the arc.
	radial := center.Sub(arc.Center).Normalize()
	onArc := arc.Center.Translate(radial.Mul(arc.Radius))
	if !arc.ContainsAngle(radial.Angle()) || onArc.Sub(at).Dot(t) < -cornerTolerance {
		return Fillet{}, filletError(r, "fillet overruns the arc")
	}

	return Fillet{
		Arc: shortArc(center, r, onArc, onLine),
		A:   onArc,
		B:   onLine,
	}, nil
}

func filletLines(l1 Line, start1 bool, l2 Line, start2 bool, at Point, r float64) (Fillet, error) {
	d1 := away(l1, start1)
	d2 := away(l2, start2)
	if math.Abs(d1.Cross(d2)) < 1e-12 {
		return Fillet{}, filletError(r, "lines are parallel")
	}

	half := math.Acos(max(-1, min(1, d1.Dot(d2)))) / 2
	dist := r / math.Tan(half)
	if l := l1.Length(); dist > l+cornerTolerance {
		return Fillet{}, filletError(r, "fillet overruns the first line (tangent at %g, line length %g)", dist, l)
	}
	if l := l2.Length(); dist > l+cornerTolerance {
		return Fillet{}, filletError(r, "fillet overruns the second line (tangent at %g, line length %g)", dist, l)
	}

	center := at.Translate(d1.Add(d2).Normalize().Mul(r / math.Sin(half)))
	onA := at.Translate(d1.Mul(dist))
	onB := at.Translate(d2.Mul(dist))
	return Fillet{
		Arc: shortArc(center, r, onA, onB),
		A:   onA,
		B:   onB,
	}, nil
}

// shortArc returns the arc of the given center and radius that runs from p0
// to p1 the shorter way around.
func shortArc(center Point, r float64, p0, p1 Point) Arc {
	a0 := p0.Sub(center).Angle()
	a1 := p1.Sub(center).Angle()
	return Arc{
		Center:     center,
		Radius:     r,
		StartAngle: a0,
		EndAngle:   a0 + deltaAngle(a0, a1),
	}
}
