package radial

import (
	"math"
)

// Arc is a circular arc.
//
// Angles are in degrees, measured counter-clockwise from the positive x axis.
// The arc is traversed from StartAngle to EndAngle: with increasing angle if
// EndAngle > StartAngle, with decreasing angle otherwise. Angles are not
// required to be normalized; only their difference determines the extent of
// the arc.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Sweep returns the signed angular extent of the arc in degrees.
func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// PointAt returns the point on the arc's circle at the given angle.
func (a Arc) PointAt(deg float64) Point {
	return a.Center.Translate(VecFromAngle(deg).Mul(a.Radius))
}

func (a Arc) Start() Point { return a.PointAt(a.StartAngle) }
func (a Arc) End() Point   { return a.PointAt(a.EndAngle) }

// Endpoints returns the start and end points of the arc.
func (a Arc) Endpoints() (Point, Point) {
	return a.Start(), a.End()
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return math.Abs(Radians(a.Sweep())) * a.Radius
}

// IsDegenerate reports whether the arc has zero length.
func (a Arc) IsDegenerate() bool {
	return a.Radius == 0 || a.Sweep() == 0
}

// Reverse returns the same arc traversed in the opposite direction.
func (a Arc) Reverse() Arc {
	a.StartAngle, a.EndAngle = a.EndAngle, a.StartAngle
	return a
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// Tangents implements Segment.
func (a Arc) Tangents() (Vec2, Vec2) {
	turn := 90.0
	if a.Sweep() < 0 {
		turn = -90
	}
	return VecFromAngle(a.StartAngle + turn), VecFromAngle(a.EndAngle + turn)
}

// ContainsAngle reports whether the ray at the given angle, cast from the
// center, crosses the arc. Endpoints are included.
func (a Arc) ContainsAngle(deg float64) bool {
	const epsilon = 1e-9
	sweep := a.Sweep()
	if math.Abs(sweep) >= 360 {
		return true
	}
	var off float64
	if sweep >= 0 {
		off = NormalizeAngle(deg - a.StartAngle)
	} else {
		off = NormalizeAngle(a.StartAngle - deg)
	}
	if off > 360-epsilon {
		off = 0
	}
	return off <= math.Abs(sweep)+epsilon
}

// BoundingBox returns the smallest rectangle enclosing the arc. Unlike the
// bounding box of the whole circle, it only includes the quadrant extrema that
// the arc actually passes through.
func (a Arc) BoundingBox() Rect {
	p0, p1 := a.Endpoints()
	bbox := NewRectFromPoints(p0, p1)
	for _, deg := range [...]float64{0, 90, 180, 270} {
		if a.ContainsAngle(deg) {
			bbox = bbox.UnionPoint(a.PointAt(deg))
		}
	}
	return bbox
}

func (a Arc) IsInf() bool {
	return a.Center.IsInf() ||
		math.IsInf(a.Radius, 0) ||
		math.IsInf(a.StartAngle, 0) ||
		math.IsInf(a.EndAngle, 0)
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() ||
		math.IsNaN(a.Radius) ||
		math.IsNaN(a.StartAngle) ||
		math.IsNaN(a.EndAngle)
}
