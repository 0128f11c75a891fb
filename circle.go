package radial

import "math"

// Circle is a circle given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Circ returns the circle of radius r around center.
func Circ(center Point, r float64) Circle {
	return Circle{Center: center, Radius: r}
}

// Contains reports whether pt lies inside the circle or on its edge.
func (c Circle) Contains(pt Point) bool {
	return pt.Distance(c.Center) <= c.Radius
}

// Arc returns the part of the circle from startAngle to endAngle, in degrees.
func (c Circle) Arc(startAngle, endAngle float64) Arc {
	return Arc{
		Center:     c.Center,
		Radius:     c.Radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}

// PointAt returns the point on the circle at the given angle in degrees.
func (c Circle) PointAt(angle float64) Point {
	return c.Center.Translate(VecFromAngle(angle).Mul(c.Radius))
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{
		X0: c.Center.X - r,
		Y0: c.Center.Y - r,
		X1: c.Center.X + r,
		Y1: c.Center.Y + r,
	}
}
