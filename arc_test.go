package radial

import (
	"testing"
)

func TestArcEndpoints(t *testing.T) {
	a := Arc{Center: Pt(5, 5), Radius: 10, StartAngle: 0, EndAngle: 90}
	p0, p1 := a.Endpoints()
	diff(t, Pt(15, 5), p0, approx)
	diff(t, Pt(5, 15), p1, approx)

	// Angles are normalized before use, so equivalent angles give identical
	// points.
	b := Arc{Center: Pt(5, 5), Radius: 10, StartAngle: -90, EndAngle: 450}
	c := Arc{Center: Pt(5, 5), Radius: 10, StartAngle: 270, EndAngle: 90}
	diff(t, c.Start(), b.Start())
	diff(t, c.End(), b.End())
}

func TestArcDirection(t *testing.T) {
	a := Arc{Center: Origin, Radius: 10, StartAngle: 0, EndAngle: 90}
	if s := a.Sweep(); s != 90 {
		t.Errorf("got sweep %v, want 90", s)
	}
	t0, t1 := a.Tangents()
	diff(t, Vec(0, 1), t0, approx)
	diff(t, Vec(-1, 0), t1, approx)

	r := a.Reverse()
	if s := r.Sweep(); s != -90 {
		t.Errorf("got sweep %v for reversed arc, want -90", s)
	}
	diff(t, a.End(), r.Start())
	diff(t, a.Start(), r.End())
	t0, t1 = r.Tangents()
	diff(t, Vec(1, 0), t0, approx)
	diff(t, Vec(0, -1), t1, approx)
}

func TestArcContainsAngle(t *testing.T) {
	ccw := Arc{Center: Origin, Radius: 1, StartAngle: 300, EndAngle: 420}
	cw := ccw.Reverse()
	tests := []struct {
		deg  float64
		want bool
	}{
		{300, true},
		{0, true},
		{59.999, true},
		{60, true},
		{61, false},
		{180, false},
		{299, false},
	}
	for _, tt := range tests {
		if got := ccw.ContainsAngle(tt.deg); got != tt.want {
			t.Errorf("counter-clockwise arc: ContainsAngle(%v) = %t, want %t", tt.deg, got, tt.want)
		}
		if got := cw.ContainsAngle(tt.deg); got != tt.want {
			t.Errorf("clockwise arc: ContainsAngle(%v) = %t, want %t", tt.deg, got, tt.want)
		}
	}

	full := Arc{Center: Origin, Radius: 1, StartAngle: 10, EndAngle: 370}
	if !full.ContainsAngle(200) {
		t.Error("full circle should contain every angle")
	}
}

func TestArcBoundingBox(t *testing.T) {
	// Passes through 90°, so the top of the box is the top of the circle.
	a := Arc{Center: Origin, Radius: 10, StartAngle: 45, EndAngle: 135}
	bbox := a.BoundingBox()
	diff(t, Rect{X0: -7.0710678118654755, Y0: 7.0710678118654755, X1: 7.0710678118654755, Y1: 10}, bbox, approx)

	// A quarter arc only touches its endpoints' extrema.
	a = Arc{Center: Pt(1, 1), Radius: 2, StartAngle: 0, EndAngle: 90}
	diff(t, Rect{X0: 1, Y0: 1, X1: 3, Y1: 3}, a.BoundingBox(), approx)

	a = Arc{Center: Origin, Radius: 3, StartAngle: 0, EndAngle: 360}
	diff(t, Rect{X0: -3, Y0: -3, X1: 3, Y1: 3}, a.BoundingBox(), approx)
}

func TestArcLength(t *testing.T) {
	a := Arc{Center: Origin, Radius: 2, StartAngle: 90, EndAngle: 0}
	if l := a.Length(); !approxEqual(l, 3.141592653589793) {
		t.Errorf("got length %v, want π", l)
	}
	if !(Arc{Center: Origin, StartAngle: 0, EndAngle: 90}).IsDegenerate() {
		t.Error("zero-radius arc should be degenerate")
	}
	if !(Arc{Center: Origin, Radius: 1, StartAngle: 30, EndAngle: 30}).IsDegenerate() {
		t.Error("zero-sweep arc should be degenerate")
	}
}
