package radial

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	if got, want := l.Length(), math.Sqrt(2.0); !approxEqual(got, want) {
		t.Errorf("got length %v, want %v", got, want)
	}
	diff(t, Vec(1/math.Sqrt2, 1/math.Sqrt2), l.Direction(), approx)
	diff(t, Pt(0.25, 0.25), l.Eval(0.25))
}

func TestLineReverse(t *testing.T) {
	l := Line{Pt(-3, 2), Pt(4, -1)}
	r := l.Reverse()
	diff(t, Line{Pt(4, -1), Pt(-3, 2)}, r)
	diff(t, Rect{X0: -3, Y0: -1, X1: 4, Y1: 2}, l.BoundingBox())
	diff(t, l.BoundingBox(), r.BoundingBox())
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}
