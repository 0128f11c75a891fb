package radial

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(4, -2)), Pt(2, -1))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	if !p3.Near(p4, 5) {
		t.Errorf("%v and %v should be within 5 of each other", p3, p4)
	}
	if p3.Near(p4, 4.9) {
		t.Errorf("%v and %v shouldn't be within 4.9 of each other", p3, p4)
	}
}

func TestVecAngle(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{Vec(1, 0), 0},
		{Vec(0, 1), 90},
		{Vec(-1, 0), 180},
		{Vec(0, -1), 270},
		{Vec(1, -1), 315},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); !approxEqual(got, tt.want) {
			t.Errorf("angle of %v: got %v, want %v", tt.v, got, tt.want)
		}
	}

	diff(t, Vec(1, 0), VecFromAngle(360), approx)
	diff(t, Vec(0, -1), VecFromAngle(-90), approx)
	diff(t, Vec(0, 1), Vec(1, 0).Perp())
}
