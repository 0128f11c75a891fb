package radial

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

func cmpApprox(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}
