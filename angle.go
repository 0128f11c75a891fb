package radial

import "math"

// Radians converts an angle from degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Degrees converts an angle from radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// NormalizeAngle maps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		// -ε + 360 rounds to 360.
		deg = 0
	}
	return deg
}

// deltaAngle returns the signed difference to-from, in degrees, taking the
// shorter way around the circle. The result is in (-180, 180].
func deltaAngle(from, to float64) float64 {
	d := NormalizeAngle(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// AngularGap converts a linear spacing into the angle, in degrees, that it
// subtends on a circle of radius r.
//
// Equal linear gaps subtend different angles at different radii, so rings of
// different radii need their own gap.
func AngularGap(spacing, r float64) float64 {
	return 180 * spacing / (math.Pi * r)
}
