// Package mathutil holds the small numeric helpers shared by the game:
// range mapping, clamping and easing curves.
package mathutil

// Map linearly re-maps v from [inMin, inMax] onto [outMin, outMax].
// The result is not clamped.
func Map(v, inMin, inMax, outMin, outMax float64) float64 {
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
