package mathutil

import "math"

// Easing functions use the (t, b, c, d) convention: current time, start
// value, change in value, duration.

// OutExpo decelerates exponentially towards b+c.
func OutExpo(t, b, c, d float64) float64 {
	if t == d {
		return b + c
	}
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

// InOutSine accelerates and decelerates along a half cosine.
func InOutSine(t, b, c, d float64) float64 {
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
}
