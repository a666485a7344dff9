package entity

import (
	"math"
	"math/rand"

	"chosenoffset.com/fireflies/internal/mathutil"
)

// Firefly drifts around an anchor point and pulses its glow.
type Firefly struct {
	AnchorX, AnchorY float64
	X, Y             float64
	// Size is the sprite diameter in world units.
	Size float64

	phase  float64
	speed  float64
	orbit  float64
	period float64
	glow   float64
}

// NewFirefly creates a firefly anchored at (x, y) with randomised motion.
func NewFirefly(x, y float64, rng *rand.Rand) *Firefly {
	f := &Firefly{
		AnchorX: x,
		AnchorY: y,
		X:       x,
		Y:       y,
		Size:    0.4 + rng.Float64()*0.4,
		phase:   rng.Float64() * 2 * math.Pi,
		speed:   0.3 + rng.Float64()*0.7,
		orbit:   0.2 + rng.Float64()*0.6,
		period:  1.5 + rng.Float64()*2,
	}
	f.Update(0)
	return f
}

// Update places the firefly for the given elapsed time.
func (f *Firefly) Update(elapsed float64) {
	a := f.phase + elapsed*f.speed
	f.X = f.AnchorX + math.Cos(a)*f.orbit
	f.Y = f.AnchorY + math.Sin(a*2)*f.orbit*0.5

	// Triangle wave in [0, 1], eased so the glow lingers at both ends.
	t := math.Mod(elapsed+f.phase, f.period) / f.period
	if t > 0.5 {
		t = 1 - t
	}
	f.glow = mathutil.InOutSine(t*2, 0.35, 0.65, 1)
}

// Brightness returns the current glow strength in [0.35, 1].
func (f *Firefly) Brightness() float64 {
	return f.glow
}
