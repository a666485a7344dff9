// Package entity holds the moving things in a level: heroes and fireflies.
package entity

import (
	"image/color"
	"math"

	"chosenoffset.com/fireflies/internal/mathutil"
)

// DefaultHeroSpeed is in world units per second.
const DefaultHeroSpeed = 3.0

// Hero is a player-controlled character. Only the active hero moves.
type Hero struct {
	Name   string
	X, Y   float64
	Speed  float64
	Radius float64
	Color  color.NRGBA

	active bool
}

// NewHero places a hero at (x, y).
func NewHero(name string, x, y float64, clr color.NRGBA) *Hero {
	return &Hero{
		Name:   name,
		X:      x,
		Y:      y,
		Speed:  DefaultHeroSpeed,
		Radius: 0.25,
		Color:  clr,
	}
}

// SetActive marks the hero as the controlled one.
func (h *Hero) SetActive(active bool) {
	h.active = active
}

// Active reports whether the hero is controlled.
func (h *Hero) Active() bool {
	return h.active
}

// Move steps the hero along (dx, dy) for dt seconds, keeping it inside
// [0, maxX]×[0, maxY]. Diagonal movement is normalised.
func (h *Hero) Move(dx, dy, dt, maxX, maxY float64) {
	if !h.active || (dx == 0 && dy == 0) {
		return
	}
	l := math.Hypot(dx, dy)
	step := h.Speed * dt / l
	h.X = mathutil.Clamp(h.X+dx*step, h.Radius, maxX-h.Radius)
	h.Y = mathutil.Clamp(h.Y+dy*step, h.Radius, maxY-h.Radius)
}
