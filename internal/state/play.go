package state

import (
	"chosenoffset.com/fireflies/internal/entity"
	"chosenoffset.com/fireflies/internal/input"
	"chosenoffset.com/fireflies/internal/world"
)

// Play moves the active hero from the current direction input.
type Play struct {
	Dir  func() input.Directions
	Hero func() *entity.Hero
}

// Enter does nothing; play has no setup.
func (p *Play) Enter() {}

// Exit does nothing.
func (p *Play) Exit() {}

// Update moves the active hero, if any.
func (p *Play) Update(dt float64) {
	h := p.Hero()
	if h == nil {
		return
	}
	dx, dy := p.Dir().Vector()
	h.Move(dx, dy, dt, world.Width, world.Height)
}
