// Package level builds named levels into the world.
package level

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"chosenoffset.com/fireflies/internal/entity"
	"chosenoffset.com/fireflies/internal/world"
)

// ErrUnknownLevel is returned by Build for names with no definition.
var ErrUnknownLevel = errors.New("unknown level")

// Definition describes the content of a level in world units.
type Definition struct {
	HeroA, HeroB [2]float64
	Fireflies    int
	Seed         int64
}

// Definitions holds the built-in levels.
var Definitions = map[string]Definition{
	"alpha": {
		HeroA:     [2]float64{3, 4.5},
		HeroB:     [2]float64{13, 4.5},
		Fireflies: 24,
		Seed:      0xF1F1,
	},
}

var (
	heroAColor = color.NRGBA{R: 240, G: 120, B: 90, A: 255}
	heroBColor = color.NRGBA{R: 90, G: 160, B: 240, A: 255}
)

// Level is a built level.
type Level struct {
	Name      string
	HeroA     *entity.Hero
	HeroB     *entity.Hero
	Fireflies []*entity.Firefly
}

// Manager builds levels into a world.
type Manager struct {
	world   *world.World
	current *Level
}

// NewManager creates a manager for w.
func NewManager(w *world.World) *Manager {
	return &Manager{world: w}
}

// Build clears the world and fills it with the named level.
func (m *Manager) Build(name string) (*Level, error) {
	def, ok := Definitions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}

	m.world.Clear()
	lvl := &Level{
		Name:  name,
		HeroA: entity.NewHero("heroA", def.HeroA[0], def.HeroA[1], heroAColor),
		HeroB: entity.NewHero("heroB", def.HeroB[0], def.HeroB[1], heroBColor),
	}
	m.world.AddHero(lvl.HeroA)
	m.world.AddHero(lvl.HeroB)

	rng := rand.New(rand.NewSource(def.Seed))
	for i := 0; i < def.Fireflies; i++ {
		x := 1 + rng.Float64()*(world.Width-2)
		y := 1 + rng.Float64()*(world.Height-2)
		f := entity.NewFirefly(x, y, rng)
		lvl.Fireflies = append(lvl.Fireflies, f)
		m.world.AddFirefly(f)
	}

	m.current = lvl
	return lvl, nil
}

// Current returns the last built level, or nil.
func (m *Manager) Current() *Level {
	return m.current
}
