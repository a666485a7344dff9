// Package world holds everything drawn in the game area and maps world
// units onto the current viewport.
package world

import (
	"image/color"

	"chosenoffset.com/fireflies/internal/clock"
	"chosenoffset.com/fireflies/internal/entity"
	"chosenoffset.com/fireflies/internal/event"
	"chosenoffset.com/fireflies/internal/render"
)

// The game area is Width×Height world units; the ratio matches the viewport.
const (
	Width  = 16.0
	Height = 9.0
)

// Background is the colour of the game area.
var Background = color.NRGBA{R: 8, G: 12, B: 24, A: 255}

// World owns the entities on screen and the current view transform.
type World struct {
	renderer render.Renderer
	time     *clock.Time

	heroes    []*entity.Hero
	fireflies []*entity.Firefly
	glow      render.SpriteMaterial

	view  event.ResizeEvent
	scale float64
	bg    render.Image
}

// New creates an empty world. It does not draw until the first resize.
func New(r render.Renderer, t *clock.Time) *World {
	return &World{renderer: r, time: t}
}

// Observe follows resizes and advances the fireflies on every tick.
func (w *World) Observe(bus *event.Bus) {
	bus.Resize.Subscribe(func(e event.ResizeEvent) error {
		w.resize(e)
		return nil
	})
	bus.Animate.Subscribe(func(event.AnimateEvent) error {
		w.update()
		return nil
	})
}

func (w *World) resize(e event.ResizeEvent) {
	w.view = e
	w.scale = e.Resolution.X / Width
	if w.bg != nil {
		w.bg.Dispose()
		w.bg = nil
	}
}

func (w *World) update() {
	elapsed := w.time.Elapsed()
	for _, f := range w.fireflies {
		f.Update(elapsed)
	}
}

// SetGlowMaterial sets the material used to draw fireflies.
func (w *World) SetGlowMaterial(m render.SpriteMaterial) {
	w.glow = m
}

// AddHero adds a hero to the scene.
func (w *World) AddHero(h *entity.Hero) {
	w.heroes = append(w.heroes, h)
}

// AddFirefly adds a firefly to the scene.
func (w *World) AddFirefly(f *entity.Firefly) {
	w.fireflies = append(w.fireflies, f)
}

// Clear removes all entities.
func (w *World) Clear() {
	w.heroes = nil
	w.fireflies = nil
}

// Heroes returns the heroes in the scene.
func (w *World) Heroes() []*entity.Hero { return w.heroes }

// Fireflies returns the fireflies in the scene.
func (w *World) Fireflies() []*entity.Firefly { return w.fireflies }

// Scale returns screen pixels per world unit.
func (w *World) Scale() float64 { return w.scale }

// ToScreen converts world units to window pixels.
func (w *World) ToScreen(x, y float64) (float64, float64) {
	return float64(w.view.DomOffset.X) + x*w.scale, float64(w.view.DomOffset.Y) + y*w.scale
}

// Draw renders the game area onto screen.
func (w *World) Draw(screen render.Image) {
	if w.scale <= 0 {
		return
	}

	if w.bg == nil {
		w.bg = w.renderer.NewImage(int(w.view.Resolution.X), int(w.view.Resolution.Y))
		w.bg.Fill(Background)
	}
	bgGeo := render.NewGeoM()
	bgGeo.Translate(float64(w.view.DomOffset.X), float64(w.view.DomOffset.Y))
	screen.DrawImage(w.bg, &render.DrawImageOptions{GeoM: bgGeo})

	for _, h := range w.heroes {
		x, y := w.ToScreen(h.X, h.Y)
		clr := h.Color
		if !h.Active() {
			clr.A /= 2
		}
		w.renderer.FillCircle(screen, float32(x), float32(y), float32(h.Radius*w.scale), clr)
	}

	if w.glow.Texture == nil {
		return
	}
	tw, _ := w.glow.Texture.Size()
	for _, f := range w.fireflies {
		x, y := w.ToScreen(f.X, f.Y)
		size := f.Size * w.scale
		geo := render.NewGeoM()
		geo.Scale(size/float64(tw), size/float64(tw))
		geo.Translate(x-size/2, y-size/2)
		screen.DrawImage(w.glow.Texture, &render.DrawImageOptions{
			GeoM:       geo,
			Blend:      w.glow.Blend,
			Alpha:      float32(f.Brightness()),
			ScaleAlpha: true,
		})
	}
}
