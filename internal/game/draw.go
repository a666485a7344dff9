package game

import (
	"errors"

	"chosenoffset.com/fireflies/internal/audio"
	"chosenoffset.com/fireflies/internal/debug"
	"chosenoffset.com/fireflies/internal/event"
	"chosenoffset.com/fireflies/internal/render"
)

// Draw renders the game area and, in debug mode, the report overlay.
func (g *Game) Draw(screen render.Image) {
	g.World.Draw(screen)
	if g.Debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen render.Image) {
	for i, line := range g.Report().Lines() {
		g.renderer.DrawText(screen, line, 8, 8+i*14)
	}
}

// Report returns a snapshot for the debug overlay.
func (g *Game) Report() debug.Report {
	vp := g.viewport.State()
	return debug.Report{
		Resolution: vp.Resolution,
		Aspect:     vp.Aspect,
		DPR:        vp.DPR,
		DomOffset:  vp.DomOffset,
		Dir:        g.Dir(),
		Frames:     g.loop.Frames(),
		State:      g.States.Current(),
		Muted:      g.muted,
		Fireflies:  len(g.Fireflies),
	}
}

// SwapHero makes the other hero active and plays the "chime" sound when
// one is registered.
func (g *Game) SwapHero() error {
	next := g.HeroB
	if g.ActiveHero == g.HeroB {
		next = g.HeroA
	}
	g.ActiveHero.SetActive(false)
	next.SetActive(true)
	g.ActiveHero = next

	err := g.PlayNamed("chime", nil)
	if errors.Is(err, audio.ErrUnknownSound) {
		return nil
	}
	return err
}

// observeHotkeys handles hero swapping, the mute toggle and, in debug
// mode, copying the report to the clipboard.
func (g *Game) observeHotkeys() {
	g.Bus.Animate.Subscribe(func(event.AnimateEvent) error {
		if g.inputMgr.IsKeyJustPressed(render.KeySpace) {
			if err := g.SwapHero(); err != nil {
				return err
			}
		}
		if g.inputMgr.IsKeyJustPressed(render.KeyM) {
			g.muted = !g.muted
			g.logger.Printf("game: muted=%t", g.muted)
		}
		if g.Debug && g.inputMgr.IsKeyJustPressed(render.KeyF9) {
			if err := debug.CopyToClipboard(g.Report()); err != nil {
				g.logger.Printf("game: %v", err)
			} else {
				g.logger.Println("game: debug report copied to clipboard")
			}
		}
		return nil
	})
}
