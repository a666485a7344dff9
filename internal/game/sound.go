package game

import "chosenoffset.com/fireflies/internal/audio"

// PlaySound plays s with optional overrides unless the game is muted.
func (g *Game) PlaySound(s audio.Sound, cfg *audio.PlayConfig) error {
	return g.gate.Play(s, cfg)
}

// PlayNamed plays a registered sound.
func (g *Game) PlayNamed(name string, cfg *audio.PlayConfig) error {
	s, err := g.Sounds.Get(name)
	if err != nil {
		return err
	}
	return g.gate.Play(s, cfg)
}

// Muted reports the mute flag.
func (g *Game) Muted() bool {
	return g.muted
}

// SetMuted sets the mute flag.
func (g *Game) SetMuted(muted bool) {
	g.muted = muted
}
