// Package audio gates sound playback behind the process mute flag and
// keeps the named sound registry.
package audio

// Sound is a playable sound. Volume and rate changes stay on the sound
// until changed again.
type Sound interface {
	SetVolume(volume float64)
	SetRate(rate float64)
	Play() error
}

// PlayConfig carries optional one-call overrides. Nil fields are left
// untouched on the sound.
type PlayConfig struct {
	Volume *float64
	Rate   *float64
}

// WithVolume returns a config that sets the volume.
func WithVolume(v float64) *PlayConfig {
	return &PlayConfig{Volume: &v}
}

// WithRate returns a config that sets the playback rate.
func WithRate(r float64) *PlayConfig {
	return &PlayConfig{Rate: &r}
}

// Gate suppresses playback while Muted reports true.
type Gate struct {
	Muted func() bool
}

// NewGate creates a gate reading the mute flag through muted.
func NewGate(muted func() bool) *Gate {
	return &Gate{Muted: muted}
}

// Play applies cfg to s and plays it once, unless muted. Playback errors
// are returned to the caller.
func (g *Gate) Play(s Sound, cfg *PlayConfig) error {
	if g.Muted != nil && g.Muted() {
		return nil
	}
	if cfg != nil && cfg.Volume != nil {
		s.SetVolume(*cfg.Volume)
	}
	if cfg != nil && cfg.Rate != nil {
		s.SetRate(*cfg.Rate)
	}
	return s.Play()
}
