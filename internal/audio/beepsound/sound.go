// Package beepsound plays buffered sounds through the beep speaker.
package beepsound

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"chosenoffset.com/fireflies/internal/mathutil"
)

const (
	// DefaultSampleRate is the speaker sample rate used when none is configured.
	DefaultSampleRate = beep.SampleRate(44100)

	resampleQuality = 4
	minRate         = 0.5
	maxRate         = 4.0
)

// ErrEmpty is returned when playing a sound with no samples.
var ErrEmpty = errors.New("sound has no samples")

// Init starts the speaker with a 100ms buffer.
func Init(sr beep.SampleRate) error {
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	return nil
}

// Sound is a decoded sound with a persistent volume and playback rate.
type Sound struct {
	buf    *beep.Buffer
	volume float64
	rate   float64

	play func(beep.Streamer)
}

// New wraps a filled buffer. Playback goes to the speaker.
func New(buf *beep.Buffer) *Sound {
	return &Sound{
		buf:    buf,
		volume: 1,
		rate:   1,
		play:   func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Load decodes a WAV file and resamples it to sr.
func Load(path string, sr beep.SampleRate) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sr {
		src = beep.Resample(resampleQuality, format.SampleRate, sr, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(src)
	return New(buf), nil
}

// Tone builds a sine tone of the given frequency and duration.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (*Sound, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(sr.N(d), sine))
	return New(buf), nil
}

// SetVolume sets the linear gain, clamped to [0, 1].
func (s *Sound) SetVolume(v float64) {
	s.volume = mathutil.Clamp(v, 0, 1)
}

// SetRate sets the playback speed, clamped to [0.5, 4].
func (s *Sound) SetRate(r float64) {
	s.rate = mathutil.Clamp(r, minRate, maxRate)
}

// Volume returns the current linear gain.
func (s *Sound) Volume() float64 { return s.volume }

// Rate returns the current playback speed.
func (s *Sound) Rate() float64 { return s.rate }

// Samples returns the buffered length in samples.
func (s *Sound) Samples() int { return s.buf.Len() }

// Play starts a new playback using the current volume and rate.
func (s *Sound) Play() error {
	if s.buf.Len() == 0 {
		return ErrEmpty
	}
	s.play(s.streamer())
	return nil
}

func (s *Sound) streamer() beep.Streamer {
	src := s.buf.Streamer(0, s.buf.Len())
	rs := beep.ResampleRatio(resampleQuality, s.rate, src)
	return &effects.Volume{
		Streamer: rs,
		Base:     2,
		Volume:   gainToVolume(s.volume),
		Silent:   s.volume <= 0,
	}
}

// gainToVolume converts a linear gain to beep's base-2 exponent.
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
