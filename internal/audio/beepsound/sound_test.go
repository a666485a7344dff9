package beepsound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func newTestTone(t *testing.T) (*Sound, *[]beep.Streamer) {
	t.Helper()
	s, err := Tone(8000, 440, 250*time.Millisecond)
	if err != nil {
		t.Fatalf("Tone: %v", err)
	}
	var played []beep.Streamer
	s.play = func(st beep.Streamer) { played = append(played, st) }
	return s, &played
}

func drain(st beep.Streamer) (n int, peak float64) {
	samples := make([][2]float64, 512)
	for {
		k, ok := st.Stream(samples)
		for _, sm := range samples[:k] {
			peak = math.Max(peak, math.Abs(sm[0]))
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestToneLength(t *testing.T) {
	s, _ := newTestTone(t)
	if want := beep.SampleRate(8000).N(250 * time.Millisecond); s.Samples() != want {
		t.Errorf("Samples() = %d, want %d", s.Samples(), want)
	}
}

func TestPlayUsesCurrentSettings(t *testing.T) {
	s, played := newTestTone(t)

	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	n, peak := drain((*played)[0])
	if n < s.Samples()-32 || n > s.Samples()+32 {
		t.Errorf("unit rate played %d samples, want about %d", n, s.Samples())
	}
	if peak < 0.9 {
		t.Errorf("full volume peak = %v", peak)
	}

	s.SetVolume(0)
	s.Play()
	if _, peak := drain((*played)[1]); peak != 0 {
		t.Errorf("zero volume should be silent, peak=%v", peak)
	}
}

func TestRateShortensPlayback(t *testing.T) {
	s, played := newTestTone(t)
	s.SetRate(2)
	s.Play()

	n, _ := drain((*played)[0])
	half := s.Samples() / 2
	if n < half-32 || n > half+32 {
		t.Errorf("double rate played %d samples, want about %d", n, half)
	}
	if s.Rate() != 2 {
		t.Errorf("rate should persist, got %v", s.Rate())
	}
}

func TestClamping(t *testing.T) {
	s, _ := newTestTone(t)
	s.SetVolume(3)
	s.SetRate(100)
	if s.Volume() != 1 || s.Rate() != maxRate {
		t.Errorf("volume=%v rate=%v, want 1 and %v", s.Volume(), s.Rate(), maxRate)
	}
	s.SetRate(0)
	if s.Rate() != minRate {
		t.Errorf("rate=%v, want %v", s.Rate(), minRate)
	}
}

func TestGainToVolume(t *testing.T) {
	if got := gainToVolume(1); got != 0 {
		t.Errorf("gainToVolume(1) = %v, want 0", got)
	}
	if got := gainToVolume(0.5); got != -1 {
		t.Errorf("gainToVolume(0.5) = %v, want -1", got)
	}
}

func TestPlayEmpty(t *testing.T) {
	s := New(beep.NewBuffer(beep.Format{SampleRate: 8000, NumChannels: 2, Precision: 2}))
	s.play = func(beep.Streamer) { t.Fatal("empty sound should not reach the speaker") }
	if err := s.Play(); err != ErrEmpty {
		t.Errorf("Play() = %v, want ErrEmpty", err)
	}
}
