package entity

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestHeroMovesOnlyWhenActive(t *testing.T) {
	h := NewHero("a", 5, 5, color.NRGBA{A: 255})
	h.Move(1, 0, 1, 16, 9)
	if h.X != 5 {
		t.Fatalf("inactive hero moved to %v", h.X)
	}

	h.SetActive(true)
	h.Move(1, 0, 1, 16, 9)
	if math.Abs(h.X-(5+DefaultHeroSpeed)) > 1e-9 {
		t.Errorf("X = %v, want %v", h.X, 5+DefaultHeroSpeed)
	}
}

func TestHeroDiagonalNormalised(t *testing.T) {
	h := NewHero("a", 5, 5, color.NRGBA{A: 255})
	h.SetActive(true)
	h.Move(1, 1, 0.1, 16, 9)

	dist := math.Hypot(h.X-5, h.Y-5)
	if math.Abs(dist-DefaultHeroSpeed*0.1) > 1e-9 {
		t.Errorf("diagonal step = %v, want %v", dist, DefaultHeroSpeed*0.1)
	}
}

func TestHeroClampedToBounds(t *testing.T) {
	h := NewHero("a", 1, 1, color.NRGBA{A: 255})
	h.SetActive(true)
	h.Move(-1, -1, 10, 16, 9)
	if h.X != h.Radius || h.Y != h.Radius {
		t.Errorf("hero escaped bounds: (%v, %v)", h.X, h.Y)
	}
}

func TestFireflyStaysNearAnchor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := NewFirefly(8, 4, rng)
	for i := 0; i < 200; i++ {
		f.Update(float64(i) * 0.05)
		if math.Hypot(f.X-8, f.Y-4) > 1 {
			t.Fatalf("firefly drifted to (%v, %v)", f.X, f.Y)
		}
		if b := f.Brightness(); b < 0.35-1e-9 || b > 1+1e-9 {
			t.Fatalf("brightness %v out of range", b)
		}
	}
}
