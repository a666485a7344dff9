// Package glow generates the soft radial sprite texture used by firefly
// particles.
package glow

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"chosenoffset.com/fireflies/internal/mathutil"
	"chosenoffset.com/fireflies/internal/render"
)

const (
	// DefaultSize is the edge length of the glow texture in pixels.
	DefaultSize = 512
	// DefaultSteps is the number of gradient stops.
	DefaultSteps = 20

	hue        = 60.0
	saturation = 1.0
	lightness  = 0.4
)

// Stop is one sample of the radial ramp. Position 0 is the centre.
type Stop struct {
	Position float64
	Alpha    float64
}

// Stops returns steps evenly spaced stops whose alpha follows an inverted
// exponential ease-out: close to 1 at the centre, 0 at the rim.
func Stops(steps int) []Stop {
	if steps < 2 {
		steps = 2
	}
	stops := make([]Stop, steps)
	for i := range stops {
		p := float64(i) / float64(steps-1)
		a := mathutil.Map(mathutil.OutExpo(p, 0, 1, 1), 0, 1, 1, 0)
		stops[i] = Stop{Position: p, Alpha: a}
	}
	return stops
}

// Color returns the glow hue with the given alpha.
func Color(alpha float64) color.NRGBA {
	r, g, b := colorful.Hsl(hue, saturation, lightness).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(mathutil.Clamp(alpha, 0, 1) * 255))}
}

// Generate renders the stops as a radial gradient centred in a size×size
// surface, clipped to the inscribed circle.
func Generate(size int, stops []Stop) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if size <= 0 || len(stops) == 0 {
		return dst
	}

	half := float32(size) / 2
	z := vector.NewRasterizer(size, size)
	circle(z, half, half, half)
	src := &radialGradient{
		bounds: dst.Bounds(),
		cx:     float64(half),
		cy:     float64(half),
		radius: float64(half),
		stops:  stops,
	}
	z.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}

// NewMaterial uploads a default glow texture and wraps it in a transparent,
// additive sprite material.
func NewMaterial(r render.Renderer, size int) render.SpriteMaterial {
	tex := r.NewImageFromImage(Generate(size, Stops(DefaultSteps)))
	return render.SpriteMaterial{
		Texture:     tex,
		Transparent: true,
		Blend:       render.BlendAdditive,
	}
}

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

func circle(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

// radialGradient is an image.Image sampling the stops by distance from
// the centre.
type radialGradient struct {
	bounds image.Rectangle
	cx, cy float64
	radius float64
	stops  []Stop
}

func (g *radialGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *radialGradient) Bounds() image.Rectangle { return g.bounds }

func (g *radialGradient) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-g.cx, float64(y)+0.5-g.cy)
	return Color(alphaAt(g.stops, d/g.radius))
}

// alphaAt interpolates the stop alphas at position t, holding the end
// values outside the stop range.
func alphaAt(stops []Stop, t float64) float64 {
	first, last := stops[0], stops[len(stops)-1]
	if t <= first.Position {
		return first.Alpha
	}
	if t >= last.Position {
		return last.Alpha
	}
	for i := 1; i < len(stops); i++ {
		s0, s1 := stops[i-1], stops[i]
		if t <= s1.Position {
			span := s1.Position - s0.Position
			if span <= 0 {
				return s1.Alpha
			}
			return mathutil.Lerp(s0.Alpha, s1.Alpha, (t-s0.Position)/span)
		}
	}
	return last.Alpha
}
