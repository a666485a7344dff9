// Package headless implements the render and host interfaces in memory.
// Frames advance only when Step is called, which makes it suitable for
// tests and for hosts that draw somewhere other than a GPU surface.
package headless

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"chosenoffset.com/fireflies/internal/render"
)

// Renderer implements render.Renderer on *image.NRGBA surfaces.
type Renderer struct{}

// NewRenderer creates a new in-memory renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// NewImage creates a new transparent image.
func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// NewImageFromImage copies src into a new image.
func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Image{img: img}
}

// FillCircle draws an anti-aliased filled circle.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	img := dst.(*Image).img
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	z := vector.NewRasterizer(w, h)
	const k = 0.5522847498
	c := radius * k
	z.MoveTo(x+radius, y)
	z.CubeTo(x+radius, y+c, x+c, y+radius, x, y+radius)
	z.CubeTo(x-c, y+radius, x-radius, y+c, x-radius, y)
	z.CubeTo(x-radius, y-c, x-c, y-radius, x, y-radius)
	z.CubeTo(x+c, y-radius, x+radius, y-c, x+radius, y)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(clr), image.Point{})
}

// DrawText draws white text with the 7x13 basic font. y is the top edge.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	d := &font.Drawer{
		Dst:  dst.(*Image).img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(text)
}

// Image wraps an *image.NRGBA.
type Image struct {
	img *image.NRGBA
}

// NRGBA returns the backing image.
func (i *Image) NRGBA() *image.NRGBA {
	return i.img
}

// Bounds returns the bounds of the image.
func (i *Image) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *Image) Fill(clr color.Color) {
	draw.Draw(i.img, i.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// Clear clears the image to transparent.
func (i *Image) Clear() {
	i.Fill(color.Transparent)
}

// Dispose releases the pixel buffer.
func (i *Image) Dispose() {
	i.img = image.NewNRGBA(image.Rectangle{})
}

// DrawImage draws src through opts.GeoM with nearest-neighbour sampling.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	s := src.(*Image).img
	geo := render.NewGeoM()
	blend := render.BlendSourceOver
	alpha := float32(1)
	if opts != nil {
		geo = opts.GeoM
		blend = opts.Blend
		if opts.ScaleAlpha {
			alpha = opts.Alpha
		}
	}
	if alpha <= 0 {
		return
	}

	var srcImg image.Image = s
	if alpha < 1 {
		srcImg = withAlpha(s, alpha)
	}

	aff := f64.Aff3{geo.A, geo.B, geo.TX, geo.C, geo.D, geo.TY}
	if blend != render.BlendAdditive {
		xdraw.NearestNeighbor.Transform(i.img, aff, srcImg, s.Bounds(), xdraw.Over, nil)
		return
	}

	layer := image.NewNRGBA(i.img.Bounds())
	xdraw.NearestNeighbor.Transform(layer, aff, srcImg, s.Bounds(), xdraw.Src, nil)
	addInto(i.img, layer)
}

func withAlpha(src *image.NRGBA, alpha float32) *image.NRGBA {
	out := image.NewNRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	for p := 3; p < len(out.Pix); p += 4 {
		out.Pix[p] = uint8(float32(out.Pix[p]) * alpha)
	}
	return out
}

// addInto adds the premultiplied colour of layer onto dst, saturating.
func addInto(dst, layer *image.NRGBA) {
	b := dst.Bounds().Intersect(layer.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sr, sg, sb, sa := layer.At(x, y).RGBA()
			if sa == 0 {
				continue
			}
			dr, dg, db, da := dst.At(x, y).RGBA()
			dst.Set(x, y, color.RGBA64{
				R: sat(dr + sr),
				G: sat(dg + sg),
				B: sat(db + sb),
				A: sat(da + sa),
			})
		}
	}
}

func sat(v uint32) uint16 {
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}
