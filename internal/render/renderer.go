package render

import (
	"image"
	"image/color"
)

// Blend selects how a drawn image combines with the destination.
type Blend int

const (
	// BlendSourceOver is regular alpha compositing.
	BlendSourceOver Blend = iota
	// BlendAdditive adds source colour to the destination (glows, lights).
	BlendAdditive
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image
	NewImageFromImage(src image.Image) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM  GeoM
	Blend Blend
	// Alpha scales the source alpha when ScaleAlpha is set. Zero draws
	// nothing.
	Alpha      float32
	ScaleAlpha bool
}

// GeoM is a 2D affine transform: x' = A*x + B*y + TX, y' = C*x + D*y + TY.
// The zero value is not the identity; use NewGeoM.
type GeoM struct {
	A, B, C, D float64
	TX, TY     float64
}

// NewGeoM returns the identity transform.
func NewGeoM() GeoM {
	return GeoM{A: 1, D: 1}
}

// Translate shifts the transform by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

// Scale scales the transform by (sx, sy).
func (g *GeoM) Scale(sx, sy float64) {
	g.A *= sx
	g.B *= sx
	g.TX *= sx
	g.C *= sy
	g.D *= sy
	g.TY *= sy
}

// Reset resets the matrix to identity.
func (g *GeoM) Reset() {
	*g = NewGeoM()
}

// Apply transforms the point (x, y).
func (g GeoM) Apply(x, y float64) (float64, float64) {
	return g.A*x + g.B*y + g.TX, g.C*x + g.D*y + g.TY
}

// SpriteMaterial describes how a billboard sprite is drawn.
type SpriteMaterial struct {
	Texture     Image
	Transparent bool
	Blend       Blend
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game maps.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyM // Mute toggle
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
	KeyF9 // Debug report to clipboard
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
