// Package game wires the orchestrator: it builds every subsystem in a fixed
// order and owns the viewport, direction and mute state they share.
package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/fireflies/internal/audio"
	"chosenoffset.com/fireflies/internal/clock"
	"chosenoffset.com/fireflies/internal/config"
	"chosenoffset.com/fireflies/internal/entity"
	"chosenoffset.com/fireflies/internal/event"
	"chosenoffset.com/fireflies/internal/glow"
	"chosenoffset.com/fireflies/internal/input"
	"chosenoffset.com/fireflies/internal/level"
	"chosenoffset.com/fireflies/internal/loop"
	"chosenoffset.com/fireflies/internal/render"
	"chosenoffset.com/fireflies/internal/state"
	"chosenoffset.com/fireflies/internal/viewport"
	"chosenoffset.com/fireflies/internal/world"
)

// ErrNoContainer is returned when the host has no container with the
// configured name.
var ErrNoContainer = errors.New("container not found")

// SoundLoader loads a sound file. It is optional; without it no sounds
// are loaded from the config.
type SoundLoader func(path string) (audio.Sound, error)

// Deps are the host capabilities the game is built on.
type Deps struct {
	Host      render.Host
	Renderer  render.Renderer
	Input     render.InputManager
	Config    *config.Config
	LoadSound SoundLoader
	Logger    *log.Logger
}

// Game holds all game state and the subsystems that act on it.
type Game struct {
	Debug bool
	Bus   *event.Bus

	host     render.Host
	renderer render.Renderer
	inputMgr render.InputManager
	cfg      *config.Config
	logger   *log.Logger

	container render.Container
	viewport  *viewport.Manager

	Time   *clock.Time
	World  *world.World
	States *state.Manager

	FireflyMaterial render.SpriteMaterial
	Fireflies       []*entity.Firefly

	Levels     *level.Manager
	HeroA      *entity.Hero
	HeroB      *entity.Hero
	ActiveHero *entity.Hero

	Keys *input.Keys
	dir  *input.Tracker

	Sounds    *audio.Registry
	gate      *audio.Gate
	loadSound SoundLoader
	muted     bool

	loop *loop.Loop

	// UpdateHook runs at the start of every frame, before the tick broadcast.
	UpdateHook func()
}

// New builds the game. Steps run in a fixed order because each one uses
// what the earlier ones created; the first failure aborts startup and no
// loop is left running.
func New(deps Deps) (*Game, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		Bus:       event.NewBus(),
		host:      deps.Host,
		renderer:  deps.Renderer,
		inputMgr:  deps.Input,
		cfg:       cfg,
		logger:    logger,
		loadSound: deps.LoadSound,
	}
	g.Debug = config.Debug(deps.Host.LaunchContext() + " " + cfg.Fragment)

	if err := g.setupDOM(); err != nil {
		return nil, err
	}
	g.setupTime()
	g.setupWorld()
	if err := g.setupStates(); err != nil {
		return nil, err
	}
	g.setupFireflies()
	if err := g.setupLevels(); err != nil {
		return nil, err
	}
	g.setupInputs()
	if err := g.setupSounds(); err != nil {
		return nil, err
	}
	if err := g.onResize(); err != nil {
		return nil, fmt.Errorf("initial resize: %w", err)
	}
	g.start()
	g.observe()

	if g.Debug {
		g.logger.Printf("game: started in debug mode, level %q", g.cfg.Level)
	}
	return g, nil
}

func (g *Game) setupDOM() error {
	g.container = g.host.Container(g.cfg.Container)
	if g.container == nil {
		return fmt.Errorf("%w: %q", ErrNoContainer, g.cfg.Container)
	}
	g.viewport = viewport.NewManager(g.container, g.Bus.Resize)
	if g.Debug {
		g.viewport.Logger = g.logger
	}
	return nil
}

func (g *Game) setupTime() {
	g.Time = clock.New()
	g.Time.Observe(g.Bus)
}

func (g *Game) setupWorld() {
	g.World = world.New(g.renderer, g.Time)
	g.World.Observe(g.Bus)
}

func (g *Game) setupStates() error {
	g.States = state.NewManager(g.Time.Delta)
	g.States.Register("play", &state.Play{
		Dir:  g.Dir,
		Hero: func() *entity.Hero { return g.ActiveHero },
	})
	g.States.Observe(g.Bus)
	return g.States.Set("play")
}

func (g *Game) setupFireflies() {
	g.FireflyMaterial = glow.NewMaterial(g.renderer, glow.DefaultSize)
	g.World.SetGlowMaterial(g.FireflyMaterial)
	g.Fireflies = nil
}

func (g *Game) setupLevels() error {
	g.Levels = level.NewManager(g.World)
	lvl, err := g.Levels.Build(g.cfg.Level)
	if err != nil {
		return fmt.Errorf("build level: %w", err)
	}
	g.HeroA, g.HeroB = lvl.HeroA, lvl.HeroB
	g.Fireflies = lvl.Fireflies

	g.HeroA.SetActive(true)
	g.ActiveHero = g.HeroA
	return nil
}

func (g *Game) setupInputs() {
	g.Keys = input.NewKeys(g.inputMgr, g.Bus)
	g.dir = input.NewTracker()
	g.observeHotkeys()
}

func (g *Game) setupSounds() error {
	g.Sounds = audio.NewRegistry()
	g.gate = audio.NewGate(g.Muted)
	g.muted = g.cfg.Audio.Muted
	if g.loadSound == nil {
		return nil
	}
	for name, path := range g.cfg.Audio.Sounds {
		s, err := g.loadSound(path)
		if err != nil {
			return fmt.Errorf("load sound %q: %w", name, err)
		}
		g.Sounds.Add(name, s)
	}
	return nil
}

// observe subscribes to host resizes and direction events. The key mapper
// starts polling only once the tracker listens, so a key held during
// startup is reported as a press on the first observed frame.
func (g *Game) observe() {
	g.host.OnResize(func() {
		if err := g.onResize(); err != nil {
			g.logger.Printf("game: resize: %v", err)
		}
	})
	g.dir.Observe(g.Bus)
	g.Keys.Observe(g.Bus)
}

func (g *Game) onResize() error {
	w, h := g.host.WindowSize()
	_, err := g.viewport.Recompute(w, h, g.host.DevicePixelRatio())
	return err
}

func (g *Game) start() {
	g.loop = loop.New(g.host, g.Bus.Animate)
	g.loop.Update = g.update
	g.loop.Start()
}

// update is the per-frame extension point.
func (g *Game) update() {
	if g.UpdateHook != nil {
		g.UpdateHook()
	}
}

// Start resumes the frame loop.
func (g *Game) Start() {
	g.loop.Start()
}

// Stop cancels the next frame.
func (g *Game) Stop() {
	g.loop.Stop()
}

// Running reports whether the frame loop is scheduled.
func (g *Game) Running() bool {
	return g.loop.Running()
}

// Frames returns the number of frame ticks so far.
func (g *Game) Frames() uint64 {
	return g.loop.Frames()
}

// Viewport returns the current viewport state.
func (g *Game) Viewport() viewport.State {
	return g.viewport.State()
}

// Dir returns the current direction flags.
func (g *Game) Dir() input.Directions {
	return g.dir.Snapshot()
}
