package main

import (
	"flag"
	"log"
	"time"

	"github.com/gopxl/beep"

	"chosenoffset.com/fireflies/internal/audio"
	"chosenoffset.com/fireflies/internal/audio/beepsound"
	"chosenoffset.com/fireflies/internal/config"
	"chosenoffset.com/fireflies/internal/game"
	ebitenrender "chosenoffset.com/fireflies/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "fireflies.json", "path to the JSON config file")
	fragment := flag.String("fragment", "", "launch fragment, e.g. #debug")
	muted := flag.Bool("muted", false, "start with sound muted")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *muted {
		cfg.Audio.Muted = true
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()
	host := ebitenrender.NewHost(cfg.Window.Width, cfg.Window.Height, cfg.Container, *fragment, inputMgr)

	sr := beep.SampleRate(cfg.Audio.SampleRate)
	var loadSound game.SoundLoader
	if err := beepsound.Init(sr); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("Warning: audio unavailable: %v", err)
	} else {
		loadSound = func(path string) (audio.Sound, error) {
			return beepsound.Load(path, sr)
		}
	}

	g, err := game.New(game.Deps{
		Host:      host,
		Renderer:  renderer,
		Input:     inputMgr,
		Config:    cfg,
		LoadSound: loadSound,
	})
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	if loadSound != nil {
		if chime, err := beepsound.Tone(sr, 880, 80*time.Millisecond); err == nil {
			g.Sounds.Add("chime", chime)
		}
	}
	host.SetDraw(g.Draw)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting game...")
	if err := engine.RunGame(host); err != nil {
		log.Fatal(err)
	}
}
