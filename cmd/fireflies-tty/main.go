package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/fireflies/internal/config"
	"chosenoffset.com/fireflies/internal/game"
	"chosenoffset.com/fireflies/internal/host/tty"
	"chosenoffset.com/fireflies/internal/render/headless"
)

func main() {
	configPath := flag.String("config", "fireflies.json", "path to the JSON config file")
	fragment := flag.String("fragment", "", "launch fragment, e.g. #debug")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "", log.LstdFlags)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	host := tty.NewHost(screen, cfg.Container, *fragment)
	g, err := game.New(game.Deps{
		Host:     host,
		Renderer: headless.NewRenderer(),
		Input:    host.Keyboard(),
		Config:   cfg,
		Logger:   logger,
	})
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to start game: %v", err)
	}
	host.SetDraw(func(s tcell.Screen) {
		var overlay []string
		if g.Debug {
			overlay = g.Report().Lines()
		}
		tty.Paint(s, g.World, overlay)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = host.Run(ctx)
	g.Stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
