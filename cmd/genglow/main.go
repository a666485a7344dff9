package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"chosenoffset.com/fireflies/internal/glow"
)

func main() {
	size := flag.Int("size", glow.DefaultSize, "texture size in pixels")
	steps := flag.Int("steps", glow.DefaultSteps, "number of gradient stops")
	out := flag.String("out", "glow.png", "output PNG path")
	flag.Parse()

	fmt.Println("Fireflies Glow Texture Generator")
	fmt.Println("================================")

	if err := write(*out, *size, *steps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %dx%d glow texture with %d stops to %s\n", *size, *size, *steps, *out)
}

func write(path string, size, steps int) error {
	img := glow.Generate(size, glow.Stops(steps))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
