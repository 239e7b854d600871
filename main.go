// main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asciicube/camera"
)

func main() {
	demo := flag.Int("demo", 0, "Demo to run: 1 (single cube) or 2 (two cubes); 0 asks")
	mode := flag.String("mode", "text", "Output: text (stdout stream) or tcell (interactive screen)")
	width := flag.Int("width", 0, "Frame width in cells (0 = demo default)")
	height := flag.Int("height", 0, "Frame height in cells (0 = demo default)")
	depth := flag.Int("depth", 0, "Camera plane Z offset from the X-Y plane (0 = demo default)")
	side := flag.Float64("side", 0, "Cube side length (0 = demo default)")
	symbols := flag.String("symbols", "", "Six face fill symbols (default \"+&*#@^\")")
	axes := flag.Bool("axes", false, "Draw the X-Y reference axes")
	label := flag.Bool("label", true, "Show which faces are in view")
	interval := flag.Duration("interval", 19*time.Millisecond, "Delay between frames")
	frames := flag.Int("frames", 0, "Stop after this many frames (0 = run until interrupted)")
	flag.Parse()

	if *mode != "text" && *mode != "tcell" {
		fmt.Fprintf(os.Stderr, "Invalid mode %q. Supported modes: text, tcell\n", *mode)
		os.Exit(1)
	}
	if *interval <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid interval %v: must be positive\n", *interval)
		os.Exit(1)
	}

	if *demo == 0 {
		choice, err := askDemo()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read choice: %v\n", err)
			os.Exit(1)
		}
		*demo = choice
	}

	cfg := sceneConfig{width: *width, height: *height, depth: *depth, side: *side, symbols: *symbols}
	sc, cfg, err := newScene(*demo, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up scene: %v\n", err)
		os.Exit(1)
	}

	cam, err := camera.New(cfg.width, cfg.height, cfg.depth, camera.WithLabel(*label))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize camera: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opt := runOptions{interval: *interval, frames: *frames, axes: *axes}
	switch *mode {
	case "text":
		err = runText(ctx, os.Stdout, cam, sc, opt)
	case "tcell":
		reset := func() Scene {
			s, _, _ := newScene(*demo, cfg)
			return s
		}
		err = runGraphics(ctx, cam, sc, opt, reset)
	}
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Render error: %v\n", err)
		os.Exit(1)
	}
}

func askDemo() (int, error) {
	fmt.Println("Make the terminal large enough and use a font with square cells.")
	fmt.Println("Select a demo:")
	fmt.Println("1. Single cube")
	fmt.Println("2. Two cubes")
	fmt.Print("Enter your choice: ")
	var choice int
	if _, err := fmt.Scan(&choice); err != nil {
		return 0, err
	}
	return choice, nil
}
