// screen.go
package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"asciicube/camera"
	"asciicube/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

const (
	cursorHide = "\033[?25l"
	cursorShow = "\033[?25h"
	cursorHome = "\033[H"
	clearAll   = "\033[2J\033[H"
)

type runOptions struct {
	interval time.Duration
	frames   int // 0 runs until cancelled
	axes     bool
}

func renderFrame(cam *camera.Camera, sc Scene, axes bool) {
	sc.Step()
	sc.Draw(cam)
	if axes {
		cam.SetAxes()
	}
}

// runText streams frames to w, homing the cursor before each one.
func runText(ctx context.Context, w io.Writer, cam *camera.Camera, sc Scene, opt runOptions) error {
	fmt.Fprint(w, clearAll, cursorHide)
	defer fmt.Fprint(w, cursorShow)

	ticker := time.NewTicker(opt.interval)
	defer ticker.Stop()

	for n := 0; opt.frames == 0 || n < opt.frames; n++ {
		fmt.Fprint(w, cursorHide, cursorHome)
		renderFrame(cam, sc, opt.axes)
		if err := cam.Flush(w); err != nil {
			return err
		}
		cam.Clear()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

// faceStyles gives every fill symbol of the scene its own hue.
func faceStyles(sc Scene) map[rune]tcell.Style {
	var symbols []rune
	for _, c := range sc.Cubes() {
		for i := 0; i < geom.FaceCount; i++ {
			symbols = append(symbols, c.Symbol(i))
		}
	}
	styles := make(map[rune]tcell.Style, len(symbols))
	for i, r := range symbols {
		hue := float64(i) * 360.0 / float64(len(symbols))
		red, green, blue := colorful.Hsv(hue, 0.55, 0.95).RGB255()
		styles[r] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(red), int32(green), int32(blue)))
	}
	return styles
}

func runGraphics(ctx context.Context, cam *camera.Camera, sc Scene, opt runOptions, reset func() Scene) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	styles := faceStyles(sc)
	paused := false
	axes := opt.axes

	ticker := time.NewTicker(opt.interval)
	defer ticker.Stop()

	for n := 0; opt.frames == 0 || n < opt.frames; {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return nil
				case tcell.KeyUp:
					sc.Nudge(-0.15, 0)
				case tcell.KeyDown:
					sc.Nudge(0.15, 0)
				case tcell.KeyLeft:
					sc.Nudge(0, -0.15)
				case tcell.KeyRight:
					sc.Nudge(0, 0.15)
				case tcell.KeyRune:
					switch ev.Rune() {
					case 'q', 'Q':
						return nil
					case ' ':
						paused = !paused
					case 'x', 'X':
						axes = !axes
					case 'r', 'R':
						sc = reset()
						styles = faceStyles(sc)
					}
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-ticker.C:
			if !paused {
				sc.Step()
				n++
			}
			sc.Draw(cam)
			if axes {
				cam.SetAxes()
			}
			s.Clear()
			blit(s, cam, styles)
			w, h := s.Size()
			status := fmt.Sprintf("%dx%d depth %d | Arrows:rotate Space:pause X:axes R:reset Q:quit",
				cam.Width(), cam.Height(), cam.DepthOffset())
			drawText(s, 0, h-1, w, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), status)
			s.Show()
			cam.Clear()
		}
	}
	return nil
}

func blit(s tcell.Screen, cam *camera.Camera, styles map[rune]tcell.Style) {
	for y := 0; y < cam.Height(); y++ {
		for x := 0; x < cam.Width(); x++ {
			r := cam.Cell(x, y)
			if r == camera.Blank {
				continue
			}
			st, ok := styles[r]
			if !ok {
				st = tcell.StyleDefault.Foreground(tcell.ColorWhite)
			}
			s.SetContent(x, y, r, nil, st)
		}
	}
}

// drawText writes str at (x, y), cut to fit before column maxX.
func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, str string) {
	str = runewidth.Truncate(str, maxX-x, "…")
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
