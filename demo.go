// demo.go
package main

import (
	"fmt"
	"math"

	"asciicube/camera"
	"asciicube/geom"
)

const oneDegree = math.Pi / 180.0

// Scene advances and draws the cubes of one demo.
type Scene interface {
	Step()
	Draw(cam *camera.Camera)
	Nudge(ax, ay float64)
	Cubes() []*geom.Cube
}

type sceneConfig struct {
	width, height, depth int
	side                 float64
	symbols              string
}

// Classic demo: one cube tumbling one degree per axis per tick.
type spinScene struct {
	cube *geom.Cube
}

func newSpinScene(cfg sceneConfig) (*spinScene, error) {
	c, err := geom.NewCube(cfg.side, cfg.symbols)
	if err != nil {
		return nil, fmt.Errorf("demo 1 cube: %w", err)
	}
	return &spinScene{cube: c}, nil
}

func (s *spinScene) Step() {
	s.cube.Rotate(-oneDegree, -oneDegree, -oneDegree)
}

func (s *spinScene) Draw(cam *camera.Camera) { cam.SetCube(s.cube) }

func (s *spinScene) Nudge(ax, ay float64) {
	s.cube.RotateX(ax)
	s.cube.RotateY(ay)
}

func (s *spinScene) Cubes() []*geom.Cube { return []*geom.Cube{s.cube} }

// Two cubes: a large one swinging with periodic angular speed and a small
// one spinning inside it at a steady rate.
type orbitScene struct {
	big, small *geom.Cube
	t          float64
}

const (
	smallSide    = 15
	smallSymbols = "<.{$~]"
	timeStep     = 1.0 / 30.0
)

func newOrbitScene(cfg sceneConfig) (*orbitScene, error) {
	big, err := geom.NewCube(cfg.side, cfg.symbols)
	if err != nil {
		return nil, fmt.Errorf("demo 2 cube: %w", err)
	}
	small, err := geom.NewCube(smallSide, smallSymbols)
	if err != nil {
		return nil, fmt.Errorf("demo 2 inner cube: %w", err)
	}
	return &orbitScene{big: big, small: small}, nil
}

func (s *orbitScene) Step() {
	s.big.Rotate(
		oneDegree*math.Sin(s.t),
		2*oneDegree*math.Cos(s.t),
		0.5*oneDegree*math.Sin(s.t*0.5),
	)
	s.t += timeStep

	s.small.Rotate(-2*oneDegree, -2*oneDegree, -2*oneDegree)
}

func (s *orbitScene) Draw(cam *camera.Camera) {
	cam.SetCube(s.big)
	cam.SetCube(s.small)
}

func (s *orbitScene) Nudge(ax, ay float64) {
	s.big.RotateX(ax)
	s.big.RotateY(ay)
}

func (s *orbitScene) Cubes() []*geom.Cube { return []*geom.Cube{s.big, s.small} }

var demoDefaults = map[int]sceneConfig{
	1: {width: 40, height: 40, depth: camera.DefaultDepthOffset, side: 20},
	2: {width: 80, height: 80, depth: camera.DefaultDepthOffset, side: 45},
}

// newScene resolves cfg against the demo defaults; zero fields keep the
// default.
func newScene(demo int, cfg sceneConfig) (Scene, sceneConfig, error) {
	def, ok := demoDefaults[demo]
	if !ok {
		return nil, cfg, fmt.Errorf("unknown demo %d, want 1 or 2", demo)
	}
	if cfg.width == 0 {
		cfg.width = def.width
	}
	if cfg.height == 0 {
		cfg.height = def.height
	}
	if cfg.depth == 0 {
		cfg.depth = def.depth
	}
	if cfg.side == 0 {
		cfg.side = def.side
	}

	var (
		s   Scene
		err error
	)
	switch demo {
	case 1:
		s, err = newSpinScene(cfg)
	case 2:
		s, err = newOrbitScene(cfg)
	}
	return s, cfg, err
}
