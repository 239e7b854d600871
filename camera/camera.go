// =======================
// camera/camera.go
// =======================

package camera

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"asciicube/geom"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotInitialized  = errors.New("camera not initialized")
)

// Defaults match the classic 40x40 viewport sitting 100 units below the
// X-Y plane.
const (
	DefaultWidth       = 40
	DefaultHeight      = 40
	DefaultDepthOffset = -100
)

// Camera renders geometry orthographically onto a character plane parallel
// to X-Y. World coordinates are centred on (width/2, height/2) with Y up;
// screen coordinates start at the top left with Y down.
//
// The zero Camera is uninitialized: draws are dropped and Flush fails.
type Camera struct {
	plane       plane
	depthOffset int
	label       bool
	ready       bool
}

type Option func(*Camera)

// WithLabel toggles the "faces in view" line SetCube writes at the top left.
func WithLabel(on bool) Option {
	return func(c *Camera) { c.label = on }
}

// New returns an initialized camera.
func New(width, height, depthOffset int, opts ...Option) (*Camera, error) {
	c := &Camera{label: true}
	for _, o := range opts {
		o(c)
	}
	if err := c.Init(width, height, depthOffset); err != nil {
		return nil, err
	}
	return c, nil
}

// Init (re)allocates a blank plane. The previous frame is discarded.
func (c *Camera) Init(width, height, depthOffset int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("camera size %dx%d: %w", width, height, ErrInvalidArgument)
	}
	c.plane = newPlane(width, height)
	c.depthOffset = depthOffset
	c.ready = true
	return nil
}

func (c *Camera) Width() int       { return c.plane.width }
func (c *Camera) Height() int      { return c.plane.height }
func (c *Camera) DepthOffset() int { return c.depthOffset }

// Clear blanks every cell.
func (c *Camera) Clear() { c.plane.clear() }

// toScreen maps centred integer coordinates to screen coordinates.
func (c *Camera) toScreen(x, y int) (int, int) {
	return c.plane.width/2 + x, c.plane.height/2 - y
}

// SetPixel writes r at Cartesian (x, y), rounded half away from zero.
// Points outside the viewport are clipped.
func (c *Camera) SetPixel(x, y float64, r rune) {
	c.SetPixelInt(geom.Round(x), geom.Round(y), r)
}

// SetPixelInt writes r at integer Cartesian (x, y).
func (c *Camera) SetPixelInt(x, y int, r rune) {
	sx, sy := c.toScreen(x, y)
	c.plane.set(sx, sy, r)
}

// SetPoint writes r at the X-Y position of p.
func (c *Camera) SetPoint(p geom.Vec3, r rune) {
	c.SetPixel(p.X, p.Y, r)
}

// SetScreenPixel writes r at screen (x, y).
func (c *Camera) SetScreenPixel(x, y int, r rune) {
	c.plane.set(x, y, r)
}

// SetText writes text starting at screen (x, y). Text running past the end
// of a row continues on the next one; anything past the last cell is cut.
func (c *Camera) SetText(x, y int, text string) {
	c.plane.copyText(x, y, text)
}

// Cell returns the rune at screen (x, y), Blank when out of range.
func (c *Camera) Cell(x, y int) rune { return c.plane.at(x, y) }

// Row returns screen row y as a string.
func (c *Camera) Row(y int) string {
	if y < 0 || y >= c.plane.height {
		return ""
	}
	return string(c.plane.row(y))
}

// Flush writes the frame as Height lines of Width runes, each followed by a
// newline.
func (c *Camera) Flush(w io.Writer) error {
	if !c.ready {
		return ErrNotInitialized
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < c.plane.height; y++ {
		for _, r := range c.plane.row(y) {
			if _, err := bw.WriteRune(r); err != nil {
				return fmt.Errorf("flush frame: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("flush frame: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// SetAxes draws the X and Y reference axes through the world origin.
func (c *Camera) SetAxes() {
	hw, hh := c.plane.width/2, c.plane.height/2
	for i := -hw; i < hw; i++ {
		c.SetPixelInt(i, 0, '-')
	}
	for i := -hh; i < hh; i++ {
		c.SetPixelInt(0, i, '|')
	}
	c.SetPixelInt(0, 0, '+')
	c.SetPixelInt(hw-1, 0, '>')
	c.SetPixelInt(hw-1, -1, 'X')
	c.SetPixelInt(0, hh-1, '^')
	c.SetPixelInt(-1, hh-1, 'Y')
}

func min3(a, b, c float64) float64 { return math.Min(math.Min(a, b), c) }
func max3(a, b, c float64) float64 { return math.Max(math.Max(a, b), c) }
