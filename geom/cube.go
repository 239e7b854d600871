// =======================
// geom/cube.go
// =======================

package geom

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidArgument is returned for malformed construction parameters.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	FaceCount = 6

	// DefaultSymbols is the fill palette in face order.
	DefaultSymbols = "+&*#@^"
)

// Face indices. The order is fixed; tests and the on-screen label refer to
// faces by these numbers.
const (
	FaceBack   = iota // z = -1
	FaceRight         // x = +1
	FaceBottom        // y = -1
	FaceLeft          // x = -1
	FaceTop           // y = +1
	FaceFront         // z = +1
)

// unitCube lists each face as A, B, C, D with ABC and BCD forming its two
// triangles.
var unitCube = [FaceCount]Face{
	FaceBack:   {V3(-1, 1, -1), V3(-1, -1, -1), V3(1, 1, -1), V3(1, -1, -1)},
	FaceRight:  {V3(1, 1, -1), V3(1, -1, -1), V3(1, 1, 1), V3(1, -1, 1)},
	FaceBottom: {V3(1, -1, -1), V3(-1, -1, -1), V3(1, -1, 1), V3(-1, -1, 1)},
	FaceLeft:   {V3(-1, -1, -1), V3(-1, 1, -1), V3(-1, -1, 1), V3(-1, 1, 1)},
	FaceTop:    {V3(-1, 1, -1), V3(1, 1, -1), V3(-1, 1, 1), V3(1, 1, 1)},
	FaceFront:  {V3(-1, 1, 1), V3(-1, -1, 1), V3(1, 1, 1), V3(1, -1, 1)},
}

// Cube is a polyhedron of six quad faces centred on the origin. Every face
// owns its corners; shared corners are not deduplicated, so they may drift
// apart slightly after many rotations.
type Cube struct {
	Faces   [FaceCount]Face
	symbols [FaceCount]rune
}

// NewCube builds a cube with the given side length. An empty palette selects
// DefaultSymbols; otherwise it must hold exactly six runes.
func NewCube(side float64, symbols string) (*Cube, error) {
	if !(side > 0) {
		return nil, fmt.Errorf("cube side %v: %w", side, ErrInvalidArgument)
	}
	if symbols == "" {
		symbols = DefaultSymbols
	}
	if n := utf8.RuneCountInString(symbols); n != FaceCount {
		return nil, fmt.Errorf("cube palette %q has %d symbols, want %d: %w",
			symbols, n, FaceCount, ErrInvalidArgument)
	}

	c := &Cube{}
	i := 0
	for _, r := range symbols {
		c.symbols[i] = r
		i++
	}

	half := side / 2
	for i, f := range unitCube {
		c.Faces[i] = Face{
			A: f.A.Scale(half),
			B: f.B.Scale(half),
			C: f.C.Scale(half),
			D: f.D.Scale(half),
		}
	}
	return c, nil
}

// MustCube is NewCube for static, known-good parameters.
func MustCube(side float64, symbols string) *Cube {
	c, err := NewCube(side, symbols)
	if err != nil {
		panic(err)
	}
	return c
}

// Symbol returns the fill rune of face i.
func (c *Cube) Symbol(i int) rune { return c.symbols[i] }

// Side measures the current edge length from face 0.
func (c *Cube) Side() float64 {
	return c.Faces[0].A.Sub(c.Faces[0].B).Magnitude()
}

func (c *Cube) RotateX(rad float64) { c.rotate((*Vec3).RotateX, rad) }

func (c *Cube) RotateY(rad float64) { c.rotate((*Vec3).RotateY, rad) }

func (c *Cube) RotateZ(rad float64) { c.rotate((*Vec3).RotateZ, rad) }

// Rotate applies X, then Y, then Z rotations.
func (c *Cube) Rotate(ax, ay, az float64) {
	c.RotateX(ax)
	c.RotateY(ay)
	c.RotateZ(az)
}

func (c *Cube) rotate(fn func(*Vec3, float64) *Vec3, rad float64) {
	for i := range c.Faces {
		c.Faces[i].rotate(fn, rad)
	}
}
