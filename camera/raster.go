package camera

import (
	"fmt"
	"sort"

	"asciicube/geom"
)

// VisibleFaces is how many faces of a convex cube can face the camera at
// once.
const VisibleFaces = 3

// SetTriangle fills tr, taken in the X-Y plane, with r. A point is filled
// when the Z parts of PA×PB, PB×PC and PC×PA all share a sign, or when any
// of them is zero (the point is on an edge line). Collinear triangles draw
// nothing.
func (c *Camera) SetTriangle(tr geom.Triangle, r rune) {
	ab := tr.B.Sub(tr.A)
	bc := tr.C.Sub(tr.B)
	if ab.Cross(bc).Z == 0 {
		return
	}

	left := geom.Round(min3(tr.A.X, tr.B.X, tr.C.X))
	right := geom.Round(max3(tr.A.X, tr.B.X, tr.C.X))
	top := geom.Round(max3(tr.A.Y, tr.B.Y, tr.C.Y))
	bottom := geom.Round(min3(tr.A.Y, tr.B.Y, tr.C.Y))

	// Thin slivers can fall between grid points; the corners always show.
	c.SetPoint(tr.A, r)
	c.SetPoint(tr.B, r)
	c.SetPoint(tr.C, r)

	for y := bottom; y <= top; y++ {
		for x := left; x <= right; x++ {
			if insideOrOnEdge(tr, float64(x), float64(y)) {
				c.SetPixelInt(x, y, r)
			}
		}
	}
}

func insideOrOnEdge(tr geom.Triangle, x, y float64) bool {
	p := geom.V3(x, y, 0)
	pa := tr.A.Sub(p)
	pb := tr.B.Sub(p)
	pc := tr.C.Sub(p)
	ab := pa.Cross(pb).Z
	bc := pb.Cross(pc).Z
	ca := pc.Cross(pa).Z
	switch {
	case ab > 0 && bc > 0 && ca > 0, ab < 0 && bc < 0 && ca < 0:
		return true
	case ab == 0 || bc == 0 || ca == 0:
		return true
	}
	return false
}

// SetFace projects f onto X-Y and fills its two triangles.
func (c *Camera) SetFace(f geom.Face, r rune) {
	b := f.B.ProjectXY()
	cc := f.C.ProjectXY()
	c.SetTriangle(geom.Triangle{A: f.A.ProjectXY(), B: b, C: cc}, r)
	c.SetTriangle(geom.Triangle{A: b, B: cc, C: f.D.ProjectXY()}, r)
}

// FaceOrder returns the cube's face indices sorted by ascending
// Face.Distance, nearest first. Ties keep face order.
func (c *Camera) FaceOrder(cube *geom.Cube) [geom.FaceCount]int {
	var d [geom.FaceCount]float64
	var idx [geom.FaceCount]int
	for i, f := range cube.Faces {
		d[i] = f.Distance(c.depthOffset)
		idx[i] = i
	}
	sort.SliceStable(idx[:], func(i, j int) bool { return d[idx[i]] < d[idx[j]] })
	return idx
}

// SetCube draws the VisibleFaces nearest faces of cube from the farthest of
// them to the nearest, so nearer faces paint over farther ones. It returns
// the drawn indices, nearest first.
func (c *Camera) SetCube(cube *geom.Cube) [VisibleFaces]int {
	order := c.FaceOrder(cube)
	var seen [VisibleFaces]int
	copy(seen[:], order[:VisibleFaces])

	if c.label {
		c.SetText(0, 0, fmt.Sprintf("faces in view: %d, %d, %d", seen[0], seen[1], seen[2]))
	}

	for i := VisibleFaces - 1; i >= 0; i-- {
		c.SetFace(cube.Faces[seen[i]], cube.Symbol(seen[i]))
	}
	return seen
}
