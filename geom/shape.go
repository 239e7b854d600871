// =======================
// geom/shape.go
// =======================

package geom

// Triangle is three points. Winding matters only to the rasterizer's
// inside test.
type Triangle struct {
	A, B, C Vec3
}

// Face is a quad made of the triangles ABC and BCD; B and C are shared.
type Face struct {
	A, B, C, D Vec3
}

// Distance estimates how far the face is from the camera plane: the mean Z
// of the shared edge BC minus the camera's depth offset. Larger is nearer.
func (f Face) Distance(depthOffset int) float64 {
	return (f.B.Z+f.C.Z)/2 - float64(depthOffset)
}

// Triangles splits the face into (A,B,C) and (B,C,D).
func (f Face) Triangles() (Triangle, Triangle) {
	return Triangle{f.A, f.B, f.C}, Triangle{f.B, f.C, f.D}
}

// ProjectXY projects every corner onto the X-Y plane.
func (f Face) ProjectXY() Face {
	return Face{f.A.ProjectXY(), f.B.ProjectXY(), f.C.ProjectXY(), f.D.ProjectXY()}
}

func (f *Face) rotate(fn func(*Vec3, float64) *Vec3, rad float64) {
	fn(&f.A, rad)
	fn(&f.B, rad)
	fn(&f.C, rad)
	fn(&f.D, rad)
}
