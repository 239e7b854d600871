// =======================
// geom/vector3.go
// =======================

package geom

import "math"

// Vec3 holds a 3D point or direction.
type Vec3 struct{ X, Y, Z float64 }

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(u Vec3) Vec3 { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

func (v Vec3) Dot(u Vec3) float64 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Magnitude returns the Euclidean length of v.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Cross returns v × u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// ProjectXY drops Z. Rendering is orthographic onto this plane.
func (v Vec3) ProjectXY() Vec3 { return Vec3{v.X, v.Y, 0} }

func (v Vec3) ProjectXZ() Vec3 { return Vec3{v.X, 0, v.Z} }

func (v Vec3) ProjectYZ() Vec3 { return Vec3{0, v.Y, v.Z} }

// RotatedX returns v rotated by rad around the X axis (right-handed).
func (v Vec3) RotatedX(rad float64) Vec3 {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotatedY returns v rotated by rad around the Y axis.
func (v Vec3) RotatedY(rad float64) Vec3 {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotatedZ returns v rotated by rad around the Z axis.
func (v Vec3) RotatedZ(rad float64) Vec3 {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// RotateX rotates v in place and returns it so calls can be chained:
//
//	p.RotateX(a).RotateY(b).RotateZ(c)
func (v *Vec3) RotateX(rad float64) *Vec3 {
	*v = v.RotatedX(rad)
	return v
}

func (v *Vec3) RotateY(rad float64) *Vec3 {
	*v = v.RotatedY(rad)
	return v
}

func (v *Vec3) RotateZ(rad float64) *Vec3 {
	*v = v.RotatedZ(rad)
	return v
}

// Round rounds half away from zero.
func Round(f float64) int {
	return int(math.Round(f))
}
