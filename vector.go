package phys2d

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector used throughout the engine for positions, velocities,
// offsets and directions.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross is the 2D analog of the cross product: the scalar z-component of
// the 3D cross product of the two vectors extended with z=0.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Perp rotates v by +90 degrees. Used to turn an angular velocity into a
// linear velocity contribution at an offset: Perp(r) * w.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// ReversePerp rotates v by -90 degrees.
func (v Vec2) ReversePerp() Vec2 {
	return Vec2{v.Y, -v.X}
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec2) LengthSq() float64 {
	return v.Dot(v)
}

func (v Vec2) DistanceSq(o Vec2) float64 {
	return v.Sub(o).LengthSq()
}

func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return v.Scale(1.0 / length)
}

func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Scale(1 - t).Add(o.Scale(t))
}

// Rotate applies the rotation encoded by the unit vector `other` (as
// returned by ForAngle) to v.
func (v Vec2) Rotate(other Vec2) Vec2 {
	return Vec2{v.X*other.X - v.Y*other.Y, v.X*other.Y + v.Y*other.X}
}

func (v Vec2) Unrotate(other Vec2) Vec2 {
	return Vec2{v.X*other.X + v.Y*other.Y, v.Y*other.X - v.X*other.Y}
}

// TripleCross computes (a x b) x c for 2D vectors treated as 3D vectors
// with z=0, i.e. b*(a.c) - a*(b.c). GJK/EPA use it to derive an
// outward-pointing normal from two edge vectors; it degenerates to the
// zero vector when a and b are parallel, in which case callers fall back
// to Perp.
func TripleCross(a, b, c Vec2) Vec2 {
	return b.Scale(a.Dot(c)).Sub(a.Scale(b.Dot(c)))
}

func VectorZero() Vec2 {
	return Vec2{}
}

func ForAngle(radians float64) Vec2 {
	return Vec2{math.Cos(radians), math.Sin(radians)}
}

func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) ClosestPointOnSegment(a, b Vec2) Vec2 {
	delta := a.Sub(b)
	denom := delta.LengthSq()
	if denom == 0 {
		return a
	}
	t := clamp01(delta.Dot(v.Sub(b)) / denom)
	return b.Add(delta.Scale(t))
}

// Mat2 is a 2x2 matrix. Bodies and shapes do not use it: they rotate
// with a ForAngle unit vector through Vec2.Rotate.
type Mat2 struct {
	M00, M01 float64
	M10, M11 float64
}

func NewMat2Identity() Mat2 {
	return Mat2{1, 0, 0, 1}
}

func NewMat2Rotation(radians float64) Mat2 {
	c, s := math.Cos(radians), math.Sin(radians)
	return Mat2{c, -s, s, c}
}

func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		X: m.M00*v.X + m.M01*v.Y,
		Y: m.M10*v.X + m.M11*v.Y,
	}
}

func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		M00: m.M00*o.M00 + m.M01*o.M10,
		M01: m.M00*o.M01 + m.M01*o.M11,
		M10: m.M10*o.M00 + m.M11*o.M10,
		M11: m.M10*o.M01 + m.M11*o.M11,
	}
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{m.M00, m.M10, m.M01, m.M11}
}

func clamp(f, min, max float64) float64 {
	return math.Min(math.Max(f, min), max)
}

func clamp01(f float64) float64 {
	return clamp(f, 0, 1)
}
