package phys2d

import "math"

// AABB is an axis-aligned bounding box, used by the broad-phase quadtree
// and as the cached world bounds on every RigidBody.
type AABB struct {
	Min, Max Vec2
}

func NewAABB(min, max Vec2) AABB {
	return AABB{Min: min, Max: max}
}

func NewAABBForExtents(center Vec2, halfWidth, halfHeight float64) AABB {
	return AABB{
		Min: Vec2{center.X - halfWidth, center.Y - halfHeight},
		Max: Vec2{center.X + halfWidth, center.Y + halfHeight},
	}
}

func NewAABBForCircle(center Vec2, radius float64) AABB {
	return NewAABBForExtents(center, radius, radius)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

// Contains reports whether b lies entirely within a.
func (a AABB) Contains(b AABB) bool {
	return a.Min.X <= b.Min.X && a.Max.X >= b.Max.X &&
		a.Min.Y <= b.Min.Y && a.Max.Y >= b.Max.Y
}

func (a AABB) ContainsPoint(p Vec2) bool {
	return a.Min.X <= p.X && a.Max.X >= p.X && a.Min.Y <= p.Y && a.Max.Y >= p.Y
}

func (a AABB) Translate(v Vec2) AABB {
	return AABB{a.Min.Add(v), a.Max.Add(v)}
}

func (a AABB) Merge(b AABB) AABB {
	return AABB{
		Min: Vec2{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y)},
		Max: Vec2{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y)},
	}
}

func (a AABB) Center() Vec2 {
	return a.Min.Lerp(a.Max, 0.5)
}

func (a AABB) Area() float64 {
	w := a.Max.X - a.Min.X
	h := a.Max.Y - a.Min.Y
	return w * h
}

func (a AABB) Width() float64 {
	return a.Max.X - a.Min.X
}

func (a AABB) Height() float64 {
	return a.Max.Y - a.Min.Y
}

// Quadrants returns the four equal sub-regions of a, in the fixed order
// (bottom-left, bottom-right, top-left, top-right) the quadtree indexes
// its children by.
func (a AABB) Quadrants() [4]AABB {
	c := a.Center()
	return [4]AABB{
		{Min: a.Min, Max: c},
		{Min: Vec2{c.X, a.Min.Y}, Max: Vec2{a.Max.X, c.Y}},
		{Min: Vec2{a.Min.X, c.Y}, Max: Vec2{c.X, a.Max.Y}},
		{Min: c, Max: a.Max},
	}
}
