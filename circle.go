package phys2d

import "math"

// CircleShape is a disc of fixed radius centered at Center.
type CircleShape struct {
	Center Vec2
	Radius float64
}

func (c CircleShape) Support(d Vec2) Vec2 {
	return c.Center.Add(d.Normalize().Scale(c.Radius))
}

func (c CircleShape) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c CircleShape) AABB() AABB {
	return NewAABBForCircle(c.Center, c.Radius)
}

func (c *CircleShape) Translate(v Vec2) {
	c.Center = c.Center.Add(v)
}

func (c *CircleShape) Rotate(pivot Vec2, rot Vec2) {
	c.Center = pivot.Add(c.Center.Sub(pivot).Rotate(rot))
}

// MMOI for a circle about its own center, unit mass: r^2/2.
func (c CircleShape) MMOI() float64 {
	return c.Radius * c.Radius / 2
}
