package phys2d

import "math"

// CapsuleShape is a rectangle of length |B-A| capped by semicircles of
// Radius at each endpoint.
type CapsuleShape struct {
	A, B   Vec2
	Radius float64
}

func (c CapsuleShape) Support(d Vec2) Vec2 {
	if c.A.Dot(d) > c.B.Dot(d) {
		return c.A.Add(d.Normalize().Scale(c.Radius))
	}
	return c.B.Add(d.Normalize().Scale(c.Radius))
}

func (c CapsuleShape) Area() float64 {
	length := c.A.Distance(c.B)
	return length*2*c.Radius + math.Pi*c.Radius*c.Radius
}

func (c CapsuleShape) Centroid() Vec2 {
	return c.A.Lerp(c.B, 0.5)
}

func (c CapsuleShape) AABB() AABB {
	min := Vec2{math.Min(c.A.X, c.B.X) - c.Radius, math.Min(c.A.Y, c.B.Y) - c.Radius}
	max := Vec2{math.Max(c.A.X, c.B.X) + c.Radius, math.Max(c.A.Y, c.B.Y) + c.Radius}
	return AABB{Min: min, Max: max}
}

func (c *CapsuleShape) Translate(v Vec2) {
	c.A = c.A.Add(v)
	c.B = c.B.Add(v)
}

func (c *CapsuleShape) Rotate(pivot Vec2, rot Vec2) {
	c.A = pivot.Add(c.A.Sub(pivot).Rotate(rot))
	c.B = pivot.Add(c.B.Sub(pivot).Rotate(rot))
}

// MMOI treats the capsule as a rectangle (the two endpoints' surrounding
// box, length L between cap centers, width 2r) plus a single disc of
// radius r split across both caps, combined by a mass-weighted sum:
//
//	Mc = pi*r / (pi*r + 2*L), Mr = 1 - Mc
//	mmoi = (circleMMOI(r) + L^2/2)*Mc + rectMMOI(L, 2r)*Mr
func (c CapsuleShape) MMOI() float64 {
	length := c.A.Distance(c.B)
	r := c.Radius

	circleMMOI := r * r / 2
	rectMMOI := (length*length + (2*r)*(2*r)) / 12

	mc := math.Pi * r / (math.Pi*r + 2*length)
	mr := 1 - mc

	return (circleMMOI+length*length/2)*mc + rectMMOI*mr
}
