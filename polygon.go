package phys2d

import (
	"fmt"
	"math"
)

// PolygonShape is a convex polygon stored as CCW-ordered vertices.
type PolygonShape struct {
	Vertices []Vec2
}

func newPolygonShape(vertices []Vec2) (PolygonShape, error) {
	if len(vertices) < 3 {
		return PolygonShape{}, fmt.Errorf("phys2d: polygon needs at least 3 vertices, got %d", len(vertices))
	}
	verts := make([]Vec2, len(vertices))
	copy(verts, vertices)
	return PolygonShape{Vertices: verts}, nil
}

func (p PolygonShape) Support(d Vec2) Vec2 {
	best := p.Vertices[0]
	bestDot := best.Dot(d)
	for _, v := range p.Vertices[1:] {
		dot := v.Dot(d)
		if dot > bestDot {
			bestDot = dot
			best = v
		}
	}
	return best
}

// Area via the shoelace formula. Vertices are assumed CCW, so the result
// is positive for a well-formed polygon.
func (p PolygonShape) Area() float64 {
	return math.Abs(p.signedArea())
}

func (p PolygonShape) signedArea() float64 {
	sum := 0.0
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		sum += a.Cross(b)
	}
	return sum / 2
}

func (p PolygonShape) Centroid() Vec2 {
	n := len(p.Vertices)
	cx, cy := 0.0, 0.0
	area := p.signedArea()
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		cross := a.Cross(b)
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	if area == 0 {
		return p.Vertices[0]
	}
	return Vec2{cx / (6 * area), cy / (6 * area)}
}

func (p PolygonShape) AABB() AABB {
	min, max := p.Vertices[0], p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		min = Vec2{math.Min(min.X, v.X), math.Min(min.Y, v.Y)}
		max = Vec2{math.Max(max.X, v.X), math.Max(max.Y, v.Y)}
	}
	return AABB{Min: min, Max: max}
}

func (p *PolygonShape) Translate(v Vec2) {
	for i := range p.Vertices {
		p.Vertices[i] = p.Vertices[i].Add(v)
	}
}

// Rotate applies the same sin/cos pair (rot, from ForAngle) to every
// vertex rather than recomputing it per vertex.
func (p *PolygonShape) Rotate(pivot Vec2, rot Vec2) {
	for i, v := range p.Vertices {
		p.Vertices[i] = pivot.Add(v.Sub(pivot).Rotate(rot))
	}
}

func triangleArea(a, b, c Vec2) float64 {
	return math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
}

func triangleCentroid(a, b, c Vec2) Vec2 {
	return Vec2{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
}

// triangleMMOI is the unit-mass MMOI of a triangle about its own
// centroid: (|p2-p1|^2 + |p3-p1|^2 + |p2-p3|^2) / 36.
func triangleMMOI(p1, p2, p3 Vec2) float64 {
	return (p2.Sub(p1).LengthSq() + p3.Sub(p1).LengthSq() + p2.Sub(p3).LengthSq()) / 36
}

// MMOI fan-triangulates at vertex 0 and accumulates each triangle's
// own-centroid MMOI plus its parallel-axis offset to the polygon
// centroid, weighted by the triangle's share of total area.
func (p PolygonShape) MMOI() float64 {
	if len(p.Vertices) == 3 {
		return triangleMMOI(p.Vertices[0], p.Vertices[1], p.Vertices[2])
	}

	polyCentroid := p.Centroid()
	totalArea := p.Area()
	if totalArea == 0 {
		return 0
	}

	mmoi := 0.0
	v0 := p.Vertices[0]
	for i := 1; i < len(p.Vertices)-1; i++ {
		a, b, c := v0, p.Vertices[i], p.Vertices[i+1]
		area := triangleArea(a, b, c)
		if area == 0 {
			continue
		}
		weight := area / totalArea
		triCentroid := triangleCentroid(a, b, c)
		mmoi += weight * (triangleMMOI(a, b, c) + triCentroid.DistanceSq(polyCentroid))
	}
	return mmoi
}
