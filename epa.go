package phys2d

import (
	"fmt"
	"math"
)

const (
	epaMaxIterations = 100
	epaTolerance     = 1e-3
)

// EPAError reports that the expanding-polytope pass failed to converge
// within epaMaxIterations. The step that produced it is corrupt; callers
// do not apply a partial result for the pair.
type EPAError struct {
	IterationsRun int
}

func (e *EPAError) Error() string {
	return fmt.Sprintf("phys2d: EPA did not converge after %d iterations", e.IterationsRun)
}

// penetration is the result of a converged EPA pass: the separating
// normal (pointing from A to B), the penetration depth along it, and a
// single witness contact point pair in world space.
type penetration struct {
	normal           Vec2
	depth            float64
	mtv              Vec2
	worldContactA    Vec2
	worldContactB    Vec2
}

// epa expands the colliding GJK simplex s into a polytope that hugs the
// Minkowski-difference boundary, per spec.md §4.3.
func epa(a, b *Shape, s simplex) (penetration, error) {
	points := append([]Vec2{}, s.points...)
	supportsA := append([]Vec2{}, s.supportsA...)
	supportsB := append([]Vec2{}, s.supportsB...)

	for iter := 0; iter < epaMaxIterations; iter++ {
		minIdx, minNormal, minDistance := closestEdge(points)

		q, qa, qb := minkowskiSupport(a, b, minNormal)
		d := minNormal.Dot(q)

		if math.Abs(d-minDistance) < epaTolerance {
			return buildPenetration(points, supportsA, supportsB, minIdx, minNormal, d), nil
		}

		insertAt := (minIdx + 1) % len(points)
		points = insertVec2(points, insertAt, q)
		supportsA = insertVec2(supportsA, insertAt, qa)
		supportsB = insertVec2(supportsB, insertAt, qb)
	}

	return penetration{}, &EPAError{IterationsRun: epaMaxIterations}
}

// closestEdge scans every polytope edge (i, (i+1)%n) and returns the
// index of the edge closest to the origin, its outward normal, and the
// (clamped non-negative) distance from the origin to that edge.
func closestEdge(points []Vec2) (idx int, normal Vec2, dist float64) {
	n := len(points)
	minDistance := math.Inf(1)
	var minNormal Vec2
	minIdx := 0

	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		ab := b.Sub(a)

		edgeNormal := TripleCross(ab, a, ab)
		if edgeNormal.LengthSq() == 0 {
			edgeNormal = ab.Perp()
		}
		edgeNormal = edgeNormal.Normalize()

		d := math.Max(0, edgeNormal.Dot(a))
		if d < minDistance {
			minDistance = d
			minNormal = edgeNormal
			minIdx = i
		}
	}

	return minIdx, minNormal, minDistance
}

// buildPenetration derives the single contact witness pair for the
// converged edge per spec.md §4.3: reuse a cached support point if the
// edge's two body-A witnesses nearly coincide, otherwise interpolate
// along the edge toward the origin's projection.
func buildPenetration(points, supportsA, supportsB []Vec2, edgeIdx int, normal Vec2, depth float64) penetration {
	n := len(points)
	i0, i1 := edgeIdx, (edgeIdx+1)%n

	edgeA, edgeB := points[i0], points[i1]
	witnessA0, witnessA1 := supportsA[i0], supportsA[i1]

	mtv := normal.Scale(depth)

	var worldContactA Vec2
	if witnessA0.DistanceSq(witnessA1) <= 1 {
		worldContactA = witnessA0
	} else {
		e := edgeB.Sub(edgeA)
		denom := e.Dot(e)
		t := 0.0
		if denom != 0 {
			t = -(edgeA.Dot(e)) / denom
		}
		t = clamp01(t)
		worldContactA = witnessA0.Add(witnessA1.Sub(witnessA0).Scale(t))
	}

	return penetration{
		normal:        normal,
		depth:         depth,
		mtv:           mtv,
		worldContactA: worldContactA,
		worldContactB: worldContactA.Sub(mtv),
	}
}

func insertVec2(s []Vec2, idx int, v Vec2) []Vec2 {
	s = append(s, Vec2{})
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}
