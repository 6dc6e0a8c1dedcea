package phys2d

// gjkMaxIterations caps the otherwise unbounded GJK loop. spec.md notes
// progress is guaranteed by the support-past-origin test but allows a
// safety cap; 64 matches the suggested value.
const gjkMaxIterations = 64

// simplex holds up to three Minkowski-difference points, newest last.
// gjk also tracks the matching support points on each original shape so
// EPA can reuse them as contact witnesses without re-querying support.
type simplex struct {
	points     []Vec2
	supportsA  []Vec2
	supportsB  []Vec2
}

func (s *simplex) push(p, sa, sb Vec2) {
	s.points = append(s.points, p)
	s.supportsA = append(s.supportsA, sa)
	s.supportsB = append(s.supportsB, sb)
}

// drop removes points[idx], keeping newest-last ordering intact.
func (s *simplex) drop(idx int) {
	s.points = append(s.points[:idx], s.points[idx+1:]...)
	s.supportsA = append(s.supportsA[:idx], s.supportsA[idx+1:]...)
	s.supportsB = append(s.supportsB[:idx], s.supportsB[idx+1:]...)
}

// minkowskiSupport returns the Minkowski-difference support point A-B
// along d, along with the witness points on A and B that produced it.
func minkowskiSupport(a, b *Shape, d Vec2) (p, sa, sb Vec2) {
	sa = a.Support(d)
	sb = b.Support(d.Neg())
	return sa.Sub(sb), sa, sb
}

// gjkIntersect runs GJK simplex evolution to decide whether the
// Minkowski difference of a and b contains the origin. When it does,
// the returned simplex (a triangle) is handed to EPA for penetration
// depth and contact extraction.
func gjkIntersect(a, b *Shape) (hit bool, s simplex) {
	d := a.Centroid().Sub(b.Centroid())
	if d.LengthSq() == 0 {
		d = Vec2{1, 0}
	}

	p, sa, sb := minkowskiSupport(a, b, d)
	s.push(p, sa, sb)
	d = p.Neg()

	for i := 0; i < gjkMaxIterations; i++ {
		q, qa, qb := minkowskiSupport(a, b, d)
		if q.Dot(d) < 0 {
			return false, simplex{}
		}
		s.push(q, qa, qb)

		enclosed, newDir := evolveSimplex(&s)
		if enclosed {
			return true, s
		}
		d = newDir
	}
	return false, simplex{}
}

// evolveSimplex applies the line or triangle simplex rule from spec.md
// §4.2, mutating s in place (dropping the point that can't contribute to
// enclosing the origin) and returning the next search direction.
func evolveSimplex(s *simplex) (enclosed bool, direction Vec2) {
	n := len(s.points)
	ao := s.points[n-1].Neg()

	if n == 2 {
		a, b := s.points[1], s.points[0]
		ab := b.Sub(a)
		normal := TripleCross(ab, ao, ab)
		if normal.LengthSq() == 0 {
			normal = ab.Perp()
		}
		return false, normal
	}

	// n == 3: a newest, c oldest.
	a, b, c := s.points[2], s.points[1], s.points[0]
	ab := b.Sub(a)
	ac := c.Sub(a)

	abNormal := TripleCross(ac, ab, ab)
	if abNormal.LengthSq() == 0 {
		abNormal = ab.Perp()
	}
	if abNormal.Dot(ao) > 0 {
		s.drop(0) // drop c
		return false, abNormal
	}

	acNormal := TripleCross(ab, ac, ac)
	if acNormal.LengthSq() == 0 {
		acNormal = ac.Perp()
	}
	if acNormal.Dot(ao) > 0 {
		s.drop(1) // drop b
		return false, acNormal
	}

	return true, Vec2{}
}
