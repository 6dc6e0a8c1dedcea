package phys2d

import "sort"

// Collision is one active body-pair this step: a persisted manifold plus
// the material response terms the solver needs. id packs idA*1e10+idB
// with idA < idB — collision-free for ids below 1e10, per spec's design
// notes (a safer port would use a pair struct or a wider packed key).
type Collision struct {
	ID          int64
	BodyA       *RigidBody
	BodyB       *RigidBody
	Restitution float64
	Friction    float64
	Manifold    CollisionManifold
}

func pairID(idA, idB uint64) int64 {
	return int64(idA)*1e10 + int64(idB)
}

// narrowPhase runs GJK, then EPA if GJK reports overlap, and packages the
// result as a fresh single-point contact candidate plus the manifold
// terms (normal/tangent/depth/mtv) for this step.
func narrowPhase(a, b *RigidBody) (manifold CollisionManifold, fresh Contact, hit bool, err error) {
	overlapping, s := gjkIntersect(&a.Collider, &b.Collider)
	if !overlapping {
		return CollisionManifold{}, Contact{}, false, nil
	}

	pen, err := epa(&a.Collider, &b.Collider, s)
	if err != nil {
		return CollisionManifold{}, Contact{}, false, err
	}

	tangent := pen.normal.Perp()
	manifold = CollisionManifold{
		Normal:  pen.normal,
		Tangent: tangent,
		Depth:   pen.depth,
		MTV:     pen.mtv,
	}
	fresh = Contact{
		WorldPosA: pen.worldContactA,
		WorldPosB: pen.worldContactB,
		LocalPosA: pen.worldContactA.Sub(a.Position),
		LocalPosB: pen.worldContactB.Sub(b.Position),
	}
	return manifold, fresh, true, nil
}

// collisionPass walks every broad-phase candidate pair once, runs the
// narrow-phase on it, persists/refreshes the pair's manifold in cache,
// builds islands from confirmed pairs, and wakes sleeping bodies that
// touch an awake one. It implements spec.md §4.4, §4.6 (the island half)
// and the pair-filtering/ordering rule from §4.8.
func collisionPass(bodies []*RigidBody, broadphase *QuadTree, cache map[int64]*Collision, islands *[]*Island) ([]*Collision, error) {
	confirmed := make(map[int64]bool, len(cache))

	for _, a := range bodies {
		candidates := broadphase.Query(a.Bounds)
		for _, b := range candidates {
			if a == b {
				continue
			}

			low, high := a, b
			if low.ID > high.ID {
				low, high = high, low
			}
			if low != a {
				// This unordered pair belongs to low's turn through the
				// outer loop; skip it here to visit each pair once.
				continue
			}
			if (low.Fixed || low.Sleeping) && (high.Fixed || high.Sleeping) {
				continue
			}

			manifold, fresh, hit, err := narrowPhase(low, high)
			if err != nil {
				return nil, err
			}
			if !hit {
				continue
			}

			if !low.Sleeping || !high.Sleeping {
				low.Sleeping = false
				high.Sleeping = false
			}

			var nonFixed []*RigidBody
			if !low.Fixed {
				nonFixed = append(nonFixed, low)
			}
			if !high.Fixed {
				nonFixed = append(nonFixed, high)
			}
			confirmIslandMembership(nonFixed, islands)

			id := pairID(low.ID, high.ID)
			confirmed[id] = true

			col, existed := cache[id]
			if !existed {
				col = &Collision{ID: id, BodyA: low, BodyB: high}
				cache[id] = col
			}
			assert(col.BodyA == low && col.BodyB == high,
				"phys2d: pair id %d collides between body pairs (%d,%d) and (%d,%d)",
				id, col.BodyA.ID, col.BodyB.ID, low.ID, high.ID)
			col.Restitution = low.Restitution * high.Restitution
			col.Friction = (low.Friction + high.Friction) / 2
			col.Manifold.Normal = manifold.Normal
			col.Manifold.Tangent = manifold.Tangent
			col.Manifold.Depth = manifold.Depth
			col.Manifold.MTV = manifold.MTV
			col.Manifold.Contacts = persistContacts(col.Manifold.Contacts, fresh, manifold.Normal, low, high)
		}
	}

	for id := range cache {
		if !confirmed[id] {
			delete(cache, id)
		}
	}

	active := make([]*Collision, 0, len(cache))
	for _, col := range cache {
		active = append(active, col)
	}
	// Map iteration order is randomized; sort by id so the solver's
	// Gauss-Seidel passes see a deterministic collision order every step.
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}
