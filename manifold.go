package phys2d

const (
	manifoldDriftThresholdSq    = 4
	manifoldSeparationThreshold = 0.01
	manifoldDedupThresholdSq    = 4
)

// Contact is one persistent witness point of a body-pair manifold.
// LocalPosA/B are stored relative to the owning body's position at the
// time the contact was created, and deliberately NOT rotated with the
// body afterward (see spec's design notes on manifold persistence) —
// a body that rotates significantly between steps will fail the world-
// drift check below and the contact gets dropped, which is intentional.
type Contact struct {
	WorldPosA, WorldPosB Vec2
	LocalPosA, LocalPosB Vec2

	EffectiveMassNormal  float64
	EffectiveMassTangent float64

	OriginalRestitutionBias float64

	AccumulatedNormalMagnitude  float64
	AccumulatedTangentMagnitude float64
}

// CollisionManifold is the narrow-phase result for one body-pair this
// step, plus the persisted contact points that survived pruning.
type CollisionManifold struct {
	Normal  Vec2
	Tangent Vec2
	Depth   float64
	MTV     Vec2

	Contacts []Contact
}

// persistContacts merges a freshly computed single-contact candidate
// into a pair's retained contact list, per spec.md §4.4: drop contacts
// that drifted or separated, skip the new candidate if it duplicates a
// retained one, then cap the result to two points.
func persistContacts(existing []Contact, fresh Contact, normal Vec2, bodyA, bodyB *RigidBody) []Contact {
	kept := make([]Contact, 0, len(existing)+1)
	for _, c := range existing {
		curWorldA := bodyA.Position.Add(c.LocalPosA)
		curWorldB := bodyB.Position.Add(c.LocalPosB)
		if curWorldA.DistanceSq(c.WorldPosA) > manifoldDriftThresholdSq {
			continue
		}
		if curWorldB.DistanceSq(c.WorldPosB) > manifoldDriftThresholdSq {
			continue
		}
		if normal.Dot(curWorldB.Sub(curWorldA)) > manifoldSeparationThreshold {
			continue
		}
		kept = append(kept, c)
	}

	duplicate := false
	for _, c := range kept {
		if c.LocalPosA.DistanceSq(fresh.LocalPosA) < manifoldDedupThresholdSq ||
			c.LocalPosB.DistanceSq(fresh.LocalPosB) < manifoldDedupThresholdSq {
			duplicate = true
			break
		}
	}
	if !duplicate {
		kept = append(kept, fresh)
	}

	if len(kept) > 2 {
		kept = capToTwoContacts(kept)
	}
	return kept
}

// capToTwoContacts keeps the deepest contact (largest squared distance
// between its own world witnesses) and whichever remaining contact is
// furthest in world space from that one.
func capToTwoContacts(contacts []Contact) []Contact {
	deepestIdx := 0
	deepestDepthSq := contacts[0].WorldPosA.DistanceSq(contacts[0].WorldPosB)
	for i := 1; i < len(contacts); i++ {
		d := contacts[i].WorldPosA.DistanceSq(contacts[i].WorldPosB)
		if d > deepestDepthSq {
			deepestDepthSq = d
			deepestIdx = i
		}
	}
	deepest := contacts[deepestIdx]

	furthestIdx := -1
	furthestDistSq := -1.0
	for i, c := range contacts {
		if i == deepestIdx {
			continue
		}
		d := c.WorldPosA.DistanceSq(deepest.WorldPosA)
		if d > furthestDistSq {
			furthestDistSq = d
			furthestIdx = i
		}
	}
	if furthestIdx == -1 {
		return []Contact{deepest}
	}
	return []Contact{deepest, contacts[furthestIdx]}
}
