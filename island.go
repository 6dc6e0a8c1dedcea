package phys2d

import "math"

// Island is a maximal set of non-fixed bodies mutually reachable this
// step through confirmed collisions, used only to arbitrate sleeping
// coherently — a stack shouldn't have some bodies asleep and others
// awake. It is rebuilt from scratch every step; body.Island is a
// step-scoped back-pointer cleared at the start of each step (see
// spec's design notes on why this isn't a persistent handle).
type Island struct {
	Bodies []*RigidBody
}

func newIsland() *Island {
	return &Island{}
}

func (isl *Island) addBody(b *RigidBody) {
	isl.Bodies = append(isl.Bodies, b)
	b.Island = isl
}

// confirmIslandMembership applies the island merge rule from spec.md
// §4.6 to the non-fixed bodies of a just-confirmed collision. Fixed
// bodies never join an island and must already be filtered out of
// nonFixed by the caller.
func confirmIslandMembership(nonFixed []*RigidBody, islands *[]*Island) {
	switch len(nonFixed) {
	case 0:
		return
	case 1:
		body := nonFixed[0]
		if body.Island == nil {
			isl := newIsland()
			isl.addBody(body)
			*islands = append(*islands, isl)
		}
	case 2:
		a, b := nonFixed[0], nonFixed[1]
		switch {
		case a.Island != nil && b.Island != nil && a.Island != b.Island:
			mergeIslands(a.Island, b.Island, islands)
		case a.Island != nil:
			a.Island.addBody(b)
		case b.Island != nil:
			b.Island.addBody(a)
		default:
			isl := newIsland()
			isl.addBody(a)
			isl.addBody(b)
			*islands = append(*islands, isl)
		}
	}
}

// mergeIslands merges the smaller island into the larger, repointing
// every migrated body's Island back-pointer, and drops the dissolved
// island from the engine's island list.
func mergeIslands(x, y *Island, islands *[]*Island) {
	survivor, dissolved := x, y
	if len(y.Bodies) > len(x.Bodies) {
		survivor, dissolved = y, x
	}
	for _, body := range dissolved.Bodies {
		survivor.addBody(body)
	}
	*islands = removeIsland(*islands, dissolved)
}

func removeIsland(list []*Island, target *Island) []*Island {
	for i, isl := range list {
		if isl == target {
			last := len(list) - 1
			list[i] = list[last]
			return list[:last]
		}
	}
	return list
}

// arbitrateSleep runs the end-of-step sleep arbitration from spec.md
// §4.6 over every island built this step.
func arbitrateSleep(islands []*Island, dt float64, cfg EngineConfig) {
	linThresholdSq := cfg.SleepLinearThreshold * cfg.SleepLinearThreshold

	for _, isl := range islands {
		forcedZero := false
		for _, b := range isl.Bodies {
			still := b.LinearVelocity.LengthSq() < linThresholdSq && math.Abs(b.AngularVelocity) < cfg.SleepAngularThreshold
			if still {
				b.TimeStill += dt
			} else {
				b.TimeStill = 0
				forcedZero = true
			}
		}

		minSleepTime := math.Inf(1)
		if forcedZero {
			minSleepTime = 0
		} else {
			for _, b := range isl.Bodies {
				minSleepTime = math.Min(minSleepTime, b.TimeStill)
			}
		}

		if minSleepTime >= cfg.SleepTimeThreshold {
			for _, b := range isl.Bodies {
				b.Sleeping = true
			}
		}
	}
}
