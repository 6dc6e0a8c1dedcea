package phys2d

import (
	"log"
	"log/slog"
	"math"
	"time"
)

// Engine owns every body, the broad-phase index, the persistent
// manifold cache and the current islands, and advances them by fixed
// substeps. It's the sole entry point a host program drives; apart from
// AddBody and RemoveBody, engine state is mutated only from inside Update.
type Engine struct {
	config        EngineConfig
	fixedTimeStep float64

	bounds     AABB
	broadphase *QuadTree

	bodies    []*RigidBody
	bodyIndex map[uint64]int

	collisionCache map[int64]*Collision
	collisions     []*Collision
	islands        []*Island

	timeElapsed    float64
	stepsElapsed   int
	updateDuration time.Duration

	// WrapFunc is the host's world-border rule, invoked once per
	// non-fixed, non-sleeping body after integration and before that
	// body's broad-phase update. A nil WrapFunc is a no-op.
	WrapFunc func(*RigidBody)

	logger *slog.Logger
}

func NewEngine(bounds AABB, cfg EngineConfig) *Engine {
	cfg = ApplyDefaults(cfg)
	return &Engine{
		config:         cfg,
		fixedTimeStep:  1 / float64(cfg.StepsPerSecond),
		bounds:         bounds,
		broadphase:     NewQuadTree(bounds),
		bodyIndex:      make(map[uint64]int),
		collisionCache: make(map[int64]*Collision),
		logger:         slog.Default(),
	}
}

func (e *Engine) AddBody(b *RigidBody) {
	e.bodyIndex[b.ID] = len(e.bodies)
	e.bodies = append(e.bodies, b)
	if !e.broadphase.Insert(b) {
		log.Printf("phys2d: body %d inserted outside broad-phase bounds %v", b.ID, e.bounds)
	}
}

// RemoveBody swap-removes b from the body list and the broad-phase, then
// purges any cached collision still referencing it — otherwise the next
// step would hand the solver a Collision pointing at a body no longer
// owned by the engine.
func (e *Engine) RemoveBody(b *RigidBody) {
	idx, ok := e.bodyIndex[b.ID]
	if !ok {
		return
	}
	last := len(e.bodies) - 1
	e.bodies[idx] = e.bodies[last]
	e.bodyIndex[e.bodies[idx].ID] = idx
	e.bodies = e.bodies[:last]
	delete(e.bodyIndex, b.ID)
	e.broadphase.Remove(b)

	for id, col := range e.collisionCache {
		if col.BodyA == b || col.BodyB == b {
			delete(e.collisionCache, id)
		}
	}
	for _, col := range e.collisionCache {
		assert(col.BodyA != b && col.BodyB != b,
			"phys2d: collision cache still references removed body %d", b.ID)
	}
}

func (e *Engine) Bodies() []*RigidBody        { return e.bodies }
func (e *Engine) Collisions() []*Collision    { return e.collisions }
func (e *Engine) Islands() []*Island          { return e.islands }
func (e *Engine) UpdateDuration() time.Duration { return e.updateDuration }
func (e *Engine) TimeElapsed() float64        { return e.timeElapsed }
func (e *Engine) StepsElapsed() int           { return e.stepsElapsed }

// Update advances timeElapsed by dt and runs as many fixed substeps as
// have newly elapsed. It returns the number of substeps actually run; on
// an EPA non-convergence error mid-run, that count reflects only the
// substeps completed before the failure.
func (e *Engine) Update(dt float64) (int, error) {
	start := time.Now()
	defer func() { e.updateDuration = time.Since(start) }()

	e.timeElapsed += dt
	deltaSteps := int(math.Floor(e.timeElapsed/e.fixedTimeStep)) - e.stepsElapsed

	for i := 0; i < deltaSteps; i++ {
		if err := e.step(e.fixedTimeStep); err != nil {
			e.stepsElapsed += i
			return i, err
		}
	}
	e.stepsElapsed += deltaSteps
	return deltaSteps, nil
}

func (e *Engine) step(dt float64) error {
	for _, b := range e.bodies {
		if b.Fixed || b.Sleeping {
			continue
		}

		b.LinearVelocity.Y += e.config.Gravity * dt
		prevPos, prevAngle := b.Position, b.Angle
		b.Integrate(dt)

		if e.WrapFunc != nil {
			e.WrapFunc(b)
		}

		if b.Position != prevPos || b.Angle != prevAngle {
			if !e.broadphase.Update(b) {
				log.Printf("phys2d: body %d left broad-phase bounds %v", b.ID, e.bounds)
			}
		}
	}

	for _, b := range e.bodies {
		b.Island = nil
	}
	e.islands = e.islands[:0]

	collisions, err := collisionPass(e.bodies, e.broadphase, e.collisionCache, &e.islands)
	if err != nil {
		return err
	}
	e.collisions = collisions

	prepareContacts(e.collisions)
	warmStart(e.collisions)
	positionCorrect(e.collisions)
	refreshRestitutionBias(e.collisions)
	velocityIterations(e.collisions, e.config.VelocityIterations)

	arbitrateSleep(e.islands, dt, e.config)

	e.logger.Debug("step",
		slog.Int("step", e.stepsElapsed),
		slog.Int("bodies", len(e.bodies)),
		slog.Int("collisions", len(e.collisions)),
		slog.Int("islands", len(e.islands)),
	)
	return nil
}
