package phys2d

import (
	"math"
	"testing"
)

func TestNewCircleBodyFixedHasZeroInverseTerms(t *testing.T) {
	b, err := NewCircleBody(Vec2{1, 2}, 5, 1, 0.5, 0.5, true)
	if err != nil {
		t.Fatalf("NewCircleBody: %v", err)
	}
	if b.InverseMass != 0 || b.InverseAngularMass != 0 {
		t.Errorf("fixed body must have zero inverse mass/angular mass, got %g / %g",
			b.InverseMass, b.InverseAngularMass)
	}
}

func TestNewCircleBodyDynamicHasNonZeroInverseTerms(t *testing.T) {
	b, err := NewCircleBody(Vec2{1, 2}, 5, 1, 0.5, 0.5, false)
	if err != nil {
		t.Fatalf("NewCircleBody: %v", err)
	}
	if b.InverseMass <= 0 || b.InverseAngularMass <= 0 {
		t.Errorf("dynamic body must have positive inverse mass/angular mass, got %g / %g",
			b.InverseMass, b.InverseAngularMass)
	}
}

func TestNewRectBodyPositionMatchesBoundsCenter(t *testing.T) {
	b, err := NewRectBody(Vec2{10, -5}, 40, 20, 1, 0.5, 0.5, false)
	if err != nil {
		t.Fatalf("NewRectBody: %v", err)
	}
	if b.Position != (Vec2{10, -5}) {
		t.Errorf("expected position (10,-5), got %v", b.Position)
	}
	center := b.Bounds.Center()
	if center.DistanceSq(b.Position) > 1e-9 {
		t.Errorf("expected bounds centered on position, got center %v for position %v", center, b.Position)
	}
}

func TestTranslateKeepsColliderAndBoundsInSync(t *testing.T) {
	b, err := NewCircleBody(Vec2{0, 0}, 5, 1, 0.5, 0.5, false)
	if err != nil {
		t.Fatalf("NewCircleBody: %v", err)
	}
	b.Translate(Vec2{3, 4})

	if b.Position != (Vec2{3, 4}) {
		t.Errorf("expected position (3,4), got %v", b.Position)
	}
	wantBounds := b.Collider.AABB()
	if b.Bounds != wantBounds {
		t.Errorf("bounds out of sync with collider: got %v, want %v", b.Bounds, wantBounds)
	}
	if b.Collider.Circle.Center != b.Position {
		t.Errorf("collider center should track position for a body built at the origin")
	}
}

func TestRotateKeepsBoundsInSync(t *testing.T) {
	b, err := NewRectBody(Vec2{0, 0}, 40, 10, 1, 0.5, 0.5, false)
	if err != nil {
		t.Fatalf("NewRectBody: %v", err)
	}
	b.Rotate(math.Pi / 4)

	wantBounds := b.Collider.AABB()
	if b.Bounds != wantBounds {
		t.Errorf("bounds out of sync with collider after rotate: got %v, want %v", b.Bounds, wantBounds)
	}
	// A 40x10 rect rotated 45 degrees should have a wider AABB than unrotated.
	if b.Bounds.Width() <= 40 {
		t.Errorf("expected rotated rectangle's AABB to widen, got width %g", b.Bounds.Width())
	}
}

func TestIntegrateSkipsFixedBodies(t *testing.T) {
	b, err := NewRectBody(Vec2{0, 0}, 10, 10, 1, 0.5, 0.5, true)
	if err != nil {
		t.Fatalf("NewRectBody: %v", err)
	}
	b.LinearVelocity = Vec2{100, 100}
	b.AngularVelocity = 10

	before := b.Position
	b.Integrate(1)

	if b.Position != before {
		t.Errorf("fixed body moved during Integrate: %v -> %v", before, b.Position)
	}
}

func TestIntegrateSkipsSleepingBodies(t *testing.T) {
	b, err := NewRectBody(Vec2{0, 0}, 10, 10, 1, 0.5, 0.5, false)
	if err != nil {
		t.Fatalf("NewRectBody: %v", err)
	}
	b.Sleeping = true
	b.LinearVelocity = Vec2{100, 100}

	before := b.Position
	b.Integrate(1)

	if b.Position != before {
		t.Errorf("sleeping body moved during Integrate: %v -> %v", before, b.Position)
	}
}

func TestIntegrateMovesDynamicBodyByVelocity(t *testing.T) {
	b, err := NewRectBody(Vec2{0, 0}, 10, 10, 1, 0.5, 0, false)
	if err != nil {
		t.Fatalf("NewRectBody: %v", err)
	}
	b.LinearVelocity = Vec2{10, 0}
	b.Integrate(0.5)

	if math.Abs(b.Position.X-5) > 1e-9 {
		t.Errorf("expected x position ~5 after integrating v=10 for dt=0.5, got %g", b.Position.X)
	}
}

func TestIntegrateDampsVelocityByFriction(t *testing.T) {
	b, err := NewRectBody(Vec2{0, 0}, 10, 10, 1, 0.5, 2.0, false)
	if err != nil {
		t.Fatalf("NewRectBody: %v", err)
	}
	b.LinearVelocity = Vec2{10, 0}
	b.Integrate(1)

	want := 10 * math.Exp(-2.0)
	if math.Abs(b.LinearVelocity.X-want) > 1e-6 {
		t.Errorf("expected damped velocity ~%g, got %g", want, b.LinearVelocity.X)
	}
}

func TestNewCircleBodyRejectsNaNPosition(t *testing.T) {
	_, err := NewCircleBody(Vec2{math.NaN(), 0}, 5, 1, 0.5, 0.5, false)
	if err == nil {
		t.Errorf("expected error for NaN position, got nil")
	}
}

func TestNewCircleBodyRejectsNonPositiveDensity(t *testing.T) {
	_, err := NewCircleBody(Vec2{0, 0}, 5, 0, 0.5, 0.5, false)
	if err == nil {
		t.Errorf("expected error for zero density, got nil")
	}
	_, err = NewCircleBody(Vec2{0, 0}, 5, -1, 0.5, 0.5, false)
	if err == nil {
		t.Errorf("expected error for negative density, got nil")
	}
}

func TestNewPolygonBodyRejectsTooFewVertices(t *testing.T) {
	_, err := NewPolygonBody([]Vec2{{0, 0}, {1, 0}}, Vec2{}, 1, 0.5, 0.5, false)
	if err == nil {
		t.Errorf("expected error for a 2-vertex polygon, got nil")
	}
}

func TestBodiesGetDistinctIncreasingIDs(t *testing.T) {
	a, err := NewCircleBody(Vec2{}, 5, 1, 0.5, 0.5, false)
	if err != nil {
		t.Fatalf("NewCircleBody: %v", err)
	}
	b, err := NewCircleBody(Vec2{}, 5, 1, 0.5, 0.5, false)
	if err != nil {
		t.Fatalf("NewCircleBody: %v", err)
	}
	if b.ID <= a.ID {
		t.Errorf("expected increasing body IDs, got %d then %d", a.ID, b.ID)
	}
}
