package phys2d

import (
	"math"
	"testing"
)

func TestEPACirclesPenetrationDepth(t *testing.T) {
	a := NewCircleShape(Vec2{0, 0}, 10)
	b := NewCircleShape(Vec2{5, 0}, 10)

	hit, s := gjkIntersect(&a, &b)
	if !hit {
		t.Fatalf("expected circles to overlap")
	}

	pen, err := epa(&a, &b, s)
	if err != nil {
		t.Fatalf("epa: %v", err)
	}

	wantDepth := 15.0 // 10 + 10 - 5
	if math.Abs(pen.depth-wantDepth) > 1e-2 {
		t.Errorf("depth = %g, want ~%g", pen.depth, wantDepth)
	}
	if math.Abs(pen.normal.Length()-1) > 1e-6 {
		t.Errorf("expected unit normal, got length %g", pen.normal.Length())
	}
}

func TestEPAWorldContactBDerivedFromMTV(t *testing.T) {
	a := NewCircleShape(Vec2{0, 0}, 10)
	b := NewCircleShape(Vec2{5, 0}, 10)

	hit, s := gjkIntersect(&a, &b)
	if !hit {
		t.Fatalf("expected circles to overlap")
	}
	pen, err := epa(&a, &b, s)
	if err != nil {
		t.Fatalf("epa: %v", err)
	}

	wantB := pen.worldContactA.Sub(pen.mtv)
	if pen.worldContactB.DistanceSq(wantB) > 1e-9 {
		t.Errorf("worldContactB = %v, want %v", pen.worldContactB, wantB)
	}
}

func TestEPADeepPolygonOverlap(t *testing.T) {
	a, _ := NewPolygonShape([]Vec2{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}})
	b, _ := NewPolygonShape([]Vec2{{-10, -5}, {10, -5}, {10, 15}, {-10, 15}})

	hit, s := gjkIntersect(&a, &b)
	if !hit {
		t.Fatalf("expected overlapping squares to be detected by GJK")
	}
	pen, err := epa(&a, &b, s)
	if err != nil {
		t.Fatalf("epa: %v", err)
	}
	if pen.depth <= 0 {
		t.Errorf("expected positive penetration depth, got %g", pen.depth)
	}
}
