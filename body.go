package phys2d

import (
	"fmt"
	"math"
)

var nextBodyID uint64 = 1

// RigidBody is a single kinematic/material object the engine simulates.
// It's constructed through one of the New*Body factories, which compute
// Mass and AngularMass from the collider's area/density and MMOI; after
// that it's mutated only by the engine's integration, the solver, and
// direct external translation (teleport).
type RigidBody struct {
	ID        uint64
	Fixed     bool
	Sleeping  bool
	TimeStill float64
	Island    *Island

	Collider Shape
	Bounds   AABB

	Position Vec2
	Angle    float64

	Density     float64
	Restitution float64
	Friction    float64

	Mass               float64
	AngularMass        float64
	InverseMass        float64
	InverseAngularMass float64

	LinearVelocity      Vec2
	AngularVelocity     float64
	LinearAcceleration  Vec2
	AngularAcceleration float64
}

func (b *RigidBody) String() string {
	return fmt.Sprintf("RigidBody(%d)", b.ID)
}

// Translate moves the body and keeps Collider/Bounds in sync with
// Position; every mutation that changes a body's pose must go through
// this or Rotate, never touch Position directly.
func (b *RigidBody) Translate(v Vec2) {
	b.Position = b.Position.Add(v)
	b.Collider.Translate(v)
	b.Bounds = b.Collider.AABB()
}

// Rotate turns the body by radians about its own position.
func (b *RigidBody) Rotate(radians float64) {
	b.Angle += radians
	b.Collider.Rotate(b.Position, radians)
	b.Bounds = b.Collider.AABB()
}

// Integrate advances linear/angular velocity and pose by dt, then damps
// both by exp(-dt*friction). Gravity is applied by the engine directly
// to LinearVelocity before this is called, not as a stored force.
func (b *RigidBody) Integrate(dt float64) {
	if b.Fixed || b.Sleeping {
		return
	}

	b.LinearVelocity = b.LinearVelocity.Add(b.LinearAcceleration.Scale(dt))
	b.Translate(b.LinearVelocity.Scale(dt))

	b.AngularVelocity += b.AngularAcceleration * dt
	b.Rotate(b.AngularVelocity * dt)

	damping := math.Exp(-dt * b.Friction)
	b.LinearVelocity = b.LinearVelocity.Scale(damping)
	b.AngularVelocity *= damping

	b.LinearAcceleration = Vec2{}
	b.AngularAcceleration = 0
}

// newRigidBody builds a body around a collider centered at the origin,
// then translates it to position.
func newRigidBody(collider Shape, position Vec2, density, restitution, friction float64, fixed bool) (*RigidBody, error) {
	if err := validateBodyParams(position, density); err != nil {
		return nil, err
	}

	area := collider.Area()
	mass := area * density
	angularMass := collider.MMOI() * mass

	b := &RigidBody{
		ID:          nextBodyID,
		Fixed:       fixed,
		Collider:    collider,
		Density:     density,
		Restitution: restitution,
		Friction:    friction,
		Mass:        mass,
		AngularMass: angularMass,
	}
	nextBodyID++

	if !fixed {
		b.InverseMass = safeInvert(mass)
		b.InverseAngularMass = safeInvert(angularMass)
	}
	b.Bounds = b.Collider.AABB()
	b.Translate(position)
	return b, nil
}

// centerPolygon returns vertices shifted so their centroid sits at the
// origin, ready for a factory to translate to the body's final position.
func centerPolygon(vertices []Vec2) ([]Vec2, error) {
	p, err := newPolygonShape(vertices)
	if err != nil {
		return nil, err
	}
	centroid := p.Centroid()
	centered := make([]Vec2, len(vertices))
	for i, v := range vertices {
		centered[i] = v.Sub(centroid)
	}
	return centered, nil
}

// NewCircleBody builds a circle collider centered at the origin, then
// translates it to position.
func NewCircleBody(position Vec2, radius, density, restitution, friction float64, fixed bool) (*RigidBody, error) {
	shape := NewCircleShape(Vec2{}, radius)
	body, err := newRigidBody(shape, position, density, restitution, friction, fixed)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// NewRectBody builds an axis-aligned width x height rectangle centered
// at the origin, then translates it to position.
func NewRectBody(position Vec2, width, height, density, restitution, friction float64, fixed bool) (*RigidBody, error) {
	hw, hh := width/2, height/2
	vertices := []Vec2{
		{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh},
	}
	shape, err := NewPolygonShape(vertices)
	if err != nil {
		return nil, err
	}
	body, err := newRigidBody(shape, position, density, restitution, friction, fixed)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// NewTriangleBody builds a triangle from p1, p2, p3 (in any winding —
// they're recentered on their own centroid), then translates it to
// position.
func NewTriangleBody(p1, p2, p3, position Vec2, density, restitution, friction float64, fixed bool) (*RigidBody, error) {
	centered, err := centerPolygon([]Vec2{p1, p2, p3})
	if err != nil {
		return nil, err
	}
	shape, err := NewPolygonShape(centered)
	if err != nil {
		return nil, err
	}
	body, err := newRigidBody(shape, position, density, restitution, friction, fixed)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// NewPolygonBody builds a convex polygon from vertices (recentered on
// their own centroid), then translates it to position.
func NewPolygonBody(vertices []Vec2, position Vec2, density, restitution, friction float64, fixed bool) (*RigidBody, error) {
	centered, err := centerPolygon(vertices)
	if err != nil {
		return nil, err
	}
	shape, err := NewPolygonShape(centered)
	if err != nil {
		return nil, err
	}
	body, err := newRigidBody(shape, position, density, restitution, friction, fixed)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// NewCapsuleBody builds a capsule of total segment length `length`
// (between cap centers) and radius, laid out along the x-axis and
// centered at the origin, then translates it to position.
func NewCapsuleBody(position Vec2, length, radius, density, restitution, friction float64, fixed bool) (*RigidBody, error) {
	shape := NewCapsuleShape(Vec2{-length / 2, 0}, Vec2{length / 2, 0}, radius)
	body, err := newRigidBody(shape, position, density, restitution, friction, fixed)
	if err != nil {
		return nil, err
	}
	return body, nil
}
