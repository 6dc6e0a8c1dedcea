package phys2d

import "math"

const (
	positionCorrectionSlop = 0.1
	restitutionBiasCutoff  = -0.1
)

// velocityAtPoint returns the linear velocity of the point at offset r
// from a body's center, given its linear and angular velocity.
func velocityAtPoint(body *RigidBody, r Vec2) Vec2 {
	return body.LinearVelocity.Add(r.Perp().Scale(body.AngularVelocity))
}

// applyImpulse applies impulse J at offset r from the body's center:
// v += invMass*J, w += invI*(r x J).
func applyImpulse(body *RigidBody, impulse, r Vec2) {
	body.LinearVelocity = body.LinearVelocity.Add(impulse.Scale(body.InverseMass))
	body.AngularVelocity += body.InverseAngularMass * r.Cross(impulse)
}

func safeInvert(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1 / x
}

// prepareContacts recomputes each contact's effective masses from the
// current bodies and this step's manifold normal/tangent. Contact.LocalPosA/B
// double as the rA/rB offsets used in every cross product below since
// they're stored position-relative, not body-local: currentWorldA ==
// body.Position + LocalPosA, so LocalPosA == currentWorldA - body.Position.
func prepareContacts(collisions []*Collision) {
	for _, col := range collisions {
		a, b := col.BodyA, col.BodyB
		normal, tangent := col.Manifold.Normal, col.Manifold.Tangent
		for i := range col.Manifold.Contacts {
			c := &col.Manifold.Contacts[i]
			rA, rB := c.LocalPosA, c.LocalPosB

			rAxN, rBxN := rA.Cross(normal), rB.Cross(normal)
			c.EffectiveMassNormal = safeInvert(a.InverseMass + b.InverseMass +
				a.InverseAngularMass*rAxN*rAxN + b.InverseAngularMass*rBxN*rBxN)

			rAxT, rBxT := rA.Cross(tangent), rB.Cross(tangent)
			c.EffectiveMassTangent = safeInvert(a.InverseMass + b.InverseMass +
				a.InverseAngularMass*rAxT*rAxT + b.InverseAngularMass*rBxT*rBxT)
		}
	}
}

// warmStart reapplies each contact's accumulated impulse from the
// previous step as the initial guess for this one.
func warmStart(collisions []*Collision) {
	for _, col := range collisions {
		a, b := col.BodyA, col.BodyB
		normal, tangent := col.Manifold.Normal, col.Manifold.Tangent
		for i := range col.Manifold.Contacts {
			c := &col.Manifold.Contacts[i]
			impulse := normal.Scale(c.AccumulatedNormalMagnitude).Add(tangent.Scale(c.AccumulatedTangentMagnitude))
			applyImpulse(a, impulse.Neg(), c.LocalPosA)
			applyImpulse(b, impulse, c.LocalPosB)
		}
	}
}

// positionCorrect applies the once-per-collision linear-only correction.
// Never rotates bodies, which avoids angular instability in stacks.
func positionCorrect(collisions []*Collision) {
	for _, col := range collisions {
		a, b := col.BodyA, col.BodyB
		denom := a.InverseMass + b.InverseMass
		if denom == 0 {
			continue
		}
		k := 1 / denom
		depthOverSlop := math.Max(0, col.Manifold.Depth-positionCorrectionSlop)
		c := col.Manifold.Normal.Scale(depthOverSlop)
		a.Translate(c.Scale(-k * a.InverseMass))
		b.Translate(c.Scale(k * b.InverseMass))
	}
}

// refreshRestitutionBias computes each contact's restitution target once
// before the velocity iterations begin; it stays fixed across them.
func refreshRestitutionBias(collisions []*Collision) {
	for _, col := range collisions {
		a, b := col.BodyA, col.BodyB
		normal := col.Manifold.Normal
		for i := range col.Manifold.Contacts {
			c := &col.Manifold.Contacts[i]
			vn := normal.Dot(velocityAtPoint(b, c.LocalPosB).Sub(velocityAtPoint(a, c.LocalPosA)))
			if vn < restitutionBiasCutoff {
				c.OriginalRestitutionBias = -col.Restitution * vn
			} else {
				c.OriginalRestitutionBias = 0
			}
		}
	}
}

// velocityIterations runs N Gauss-Seidel passes of normal-then-tangent
// accumulated-impulse resolution over every collision's contacts.
func velocityIterations(collisions []*Collision, iterations int) {
	for iter := 0; iter < iterations; iter++ {
		for _, col := range collisions {
			a, b := col.BodyA, col.BodyB
			normal, tangent := col.Manifold.Normal, col.Manifold.Tangent
			mu := col.Friction

			for i := range col.Manifold.Contacts {
				c := &col.Manifold.Contacts[i]

				vn := normal.Dot(velocityAtPoint(b, c.LocalPosB).Sub(velocityAtPoint(a, c.LocalPosA)))
				lambda := -(vn - c.OriginalRestitutionBias) * c.EffectiveMassNormal
				newAccum := math.Max(0, c.AccumulatedNormalMagnitude+lambda)
				delta := newAccum - c.AccumulatedNormalMagnitude
				c.AccumulatedNormalMagnitude = newAccum
				normalImpulse := normal.Scale(delta)
				applyImpulse(a, normalImpulse.Neg(), c.LocalPosA)
				applyImpulse(b, normalImpulse, c.LocalPosB)

				vt := tangent.Dot(velocityAtPoint(b, c.LocalPosB).Sub(velocityAtPoint(a, c.LocalPosA)))
				lambdaT := -vt * c.EffectiveMassTangent
				maxFriction := mu * c.AccumulatedNormalMagnitude
				newAccumT := clamp(c.AccumulatedTangentMagnitude+lambdaT, -maxFriction, maxFriction)
				deltaT := newAccumT - c.AccumulatedTangentMagnitude
				c.AccumulatedTangentMagnitude = newAccumT
				tangentImpulse := tangent.Scale(deltaT)
				applyImpulse(a, tangentImpulse.Neg(), c.LocalPosA)
				applyImpulse(b, tangentImpulse, c.LocalPosB)
			}
		}
	}
}
