package voyager

import "math"

// BodyID uniquely identifies a CelestialBody within a WorldData (spec.md 3:
// "Unsigned 32-bit, unique within their kind").
type BodyID uint32

// TrajectoryStrategy is the capability trait replacing the teacher's
// CelestialObject/HelioOrbit inheritance: a body's motion is any pluggable
// strategy that can report position (and, for finite-difference velocity,
// a nearby position) at an arbitrary global time. Grounded on
// celestial.go's CelestialObject.HelioOrbit, generalized from "one
// ephemeris model per named planet" to an enumerable strategy interface
// per spec.md 9 ("Replace inheritance hierarchies ... with tagged sum
// types where enumerable").
type TrajectoryStrategy interface {
	PositionAt(t float64) Vec2
	VelocityAt(t float64) Vec2
}

// StationaryTrajectory is a body fixed in the world frame.
type StationaryTrajectory struct {
	Pos Vec2
}

// PositionAt implements TrajectoryStrategy.
func (s StationaryTrajectory) PositionAt(t float64) Vec2 { return s.Pos }

// VelocityAt implements TrajectoryStrategy; a stationary body has no
// velocity at any time.
func (s StationaryTrajectory) VelocityAt(t float64) Vec2 { return NewVec2(0, 0) }

// DefaultFiniteDiffDelta is the teacher-style "magic number" step used for
// the finite-difference velocity of an orbiting body, exposed as a field
// on EllipticalOrbit per spec.md 9 ("expose as config") rather than a
// package constant.
const DefaultFiniteDiffDelta = 1e-3

// EllipticalOrbit is the one TrajectoryStrategy variant spec.md 3 names:
//
//	pos(t) = R(angle) . [a cos(wt+phi); b sin(wt+phi)] + center
//
// Velocity defaults to the finite difference (pos(t+delta)-pos(t))/delta
// unless Analytic is set, mirroring the spec's "unless an analytic
// override is provided" escape hatch.
type EllipticalOrbit struct {
	A, B    float64
	Omega   float64
	Phi     float64
	Center  Vec2
	Angle   float64 // radians, in [0, 2*pi)
	Delta   float64 // finite-difference step; 0 means DefaultFiniteDiffDelta
	Analytic func(t float64) Vec2
}

// NewEllipticalOrbit validates and constructs an EllipticalOrbit per
// spec.md 3's invariants (a>0, b>0, omega>0, angle in [0, 2*pi)).
func NewEllipticalOrbit(a, b, omega, phi float64, center Vec2, angle float64) (*EllipticalOrbit, error) {
	if a <= 0 {
		return nil, newConfigError("EllipticalOrbit.A", "must be > 0")
	}
	if b <= 0 {
		return nil, newConfigError("EllipticalOrbit.B", "must be > 0")
	}
	if omega <= 0 {
		return nil, newConfigError("EllipticalOrbit.Omega", "must be > 0")
	}
	if angle < 0 || angle >= 2*math.Pi {
		return nil, newConfigError("EllipticalOrbit.Angle", "must be in [0, 2*pi)")
	}
	return &EllipticalOrbit{A: a, B: b, Omega: omega, Phi: phi, Center: center, Angle: angle}, nil
}

// PositionAt implements TrajectoryStrategy.
func (e *EllipticalOrbit) PositionAt(t float64) Vec2 {
	s, c := math.Sincos(e.Omega*t + e.Phi)
	local := NewVec2(e.A*c, e.B*s)
	return Rotate2D(e.Angle).Apply(local).Add(e.Center)
}

// VelocityAt implements TrajectoryStrategy via finite difference, unless an
// analytic override was supplied.
func (e *EllipticalOrbit) VelocityAt(t float64) Vec2 {
	if e.Analytic != nil {
		return e.Analytic(t)
	}
	delta := e.Delta
	if delta <= 0 {
		delta = DefaultFiniteDiffDelta
	}
	p0 := e.PositionAt(t)
	p1 := e.PositionAt(t + delta)
	return p1.Sub(p0).Scale(1 / delta)
}

// CelestialBody is the gravitating-body entity of spec.md 3:
// {id, radius>0, mass>0, pos(t_u) -> R^2}. The Stationary/Orbiting
// distinction from spec.md is the choice of TrajectoryStrategy, not a
// separate Go type, following the tagged-capability design of spec.md 9.
type CelestialBody struct {
	ID         BodyID
	Radius     float64
	Mass       float64
	Trajectory TrajectoryStrategy
}

// NewCelestialBody validates and constructs a CelestialBody.
func NewCelestialBody(id BodyID, radius, mass float64, traj TrajectoryStrategy) (*CelestialBody, error) {
	if radius <= 0 {
		return nil, newConfigError("CelestialBody.Radius", "must be > 0")
	}
	if mass <= 0 {
		return nil, newConfigError("CelestialBody.Mass", "must be > 0")
	}
	if traj == nil {
		return nil, newConfigError("CelestialBody.Trajectory", "must not be nil")
	}
	return &CelestialBody{ID: id, Radius: radius, Mass: mass, Trajectory: traj}, nil
}

// NewStationaryBody is sugar for NewCelestialBody with a StationaryTrajectory.
func NewStationaryBody(id BodyID, radius, mass float64, pos Vec2) (*CelestialBody, error) {
	return NewCelestialBody(id, radius, mass, StationaryTrajectory{Pos: pos})
}

// PositionAt returns the body's position at global time t_u.
func (b *CelestialBody) PositionAt(t float64) Vec2 {
	return b.Trajectory.PositionAt(t)
}
