package voyager

// Physical constants (spec.md 4.B): G in km^3 kg^-1 s^-2, c in km/s.
const (
	// GravitationalConstant is 6.6743e-11 m^3 kg^-1 s^-2 converted to
	// km^3 kg^-1 s^-2 (the 1e-9 factor is (1 km / 1000 m)^3).
	GravitationalConstant = 6.6743e-11 * 1e-9
	// SpeedOfLight is in km/s.
	SpeedOfLight = 299792.458
)

// EnvironmentModel is the capability trait for gravity/potential/gamma
// (spec.md 9: "capability traits where pluggable"), letting the action
// model and the orchestrator share one abstraction regardless of how many
// bodies or which softening scheme backs it.
type EnvironmentModel interface {
	Gravity(x Vec2, tu float64) Vec2
	Potential(x Vec2, tu float64) float64
	Gamma(x, v Vec2, tu float64) float64
	InvGamma(x, v Vec2, tu float64) float64
}

// Environment is the reference EnvironmentModel of spec.md 4.B, summing
// Newtonian gravity (and its potential) from every body in a WorldData,
// plus the weak-field relativistic time-rate factor gamma.
//
// Grounded on the teacher's Jn/third-body Perturbations (perturbations.go),
// generalized from "J2 oblateness + optional third body" to "sum over
// every body in the world" because this spec has no analog of a single
// dominant primary -- every CelestialBody contributes symmetrically.
type Environment struct {
	World *WorldData
}

// NewEnvironment constructs an Environment over the given world.
func NewEnvironment(world *WorldData) *Environment {
	return &Environment{World: world}
}

// Gravity returns the vector sum of Newtonian acceleration from every body
// (spec.md 4.B):
//
//	sum_i G*m_i*(r_i(t_u)-x) / (||r_i(t_u)-x||^3 + eps)
//
// The eps-softened denominator avoids a singularity exactly at a body's
// center; it is not a physical cutoff (spec.md 4.B).
func (e *Environment) Gravity(x Vec2, tu float64) Vec2 {
	acc := NewVec2(0, 0)
	for _, b := range e.World.Bodies {
		delta := b.PositionAt(tu).Sub(x)
		dist := Norm2(delta)
		denom := dist*dist*dist + eps
		acc = acc.Add(delta.Scale(GravitationalConstant * b.Mass / denom))
	}
	return acc
}

// Potential returns the Newtonian gravitational potential at x, tu
// (spec.md 4.B): -sum_i G*m_i / (||r_i(t_u)-x|| + eps).
func (e *Environment) Potential(x Vec2, tu float64) float64 {
	phi := 0.0
	for _, b := range e.World.Bodies {
		dist := Norm2(b.PositionAt(tu).Sub(x))
		phi -= GravitationalConstant * b.Mass / (dist + eps)
	}
	return phi
}

// InvGamma returns 1/gamma = 1 + Phi/c^2 - ||v||^2/(2c^2) (spec.md 4.B).
func (e *Environment) InvGamma(x, v Vec2, tu float64) float64 {
	phi := e.Potential(x, tu)
	speed2 := v.Dot(v)
	c2 := SpeedOfLight * SpeedOfLight
	return 1 + phi/c2 - speed2/(2*c2)
}

// Gamma returns the weak-field relativistic time-rate factor dt_u/dtau
// (spec.md 4.B): 1 / invGamma.
func (e *Environment) Gamma(x, v Vec2, tu float64) float64 {
	return safeDiv(1, e.InvGamma(x, v, tu), 1)
}
