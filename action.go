package voyager

import "fmt"

// collisionScanRadius bounds the spatial query used to find collision
// candidates; it is sized to cover an entire world (see RK4ActionModel.MaxRadius)
// rather than any single body's own radius, since a body's radius is not
// known until after the query returns it.
const collisionScanRadius = 1e15

// integrationState is the composite 4-tuple (x, v, fuel, t_u) integrated
// by RK4Integrate over proper time (spec.md 4.E). It satisfies
// Integrable[integrationState] by summing/scaling each component
// independently.
type integrationState struct {
	X    Vec2
	V    Vec2
	Fuel float64
	TU   float64
}

func (s integrationState) Add(o integrationState) integrationState {
	return integrationState{
		X:    s.X.Add(o.X),
		V:    s.V.Add(o.V),
		Fuel: s.Fuel + o.Fuel,
		TU:   s.TU + o.TU,
	}
}

func (s integrationState) Scale(k float64) integrationState {
	return integrationState{
		X:    s.X.Scale(k),
		V:    s.V.Scale(k),
		Fuel: s.Fuel * k,
		TU:   s.TU * k,
	}
}

// Action is a single enumerated control choice: a constant thrust level
// and direction held for one fixed global-time step (spec.md 4.E/4.H).
type Action struct {
	ThrustLevel float64
	Direction   Vec2 // unit vector, world frame
	DtGlobal    float64
}

// Cost returns the edge weight the solver accumulates for taking this
// action: the elapsed global time. Since DtGlobal is the same constant
// (DtU) for every enumerated action, ranking by total_cost is equivalent
// to ranking by hop count; Cost exists as its own method so a future
// variable-duration action model changes this without touching the
// solver (spec.md 9 Open Question: cost-vs-hops).
func (a Action) Cost() float64 { return a.DtGlobal }

// String renders an Action for logging.
func (a Action) String() string {
	return fmt.Sprintf("thrust=%.4g dir=(%.4g,%.4g) dt=%.4g", a.ThrustLevel, a.Direction.X(), a.Direction.Y(), a.DtGlobal)
}

// ActionModel is the capability trait (spec.md 9) pairing enumeration of
// candidate actions at a vertex with application of one action to
// produce a successor vertex.
type ActionModel interface {
	Enumerate(s StateVertex) []Action
	Apply(s StateVertex, a Action) (*StateVertex, error)
}

// RK4ActionModel is the spec.md 4.E/4.H reference ActionModel: actions
// are enumerated as the cross product of the spacecraft's thrust levels
// and possible directions (relative to the current velocity heading)
// plus one coast action, and applied by RK4-integrating the coupled
// position/velocity/fuel/global-time ODE system over proper time.
//
// Grounded on the teacher's GenericCL/ThrustControl (prop.go) for the
// shape of "thrust level + direction" as the unit of control, and on
// src/integrator/rk4.go for driving a manual multi-substep RK4
// propagation from one fixed-size Integrable interface.
type RK4ActionModel struct {
	Env           EnvironmentModel
	World         WorldIndex
	Time          TimePolicy
	SC            *Spacecraft
	MaxRadius     float64
	Substeps      int
	CaptureRadius float64
}

// DefaultCaptureRadius is the capture radius used when NewRK4ActionModel
// is given a non-positive value: an artifact is collected once the
// vehicle passes within this distance of it, rather than requiring an
// exact floating-point coincidence.
const DefaultCaptureRadius = 1e-2

// NewRK4ActionModel validates and constructs an RK4ActionModel.
func NewRK4ActionModel(env EnvironmentModel, world WorldIndex, time TimePolicy, sc *Spacecraft, maxRadius float64, substeps int, captureRadius float64) (*RK4ActionModel, error) {
	if maxRadius <= 0 {
		return nil, newConfigError("RK4ActionModel.MaxRadius", "must be > 0")
	}
	if substeps <= 0 {
		return nil, newConfigError("RK4ActionModel.Substeps", "must be > 0")
	}
	if captureRadius <= 0 {
		captureRadius = DefaultCaptureRadius
	}
	return &RK4ActionModel{Env: env, World: world, Time: time, SC: sc, MaxRadius: maxRadius, Substeps: substeps, CaptureRadius: captureRadius}, nil
}

// Enumerate returns every candidate Action at s: a coast action plus the
// cross product of thrust levels and directions, deduplicated so that
// every zero-thrust combination (direction is meaningless at zero
// thrust) collapses onto the single coast action (spec.md 9).
func (m *RK4ActionModel) Enumerate(s StateVertex) []Action {
	heading, err := Normalized(s.V)
	if err != nil {
		heading = NewVec2(1, 0)
	}

	seen := make(map[string]bool)
	actions := make([]Action, 0, len(m.SC.ThrustLevels)*len(m.SC.PossibleDirections)+1)
	add := func(level float64, dir Vec2) {
		key := fmt.Sprintf("%.9f|%.9f|%.9f", level, dir.X(), dir.Y())
		if seen[key] {
			return
		}
		seen[key] = true
		actions = append(actions, Action{ThrustLevel: level, Direction: dir, DtGlobal: m.Time.DtU()})
	}

	add(0, heading)
	for _, level := range m.SC.ThrustLevels {
		for _, angle := range m.SC.PossibleDirections {
			dir := heading
			if level != 0 {
				dir = Rotate2D(angle).Apply(heading)
			}
			add(level, dir)
		}
	}
	return actions
}

// Apply integrates s forward by one action over the global-time step
// a.DtGlobal, returning the successor StateVertex or an error if the
// result violates a world invariant (spec.md 4.E/4.H: horizon, escape,
// collision). Fuel is clamped to zero rather than rejected: a thrust
// that would exhaust the tank still produces a valid successor state,
// just one with no fuel left to draw on.
func (m *RK4ActionModel) Apply(s StateVertex, a Action) (*StateVertex, error) {
	deriv := func(st integrationState, tau float64) integrationState {
		gamma := m.Env.Gamma(st.X, st.V, st.TU)
		grav := m.Env.Gravity(st.X, st.TU)

		thrust := 0.0
		if st.Fuel > 0 {
			thrust = a.ThrustLevel
		}
		thrustAccel := a.Direction.Scale(safeDiv(thrust, m.SC.Mass+st.Fuel, 0))

		return integrationState{
			X:    st.V.Scale(gamma),
			V:    grav.Add(thrustAccel).Scale(gamma),
			Fuel: -safeDiv(thrust, m.SC.ExhaustVelocity, 0),
			TU:   gamma,
		}
	}

	dtProper := m.Time.ToProper(a.DtGlobal, s.X, s.V, s.TU)
	h := dtProper / float64(m.Substeps)

	cur := integrationState{X: s.X, V: s.V, Fuel: s.Fuel, TU: s.TU}
	tau := 0.0
	for i := 0; i < m.Substeps; i++ {
		cur = RK4Integrate(cur, tau, h, deriv)
		tau += h
	}

	if cur.Fuel < 0 {
		cur.Fuel = 0
	}
	if cur.TU > m.Time.TMax() {
		return nil, ErrInvalidAction
	}
	if Norm2(cur.X) > m.MaxRadius {
		return nil, ErrInvalidAction
	}
	for _, b := range m.World.QueryCelestials(cur.X, collisionScanRadius, cur.TU) {
		if Norm2(cur.X.Sub(b.PositionAt(cur.TU))) <= b.Radius {
			return nil, ErrInvalidAction
		}
	}

	next := StateVertex{X: cur.X, V: cur.V, TU: cur.TU, Fuel: cur.Fuel, Collected: s.Clone().Collected}
	for _, art := range m.World.QueryArtifacts(cur.X, m.CaptureRadius, cur.TU) {
		next.Collected[art.ID] = struct{}{}
	}
	return &next, nil
}
