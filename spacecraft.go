package voyager

import kitlog "github.com/go-kit/kit/log"

// Spacecraft is the planner's single vehicle entity (spec.md 3):
// {mass>0, fuel>=0, min_fuel_to_land, thrust_levels (non-empty, each >=0),
// exhaust_velocity>0, possible_directions}.
//
// Grounded on the teacher's Spacecraft (spacecraft.go), trimmed to the
// fields spec.md names: the teacher's EPS/EPThrusters/Cargo/WayPoints
// machinery models a multi-maneuver cargo tug with a waypoint queue,
// which is out of this spec's scope (single spacecraft, finite enumerated
// thrust levels, no cargo/EPS/waypoint graph -- the planner's graph
// search subsumes waypoint sequencing). See DESIGN.md. The logger field
// is kept, in the same go-kit/log shape as the teacher's; it is set by
// SetLogger (Orchestrator.Initialize passes its own logger), and no code
// in this package writes to it.
type Spacecraft struct {
	Mass                float64
	Fuel                float64
	MinFuelToLand       float64
	ThrustLevels        []float64
	ExhaustVelocity     float64
	PossibleDirections  []float64 // radians, relative to velocity heading

	logger kitlog.Logger
}

// NewSpacecraft validates and constructs a Spacecraft per spec.md 3's
// invariants.
func NewSpacecraft(mass, fuel, minFuelToLand float64, thrustLevels []float64, exhaustVelocity float64, possibleDirections []float64) (*Spacecraft, error) {
	if mass <= 0 {
		return nil, newConfigError("Spacecraft.Mass", "must be > 0")
	}
	if fuel < 0 {
		return nil, newConfigError("Spacecraft.Fuel", "must be >= 0")
	}
	if len(thrustLevels) == 0 {
		return nil, newConfigError("Spacecraft.ThrustLevels", "must be non-empty")
	}
	for _, lvl := range thrustLevels {
		if lvl < 0 {
			return nil, newConfigError("Spacecraft.ThrustLevels", "every level must be >= 0")
		}
	}
	if exhaustVelocity <= 0 {
		return nil, newConfigError("Spacecraft.ExhaustVelocity", "must be > 0")
	}
	return &Spacecraft{
		Mass:               mass,
		Fuel:               fuel,
		MinFuelToLand:      minFuelToLand,
		ThrustLevels:       thrustLevels,
		ExhaustVelocity:    exhaustVelocity,
		PossibleDirections: possibleDirections,
		logger:             nopLogger(),
	}, nil
}

// SetLogger attaches a structured logger to the spacecraft, mirroring the
// teacher's SCLogInit attachment point.
func (sc *Spacecraft) SetLogger(l kitlog.Logger) {
	sc.logger = kitlog.With(l, "component", "spacecraft")
}
