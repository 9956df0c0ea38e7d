package voyager

import "github.com/spf13/viper"

// EngineTunables holds the engine-level numeric knobs that are not part
// of any one world (spec.md 9: "config loads engine tunables, not world
// descriptions -- that stays external/out of scope"). These are the
// only values this package loads through viper; a world itself is
// always built from an EngineConfig assembled in Go, not read from a
// file here.
//
// Grounded on the teacher's smdConfig (config.go), which likewise used
// viper to read a handful of named numeric/boolean knobs -- trimmed to
// drop every SPICE/meeus/CSV-ephemeris field, none of which this
// synthetic 2D universe has an analog for.
type EngineTunables struct {
	FiniteDiffDelta float64
	RK4Substeps     int
}

// LoadEngineTunables reads engine tunables from the environment/config
// file viper is bound to (prefix VOYAGER_, e.g. VOYAGER_FINITEDIFFDELTA),
// falling back to sensible defaults when unset.
func LoadEngineTunables(v *viper.Viper) EngineTunables {
	v.SetEnvPrefix("VOYAGER")
	v.AutomaticEnv()
	v.SetDefault("finitediffdelta", DefaultFiniteDiffDelta)
	v.SetDefault("rk4substeps", 8)

	return EngineTunables{
		FiniteDiffDelta: v.GetFloat64("finitediffdelta"),
		RK4Substeps:     v.GetInt("rk4substeps"),
	}
}

// BodyKind tags which TrajectoryStrategy a BodyConfig builds (spec.md 9:
// tagged sum in place of a trajectory class hierarchy).
type BodyKind int

const (
	BodyStationary BodyKind = iota
	BodyElliptical
)

// BodyConfig is the ingress (config-file/constructor) shape for one
// CelestialBody; only the fields relevant to Kind are read by Build.
type BodyConfig struct {
	ID     BodyID
	Kind   BodyKind
	Radius float64
	Mass   float64

	// BodyStationary
	Position Vec2

	// BodyElliptical
	EllipticalA, EllipticalB, EllipticalOmega, EllipticalPhi float64
	EllipticalCenter                                         Vec2
	EllipticalAngle                                          float64
}

// Build constructs the CelestialBody described by bc.
func (bc BodyConfig) Build() (*CelestialBody, error) {
	switch bc.Kind {
	case BodyStationary:
		return NewCelestialBody(bc.ID, bc.Radius, bc.Mass, &StationaryTrajectory{Pos: bc.Position})
	case BodyElliptical:
		traj, err := NewEllipticalOrbit(bc.EllipticalA, bc.EllipticalB, bc.EllipticalOmega, bc.EllipticalPhi, bc.EllipticalCenter, bc.EllipticalAngle)
		if err != nil {
			return nil, err
		}
		return NewCelestialBody(bc.ID, bc.Radius, bc.Mass, traj)
	default:
		return nil, newConfigError("BodyConfig.Kind", "unrecognized body kind")
	}
}

// WormholeConfig is the ingress shape for one WormHole.
type WormholeConfig struct {
	ID             WormholeID
	Entry, Exit    Vec2
	TOpen, TClose  float64
}

// Build constructs the WormHole described by wc.
func (wc WormholeConfig) Build() (*WormHole, error) {
	return NewWormHole(wc.ID, wc.Entry, wc.Exit, wc.TOpen, wc.TClose)
}

// ArtifactConfig is the ingress shape for one Artifact.
type ArtifactConfig struct {
	ID       ArtifactID
	Position Vec2
}

// Build constructs the Artifact described by ac. Never fails: Artifact
// has no invariants beyond carrying an id and a position.
func (ac ArtifactConfig) Build() *Artifact {
	return NewArtifact(ac.ID, ac.Position)
}

// WorldConfig is the ingress shape for an entire WorldData.
type WorldConfig struct {
	Bodies    []BodyConfig
	Wormholes []WormholeConfig
	Artifacts []ArtifactConfig
	MaxRadius float64
}

// Build constructs the WorldData described by wc.
func (wc WorldConfig) Build() (*WorldData, error) {
	bodies := make([]*CelestialBody, 0, len(wc.Bodies))
	for _, bc := range wc.Bodies {
		b, err := bc.Build()
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}

	wormholes := make([]*WormHole, 0, len(wc.Wormholes))
	for _, whc := range wc.Wormholes {
		wh, err := whc.Build()
		if err != nil {
			return nil, err
		}
		wormholes = append(wormholes, wh)
	}

	artifacts := make([]*Artifact, 0, len(wc.Artifacts))
	for _, ac := range wc.Artifacts {
		artifacts = append(artifacts, ac.Build())
	}

	return NewWorldData(bodies, wormholes, artifacts, wc.MaxRadius)
}

// TimeConfig is the ingress shape for a RectangleTimePolicy.
type TimeConfig struct {
	DtU  float64
	TMax float64
}

// SpacecraftConfig is the ingress shape for a Spacecraft.
type SpacecraftConfig struct {
	Mass               float64
	Fuel               float64
	MinFuelToLand      float64
	ThrustLevels       []float64
	ExhaustVelocity    float64
	PossibleDirections []float64
}

// Build constructs the Spacecraft described by sc.
func (sc SpacecraftConfig) Build() (*Spacecraft, error) {
	return NewSpacecraft(sc.Mass, sc.Fuel, sc.MinFuelToLand, sc.ThrustLevels, sc.ExhaustVelocity, sc.PossibleDirections)
}

// InitialStateConfig is the ingress shape for the planner's start
// StateVertex.
type InitialStateConfig struct {
	X, V Vec2
	TU   float64
	Fuel float64
}

// Build constructs the start StateVertex described by isc.
func (isc InitialStateConfig) Build() StateVertex {
	return NewStateVertex(isc.X, isc.V, isc.TU, isc.Fuel)
}

// QuantBinsConfig is the ingress shape for a QuantizationConfig.
type QuantBinsConfig struct {
	BinX, BinV, BinT, BinF float64
}

// Build constructs the QuantizationConfig described by qb.
func (qb QuantBinsConfig) Build() (QuantizationConfig, error) {
	return NewQuantizationConfig(qb.BinX, qb.BinV, qb.BinT, qb.BinF)
}

// EngineConfig is the top-level ingress struct assembling one run: a
// world, a time policy, a quantizer, a spacecraft, a start state and the
// artifact-collection goal count K (spec.md 6).
type EngineConfig struct {
	World        WorldConfig
	Time         TimeConfig
	Quant        QuantBinsConfig
	Spacecraft   SpacecraftConfig
	InitialState InitialStateConfig
	K             int
	MaxCost       float64
	CaptureRadius float64
	Tunables      EngineTunables
}
