package voyager

import "errors"

// Sentinel errors implementing the taxonomy of spec.md 7.
//
// The teacher (smd) panics on malformed astrodynamical input because it
// treats construction-time mistakes as programmer error inside a batch
// simulation tool. voyager is meant to be embedded behind an orchestrator
// that a caller drives interactively (initialize/compute/step), so
// construction errors here are returned values instead of panics -- the
// same class of failure, surfaced the way spec.md 7 requires.
var (
	// ErrZeroVector is returned by Normalized when asked to normalize a
	// vector whose norm is within eps of zero.
	ErrZeroVector = errors.New("voyager: cannot normalize a zero vector")

	// ErrSimulationFailed is returned by Orchestrator.Compute when the
	// solver exhausted its frontier without reaching the goal.
	ErrSimulationFailed = errors.New("voyager: compute exhausted search without reaching goal")

	// ErrSimulationCompleted is returned by Orchestrator.Step once every
	// element of the solved path has been dispensed.
	ErrSimulationCompleted = errors.New("voyager: step called past the end of the solved path")

	// ErrInvalidAction is returned by ActionModel.Apply when the successor
	// state produced by an action violates an invariant: the global-time
	// horizon, escape past the world's max radius, or a collision with a
	// celestial body. Fuel exhaustion is not an error: Apply clamps the
	// successor's fuel to zero.
	ErrInvalidAction = errors.New("voyager: action violates a state or world invariant")

	// ErrNotComputed is returned by Step if Compute has not been called.
	ErrNotComputed = errors.New("voyager: step called before compute")
)

// ConfigError reports a malformed entity or configuration value detected
// eagerly at construction time (spec.md 7: zero/negative mass, inverted
// time window, non-2x1 vector, empty thrust levels, negative thrust).
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "voyager: config error on " + e.Field + ": " + e.Reason
}

// newConfigError is a small constructor used throughout bodies.go,
// spacecraft.go, world.go and config.go to keep error construction terse.
func newConfigError(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}
