package voyager

import (
	"context"
	"fmt"

	kitlog "github.com/go-kit/kit/log"
)

// WorldFrame is one step of a computed plan: the action taken to reach
// it (nil for the start frame) and the StateVertex it lands on (spec.md
// 4.J).
type WorldFrame struct {
	Index  int
	Action *Action
	State  StateVertex
}

// Orchestrator wires a world, environment, time policy, action model and
// solver into one run and dispenses the resulting plan frame by frame
// (spec.md 4.J).
//
// Grounded on the teacher's Mission (mission.go): NewMission assembled a
// Vehicle/Orbit/Propagator/perturbations once and then Propagate()
// stepped through the result; here Initialize assembles the equivalent
// graph of collaborators once, Compute() runs the search once, and
// Step() replaces the teacher's channel-based state streaming with a
// synchronous cursor, since a plan here is a finite precomputed
// sequence rather than an open-ended numerical propagation.
type Orchestrator struct {
	cfg    EngineConfig
	world  *WorldData
	env    *Environment
	time   *RectangleTimePolicy
	sc     *Spacecraft
	action *RK4ActionModel
	solver *Solver
	start  StateVertex

	result *SolverResult
	cursor int

	logger kitlog.Logger
}

// NewOrchestrator constructs an uninitialized Orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{logger: nopLogger()}
}

// SetLogger attaches a structured logger, mirroring the teacher's
// SCLogInit attachment point.
func (o *Orchestrator) SetLogger(l kitlog.Logger) {
	o.logger = kitlog.With(l, "component", "orchestrator")
}

// Initialize builds every collaborator named in cfg: the world, the
// environment, the time policy, the spacecraft, the action model and
// the solver (spec.md 4.J). It must be called before Compute or Step;
// calling it again rebuilds every collaborator and discards any computed
// result.
func (o *Orchestrator) Initialize(cfg EngineConfig) error {
	world, err := cfg.World.Build()
	if err != nil {
		return fmt.Errorf("voyager: building world: %w", err)
	}

	tp, err := NewRectangleTimePolicy(NewEnvironment(world), cfg.Time.DtU, cfg.Time.TMax)
	if err != nil {
		return fmt.Errorf("voyager: building time policy: %w", err)
	}

	sc, err := cfg.Spacecraft.Build()
	if err != nil {
		return fmt.Errorf("voyager: building spacecraft: %w", err)
	}
	sc.SetLogger(o.logger)

	quant, err := cfg.Quant.Build()
	if err != nil {
		return fmt.Errorf("voyager: building quantizer: %w", err)
	}

	substeps := cfg.Tunables.RK4Substeps
	if substeps <= 0 {
		substeps = 8
	}
	env := NewEnvironment(world)
	am, err := NewRK4ActionModel(env, world, tp, sc, world.MaxRadius, substeps, cfg.CaptureRadius)
	if err != nil {
		return fmt.Errorf("voyager: building action model: %w", err)
	}

	solver, err := NewSolver(am, quant, cfg.K, cfg.MaxCost)
	if err != nil {
		return fmt.Errorf("voyager: building solver: %w", err)
	}

	o.cfg = cfg
	o.world = world
	o.env = env
	o.time = tp
	o.sc = sc
	o.action = am
	o.solver = solver
	o.start = cfg.InitialState.Build()
	o.result = nil
	o.cursor = 0
	return nil
}

// Compute runs the solver from the configured start state and caches
// its result for Step (spec.md 4.J). Compute may be called again after
// Initialize to recompute, e.g. with a different K via a fresh
// Initialize call.
func (o *Orchestrator) Compute(ctx context.Context) error {
	if o.solver == nil {
		return fmt.Errorf("voyager: %w: orchestrator not initialized", ErrNotComputed)
	}
	result, err := o.solver.Solve(ctx, o.start, NewFIFOFrontier())
	if err != nil {
		return fmt.Errorf("voyager: %w: %v", ErrSimulationFailed, err)
	}
	if !result.Found {
		return fmt.Errorf("voyager: %w", ErrSimulationFailed)
	}
	o.result = result
	o.cursor = 0
	return nil
}

// Step returns the next WorldFrame of the computed plan, advancing an
// internal cursor. It returns ErrNotComputed if called before Compute
// succeeds, and ErrSimulationCompleted once every frame has been
// dispensed (spec.md 4.J).
func (o *Orchestrator) Step() (WorldFrame, error) {
	if o.result == nil {
		return WorldFrame{}, ErrNotComputed
	}
	if o.cursor >= len(o.result.States) {
		return WorldFrame{}, ErrSimulationCompleted
	}

	frame := WorldFrame{Index: o.cursor, State: o.result.States[o.cursor]}
	if o.cursor > 0 {
		a := o.result.Path[o.cursor-1]
		frame.Action = &a
	}
	o.cursor++
	return frame, nil
}

// Shutdown releases the orchestrator's computed result, returning it to
// an initialized-but-not-computed state.
func (o *Orchestrator) Shutdown() {
	o.result = nil
	o.cursor = 0
}
