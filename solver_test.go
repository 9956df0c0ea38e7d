package voyager

import (
	"context"
	"testing"
)

func mustSolverScenario(t *testing.T, world *WorldData, maxRadius float64, k int) (*Solver, StateVertex) {
	t.Helper()
	env := NewEnvironment(world)
	tp, err := NewRectangleTimePolicy(env, 1, 100)
	if err != nil {
		t.Fatalf("NewRectangleTimePolicy: %v", err)
	}
	sc, err := NewSpacecraft(10, 100, 0, []float64{0}, 100, []float64{0})
	if err != nil {
		t.Fatalf("NewSpacecraft: %v", err)
	}
	am, err := NewRK4ActionModel(env, world, tp, sc, maxRadius, 4, 1)
	if err != nil {
		t.Fatalf("NewRK4ActionModel: %v", err)
	}
	quant, err := NewQuantizationConfig(1, 1, 1, 1)
	if err != nil {
		t.Fatalf("NewQuantizationConfig: %v", err)
	}
	solver, err := NewSolver(am, quant, k, 0)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	start := NewStateVertex(NewVec2(0, 0), NewVec2(5, 0), 0, 100)
	return solver, start
}

func TestSolverFindsSingleArtifactByCoasting(t *testing.T) {
	artifact := NewArtifact(1, NewVec2(5, 0))
	world, err := NewWorldData(nil, nil, []*Artifact{artifact}, 1e6)
	if err != nil {
		t.Fatalf("NewWorldData: %v", err)
	}
	solver, start := mustSolverScenario(t, world, 1e6, 1)

	result, err := solver.Solve(context.Background(), start, NewFIFOFrontier())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !result.Found {
		t.Fatal("expected Solve to find a path to the single artifact")
	}
	if len(result.Path) == 0 {
		t.Fatal("expected a non-empty path")
	}
	last := result.States[len(result.States)-1]
	if !last.HasCollected(artifact.ID) {
		t.Fatalf("final state should have collected artifact %v: %v", artifact.ID, last.Collected)
	}
	if result.States[0].X.X() != start.X.X() || result.States[0].X.Y() != start.X.Y() {
		t.Fatalf("path[0] should be the start state, got %v", result.States[0])
	}
}

func TestSolverWithZeroKSatisfiedImmediately(t *testing.T) {
	world, err := NewWorldData(nil, nil, nil, 1e6)
	if err != nil {
		t.Fatalf("NewWorldData: %v", err)
	}
	solver, start := mustSolverScenario(t, world, 1e6, 0)

	result, err := solver.Solve(context.Background(), start, NewFIFOFrontier())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !result.Found {
		t.Fatal("K=0 should be satisfied by the start state alone")
	}
	if len(result.Path) != 0 {
		t.Fatalf("K=0 should reconstruct to just the start vertex, got path of length %d", len(result.Path))
	}
	if len(result.States) != 1 {
		t.Fatalf("K=0 should yield exactly one state (the start), got %d", len(result.States))
	}
}

func TestSolverRejectsCollisionPath(t *testing.T) {
	blocker := mustBody(t, 1, 10, 1, NewVec2(5, 0))
	artifact := NewArtifact(1, NewVec2(5, 0))
	world, err := NewWorldData([]*CelestialBody{blocker}, nil, []*Artifact{artifact}, 1e6)
	if err != nil {
		t.Fatalf("NewWorldData: %v", err)
	}
	solver, start := mustSolverScenario(t, world, 1e6, 1)

	result, err := solver.Solve(context.Background(), start, NewFIFOFrontier())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result.Found {
		t.Fatal("expected Solve to fail when the only route collides with a body")
	}
}

func TestSolverRespectsContextCancellation(t *testing.T) {
	artifact := NewArtifact(1, NewVec2(1e9, 0))
	world, err := NewWorldData(nil, nil, []*Artifact{artifact}, 1e12)
	if err != nil {
		t.Fatalf("NewWorldData: %v", err)
	}
	solver, start := mustSolverScenario(t, world, 1e12, 2) // unreachable K forces exhaustive search

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = solver.Solve(ctx, start, NewFIFOFrontier())
	if err == nil {
		t.Fatal("expected Solve to return an error for an already-cancelled context")
	}
}
