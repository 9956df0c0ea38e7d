package voyager

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestGravityPointsTowardBody(t *testing.T) {
	body := mustBody(t, 1, 1, 5.972e24, NewVec2(100, 0))
	world, err := NewWorldData([]*CelestialBody{body}, nil, nil, 1e6)
	if err != nil {
		t.Fatalf("NewWorldData: %v", err)
	}
	env := NewEnvironment(world)

	g := env.Gravity(NewVec2(0, 0), 0)
	if g.X() <= 0 {
		t.Fatalf("gravity should pull toward +x, got %v", g)
	}
	if !floats.EqualWithinAbs(g.Y(), 0, 1e-9) {
		t.Fatalf("gravity should have no y component on this axis, got %v", g)
	}
}

func TestGravityNoBodiesIsZero(t *testing.T) {
	world, err := NewWorldData(nil, nil, nil, 1e6)
	if err != nil {
		t.Fatalf("NewWorldData: %v", err)
	}
	env := NewEnvironment(world)
	g := env.Gravity(NewVec2(1, 1), 0)
	if Norm2(g) != 0 {
		t.Fatalf("gravity in empty world = %v, want zero", g)
	}
}

func TestPotentialNegative(t *testing.T) {
	body := mustBody(t, 1, 1, 5.972e24, NewVec2(0, 0))
	world, err := NewWorldData([]*CelestialBody{body}, nil, nil, 1e6)
	if err != nil {
		t.Fatalf("NewWorldData: %v", err)
	}
	env := NewEnvironment(world)
	if phi := env.Potential(NewVec2(100, 0), 0); phi >= 0 {
		t.Fatalf("potential near a mass should be negative, got %g", phi)
	}
}

func TestGammaNearOneFarFromMass(t *testing.T) {
	world, err := NewWorldData(nil, nil, nil, 1e12)
	if err != nil {
		t.Fatalf("NewWorldData: %v", err)
	}
	env := NewEnvironment(world)
	gamma := env.Gamma(NewVec2(1e9, 1e9), NewVec2(0, 0), 0)
	if !floats.EqualWithinAbs(gamma, 1, 1e-6) {
		t.Fatalf("gamma with no bodies and zero velocity = %g, want ~1", gamma)
	}
}

func TestInvGammaDecreasesWithSpeed(t *testing.T) {
	world, err := NewWorldData(nil, nil, nil, 1e12)
	if err != nil {
		t.Fatalf("NewWorldData: %v", err)
	}
	env := NewEnvironment(world)
	slow := env.InvGamma(NewVec2(0, 0), NewVec2(0, 0), 0)
	fast := env.InvGamma(NewVec2(0, 0), NewVec2(1000, 0), 0)
	if fast >= slow {
		t.Fatalf("InvGamma should decrease with speed: slow=%g fast=%g", slow, fast)
	}
}
