package voyager

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestNewCelestialBodyValidation(t *testing.T) {
	traj := StationaryTrajectory{Pos: NewVec2(0, 0)}

	if _, err := NewCelestialBody(1, 0, 10, traj); !errors.As(err, new(*ConfigError)) {
		t.Fatalf("zero radius: got %v, want ConfigError", err)
	}
	if _, err := NewCelestialBody(1, 10, 0, traj); !errors.As(err, new(*ConfigError)) {
		t.Fatalf("zero mass: got %v, want ConfigError", err)
	}
	if _, err := NewCelestialBody(1, 10, 10, nil); !errors.As(err, new(*ConfigError)) {
		t.Fatalf("nil trajectory: got %v, want ConfigError", err)
	}
	if _, err := NewCelestialBody(1, 10, 10, traj); err != nil {
		t.Fatalf("valid body: unexpected error %v", err)
	}
}

func TestStationaryTrajectory(t *testing.T) {
	traj := StationaryTrajectory{Pos: NewVec2(7, -3)}
	for _, tu := range []float64{0, 10, 1000} {
		p := traj.PositionAt(tu)
		if !floats.EqualWithinAbs(p.X(), 7, eps) || !floats.EqualWithinAbs(p.Y(), -3, eps) {
			t.Fatalf("PositionAt(%g) = (%g,%g), want (7,-3)", tu, p.X(), p.Y())
		}
		if v := traj.VelocityAt(tu); Norm2(v) != 0 {
			t.Fatalf("VelocityAt(%g) = %v, want zero", tu, v)
		}
	}
}

func TestNewEllipticalOrbitValidation(t *testing.T) {
	center := NewVec2(0, 0)
	if _, err := NewEllipticalOrbit(0, 1, 1, 0, center, 0); err == nil {
		t.Fatal("a=0 should be rejected")
	}
	if _, err := NewEllipticalOrbit(1, 0, 1, 0, center, 0); err == nil {
		t.Fatal("b=0 should be rejected")
	}
	if _, err := NewEllipticalOrbit(1, 1, 0, 0, center, 0); err == nil {
		t.Fatal("omega=0 should be rejected")
	}
	if _, err := NewEllipticalOrbit(1, 1, 1, 0, center, 2*math.Pi); err == nil {
		t.Fatal("angle=2*pi should be rejected")
	}
	if _, err := NewEllipticalOrbit(1, 1, 1, 0, center, 0); err != nil {
		t.Fatalf("valid orbit rejected: %v", err)
	}
}

func TestEllipticalOrbitPeriodic(t *testing.T) {
	center := NewVec2(2, -1)
	orbit, err := NewEllipticalOrbit(3, 1, 1, 0, center, 0)
	if err != nil {
		t.Fatalf("NewEllipticalOrbit: %v", err)
	}
	period := 2 * math.Pi / orbit.Omega
	p0 := orbit.PositionAt(0.5)
	p1 := orbit.PositionAt(0.5 + period)
	if !floats.EqualWithinAbs(p0.X(), p1.X(), 1e-6) || !floats.EqualWithinAbs(p0.Y(), p1.Y(), 1e-6) {
		t.Fatalf("orbit not periodic: p0=(%g,%g) p1=(%g,%g)", p0.X(), p0.Y(), p1.X(), p1.Y())
	}
}

func TestEllipticalOrbitFiniteDifferenceVelocity(t *testing.T) {
	orbit, err := NewEllipticalOrbit(1, 1, 1, 0, NewVec2(0, 0), 0)
	if err != nil {
		t.Fatalf("NewEllipticalOrbit: %v", err)
	}
	// At t=0 with a=b=1, position is a unit circle; velocity should be
	// tangential, i.e. (nearly) orthogonal to position.
	p := orbit.PositionAt(0)
	v := orbit.VelocityAt(0)
	if !floats.EqualWithinAbs(p.Dot(v), 0, 1e-2) {
		t.Fatalf("velocity not tangential: pos.dot(vel) = %g", p.Dot(v))
	}
}
