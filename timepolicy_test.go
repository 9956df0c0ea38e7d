package voyager

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func emptyEnv(t *testing.T) *Environment {
	t.Helper()
	world, err := NewWorldData(nil, nil, nil, 1e12)
	if err != nil {
		t.Fatalf("NewWorldData: %v", err)
	}
	return NewEnvironment(world)
}

func TestRectangleTimePolicyValidation(t *testing.T) {
	env := emptyEnv(t)
	if _, err := NewRectangleTimePolicy(env, 0, 10); err == nil {
		t.Fatal("dtU<=0 should be rejected")
	}
	if _, err := NewRectangleTimePolicy(env, 1, 0); err == nil {
		t.Fatal("tMax<=0 should be rejected")
	}
}

func TestToProperMatchesGlobalWhenGammaIsOne(t *testing.T) {
	env := emptyEnv(t)
	tp, err := NewRectangleTimePolicy(env, 1, 1000)
	if err != nil {
		t.Fatalf("NewRectangleTimePolicy: %v", err)
	}
	dtP := tp.ToProper(5, NewVec2(0, 0), NewVec2(0, 0), 0)
	if !floats.EqualWithinAbs(dtP, 5, 1e-6) {
		t.Fatalf("ToProper with gamma~1 = %g, want ~5", dtP)
	}
}

func TestToGlobalInvertsToProper(t *testing.T) {
	env := emptyEnv(t)
	tp, err := NewRectangleTimePolicy(env, 1, 1000)
	if err != nil {
		t.Fatalf("NewRectangleTimePolicy: %v", err)
	}
	x, v := NewVec2(0, 0), NewVec2(2000, 0)
	dtU := 3.0
	dtP := tp.ToProper(dtU, x, v, 0)
	back := tp.ToGlobal(dtP, x, v, 0)
	if !floats.EqualWithinAbs(back, dtU, 1e-3) {
		t.Fatalf("ToGlobal(ToProper(dtU)) = %g, want ~%g", back, dtU)
	}
}

func TestToProperToGlobalZeroInput(t *testing.T) {
	env := emptyEnv(t)
	tp, err := NewRectangleTimePolicy(env, 1, 1000)
	if err != nil {
		t.Fatalf("NewRectangleTimePolicy: %v", err)
	}
	if got := tp.ToProper(0, NewVec2(0, 0), NewVec2(0, 0), 0); got != 0 {
		t.Fatalf("ToProper(0) = %g, want 0", got)
	}
	if got := tp.ToGlobal(0, NewVec2(0, 0), NewVec2(0, 0), 0); got != 0 {
		t.Fatalf("ToGlobal(0) = %g, want 0", got)
	}
}
