package voyager

import "math"

// timeStep is the fixed rectangle-rule step used by ToProper/ToGlobal
// (spec.md 4.D: "step 0.01").
const timeStep = 0.01

// TimePolicy is the capability trait for proper<->global time conversion
// (spec.md 4.D), pluggable per spec.md 9 so a higher-order quadrature can
// replace the rectangle-sum reference scheme without touching the action
// model that calls it.
type TimePolicy interface {
	ToProper(dtU float64, x, v Vec2, tu float64) float64
	ToGlobal(dtP float64, x, v Vec2, tu float64) float64
	DtU() float64
	TMax() float64
}

// RectangleTimePolicy is the spec.md 4.D reference TimePolicy: it
// integrates 1/gamma (equivalently InvGamma) over a global-time interval
// by a fixed-step rectangle sum to get proper time, and inverts that
// relation by accumulating gamma*step until the target proper time is
// reached, both along a state held locally constant (x, v) for the
// duration of the conversion.
//
// Grounded on the teacher's Mission.Propagate step-ticking loop
// (mission.go), which advanced CurrentDT by a fixed StepSize per
// integration step; here the fixed step drives a time-dilation
// quadrature instead of a calendar clock.
type RectangleTimePolicy struct {
	Env   EnvironmentModel
	dtU   float64
	tMax  float64
}

// NewRectangleTimePolicy constructs a RectangleTimePolicy.
func NewRectangleTimePolicy(env EnvironmentModel, dtU, tMax float64) (*RectangleTimePolicy, error) {
	if dtU <= 0 {
		return nil, newConfigError("TimePolicy.DtU", "must be > 0")
	}
	if tMax <= 0 {
		return nil, newConfigError("TimePolicy.TMax", "must be > 0")
	}
	return &RectangleTimePolicy{Env: env, dtU: dtU, tMax: tMax}, nil
}

// DtU returns the fixed global step used by action enumeration.
func (p *RectangleTimePolicy) DtU() float64 { return p.dtU }

// TMax returns the simulation horizon.
func (p *RectangleTimePolicy) TMax() float64 { return p.tMax }

// ToProper integrates InvGamma(x,v,tau) over [tu, tu+dtU] by a rectangle
// sum with step timeStep (spec.md 4.D).
func (p *RectangleTimePolicy) ToProper(dtU float64, x, v Vec2, tu float64) float64 {
	if dtU <= 0 {
		return 0
	}
	steps := int(math.Ceil(dtU / timeStep))
	h := dtU / float64(steps)
	sum := 0.0
	tau := tu
	for i := 0; i < steps; i++ {
		sum += p.Env.InvGamma(x, v, tau) * h
		tau += h
	}
	return sum
}

// ToGlobal inverts ToProper: it accumulates gamma*step starting at tu
// until dtP has been consumed, returning the elapsed global time
// (spec.md 4.D).
func (p *RectangleTimePolicy) ToGlobal(dtP float64, x, v Vec2, tu float64) float64 {
	if dtP <= 0 {
		return 0
	}
	accumulatedP := 0.0
	elapsedU := 0.0
	tau := tu
	for accumulatedP < dtP {
		step := timeStep
		remaining := dtP - accumulatedP
		// Shrink the final step so we land exactly on dtP instead of
		// overshooting by up to one full timeStep.
		if step > remaining {
			step = remaining
		}
		gamma := p.Env.Gamma(x, v, tau)
		// A rectangle-rule step of h in proper time is gamma*h of global time.
		globalThisStep := gamma * step
		elapsedU += globalThisStep
		accumulatedP += step
		tau += globalThisStep
	}
	return elapsedU
}
