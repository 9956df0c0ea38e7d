package voyager

// Integrable is the vector-space contract RK4Integrate requires of the
// quantity it steps forward: addition and scalar multiplication. Vec2
// satisfies it directly; the action model's 4-tuple (x, v, fuel, t_u)
// satisfies it via integrationState (see action.go).
//
// Grounded on the teacher's src/integrator.Integrable contract, generalized
// with Go generics instead of the teacher's []float64 slice convention so
// that RK4Integrate can step a Vec2, a scalar, or a composite state with
// the same code path.
type Integrable[T any] interface {
	Add(T) T
	Scale(float64) T
}

// Deriv is the ODE right-hand side dx/dt = f(x, t).
type Deriv[T Integrable[T]] func(x T, t float64) T

// RK4Integrate advances x0 from t by dt using the classical 4-stage
// Runge-Kutta method (spec 4.A):
//
//	x0 + (k1 + 2k2 + 2k3 + k4) * dt/6
//
// with stages evaluated at (x0, t), (x0+k1*dt/2, t+dt/2),
// (x0+k2*dt/2, t+dt/2) and (x0+k3*dt, t+dt).
func RK4Integrate[T Integrable[T]](x0 T, t, dt float64, f Deriv[T]) T {
	k1 := f(x0, t)
	k2 := f(x0.Add(k1.Scale(dt/2)), t+dt/2)
	k3 := f(x0.Add(k2.Scale(dt/2)), t+dt/2)
	k4 := f(x0.Add(k3.Scale(dt)), t+dt)

	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return x0.Add(sum.Scale(dt / 6))
}
