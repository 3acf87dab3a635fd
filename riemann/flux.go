package riemann

// ConsFlux evaluates the analytic Euler flux of a single conserved state in
// the idir direction. No wave analysis and no pressure floor is applied
// here - callers hand in states whose pressure has already been floored.
func ConsFlux(idir int, gamma float64, lay VarLayout, U []float64) (F []float64) {
	var (
		rho = U[lay.IDens]
		u   = U[lay.IXMom] / rho
		v   = U[lay.IYMom] / rho
	)
	F = make([]float64, len(U))
	p := (U[lay.IEner] - 0.5*rho*(u*u+v*v)) * (gamma - 1.)

	if idir == XDir {
		F[lay.IDens] = U[lay.IDens] * u
		F[lay.IXMom] = U[lay.IXMom]*u + p
		F[lay.IYMom] = U[lay.IYMom] * u
		F[lay.IEner] = (U[lay.IEner] + p) * u
		for n := 0; n < lay.NSpec; n++ {
			F[lay.ISpec+n] = U[lay.ISpec+n] * u
		}
	} else {
		F[lay.IDens] = U[lay.IDens] * v
		F[lay.IXMom] = U[lay.IXMom] * v
		F[lay.IYMom] = U[lay.IYMom]*v + p
		F[lay.IEner] = (U[lay.IEner] + p) * v
		for n := 0; n < lay.NSpec; n++ {
			F[lay.ISpec+n] = U[lay.ISpec+n] * v
		}
	}
	return
}
