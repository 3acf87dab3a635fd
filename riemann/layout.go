/*
Package riemann implements the approximate Riemann solvers used at cell
interfaces by the finite volume compressible flow solver.

Three solvers are provided, each operating on one interface at a time:
  - RiemannCGF: a two shock linearization in the manner of Colella, Glaz
    and Ferguson, acting on conserved states and returning a conserved flux
  - RiemannPrim: the same wave analysis on primitive states, returning the
    resolved primitive interface state
  - RiemannHLLC: the three wave HLLC solver of Toro with adaptive pressure
    estimates, acting on conserved states and returning a conserved flux

All entry points are pure functions with no shared state, safe to call from
any number of goroutines on disjoint interfaces. Degenerate inputs are
handled by flooring pressure (and, for the primitive solver, density) at
small positive values rather than by error returns. Inputs with rho <= 0 or
gamma <= 1 ahead of the floors are a caller contract violation and are not
validated here.
*/
package riemann

// Sweep direction selectors: which momentum/velocity slot is normal to the
// face being solved.
const (
	XDir = 1
	YDir = 2
)

// Floors applied during the wave analysis in place of input validation
const (
	SmallC   = 1.e-10
	SmallRho = 1.e-10
	SmallP   = 1.e-10
)

// VarLayout maps the physical quantities onto slots of a flat state vector.
// The same descriptor serves conserved states (density, momenta, total
// energy) and primitive states (density, velocities, pressure) - the solver
// entry points document which interpretation they take. Species occupy a
// contiguous block of NSpec slots starting at ISpec; NSpec may be zero, in
// which case ISpec is ignored.
type VarLayout struct {
	IDens int
	IXMom int
	IYMom int
	IEner int
	ISpec int
	NSpec int
}

// DefaultLayout is the standard ordering {rho, xmom, ymom, ener, species...}
func DefaultLayout(nspec int) VarLayout {
	return VarLayout{
		IDens: 0,
		IXMom: 1,
		IYMom: 2,
		IEner: 3,
		ISpec: 4,
		NSpec: nspec,
	}
}

// NVar is the state vector length implied by the layout
func (lay VarLayout) NVar() int {
	return 4 + lay.NSpec
}
