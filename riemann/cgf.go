package riemann

import "math"

// RiemannCGF solves the interface Riemann problem for conserved left/right
// states using the two shock linearization of Colella, Glaz and Ferguson
// (see Almgren et al. 2010, the CASTRO paper) and returns the conserved
// flux through the face.
//
// The Euler equations produce four regions separated by the three
// characteristics (u-c, u, u+c). Wave speed estimates locate the axis
// within those regions and jump conditions evaluate the state there. Only
// density and species jump across the contact; all primitive variables jump
// across the acoustic waves. A rarefaction spanning the axis is handled by
// interpolation inside resolveFamily.
//
// isSolid forces the resolved normal velocity to zero (reflecting wall),
// leaving the rest of the wave analysis intact.
func RiemannCGF(idir int, lay VarLayout, gamma float64, UL, UR []float64, isSolid bool) (F []float64) {
	var (
		rho_l      = UL[lay.IDens]
		rho_r      = UR[lay.IDens]
		un_l, ut_l float64
		un_r, ut_r float64
	)
	// un = normal velocity, ut = transverse velocity
	if idir == XDir {
		un_l, ut_l = UL[lay.IXMom]/rho_l, UL[lay.IYMom]/rho_l
		un_r, ut_r = UR[lay.IXMom]/rho_r, UR[lay.IYMom]/rho_r
	} else {
		un_l, ut_l = UL[lay.IYMom]/rho_l, UL[lay.IXMom]/rho_l
		un_r, ut_r = UR[lay.IYMom]/rho_r, UR[lay.IXMom]/rho_r
	}

	rhoe_l := UL[lay.IEner] - 0.5*rho_l*(un_l*un_l+ut_l*ut_l)
	rhoe_r := UR[lay.IEner] - 0.5*rho_r*(un_r*un_r+ut_r*ut_r)

	p_l := math.Max(rhoe_l*(gamma-1.), SmallP)
	p_r := math.Max(rhoe_r*(gamma-1.), SmallP)

	// Lagrangian sound speeds (acoustic impedances)
	W_l := math.Max(SmallRho*SmallC, math.Sqrt(gamma*p_l*rho_l))
	W_r := math.Max(SmallRho*SmallC, math.Sqrt(gamma*p_r*rho_r))

	// and the Eulerian sound speeds
	c_l := math.Max(SmallC, math.Sqrt(gamma*p_l/rho_l))
	c_r := math.Max(SmallC, math.Sqrt(gamma*p_r/rho_r))

	// star state from impedance matching across the two acoustic waves
	pstar := (W_l*p_r + W_r*p_l + W_l*W_r*(un_l-un_r)) / (W_l + W_r)
	pstar = math.Max(pstar, SmallP)
	ustar := (W_l*un_l + W_r*un_r + (p_l - p_r)) / (W_l + W_r)

	// remaining star quantities on each side of the contact
	rhostar_l := rho_l + (pstar-p_l)/(c_l*c_l)
	rhostar_r := rho_r + (pstar-p_r)/(c_r*c_r)

	rhoestar_l := rhoe_l + (pstar-p_l)*(rhoe_l/rho_l+p_l/rho_l)/(c_l*c_l)
	rhoestar_r := rhoe_r + (pstar-p_r)*(rhoe_r/rho_r+p_r/rho_r)/(c_r*c_r)

	cstar_l := math.Max(SmallC, math.Sqrt(gamma*pstar/rhostar_l))
	cstar_r := math.Max(SmallC, math.Sqrt(gamma*pstar/rhostar_r))

	// locate the axis relative to the waves; transverse velocity only jumps
	// across the contact, so the sign of ustar selects it directly
	var w waveState
	var ut_state float64
	switch {
	case ustar > 0.:
		ut_state = ut_l
		side := waveState{Rho: rho_l, Un: un_l, P: p_l, RhoE: rhoe_l}
		star := waveState{Rho: rhostar_l, Un: ustar, P: pstar, RhoE: rhoestar_l}
		w = resolveFamily(1., un_l-c_l, ustar-cstar_l, side, star)
	case ustar < 0.:
		ut_state = ut_r
		side := waveState{Rho: rho_r, Un: un_r, P: p_r, RhoE: rhoe_r}
		star := waveState{Rho: rhostar_r, Un: ustar, P: pstar, RhoE: rhoestar_r}
		w = resolveFamily(-1., un_r+c_r, ustar+cstar_r, side, star)
	default:
		// contact sits on the axis - average across it
		ut_state = 0.5 * (ut_l + ut_r)
		w = waveState{
			Rho:  0.5 * (rhostar_l + rhostar_r),
			Un:   ustar,
			P:    pstar,
			RhoE: 0.5 * (rhoestar_l + rhoestar_r),
		}
	}

	// species ride the contact
	var xn []float64
	if lay.NSpec > 0 {
		xn = make([]float64, lay.NSpec)
		for n := 0; n < lay.NSpec; n++ {
			switch {
			case ustar > 0.:
				xn[n] = UL[lay.ISpec+n] / UL[lay.IDens]
			case ustar < 0.:
				xn[n] = UR[lay.ISpec+n] / UR[lay.IDens]
			default:
				xn[n] = 0.5 * (UL[lay.ISpec+n]/UL[lay.IDens] + UR[lay.ISpec+n]/UR[lay.IDens])
			}
		}
	}

	if isSolid {
		w.Un = 0.
	}

	// assemble the conserved flux from the resolved state
	F = make([]float64, len(UL))
	F[lay.IDens] = w.Rho * w.Un
	if idir == XDir {
		F[lay.IXMom] = w.Rho*w.Un*w.Un + w.P
		F[lay.IYMom] = w.Rho * ut_state * w.Un
	} else {
		F[lay.IXMom] = w.Rho * ut_state * w.Un
		F[lay.IYMom] = w.Rho*w.Un*w.Un + w.P
	}
	F[lay.IEner] = w.RhoE*w.Un + 0.5*w.Rho*(w.Un*w.Un+ut_state*ut_state)*w.Un + w.P*w.Un
	for n := 0; n < lay.NSpec; n++ {
		F[lay.ISpec+n] = xn[n] * w.Rho * w.Un
	}
	return
}
