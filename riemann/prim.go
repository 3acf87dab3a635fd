package riemann

import "math"

// RiemannPrim is RiemannCGF expressed in primitive variables: the inputs
// are primitive states {rho, u, v, p, species fractions} (the layout's
// momentum slots hold velocities and IEner holds pressure) and the return
// value is the resolved primitive interface state rather than a flux. The
// predictor stage that works in primitive variables converts the result
// itself.
//
// Unlike the conserved form, density is floored here as well as pressure:
// primitive input can carry non physical density directly into the
// impedances, with no energy reconstruction to absorb it.
func RiemannPrim(idir int, lay VarLayout, gamma float64, QL, QR []float64, isSolid bool) (QInt []float64) {
	var (
		rho_l      = QL[lay.IDens]
		rho_r      = QR[lay.IDens]
		un_l, ut_l float64
		un_r, ut_r float64
	)
	// un = normal velocity, ut = transverse velocity
	if idir == XDir {
		un_l, ut_l = QL[lay.IXMom], QL[lay.IYMom]
		un_r, ut_r = QR[lay.IXMom], QR[lay.IYMom]
	} else {
		un_l, ut_l = QL[lay.IYMom], QL[lay.IXMom]
		un_r, ut_r = QR[lay.IYMom], QR[lay.IXMom]
	}

	p_l := math.Max(QL[lay.IEner], SmallP)
	p_r := math.Max(QR[lay.IEner], SmallP)

	rho_l = math.Max(rho_l, SmallRho)
	rho_r = math.Max(rho_r, SmallRho)

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

	rhostar_l := rho_l + (pstar-p_l)/(c_l*c_l)
	rhostar_r := rho_r + (pstar-p_r)/(c_r*c_r)

	cstar_l := math.Max(SmallC, math.Sqrt(gamma*pstar/rhostar_l))
	cstar_r := math.Max(SmallC, math.Sqrt(gamma*pstar/rhostar_r))

	var w waveState
	var ut_state float64
	switch {
	case ustar > 0.:
		ut_state = ut_l
		side := waveState{Rho: rho_l, Un: un_l, P: p_l}
		star := waveState{Rho: rhostar_l, Un: ustar, P: pstar}
		w = resolveFamily(1., un_l-c_l, ustar-cstar_l, side, star)
	case ustar < 0.:
		ut_state = ut_r
		side := waveState{Rho: rho_r, Un: un_r, P: p_r}
		star := waveState{Rho: rhostar_r, Un: ustar, P: pstar}
		w = resolveFamily(-1., un_r+c_r, ustar+cstar_r, side, star)
	default:
		ut_state = 0.5 * (ut_l + ut_r)
		w = waveState{
			Rho: 0.5 * (rhostar_l + rhostar_r),
			Un:  ustar,
			P:   pstar,
		}
	}

	if isSolid {
		w.Un = 0.
	}

	QInt = make([]float64, len(QL))
	QInt[lay.IDens] = w.Rho
	if idir == XDir {
		QInt[lay.IXMom], QInt[lay.IYMom] = w.Un, ut_state
	} else {
		QInt[lay.IXMom], QInt[lay.IYMom] = ut_state, w.Un
	}
	QInt[lay.IEner] = w.P
	for n := 0; n < lay.NSpec; n++ {
		switch {
		case ustar > 0.:
			QInt[lay.ISpec+n] = QL[lay.ISpec+n]
		case ustar < 0.:
			QInt[lay.ISpec+n] = QR[lay.ISpec+n]
		default:
			QInt[lay.ISpec+n] = 0.5 * (QL[lay.ISpec+n] + QR[lay.ISpec+n])
		}
	}
	return
}
