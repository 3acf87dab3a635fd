package riemann

// waveState carries the quantities that jump across the acoustic waves. RhoE
// is the internal energy density; the primitive solver leaves it zero.
type waveState struct {
	Rho, Un, P, RhoE float64
}

// resolveFamily evaluates one acoustic family (the u-c waves for the left
// family, u+c for the right) on the x/t = 0 axis. sign is +1 for the left
// family and -1 for the right; lambda and lambdaStar are the wave speeds of
// the side and star states of that family.
//
// If pstar exceeds the side pressure the wave is a shock and the shock speed
// sigma = (lambda+lambdaStar)/2 picks the pre or post shock state. Otherwise
// the wave is a rarefaction: a fan entirely on one side of the axis selects
// that side's state, while a fan spanning the axis (the transonic case) is
// resolved by linear interpolation between the side and star states with
// weight alpha = lambda/(lambda-lambdaStar).
func resolveFamily(sign, lambda, lambdaStar float64, side, star waveState) (w waveState) {
	if star.P > side.P {
		// shock - the axis sees whichever state is upwind of the shock
		// front. For the left family the side state lies left of the
		// shock and the star state right of it; the right family is the
		// other way around.
		sigma := 0.5 * (lambda + lambdaStar)
		if (sigma > 0.) == (sign > 0.) {
			w = side
		} else {
			w = star
		}
		return
	}
	// rarefaction
	switch {
	case sign*lambda > 0. && sign*lambdaStar > 0.:
		// fan is entirely upwind of the axis
		w = side
	case sign*lambda < 0. && sign*lambdaStar < 0.:
		// fan is entirely downwind of the axis
		w = star
	default:
		// fan spans the axis
		alpha := lambda / (lambda - lambdaStar)
		w = waveState{
			Rho:  alpha*star.Rho + (1.-alpha)*side.Rho,
			Un:   alpha*star.Un + (1.-alpha)*side.Un,
			P:    alpha*star.P + (1.-alpha)*side.P,
			RhoE: alpha*star.RhoE + (1.-alpha)*side.RhoE,
		}
	}
	return
}
