package sod_shock_tube

import (
	"math"

	"github.com/notargets/gofv/utils"
)

// Standard Sod initial states, gamma = 1.4, diaphragm at x = 0.5
const (
	RhoL, PL, UL = 1., 1., 0.
	RhoR, PR, UR = 0.125, 0.1, 0.
	Gamma        = 1.4
	X0           = 0.5
)

// SodStar holds the exact star region values of the Sod problem: the post
// shock pressure/velocity, the post shock density (right of the contact)
// and the middle density (left of the contact, behind the rarefaction).
type SodStar struct {
	PPost, VPost       float64
	RhoPost, RhoMiddle float64
	CL, CR             float64
	VShock             float64
}

// SodExact solves the exact Sod star state, iterating on the pressure
// function that matches the rarefaction and shock branches.
func SodExact() (s SodStar) {
	var (
		mu2 = (Gamma - 1.) / (Gamma + 1.)
		c_l = math.Sqrt(Gamma * PL / RhoL)
		c_r = math.Sqrt(Gamma * PR / RhoR)
	)
	P_post := utils.Fzero(sodFunc, math.Pi)
	v_post := 2. * (math.Sqrt(Gamma) / (Gamma - 1.)) * (1. - math.Pow(P_post, (Gamma-1.)/(2.*Gamma)))
	rho_post := RhoR * ((P_post/PR + mu2) / (1. + mu2*(P_post/PR)))
	s = SodStar{
		PPost:     P_post,
		VPost:     v_post,
		RhoPost:   rho_post,
		RhoMiddle: RhoL * math.Pow(P_post/PL, 1./Gamma),
		CL:        c_l,
		CR:        c_r,
		VShock:    v_post * (rho_post / RhoR) / (rho_post/RhoR - 1.),
	}
	return
}

// SodAt samples the exact solution at position x and time t > 0, returning
// primitive values.
func SodAt(x, t float64) (rho, u, p float64) {
	var (
		s   = SodExact()
		mu2 = (Gamma - 1.) / (Gamma + 1.)
		c_2 = s.CL - 0.5*(Gamma-1.)*s.VPost
		x1  = X0 - s.CL*t          // rarefaction head
		x2  = X0 + t*(s.VPost-c_2) // rarefaction tail
		x3  = X0 + s.VPost*t       // contact
		x4  = X0 + s.VShock*t      // shock
	)
	switch {
	case x < x1:
		rho, u, p = RhoL, UL, PL
	case x <= x2:
		// inside the fan
		c := mu2*((X0-x)/t) + (1.-mu2)*s.CL
		rho = RhoL * math.Pow(c/s.CL, 2./(Gamma-1.))
		p = PL * math.Pow(rho/RhoL, Gamma)
		u = (1. - mu2) * ((x-X0)/t + s.CL)
	case x <= x3:
		rho, u, p = s.RhoMiddle, s.VPost, s.PPost
	case x <= x4:
		rho, u, p = s.RhoPost, s.VPost, s.PPost
	default:
		rho, u, p = RhoR, UR, PR
	}
	return
}

// SodProfiles samples the exact solution on the points X at time t.
func SodProfiles(t float64, X []float64) (Rho, U, P, E []float64) {
	Rho = make([]float64, len(X))
	U = make([]float64, len(X))
	P = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		Rho[i], U[i], P[i] = SodAt(x, t)
		E[i] = P[i] / ((Gamma - 1.) * Rho[i])
	}
	return
}

func sodFunc(P float64) (y float64) {
	var (
		mu2 = (Gamma - 1.) / (Gamma + 1.)
	)
	y = (P-PR)*math.Sqrt(utils.POW(1.-mu2, 2)/(RhoR*(P+mu2*PR))) -
		2.*(math.Sqrt(Gamma)/(Gamma-1.))*(1.-math.Pow(P, (Gamma-1.)/(2.*Gamma)))
	return
}
