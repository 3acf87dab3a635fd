package sod_shock_tube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSodStar(t *testing.T) {
	s := SodExact()
	// published values for the standard Sod problem
	assert.InDelta(t, 0.30313, s.PPost, 0.001)
	assert.InDelta(t, 0.92745, s.VPost, 0.001)
	assert.InDelta(t, 0.26557, s.RhoPost, 0.001)
	assert.InDelta(t, 0.42632, s.RhoMiddle, 0.001)
	// shock position: x4 = X0 + VShock*t
	assert.InDelta(t, 0.6752, X0+s.VShock*0.1, 0.0001)
	assert.InDelta(t, 0.8504, X0+s.VShock*0.2, 0.0001)
}

func TestSodProfiles(t *testing.T) {
	var (
		tFinal = 0.1
		N      = 101
	)
	X := make([]float64, N)
	for i := range X {
		X[i] = float64(i) / float64(N-1)
	}
	Rho, U, P, E := SodProfiles(tFinal, X)

	// left and right far states untouched
	assert.Equal(t, RhoL, Rho[0])
	assert.Equal(t, PL, P[0])
	assert.Equal(t, RhoR, Rho[N-1])
	assert.Equal(t, PR, P[N-1])
	assert.Equal(t, 0., U[0])
	assert.Equal(t, 0., U[N-1])

	// density decreases monotonically from left state to right state
	for i := 1; i < N; i++ {
		assert.LessOrEqual(t, Rho[i], Rho[i-1]+1.e-12)
	}
	// internal energy consistent with p and rho everywhere
	for i := 0; i < N; i++ {
		assert.InDelta(t, P[i]/((Gamma-1.)*Rho[i]), E[i], 1.e-12)
	}
	// spot check a point inside the fan against the self similar solution
	x := 0.4
	rho, u, p := SodAt(x, tFinal)
	mu2 := (Gamma - 1.) / (Gamma + 1.)
	s := SodExact()
	c := mu2*((X0-x)/tFinal) + (1.-mu2)*s.CL
	assert.InDelta(t, RhoL*math.Pow(c/s.CL, 2./(Gamma-1.)), rho, 1.e-12)
	assert.Greater(t, u, 0.)
	assert.Less(t, p, PL)
}
