package EulerFV

import "github.com/notargets/gofv/sod_shock_tube"

// initialize loads the case initial condition. The Sod cases split the
// domain at the diaphragm position with the standard left/right states;
// when species are carried the first species marks the left side fluid so
// the contact discontinuity is visible in the species field.
func (c *Euler) initialize() {
	switch c.Case {
	case CASE_SodX, CASE_SodY:
		c.initializeSOD()
	case CASE_Wall:
		c.initializeWall()
	}
}

func (c *Euler) initializeSOD() {
	var (
		lay = c.Lay
	)
	c.BCs = [4]BCType{BC_Outflow, BC_Outflow, BC_Outflow, BC_Outflow}
	xnLeft := make([]float64, lay.NSpec)
	xnRight := make([]float64, lay.NSpec)
	if lay.NSpec > 0 {
		xnLeft[0] = 1.
		xnRight[lay.NSpec-1] = 1.
	}
	for j := 1; j <= c.Ny; j++ {
		for i := 1; i <= c.Nx; i++ {
			var frac float64
			if c.Case == CASE_SodX {
				frac = (float64(i) - 0.5) * c.dx
			} else {
				frac = (float64(j) - 0.5) * c.dy
			}
			left := frac < sod_shock_tube.X0
			if left {
				if c.Case == CASE_SodX {
					c.setPrimitive(i, j, sod_shock_tube.RhoL, sod_shock_tube.UL, 0., sod_shock_tube.PL, xnLeft)
				} else {
					c.setPrimitive(i, j, sod_shock_tube.RhoL, 0., sod_shock_tube.UL, sod_shock_tube.PL, xnLeft)
				}
			} else {
				if c.Case == CASE_SodX {
					c.setPrimitive(i, j, sod_shock_tube.RhoR, sod_shock_tube.UR, 0., sod_shock_tube.PR, xnRight)
				} else {
					c.setPrimitive(i, j, sod_shock_tube.RhoR, 0., sod_shock_tube.UR, sod_shock_tube.PR, xnRight)
				}
			}
		}
	}
}

// initializeWall sets a uniform rightward flow against a reflecting east
// wall, exercising the solid face handling
func (c *Euler) initializeWall() {
	c.BCs = [4]BCType{BC_Outflow, BC_Reflect, BC_Outflow, BC_Outflow}
	for j := 1; j <= c.Ny; j++ {
		for i := 1; i <= c.Nx; i++ {
			c.setPrimitive(i, j, 1., 0.5, 0., 1., nil)
		}
	}
}
