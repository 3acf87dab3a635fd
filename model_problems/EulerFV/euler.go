package EulerFV

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofv/riemann"
	"github.com/notargets/gofv/utils"
)

// Euler is a 2D finite volume solver for the compressible Euler equations
// on a uniform grid: piecewise constant (Godunov) interface states, one
// approximate Riemann solve per interior face, dimensionally split
// conservative updates. It exists to drive the riemann package end to end;
// the interface solves are the whole game, the rest is bookkeeping.
type Euler struct {
	Gamma, CFL, FinalTime float64
	Nx, Ny                int
	XMax, YMax            float64
	Lay                   riemann.VarLayout
	Solver                SolverType
	Case                  CaseType
	BCs                   [4]BCType  // west, east, south, north
	Q                     *mat.Dense // nvar rows, one column per cell incl ghosts
	dx, dy                float64
	pm                    *utils.PartitionMap
	NP                    int
	Time                  float64
	steps                 int
}

type BCType uint

const (
	BC_Outflow BCType = iota
	BC_Reflect
)

const (
	west = iota
	east
	south
	north
)

func NewEuler(gamma, CFL, FinalTime float64, Nx, Ny, nspec int, st SolverType, ct CaseType) (c *Euler) {
	c = &Euler{
		Gamma:     gamma,
		CFL:       CFL,
		FinalTime: FinalTime,
		Nx:        Nx,
		Ny:        Ny,
		XMax:      1.,
		YMax:      1.,
		Lay:       riemann.DefaultLayout(nspec),
		Solver:    st,
		Case:      ct,
		NP:        runtime.NumCPU(),
	}
	c.dx = c.XMax / float64(Nx)
	c.dy = c.YMax / float64(Ny)
	c.Q = mat.NewDense(c.Lay.NVar(), (Nx+2)*(Ny+2), nil)
	c.pm = utils.NewPartitionMap(c.NP, Ny)
	c.initialize()
	return
}

// cell addressing includes one ghost layer on each boundary: interior cells
// run i = 1..Nx, j = 1..Ny
func (c *Euler) ind(i, j int) int {
	return i + j*(c.Nx+2)
}

func (c *Euler) cell(ind int) (U []float64) {
	U = make([]float64, c.Lay.NVar())
	for n := range U {
		U[n] = c.Q.At(n, ind)
	}
	return
}

func (c *Euler) setCell(ind int, U []float64) {
	for n := range U {
		c.Q.Set(n, ind, U[n])
	}
}

// setPrimitive stores a cell from primitive values (with optional species
// mass fractions xn)
func (c *Euler) setPrimitive(i, j int, rho, u, v, p float64, xn []float64) {
	var (
		lay = c.Lay
		ind = c.ind(i, j)
	)
	c.Q.Set(lay.IDens, ind, rho)
	c.Q.Set(lay.IXMom, ind, rho*u)
	c.Q.Set(lay.IYMom, ind, rho*v)
	c.Q.Set(lay.IEner, ind, p/(c.Gamma-1.)+0.5*rho*(u*u+v*v))
	for n := 0; n < lay.NSpec; n++ {
		var x float64
		if xn != nil {
			x = xn[n]
		}
		c.Q.Set(lay.ISpec+n, ind, rho*x)
	}
}

// Run advances the solution to FinalTime
func (c *Euler) Run() {
	fmt.Printf("Euler Equations in 2 Dimensions, Finite Volume\n")
	fmt.Printf("Case: %s, Riemann Solver: %s\n", c.Case.Print(), c.Solver.Print())
	fmt.Printf("Gamma = %5.2f, CFL = %5.2f, Grid = %dx%d, NP = %d\n",
		c.Gamma, c.CFL, c.Nx, c.Ny, c.NP)
	for c.Time < c.FinalTime {
		dt := c.TimeStep()
		if c.Time+dt > c.FinalTime {
			dt = c.FinalTime - c.Time
		}
		c.Step(dt)
		c.Time += dt
		c.steps++
		if c.steps%50 == 0 {
			fmt.Printf("Time = %8.4f, dt = %8.6f, steps = %d\n", c.Time, dt, c.steps)
		}
	}
	fmt.Printf("Done: Time = %8.4f in %d steps\n", c.Time, c.steps)
}

// TimeStep computes the CFL limited explicit time step from the maximum
// wave speed over the interior cells
func (c *Euler) TimeStep() (dt float64) {
	var (
		lay    = c.Lay
		speeds = make([]float64, 0, c.Nx*c.Ny)
	)
	for j := 1; j <= c.Ny; j++ {
		for i := 1; i <= c.Nx; i++ {
			ind := c.ind(i, j)
			rho := c.Q.At(lay.IDens, ind)
			u := c.Q.At(lay.IXMom, ind) / rho
			v := c.Q.At(lay.IYMom, ind) / rho
			rhoe := c.Q.At(lay.IEner, ind) - 0.5*rho*(u*u+v*v)
			p := math.Max(rhoe*(c.Gamma-1.), riemann.SmallP)
			cs := math.Sqrt(c.Gamma * p / rho)
			speeds = append(speeds, (math.Abs(u)+cs)/c.dx+(math.Abs(v)+cs)/c.dy)
		}
	}
	dt = c.CFL / floats.Max(speeds)
	return
}

// Step performs one dimensionally split update: an x sweep then a y sweep,
// each parallelized across rows/columns of the grid
func (c *Euler) Step(dt float64) {
	c.fillBCs()
	c.sweepX(dt)
	c.fillBCs()
	c.sweepY(dt)
}

// face solves one interface with the configured solver. Solid faces always
// route through the CGF solver: the HLLC far state branches carry no
// reflecting wall override.
func (c *Euler) face(idir int, UL, UR []float64, isSolid bool) (F []float64) {
	if isSolid || c.Solver == SolverCGF {
		F = riemann.RiemannCGF(idir, c.Lay, c.Gamma, UL, UR, isSolid)
		return
	}
	F = riemann.RiemannHLLC(idir, c.Lay, c.Gamma, UL, UR, false)
	return
}

func (c *Euler) sweepX(dt float64) {
	var wg sync.WaitGroup
	for np := 0; np < c.NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			jmin, jmax := c.pm.GetBucketRange(np)
			for jj := jmin; jj < jmax; jj++ {
				j := jj + 1
				// one flux per face, Nx+1 faces per row
				FFaces := make([][]float64, c.Nx+1)
				for i := 0; i <= c.Nx; i++ {
					UL := c.cell(c.ind(i, j))
					UR := c.cell(c.ind(i+1, j))
					solid := (i == 0 && c.BCs[west] == BC_Reflect) ||
						(i == c.Nx && c.BCs[east] == BC_Reflect)
					FFaces[i] = c.face(riemann.XDir, UL, UR, solid)
				}
				for i := 1; i <= c.Nx; i++ {
					ind := c.ind(i, j)
					for n := 0; n < c.Lay.NVar(); n++ {
						c.Q.Set(n, ind,
							c.Q.At(n, ind)-dt/c.dx*(FFaces[i][n]-FFaces[i-1][n]))
					}
				}
			}
		}(np)
	}
	wg.Wait()
}

func (c *Euler) sweepY(dt float64) {
	var (
		wg sync.WaitGroup
		// partition the columns for the y sweep
		pmCols = utils.NewPartitionMap(c.NP, c.Nx)
	)
	for np := 0; np < c.NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			imin, imax := pmCols.GetBucketRange(np)
			for ii := imin; ii < imax; ii++ {
				i := ii + 1
				FFaces := make([][]float64, c.Ny+1)
				for j := 0; j <= c.Ny; j++ {
					UL := c.cell(c.ind(i, j))
					UR := c.cell(c.ind(i, j+1))
					solid := (j == 0 && c.BCs[south] == BC_Reflect) ||
						(j == c.Ny && c.BCs[north] == BC_Reflect)
					FFaces[j] = c.face(riemann.YDir, UL, UR, solid)
				}
				for j := 1; j <= c.Ny; j++ {
					ind := c.ind(i, j)
					for n := 0; n < c.Lay.NVar(); n++ {
						c.Q.Set(n, ind,
							c.Q.At(n, ind)-dt/c.dy*(FFaces[j][n]-FFaces[j-1][n]))
					}
				}
			}
		}(np)
	}
	wg.Wait()
}

// fillBCs loads the ghost layer: zero gradient for outflow, mirrored state
// with negated normal momentum for a reflecting wall
func (c *Euler) fillBCs() {
	var (
		lay = c.Lay
	)
	reflect := func(U []float64, imom int) []float64 {
		U[imom] = -U[imom]
		return U
	}
	for j := 1; j <= c.Ny; j++ {
		U := c.cell(c.ind(1, j))
		if c.BCs[west] == BC_Reflect {
			U = reflect(U, lay.IXMom)
		}
		c.setCell(c.ind(0, j), U)

		U = c.cell(c.ind(c.Nx, j))
		if c.BCs[east] == BC_Reflect {
			U = reflect(U, lay.IXMom)
		}
		c.setCell(c.ind(c.Nx+1, j), U)
	}
	for i := 0; i <= c.Nx+1; i++ {
		U := c.cell(c.ind(i, 1))
		if c.BCs[south] == BC_Reflect {
			U = reflect(U, lay.IYMom)
		}
		c.setCell(c.ind(i, 0), U)

		U = c.cell(c.ind(i, c.Ny))
		if c.BCs[north] == BC_Reflect {
			U = reflect(U, lay.IYMom)
		}
		c.setCell(c.ind(i, c.Ny+1), U)
	}
}

// DensityProfileX samples cell centered x positions and density along the
// middle row of the grid
func (c *Euler) DensityProfileX() (X, Rho []float64) {
	var (
		j = (c.Ny + 1) / 2
	)
	X = make([]float64, c.Nx)
	Rho = make([]float64, c.Nx)
	for i := 1; i <= c.Nx; i++ {
		X[i-1] = (float64(i) - 0.5) * c.dx
		Rho[i-1] = c.Q.At(c.Lay.IDens, c.ind(i, j))
	}
	return
}

// DensityProfileY samples cell centered y positions and density along the
// middle column of the grid
func (c *Euler) DensityProfileY() (Y, Rho []float64) {
	var (
		i = (c.Nx + 1) / 2
	)
	Y = make([]float64, c.Ny)
	Rho = make([]float64, c.Ny)
	for j := 1; j <= c.Ny; j++ {
		Y[j-1] = (float64(j) - 0.5) * c.dy
		Rho[j-1] = c.Q.At(c.Lay.IDens, c.ind(i, j))
	}
	return
}

// TotalMass integrates density (and each species density) over the interior
func (c *Euler) TotalMass() (mass float64, species []float64) {
	var (
		lay  = c.Lay
		cell = c.dx * c.dy
	)
	species = make([]float64, lay.NSpec)
	for j := 1; j <= c.Ny; j++ {
		for i := 1; i <= c.Nx; i++ {
			ind := c.ind(i, j)
			mass += c.Q.At(lay.IDens, ind) * cell
			for n := 0; n < lay.NSpec; n++ {
				species[n] += c.Q.At(lay.ISpec+n, ind) * cell
			}
		}
	}
	return
}
