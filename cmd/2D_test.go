package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/gofv/InputParameters"
)

func TestRun2D(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
CFL: 0.5
FinalTime: 0.1
Gamma: 1.4
Nx: 64
Ny: 4
NSpecies: 1
RiemannSolver: HLLC # Can be CGF
Case: SodX
`)
	input := InputParameters.NewInputParameters()
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.CFL, 0.5)
	assert.Equal(t, input.FinalTime, 0.1)
	assert.Equal(t, input.RiemannSolver, "HLLC")
	assert.Equal(t, input.NSpecies, 1)
	input.Print()
	assert.Equal(t, input.Case, "SodX")
}
