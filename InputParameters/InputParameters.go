package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title         string  `yaml:"Title"`
	CFL           float64 `yaml:"CFL"`
	FinalTime     float64 `yaml:"FinalTime"`
	Gamma         float64 `yaml:"Gamma"`
	Nx            int     `yaml:"Nx"`
	Ny            int     `yaml:"Ny"`
	NSpecies      int     `yaml:"NSpecies"`
	RiemannSolver string  `yaml:"RiemannSolver"` // "CGF" or "HLLC"
	Case          string  `yaml:"Case"`          // "SodX", "SodY" or "Wall"
}

// NewInputParameters fills in the defaults
func NewInputParameters() *InputParameters {
	return &InputParameters{
		Title:         "Sod Shock Tube",
		CFL:           0.8,
		FinalTime:     0.2,
		Gamma:         1.4,
		Nx:            128,
		Ny:            8,
		NSpecies:      0,
		RiemannSolver: "CGF",
		Case:          "SodX",
	}
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("[%dx%d]\t\t= Grid\n", ip.Nx, ip.Ny)
	fmt.Printf("[%d]\t\t\t= Species\n", ip.NSpecies)
	fmt.Printf("[%s]\t\t\t= Riemann Solver\n", ip.RiemannSolver)
	fmt.Printf("[%s]\t\t= Case\n", ip.Case)
}
