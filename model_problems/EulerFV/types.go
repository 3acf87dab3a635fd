package EulerFV

import (
	"fmt"
	"strings"
)

type SolverType uint

const (
	SolverCGF SolverType = iota
	SolverHLLC
)

var (
	SolverNames = map[string]SolverType{
		"cgf":  SolverCGF,
		"hllc": SolverHLLC,
	}
	SolverPrintNames = []string{"CGF (two shock)", "HLLC"}
)

func (st SolverType) Print() (txt string) {
	txt = SolverPrintNames[st]
	return
}

func NewSolverType(label string) (st SolverType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if st, ok = SolverNames[label]; !ok {
		err = fmt.Errorf("unable to use Riemann solver named %s", label)
		panic(err)
	}
	return
}

type CaseType uint

const (
	CASE_SodX CaseType = iota
	CASE_SodY
	CASE_Wall
)

var (
	CaseNames = map[string]CaseType{
		"sodx": CASE_SodX,
		"sody": CASE_SodY,
		"wall": CASE_Wall,
	}
	CasePrintNames = []string{"Sod Shock Tube (X)", "Sod Shock Tube (Y)", "Reflecting Wall"}
)

func (ct CaseType) Print() (txt string) {
	txt = CasePrintNames[ct]
	return
}

func NewCaseType(label string) (ct CaseType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if ct, ok = CaseNames[label]; !ok {
		err = fmt.Errorf("unable to use case named %s", label)
		panic(err)
	}
	return
}
