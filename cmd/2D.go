/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gofv/InputParameters"
	"github.com/notargets/gofv/model_problems/EulerFV"
)

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional finite volume solver on a uniform grid",
	Long:  `Two dimensional finite volume solver on a uniform grid, input parameters from a YAML file`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("2D called")
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		prof, _ := cmd.Flags().GetBool("cpuprofile")
		ip := processInput(icFile)
		if prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		Run2D(ip)
	},
}

func processInput(icFile string) (ip *InputParameters.InputParameters) {
	var (
		err error
	)
	ip = InputParameters.NewInputParameters()
	if len(icFile) == 0 {
		exampleFile := `
########################################
Title: "Sod Shock Tube"
CFL: 0.8
FinalTime: 0.2
Gamma: 1.4
Nx: 128
Ny: 8
NSpecies: 0
RiemannSolver: CGF # Can be "HLLC"
Case: SodX # Can be "SodY" or "Wall"
########################################
`
		fmt.Printf("Using default input parameters - supply a YAML file (-I, --inputConditionsFile) like:%s\n", exampleFile)
	} else {
		var data []byte
		if data, err = os.ReadFile(icFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	ip.Print()
	return
}

func Run2D(ip *InputParameters.InputParameters) {
	c := EulerFV.NewEuler(ip.Gamma, ip.CFL, ip.FinalTime, ip.Nx, ip.Ny, ip.NSpecies,
		EulerFV.NewSolverType(ip.RiemannSolver), EulerFV.NewCaseType(ip.Case))
	c.Run()
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- FinalTime\n\t- RiemannSolver")
	TwoDCmd.Flags().Bool("cpuprofile", false, "write a CPU profile for the run")
}
