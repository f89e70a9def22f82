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
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/conslaw/InputParameters"
	"github.com/notargets/conslaw/equations"
	"github.com/notargets/conslaw/utils"
)

// FluxCmd represents the flux command
var FluxCmd = &cobra.Command{
	Use:   "flux",
	Short: "Evaluate the flux and flux Jacobian of a conservation law at one state",
	Long: `
Builds a conservation law from a YAML parameter file or from flags, then prints
F(U), A(U) and the characteristic speeds at the state U.

conslaw flux -f params.yaml
conslaw flux --law LinearSystem --matrix "0,4;1,0" --state 1,2
conslaw flux --law Euler1D --gamma 1.4 --state 1,0,2.5`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			lp  *InputParameters.LawParameters
			law equations.ConservationLaw
		)
		if err = viper.BindPFlags(cmd.Flags()); err != nil {
			return
		}
		if lp, err = lawParameters(cmd); err != nil {
			return
		}
		lp.Print()
		if law, err = lp.NewLaw(); err != nil {
			return
		}
		U := lp.DefaultState(law)
		if err = InputParameters.CheckState(law, U); err != nil {
			return
		}
		FluxReport(cmd.OutOrStdout(), law, U)
		return
	},
}

func init() {
	rootCmd.AddCommand(FluxCmd)
	FluxCmd.Flags().StringP("file", "f", "", "YAML law parameters file, flags given on the command line override it")
	FluxCmd.Flags().StringP("law", "l", "Euler1D", "law to evaluate: LinearAdvection, InviscidBurgers, LinearSystem, Euler1D")
	FluxCmd.Flags().Float64P("gamma", "g", 1.4, "ratio of specific heats (Euler1D)")
	FluxCmd.Flags().Float64P("a", "a", 1, "advection speed (LinearAdvection)")
	FluxCmd.Flags().StringP("matrix", "m", "", "coefficient matrix (LinearSystem), rows separated by ';' like \"0,1;1,0\"")
	FluxCmd.Flags().StringP("state", "s", "", "conserved state U, comma separated like 1,0,2.5")
}

// lawParameters reads the parameter file if there is one, then applies flags.
// Without a file the flag defaults and config file values are used.
func lawParameters(cmd *cobra.Command) (lp *InputParameters.LawParameters, err error) {
	var (
		fileName = viper.GetString("file")
		fromFile = len(fileName) != 0
		flags    = cmd.Flags()
	)
	lp = &InputParameters.LawParameters{}
	if fromFile {
		var data []byte
		if data, err = os.ReadFile(fileName); err != nil {
			return nil, fmt.Errorf("unable to read law parameters: %w", err)
		}
		if err = lp.Parse(data); err != nil {
			return nil, err
		}
	}
	override := func(name string) bool { return !fromFile || flags.Changed(name) }
	if override("law") {
		lp.Law = viper.GetString("law")
	}
	if override("gamma") {
		lp.Gamma = viper.GetFloat64("gamma")
	}
	if override("a") {
		lp.AdvectionSpeed = viper.GetFloat64("a")
	}
	if override("matrix") {
		var rows [][]float64
		if rows, err = ParseMatrix(viper.GetString("matrix")); err != nil {
			return nil, err
		}
		if len(rows) != 0 {
			lp.Matrix = rows
		}
	}
	if override("state") {
		var state []float64
		if state, err = ParseFloats(viper.GetString("state")); err != nil {
			return nil, err
		}
		if len(state) != 0 {
			lp.State = state
		}
	}
	return
}

func FluxReport(w io.Writer, law equations.ConservationLaw, U utils.Vector) {
	fmt.Fprintf(w, "%v\n", law)
	fmt.Fprint(w, U.Print("U"))
	fmt.Fprint(w, law.F(U).Print("F(U)"))
	fmt.Fprint(w, law.A(U).Print("A(U)"))
	if c, ok := law.(equations.Characteristic); ok {
		fmt.Fprintf(w, "Characteristic speeds = %v\n", c.Eigenvalues(U))
	}
	fmt.Fprintf(w, "Max wave speed = %8.5f\n", equations.MaxWaveSpeed(law, U))
	if e, ok := law.(*equations.Euler1D); ok {
		for pf := equations.Velocity; pf <= equations.Enthalpy; pf++ {
			fmt.Fprintf(w, "%-16s = %8.5f\n", pf, e.GetFlowFunction(U, pf))
		}
	}
}
