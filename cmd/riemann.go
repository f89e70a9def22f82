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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/conslaw/equations"
	"github.com/notargets/conslaw/riemann"
)

type RiemannProblem struct {
	Gamma       float64
	Left, Right riemann.Primitive
	Time, X0    float64
	N           int // Number of sample points on [0,1]
}

// RiemannCmd represents the riemann command
var RiemannCmd = &cobra.Command{
	Use:   "riemann",
	Short: "Exact solution of the 1D Euler Riemann problem",
	Long: `
Solves the Riemann problem between two constant states (rho,u,p) separated by a
diaphragm at x0, and prints the solution sampled on [0,1] at the given time.
The defaults are the Sod shock tube.

conslaw riemann --left 1,0,1000 --right 1,0,0.01 --time 0.012 --n 21`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			rp = &RiemannProblem{}
		)
		if err = viper.BindPFlags(cmd.Flags()); err != nil {
			return
		}
		rp.Gamma = viper.GetFloat64("gamma")
		rp.Time = viper.GetFloat64("time")
		rp.X0 = viper.GetFloat64("x0")
		rp.N = viper.GetInt("n")
		if rp.Left, err = parsePrimitive(viper.GetString("left")); err != nil {
			return
		}
		if rp.Right, err = parsePrimitive(viper.GetString("right")); err != nil {
			return
		}
		return RunRiemann(cmd.OutOrStdout(), rp)
	},
}

func init() {
	rootCmd.AddCommand(RiemannCmd)
	RiemannCmd.Flags().Float64P("gamma", "g", 1.4, "ratio of specific heats")
	RiemannCmd.Flags().StringP("left", "L", "1,0,1", "left state rho,u,p")
	RiemannCmd.Flags().StringP("right", "R", "0.125,0,0.1", "right state rho,u,p")
	RiemannCmd.Flags().Float64P("time", "t", 0.2, "time at which to sample the solution")
	RiemannCmd.Flags().Float64("x0", 0.5, "diaphragm position")
	RiemannCmd.Flags().IntP("n", "n", 11, "number of sample points on [0,1]")
}

func parsePrimitive(s string) (W riemann.Primitive, err error) {
	var vals []float64
	if vals, err = ParseFloats(s); err != nil {
		return
	}
	if len(vals) != 3 {
		err = fmt.Errorf("need three values rho,u,p, have [%s]", s)
		return
	}
	W = riemann.Primitive{Rho: vals[0], U: vals[1], P: vals[2]}
	return
}

func RunRiemann(w io.Writer, rp *RiemannProblem) (err error) {
	var (
		ex *riemann.Exact
		eq = equations.NewEuler1D(rp.Gamma)
	)
	if rp.Time <= 0 {
		return fmt.Errorf("time must be positive, have %v", rp.Time)
	}
	if rp.N < 2 {
		return fmt.Errorf("need at least two sample points, have %d", rp.N)
	}
	if ex, err = riemann.NewExact(eq, rp.Left, rp.Right); err != nil {
		return
	}
	fmt.Fprintf(w, "%v\n", eq)
	fmt.Fprintf(w, "Left  [%v]\nRight [%v]\n", rp.Left, rp.Right)
	if ex.Vacuum() {
		fmt.Fprintf(w, "Vacuum generated between the rarefactions\n")
	} else {
		p, u := ex.Star()
		rhoL, rhoR := ex.StarDensities()
		fmt.Fprintf(w, "Star: p = %10.6f, u = %10.6f, rhoL = %10.6f, rhoR = %10.6f\n", p, u, rhoL, rhoR)
	}
	fmt.Fprint(w, ex.FluxOnTimeAxis().Print("F(x0)"))
	fmt.Fprintf(w, "%10s %12s %12s %12s\n", "x", "rho", "u", "p")
	for i := 0; i < rp.N; i++ {
		x := float64(i) / float64(rp.N-1)
		W := ex.Sample((x - rp.X0) / rp.Time)
		fmt.Fprintf(w, "%10.5f %12.6f %12.6f %12.6f\n", x, W.Rho, W.U, W.P)
	}
	return
}
