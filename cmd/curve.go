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

	"github.com/spf13/cobra"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/correlations"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
)

// CurveCmd represents the curve command
var CurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Synthesize the four-regime boiling curve for a fluid",
	Long: `
Prints heat flux versus surface superheat across natural convection, nucleate
boiling, the transition collapse at CHF and film boiling, as CSV suitable for
external plotting.

thermbench curve `,
	Run: func(cmd *cobra.Command, args []string) {
		key, _ := cmd.Flags().GetString("fluid")
		dtMin, _ := cmd.Flags().GetFloat64("dtMin")
		dtMax, _ := cmd.Flags().GetFloat64("dtMax")
		points, _ := cmd.Flags().GetInt("points")

		fluid, ok := fluids.Lookup(key)
		if !ok {
			fmt.Printf("error: unknown fluid %q (see 'thermbench chf' for the database)\n", key)
			os.Exit(1)
		}
		deltaT, qFlux, err := correlations.BoilingCurve(fluid, dtMin, dtMax, points)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("# %s boiling curve (superheat °C, flux W/cm²)\n", fluid.Name)
		fmt.Println("delta_t,q_flux")
		for i := range deltaT {
			fmt.Printf("%.3f,%.4f\n", deltaT[i], qFlux[i])
		}
	},
}

func init() {
	rootCmd.AddCommand(CurveCmd)
	CurveCmd.Flags().StringP("fluid", "f", "novec7100", "fluid database key")
	CurveCmd.Flags().Float64("dtMin", 1, "minimum superheat in °C")
	CurveCmd.Flags().Float64("dtMax", 100, "maximum superheat in °C")
	CurveCmd.Flags().IntP("points", "n", 200, "number of curve points")
}
