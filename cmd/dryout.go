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
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/InputParameters"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/correlations"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/solver"
)

// DryoutCmd represents the dryout command
var DryoutCmd = &cobra.Command{
	Use:   "dryout",
	Short: "Run the coupled Marangoni thermal-fluid dryout simulation",
	Long: `
Runs the explicit time-marching finite-difference model of a heated substrate
cooled by a thin self-pumping film, and reports whether the wall temperature
stabilizes below the runaway threshold. Standard fluids are compared against
their Zuber CHF limits alongside the full transient solve.

thermbench dryout `,
	Run: func(cmd *cobra.Command, args []string) {
		ip := InputParameters.Defaults()
		if inputFile, _ := cmd.Flags().GetString("inputFile"); inputFile != "" {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			if err = ip.Parse(data); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}
		if power, _ := cmd.Flags().GetFloat64("power"); power > 0 {
			ip.PowerWatts = power
		}
		if area, _ := cmd.Flags().GetFloat64("area"); area > 0 {
			ip.DieAreaCm2 = area
		}
		if err := ip.Validate(); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}

		if cpuProfile, _ := cmd.Flags().GetBool("cpuprofile"); cpuProfile {
			defer profile.Start(profile.CPUProfile).Stop()
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		runDryout(ip, verboseLogger(cmd), asJSON)
	},
}

func init() {
	rootCmd.AddCommand(DryoutCmd)
	DryoutCmd.Flags().StringP("inputFile", "I", "", "simulation parameters file in YAML format")
	DryoutCmd.Flags().Float64P("power", "p", 0, "chip power in Watts (overrides input file)")
	DryoutCmd.Flags().Float64P("area", "a", 0, "die area in cm² (overrides input file)")
	DryoutCmd.Flags().Bool("json", false, "emit the simulation result as JSON")
	DryoutCmd.Flags().Bool("cpuprofile", false, "write a CPU profile for the run")
}

func verboseLogger(cmd *cobra.Command) log.FieldLogger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return log.StandardLogger()
	}
	return nil
}

func runDryout(ip *InputParameters.SimulationParameters, logger log.FieldLogger, asJSON bool) {
	if !asJSON {
		ip.Print()
		printCHFComparison(ip.HeatFluxWm2() / 1e4)
	}

	sim, err := solver.New(ip.HeatFluxWm2(), ip.Geometry, ip.Transport, ip.Substrate, ip.Controls)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	sim.Tuning = ip.Tuning
	sim.Profile = solver.NewHeatLoad(ip.HeatFluxWm2(), solver.GaussianShape(ip.Geometry.Nodes, ip.HotspotSigma))
	sim.Logger = logger
	if err = sim.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}

	result := sim.Run()

	if asJSON {
		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(out))
		return
	}
	fmt.Printf("\nMax Temperature:     %8.1f °C\n", result.FinalTMax)
	fmt.Printf("Induced Flow:        %8.2f m/s\n", result.FinalFlow)
	fmt.Printf("Heat Transfer Coeff: %8.0f W/m²K\n", result.FinalH)
	switch {
	case result.Converged && result.FinalTMax < 90:
		fmt.Println("STATUS: STABLE - self-pumping film held the heat load")
	case result.Converged:
		fmt.Println("STATUS: MARGINAL - stable but above 90 °C")
	default:
		fmt.Println("STATUS: THERMAL RUNAWAY")
	}
}

// printCHFComparison shows how the same flux fares against standard fluids
// limited by pool boiling, without Marangoni self-pumping.
func printCHFComparison(fluxWCm2 float64) {
	db := fluids.Database()
	fmt.Printf("\n%-20s %-12s %-12s %s\n", "Fluid", "CHF Limit", "Your Flux", "Status")
	for _, key := range fluids.Keys(db) {
		fluid := db[key]
		if fluid.SinglePhase() {
			continue
		}
		m, err := correlations.SafetyMargin(fluxWCm2, fluid, correlations.DefaultSafetyFactor)
		if err != nil {
			continue
		}
		fmt.Printf("%-20s %-12.1f %-12.1f %s\n", fluid.Name, m.CHFLimitWCm2, fluxWCm2, m.Status)
	}
}
