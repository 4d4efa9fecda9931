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

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/correlations"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/roadmap"
)

// RoadmapCmd represents the roadmap command
var RoadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Chip thermal stability analysis across the fluid database",
	Long: `
Computes average and hotspot heat fluxes for a chip envelope and classifies
every candidate fluid against its Zuber CHF limit with the standard 70%
safety factor.

thermbench roadmap `,
	Run: func(cmd *cobra.Command, args []string) {
		chip := roadmap.ChipSpec{}
		chip.Name, _ = cmd.Flags().GetString("chip")
		chip.TDPWatts, _ = cmd.Flags().GetFloat64("tdp")
		chip.DieAreaCm2, _ = cmd.Flags().GetFloat64("area")
		chip.HotspotMultiplier, _ = cmd.Flags().GetFloat64("hotspot")

		if chipFile, _ := cmd.Flags().GetString("chipFile"); chipFile != "" {
			data, err := os.ReadFile(chipFile)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			if err = yaml.Unmarshal(data, &chip); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}

		analysis, err := roadmap.AnalyzeChip(chip, fluids.Database())
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}

		fmt.Printf("Chip: %s  (%.0f W over %.2f cm²)\n", chip.Name, chip.TDPWatts, chip.DieAreaCm2)
		fmt.Printf("Average flux: %8.1f W/cm²\n", analysis.AverageFluxWCm2)
		fmt.Printf("Hotspot flux: %8.1f W/cm²\n\n", analysis.HotspotFluxWCm2)
		fmt.Printf("%-20s %-12s %-18s %s\n", "Fluid", "CHF", "Status", "Message")
		for _, v := range analysis.Fluids {
			if v.Status == correlations.StatusSinglePhase {
				fmt.Printf("%-20s %-12s %-18s %s\n", v.Fluid, "-", v.Status, v.Message)
				continue
			}
			fmt.Printf("%-20s %-12.1f %-18s %s\n", v.Fluid, v.CHFWCm2, v.Status, v.Message)
		}
	},
}

func init() {
	rootCmd.AddCommand(RoadmapCmd)
	RoadmapCmd.Flags().StringP("chip", "c", "B200", "chip name for the report")
	RoadmapCmd.Flags().Float64P("tdp", "t", 1000, "chip power in Watts")
	RoadmapCmd.Flags().Float64P("area", "a", 7.5, "die area in cm²")
	RoadmapCmd.Flags().Float64("hotspot", 2.0, "hotspot to average flux multiplier")
	RoadmapCmd.Flags().StringP("chipFile", "C", "", "chip spec file in YAML format")
}
