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

// ChfCmd represents the chf command
var ChfCmd = &cobra.Command{
	Use:   "chf",
	Short: "Critical heat flux limits for the fluid database",
	Long: `
Evaluates the selected CHF correlation over the fluid database. The Zuber
(1959) hydrodynamic limit is the default; Kandlikar adds wettability and
Lienhard corrects for heater size.

thermbench chf `,
	Run: func(cmd *cobra.Command, args []string) {
		correlation, _ := cmd.Flags().GetString("correlation")
		angle, _ := cmd.Flags().GetFloat64("contactAngle")
		width, _ := cmd.Flags().GetFloat64("heaterWidth")
		dbFile, _ := cmd.Flags().GetString("fluidsFile")

		db := fluids.Database()
		if dbFile != "" {
			data, err := os.ReadFile(dbFile)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			if db, err = fluids.FromYAML(data); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}

		var chf correlations.CHFFunc
		switch correlation {
		case "kandlikar":
			chf = func(f fluids.FluidProperties) (float64, error) {
				return correlations.KandlikarCHF(f, angle)
			}
		case "lienhard":
			chf = func(f fluids.FluidProperties) (float64, error) {
				return correlations.LienhardCHF(f, width)
			}
		case "zuber":
			fallthrough
		default:
			chf = func(f fluids.FluidProperties) (float64, error) {
				return correlations.ZuberCHF(f, 1.0)
			}
		}

		fmt.Printf("%-20s %-14s %s\n", "Fluid", "CHF [W/cm²]", "T_sat [°C]")
		for _, key := range fluids.Keys(db) {
			fluid := db[key]
			if fluid.SinglePhase() {
				fmt.Printf("%-20s %-14s %8.1f\n", fluid.Name, "single-phase", fluid.TSat)
				continue
			}
			q, err := chf(fluid)
			if err != nil {
				fmt.Printf("%-20s error: %s\n", fluid.Name, err.Error())
				continue
			}
			fmt.Printf("%-20s %-14.1f %8.1f\n", fluid.Name, q/1e4, fluid.TSat)
		}
	},
}

func init() {
	rootCmd.AddCommand(ChfCmd)
	ChfCmd.Flags().StringP("correlation", "c", "zuber", "CHF correlation: zuber, kandlikar or lienhard")
	ChfCmd.Flags().Float64("contactAngle", 30, "contact angle in degrees (kandlikar)")
	ChfCmd.Flags().Float64("heaterWidth", 10, "heater width in mm (lienhard)")
	ChfCmd.Flags().StringP("fluidsFile", "F", "", "fluid database file in YAML format")
}
