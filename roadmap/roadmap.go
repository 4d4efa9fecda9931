// Package roadmap evaluates processor thermal envelopes against the CHF
// limits of candidate coolants: given a chip's power and die area it computes
// average and hotspot heat fluxes and classifies every fluid in a database
// against the worst-case hotspot flux.
package roadmap

import (
	"fmt"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/correlations"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
)

// DefaultHotspotMultiplier is the assumed ratio of hotspot to average die
// heat flux when a chip spec does not provide one.
const DefaultHotspotMultiplier = 2.0

// ChipSpec is a processor thermal envelope.
type ChipSpec struct {
	Name              string  `json:"chip_name" yaml:"chip_name"`
	TDPWatts          float64 `json:"tdp_watts" yaml:"tdp_watts"`
	DieAreaCm2        float64 `json:"die_area_cm2" yaml:"die_area_cm2"`
	HotspotMultiplier float64 `json:"hotspot_multiplier" yaml:"hotspot_multiplier"`
}

func (c ChipSpec) Validate() error {
	if c.TDPWatts <= 0 || c.DieAreaCm2 <= 0 {
		return fmt.Errorf("%w: chip %q needs positive TDP and die area, got %g W / %g cm²",
			fluids.ErrInvalidFluidProperties, c.Name, c.TDPWatts, c.DieAreaCm2)
	}
	if c.HotspotMultiplier < 0 {
		return fmt.Errorf("%w: chip %q hotspot multiplier must be non-negative",
			fluids.ErrInvalidFluidProperties, c.Name)
	}
	return nil
}

// FluidVerdict is the per-fluid outcome of a chip analysis. SinglePhase
// fluids carry no CHF or margin figures.
type FluidVerdict struct {
	Fluid              string
	CHFWCm2            float64
	Status             correlations.Status
	Message            string
	MarginPercent      float64
	UtilizationPercent float64
}

// ChipAnalysis is the complete stability report for one chip.
type ChipAnalysis struct {
	Chip            ChipSpec
	AverageFluxWCm2 float64
	HotspotFluxWCm2 float64
	Fluids          []FluidVerdict
}

// AnalyzeChip classifies every fluid in the database against the chip's
// hotspot heat flux using the Zuber limit and the standard 70% safety
// factor. Fluids are evaluated in sorted key order so reports are stable.
func AnalyzeChip(chip ChipSpec, db map[string]fluids.FluidProperties) (ChipAnalysis, error) {
	if err := chip.Validate(); err != nil {
		return ChipAnalysis{}, err
	}
	mult := chip.HotspotMultiplier
	if mult == 0 {
		mult = DefaultHotspotMultiplier
	}
	avgFlux := chip.TDPWatts / chip.DieAreaCm2
	hotFlux := avgFlux * mult

	analysis := ChipAnalysis{
		Chip:            chip,
		AverageFluxWCm2: avgFlux,
		HotspotFluxWCm2: hotFlux,
	}
	for _, key := range fluids.Keys(db) {
		fluid := db[key]
		if fluid.SinglePhase() {
			analysis.Fluids = append(analysis.Fluids, FluidVerdict{
				Fluid:   fluid.Name,
				Status:  correlations.StatusSinglePhase,
				Message: "Not applicable - sensible heat only",
			})
			continue
		}
		margin, err := correlations.SafetyMargin(hotFlux, fluid, correlations.DefaultSafetyFactor)
		if err != nil {
			return ChipAnalysis{}, fmt.Errorf("chip %q fluid %q: %w", chip.Name, key, err)
		}
		analysis.Fluids = append(analysis.Fluids, FluidVerdict{
			Fluid:              fluid.Name,
			CHFWCm2:            margin.CHFLimitWCm2,
			Status:             margin.Status,
			Message:            margin.Message,
			MarginPercent:      margin.MarginPercent,
			UtilizationPercent: margin.UtilizationPercent,
		})
	}
	return analysis, nil
}
