package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/correlations"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
)

func TestAnalyzeChip(t *testing.T) {
	chip := ChipSpec{Name: "B200", TDPWatts: 1000, DieAreaCm2: 7.5}
	analysis, err := AnalyzeChip(chip, fluids.Database())
	require.NoError(t, err)

	assert.InDelta(t, 133.3, analysis.AverageFluxWCm2, 0.1)
	assert.InDelta(t, 266.7, analysis.HotspotFluxWCm2, 0.1, "default 2x hotspot multiplier")
	require.Len(t, analysis.Fluids, len(fluids.Database()))

	byName := map[string]FluidVerdict{}
	for _, v := range analysis.Fluids {
		byName[v.Fluid] = v
	}

	// Dielectric coolants are far beyond their pool-boiling limits here
	assert.Equal(t, correlations.StatusCriticalFailure, byName["Novec 7100"].Status)
	assert.Equal(t, correlations.StatusCriticalFailure, byName["FC-72"].Status)

	// Water CHF (~111 W/cm²) is also below a 267 W/cm² hotspot
	assert.Equal(t, correlations.StatusCriticalFailure, byName["Water"].Status)

	// Oils never get a CHF verdict
	assert.Equal(t, correlations.StatusSinglePhase, byName["Mineral Oil"].Status)
	assert.Zero(t, byName["Mineral Oil"].CHFWCm2)
}

func TestAnalyzeChipModestLoad(t *testing.T) {
	// A 150 W chip over 6 cm² with no hotspot concentration: 25 W/cm²
	chip := ChipSpec{Name: "Mobile SoC", TDPWatts: 150, DieAreaCm2: 6, HotspotMultiplier: 1}
	analysis, err := AnalyzeChip(chip, fluids.Database())
	require.NoError(t, err)
	assert.InDelta(t, 25.0, analysis.HotspotFluxWCm2, 1e-9)

	for _, v := range analysis.Fluids {
		if v.Fluid == "Water" {
			assert.Equal(t, correlations.StatusSafe, v.Status)
			assert.Greater(t, v.MarginPercent, 50.0)
		}
	}
}

func TestAnalyzeChipOrderingAndValidation(t *testing.T) {
	chip := ChipSpec{Name: "X", TDPWatts: 100, DieAreaCm2: 5}
	a1, err := AnalyzeChip(chip, fluids.Database())
	require.NoError(t, err)
	a2, err := AnalyzeChip(chip, fluids.Database())
	require.NoError(t, err)
	assert.Equal(t, a1.Fluids, a2.Fluids, "verdict order must be stable")

	_, err = AnalyzeChip(ChipSpec{Name: "bad", TDPWatts: 0, DieAreaCm2: 5}, fluids.Database())
	assert.ErrorIs(t, err, fluids.ErrInvalidFluidProperties)

	_, err = AnalyzeChip(ChipSpec{Name: "bad", TDPWatts: 100, DieAreaCm2: -1}, fluids.Database())
	assert.ErrorIs(t, err, fluids.ErrInvalidFluidProperties)
}
