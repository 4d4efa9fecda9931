package correlations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
)

func novec() fluids.FluidProperties {
	return fluids.FluidProperties{
		Name:           "Novec 7100",
		DensityLiquid:  1510.0,
		DensityVapor:   9.9,
		SurfaceTension: 0.0136,
		HVap:           112000.0,
		Viscosity:      0.00058,
		KThermal:       0.069,
		Cp:             1183.0,
		TSat:           61.0,
	}
}

func TestZuberCHF(t *testing.T) {
	// Reference value for Novec 7100: ~17.4 W/cm²
	q, err := ZuberCHF(novec(), 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 173600.0, q, 200.0)

	// Finite and positive for every boiling-capable database fluid
	for key, f := range fluids.Database() {
		q, err := ZuberCHF(f, 1.0)
		require.NoErrorf(t, err, "fluid %q", key)
		assert.Truef(t, q > 0 && !math.IsInf(q, 0) && !math.IsNaN(q), "fluid %q: q = %g", key, q)
	}

	// Pressure factor scales linearly
	q2, err := ZuberCHF(novec(), 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 2*q, q2, 1e-6)

	_, err = ZuberCHF(novec(), 0)
	assert.ErrorIs(t, err, fluids.ErrInvalidFluidProperties)

	bad := novec()
	bad.DensityVapor = 0
	_, err = ZuberCHF(bad, 1.0)
	assert.ErrorIs(t, err, fluids.ErrInvalidFluidProperties)
}

func TestKandlikarCHF(t *testing.T) {
	qZuber, err := ZuberCHF(novec(), 1.0)
	require.NoError(t, err)

	// Perfect wetting: closed-form factor at theta = 0
	q0, err := KandlikarCHF(novec(), 0)
	require.NoError(t, err)
	factor := math.Sqrt((2.0 / 16.0) * (2/math.Pi + math.Pi/2))
	assert.InDelta(t, qZuber*factor, q0, 1e-6)

	// The wettability factor decreases monotonically with contact angle
	q30, err := KandlikarCHF(novec(), 30)
	require.NoError(t, err)
	q90, err := KandlikarCHF(novec(), 90)
	require.NoError(t, err)
	assert.Greater(t, q0, q30)
	assert.Greater(t, q30, q90)

	_, err = KandlikarCHF(novec(), 180)
	assert.ErrorIs(t, err, fluids.ErrInvalidFluidProperties)
	_, err = KandlikarCHF(novec(), -1)
	assert.ErrorIs(t, err, fluids.ErrInvalidFluidProperties)
}

func TestLienhardCHF(t *testing.T) {
	qZuber, err := ZuberCHF(novec(), 1.0)
	require.NoError(t, err)

	// Infinite-plate limit: no correction for wide heaters
	qWide, err := LienhardCHF(novec(), 1000.0)
	require.NoError(t, err)
	assert.InDelta(t, qZuber, qWide, 1e-9)

	// Small heaters are enhanced
	lCap := math.Sqrt(novec().SurfaceTension / (G * (novec().DensityLiquid - novec().DensityVapor)))
	smallWidth := 0.1 * lCap * 1000 // L' = 0.1, below the 0.15 branch
	qSmall, err := LienhardCHF(novec(), smallWidth)
	require.NoError(t, err)
	assert.Greater(t, qSmall, qZuber)
	assert.InDelta(t, qZuber*1.14/math.Pow(0.1, 0.25), qSmall, 1e-6)

	// Linear transition branch at L' = 1.0
	qMid, err := LienhardCHF(novec(), 1.0*lCap*1000)
	require.NoError(t, err)
	assert.InDelta(t, qZuber*(1.14-0.14*0.85), qMid, 1e-6)

	_, err = LienhardCHF(novec(), 0)
	assert.ErrorIs(t, err, fluids.ErrInvalidFluidProperties)
}
