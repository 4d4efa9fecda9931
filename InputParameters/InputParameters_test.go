package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/solver"
)

func TestDefaults(t *testing.T) {
	ip := Defaults()
	assert.NoError(t, ip.Validate())
	assert.InDelta(t, 1000.0/7.5*1e4, ip.HeatFluxWm2(), 1e-6)
	assert.Equal(t, 50, ip.Geometry.Nodes)
}

func TestParseOverlay(t *testing.T) {
	ip := Defaults()
	data := []byte(`
Title: "H100 Sweep"
PowerWatts: 700
Geometry:
  nodes: 100
Controls:
  t_max: 0.25
`)
	require.NoError(t, ip.Parse(data))

	// Parsed fields replace defaults; untouched fields survive
	assert.Equal(t, "H100 Sweep", ip.Title)
	assert.Equal(t, 700.0, ip.PowerWatts)
	assert.Equal(t, 100, ip.Geometry.Nodes)
	assert.Equal(t, 0.25, ip.Controls.TMax)
	assert.Equal(t, 7.5, ip.DieAreaCm2)
	assert.Equal(t, "novec7100", ip.Fluid)

	assert.Error(t, ip.Parse([]byte("Title: [unbalanced")))
}

func TestValidate(t *testing.T) {
	ip := Defaults()
	ip.PowerWatts = 0
	assert.ErrorIs(t, ip.Validate(), solver.ErrInvalidControls)

	ip = Defaults()
	ip.HotspotSigma = 0
	assert.ErrorIs(t, ip.Validate(), solver.ErrInvalidControls)

	ip = Defaults()
	ip.Geometry.Nodes = 1
	assert.ErrorIs(t, ip.Validate(), solver.ErrInvalidGeometry)
}
