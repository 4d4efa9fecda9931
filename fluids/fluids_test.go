package fluids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	good := Database()["novec7100"]
	assert.NoError(t, good.Validate())

	bad := good
	bad.DensityVapor = 0
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFluidProperties)

	bad = good
	bad.SurfaceTension = -0.01
	assert.ErrorIs(t, bad.Validate(), ErrInvalidFluidProperties)

	// Liquid must be denser than vapor
	bad = good
	bad.DensityVapor = bad.DensityLiquid + 1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidFluidProperties)
}

func TestDatabase(t *testing.T) {
	db := Database()
	require.NotEmpty(t, db)
	for key, f := range db {
		assert.NoErrorf(t, f.Validate(), "database entry %q must validate", key)
	}

	// Oils never boil in service and are flagged single-phase
	assert.True(t, db["mineraloil"].SinglePhase())
	assert.True(t, db["pao6"].SinglePhase())
	assert.False(t, db["novec7100"].SinglePhase())

	f, ok := Lookup("water")
	require.True(t, ok)
	assert.Equal(t, "Water", f.Name)
	_, ok = Lookup("unobtanium")
	assert.False(t, ok)

	keys := Keys(db)
	assert.Len(t, keys, len(db))
	assert.True(t, sortedStrings(keys))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

func TestFromYAML(t *testing.T) {
	data := []byte(`
myfluid:
  name: "My Fluid"
  density_l: 1500
  density_v: 10
  surface_tension: 0.013
  h_vap: 110000
  viscosity: 0.0006
  thermal_conductivity: 0.07
  specific_heat: 1200
  boiling_point: 60
`)
	db, err := FromYAML(data)
	require.NoError(t, err)
	require.Contains(t, db, "myfluid")
	assert.Equal(t, "My Fluid", db["myfluid"].Name)
	assert.Equal(t, 1500.0, db["myfluid"].DensityLiquid)

	// Invalid entries are rejected at parse time
	bad := []byte(`
broken:
  name: "Broken"
  density_l: -1
  density_v: 10
  surface_tension: 0.013
  h_vap: 110000
  viscosity: 0.0006
  thermal_conductivity: 0.07
  specific_heat: 1200
  boiling_point: 60
`)
	_, err = FromYAML(bad)
	assert.ErrorIs(t, err, ErrInvalidFluidProperties)
}

func TestTransportAndSubstrate(t *testing.T) {
	tr := DefaultTransport()
	assert.NoError(t, tr.Validate())
	assert.InDelta(t, 0.075/(1370.0*1180.0), tr.Alpha(), 1e-15)

	tr.HFilm = 0
	assert.ErrorIs(t, tr.Validate(), ErrInvalidFluidProperties)

	sub := CopperSubstrate()
	assert.NoError(t, sub.Validate())
	assert.InDelta(t, 400.0/(8960.0*385.0), sub.Alpha(), 1e-15)

	sub.Thickness = -0.001
	assert.ErrorIs(t, sub.Validate(), ErrInvalidFluidProperties)
}
