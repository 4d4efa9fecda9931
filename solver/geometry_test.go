package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gonum.org/v1/gonum/stat"
)

func TestGeometryValidate(t *testing.T) {
	g := DefaultGeometry()
	assert.NoError(t, g.Validate())

	bad := g
	bad.Width = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidGeometry)

	bad = g
	bad.Nodes = 2
	assert.ErrorIs(t, bad.Validate(), ErrInvalidGeometry)
}

func TestGeometryDerived(t *testing.T) {
	g := DefaultGeometry()
	assert.InDelta(t, 0.01/50.0, g.DX(), 1e-15)

	// D_h = 2·W·H/(W+H) for the 5 mm x 500 µm channel
	want := 2 * 0.005 * 0.0005 / (0.005 + 0.0005)
	assert.InDelta(t, want, g.HydraulicDiameter(), 1e-15)
	assert.Greater(t, g.HydraulicDiameter(), 0.0)
}

func TestGaussianShape(t *testing.T) {
	shape := GaussianShape(50, 5)
	assert.Len(t, shape, 50)

	// Normalized so scaling by a flux conserves total power
	assert.InDelta(t, 1.0, stat.Mean(shape, nil), 1e-12)

	// Hotspot peaks at the center node
	peak := 0
	for i, v := range shape {
		if v > shape[peak] {
			peak = i
		}
		assert.Greater(t, v, 0.0, "node %d", i)
	}
	assert.Equal(t, 25, peak)
}

func TestHeatLoad(t *testing.T) {
	load := NewHeatLoad(1e6, UniformShape(10))
	assert.Len(t, []float64(load), 10)
	for _, q := range load {
		assert.Equal(t, 1e6, q)
	}
	assert.NoError(t, load.validate(10))
	assert.ErrorIs(t, load.validate(12), ErrInvalidGeometry)
}
