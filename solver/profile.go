package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// HeatLoadProfile is the per-node applied heat flux [W/m²].
type HeatLoadProfile []float64

// GaussianShape returns a normalized hotspot shape: a Gaussian centered in
// the domain with the given width in node units, scaled so its spatial mean
// is exactly 1. Multiplying by a scalar flux therefore conserves the total
// injected power.
func GaussianShape(nodes int, sigmaNodes float64) []float64 {
	shape := make([]float64, nodes)
	center := float64(nodes / 2)
	for i := range shape {
		d := float64(i) - center
		shape[i] = math.Exp(-d * d / (2 * sigmaNodes * sigmaNodes))
	}
	floats.Scale(1/stat.Mean(shape, nil), shape)
	return shape
}

// UniformShape returns a flat unit shape.
func UniformShape(nodes int) []float64 {
	shape := make([]float64, nodes)
	for i := range shape {
		shape[i] = 1
	}
	return shape
}

// NewHeatLoad scales a normalized shape by the applied flux [W/m²].
func NewHeatLoad(fluxWm2 float64, shape []float64) HeatLoadProfile {
	p := make(HeatLoadProfile, len(shape))
	for i, s := range shape {
		p[i] = fluxWm2 * s
	}
	return p
}

func (p HeatLoadProfile) validate(nodes int) error {
	if len(p) != nodes {
		return fmt.Errorf("%w: heat load profile has %d entries for %d nodes",
			ErrInvalidGeometry, len(p), nodes)
	}
	return nil
}
