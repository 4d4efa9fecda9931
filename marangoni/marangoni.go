// Package marangoni models surface-tension-gradient ("self-pumping") flow in
// a thin liquid film: a Couette profile driven by Marangoni shear stress at
// the free interface, with no-slip at the wall.
package marangoni

import (
	"math"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
)

// G is standard gravitational acceleration [m/s²].
const G = 9.81

// ShearStress returns the Marangoni interface stress τ = |dσ/dT|·|dT/dx| [Pa].
// Only the magnitude of the induced pumping is modeled, not its direction;
// fluids tabulated with a negative tension slope drive the same stress.
func ShearStress(dTdx float64, p fluids.TransportProperties) float64 {
	return math.Abs(p.SigmaGradT) * math.Abs(dTdx)
}

// Velocity returns the film-averaged self-pumping velocity [m/s] for a wall
// temperature gradient [K/m]:
//
//	ū = h·τ/(2μ),  τ = |dσ/dT|·|dT/dx|
//
// the exact average of the linear Couette profile over the film thickness.
// It is linear in |dT/dx| and zero at zero gradient.
func Velocity(dTdx float64, p fluids.TransportProperties) float64 {
	return p.HFilm * ShearStress(dTdx, p) / (2 * p.Viscosity)
}

// Number returns the Marangoni number Ma = Δσ·L/(μ·α), the ratio of surface
// tension forces to viscous-diffusive damping. Ma well above 100 means
// surface-tension-driven transport dominates diffusion.
func Number(deltaSigma, lChar, mu, alpha float64) float64 {
	return deltaSigma * lChar / (mu * alpha)
}

// BondNumber returns Bo = ρ·g·L²/σ. Bo below 1 means surface tension
// dominates gravity at the film scale, so the thin-film approximation holds.
func BondNumber(rho, lChar, sigma float64) float64 {
	return rho * G * lChar * lChar / sigma
}

// VelocityProfile samples the linear Couette profile u(y) = (τ/μ)·y at n
// evenly spaced heights across the film, y ∈ [0, h]. A verification aid; the
// solver uses the film-averaged Velocity directly.
func VelocityProfile(h, tau, mu float64, n int) (y, u []float64) {
	if n < 2 {
		n = 2
	}
	y = make([]float64, n)
	u = make([]float64, n)
	step := h / float64(n-1)
	for i := range y {
		y[i] = float64(i) * step
		u[i] = tau / mu * y[i]
	}
	return
}
