package correlations

import (
	"fmt"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
)

// Boiling curve constants. The curve is a qualitative reconstruction blending
// the closed-form Zuber CHF with assumed regime boundaries; the CHF superheat
// in particular is a calibration constant, not derived from fluid properties.
const (
	// NaturalConvectionLimit is the superheat [°C] below which no bubbles
	// nucleate and single-phase natural convection applies.
	NaturalConvectionLimit = 5.0

	// CHFSuperheat is the assumed superheat [°C] at which CHF occurs. Most
	// fluids peak at 20-40 °C; a per-fluid derivation is an open question.
	CHFSuperheat = 30.0

	// TransitionWidth is the superheat span [°C] of the unstable transition
	// regime collapsing from CHF to the minimum film-boiling flux.
	TransitionWidth = 5.0

	// MinFluxFraction is the film-boiling minimum heat flux as a fraction
	// of CHF (the Leidenfrost floor).
	MinFluxFraction = 0.1

	// naturalConvectionH is the assumed single-phase coefficient [W/(m²·K)].
	naturalConvectionH = 500.0

	// filmRadiationSlope is the slow linear rise of film boiling with
	// superheat, standing in for radiation enhancement.
	filmRadiationSlope = 0.005
)

// BoilingCurve synthesizes the four-regime pool boiling curve for a fluid
// over superheats [dtMin, dtMax]: natural convection, nucleate boiling rising
// as a cubic power law to CHF, a linear transition collapse, and film
// boiling. Returns parallel slices of superheat [°C] and heat flux [W/cm²].
func BoilingCurve(fluid fluids.FluidProperties, dtMin, dtMax float64, nPoints int) (deltaT, qFlux []float64, err error) {
	if nPoints < 2 {
		return nil, nil, fmt.Errorf("%w: boiling curve needs at least 2 points, got %d",
			fluids.ErrInvalidFluidProperties, nPoints)
	}
	if dtMax <= dtMin {
		return nil, nil, fmt.Errorf("%w: superheat range [%g, %g] is empty",
			fluids.ErrInvalidFluidProperties, dtMin, dtMax)
	}
	qCHFm2, err := ZuberCHF(fluid, 1.0)
	if err != nil {
		return nil, nil, err
	}
	qCHF := qCHFm2 / 1e4 // W/cm²
	qMin := qCHF * MinFluxFraction

	deltaT = make([]float64, nPoints)
	qFlux = make([]float64, nPoints)
	step := (dtMax - dtMin) / float64(nPoints-1)
	for i := range deltaT {
		dt := dtMin + float64(i)*step
		deltaT[i] = dt
		switch {
		case dt < NaturalConvectionLimit:
			qFlux[i] = naturalConvectionH * dt / 1e4
		case dt < CHFSuperheat:
			// Rohsenow-like cubic rise from onset to CHF
			frac := (dt - NaturalConvectionLimit) / (CHFSuperheat - NaturalConvectionLimit)
			qFlux[i] = frac * frac * frac * qCHF
		case dt < CHFSuperheat+TransitionWidth:
			tFrac := (dt - CHFSuperheat) / TransitionWidth
			qFlux[i] = qCHF - (qCHF-qMin)*tFrac
		default:
			qFlux[i] = qMin * (1 + filmRadiationSlope*(dt-CHFSuperheat-TransitionWidth))
		}
	}
	return deltaT, qFlux, nil
}
