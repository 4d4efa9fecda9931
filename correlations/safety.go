package correlations

import (
	"fmt"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
)

// DefaultSafetyFactor is the industry-standard ceiling on CHF utilization:
// never operate above 70% of the critical heat flux.
const DefaultSafetyFactor = 0.70

// warningMarginPercent is the margin below which operation is flagged even
// when under the safety factor.
const warningMarginPercent = 50.0

// Status classifies an operating point against the CHF limit.
type Status int

const (
	StatusSafe Status = iota
	StatusWarning
	StatusDanger
	StatusCriticalFailure
	StatusSinglePhase
)

var statusNames = []string{"SAFE", "WARNING", "DANGER", "CRITICAL_FAILURE", "SINGLE_PHASE"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Margin is the outcome of a safety-margin evaluation. Fluxes are in W/cm²,
// matching the units thermal engineers quote die heat fluxes in.
type Margin struct {
	Fluid              string
	OperatingFluxWCm2  float64
	CHFLimitWCm2       float64
	AllowableFluxWCm2  float64
	MarginWCm2         float64
	MarginPercent      float64
	UtilizationPercent float64
	Status             Status
	Message            string
}

// SafetyMargin evaluates an operating heat flux [W/cm²] against the Zuber
// CHF of a fluid. Classification thresholds, in order: at or above CHF is
// CriticalFailure; above CHF·safetyFactor is Danger; margin below 50% is
// Warning; otherwise Safe.
func SafetyMargin(operatingFluxWCm2 float64, fluid fluids.FluidProperties, safetyFactor float64) (Margin, error) {
	return Classify(operatingFluxWCm2, fluid, func(f fluids.FluidProperties) (float64, error) {
		return ZuberCHF(f, 1.0)
	}, safetyFactor)
}

// Classify is the safety classifier with a pluggable CHF correlation, so
// Kandlikar or Lienhard variants reuse the same thresholds.
func Classify(operatingFluxWCm2 float64, fluid fluids.FluidProperties, chf CHFFunc, safetyFactor float64) (Margin, error) {
	if safetyFactor <= 0 || safetyFactor > 1 {
		return Margin{}, fmt.Errorf("%w: safety factor must be in (0, 1], got %g",
			fluids.ErrInvalidFluidProperties, safetyFactor)
	}
	qCHFm2, err := chf(fluid)
	if err != nil {
		return Margin{}, err
	}
	qCHF := qCHFm2 / 1e4
	qAllow := qCHF * safetyFactor

	m := Margin{
		Fluid:              fluid.Name,
		OperatingFluxWCm2:  operatingFluxWCm2,
		CHFLimitWCm2:       qCHF,
		AllowableFluxWCm2:  qAllow,
		MarginWCm2:         qAllow - operatingFluxWCm2,
		MarginPercent:      (qCHF - operatingFluxWCm2) / qCHF * 100,
		UtilizationPercent: operatingFluxWCm2 / qCHF * 100,
	}
	switch {
	case operatingFluxWCm2 >= qCHF:
		m.Status = StatusCriticalFailure
		m.Message = "Operating above CHF - immediate dry-out and thermal runaway"
	case operatingFluxWCm2 > qAllow:
		m.Status = StatusDanger
		m.Message = fmt.Sprintf("Exceeds %.0f%% safety threshold - high failure risk", safetyFactor*100)
	case m.MarginPercent < warningMarginPercent:
		m.Status = StatusWarning
		m.Message = "Limited safety margin - transients may trigger CHF"
	default:
		m.Status = StatusSafe
		m.Message = "Adequate margin for steady-state operation"
	}
	return m, nil
}
