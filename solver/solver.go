// Package solver implements the coupled thermal-fluid transport solver: an
// explicit, stability-clamped, time-marching finite-difference model of a
// heated substrate cooled by a thin film whose flow is driven by
// surface-tension gradients. Conduction in the solid, Marangoni-driven
// advection in the film, and a regime-dependent convective/boiling
// heat-transfer coefficient are advanced together in time; thermal runaway
// is detected and reported as a result state, never as an error.
package solver

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/marangoni"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/utils"
)

// Tuning gathers the calibration knobs of the coupled solver. The relaxation
// mixes and the boiling power-law cap are empirical stabilization constants,
// not physical laws; the defaults reproduce the validated benchmark runs.
type Tuning struct {
	// VelocityRelax is the per-step blend fraction of the instantaneous
	// Marangoni velocity into the relaxed flow field (0.1 means
	// new = 0.9·old + 0.1·instantaneous). Suppresses gradient noise.
	VelocityRelax float64 `json:"velocity_relax" yaml:"velocity_relax"`
	// CoeffRelax is the same blend fraction for the total heat-transfer
	// coefficient.
	CoeffRelax float64 `json:"coeff_relax" yaml:"coeff_relax"`
	// BoilingCoeff is C in the nucleate boiling power law h = C·ΔT² [W/(m²·K³)].
	BoilingCoeff float64 `json:"boiling_coeff" yaml:"boiling_coeff"`
	// BoilingCap is the ceiling on the boiling coefficient [W/(m²·K)],
	// the physical limit of enhanced nucleate boiling.
	BoilingCap float64 `json:"boiling_cap" yaml:"boiling_cap"`
	// MinFlow is the strictly positive floor added to the mean velocity
	// [m/s], guarding the Re/Nu correlations against zero flow.
	MinFlow float64 `json:"min_flow" yaml:"min_flow"`
	// FluidRateLimit bounds the fluid temperature rate [K/s] against
	// transient blow-up.
	FluidRateLimit float64 `json:"fluid_rate_limit" yaml:"fluid_rate_limit"`
	// LaminarNu is the constant-flux laminar Nusselt number.
	LaminarNu float64 `json:"laminar_nu" yaml:"laminar_nu"`
	// TransitionRe is the Reynolds number above which the Gnielinski
	// turbulent correlation replaces the laminar constant.
	TransitionRe float64 `json:"transition_re" yaml:"transition_re"`
}

// DefaultTuning returns the calibrated constants of the reference runs.
func DefaultTuning() Tuning {
	return Tuning{
		VelocityRelax:  0.1,
		CoeffRelax:     0.01,
		BoilingCoeff:   2000.0,
		BoilingCap:     200000.0,
		MinFlow:        0.01,
		FluidRateLimit: 10000.0,
		LaminarNu:      4.36,
		TransitionRe:   2300.0,
	}
}

func (t Tuning) validate() error {
	if t.VelocityRelax <= 0 || t.VelocityRelax > 1 || t.CoeffRelax <= 0 || t.CoeffRelax > 1 {
		return fmt.Errorf("%w: relaxation fractions must be in (0, 1]", ErrInvalidControls)
	}
	if t.BoilingCoeff < 0 || t.BoilingCap <= 0 || t.MinFlow <= 0 || t.FluidRateLimit <= 0 {
		return fmt.Errorf("%w: tuning constants must be positive", ErrInvalidControls)
	}
	if t.LaminarNu <= 0 || t.TransitionRe <= 0 {
		return fmt.Errorf("%w: Nusselt parameters must be positive", ErrInvalidControls)
	}
	return nil
}

// Controls holds the time-integration settings of a run.
type Controls struct {
	TMax        float64 `json:"t_max" yaml:"t_max"`               // [s] simulated time
	Dt          float64 `json:"dt" yaml:"dt"`                     // [s] explicit time step
	PrimingFlow float64 `json:"priming_flow" yaml:"priming_flow"` // [m/s] initial velocity field
	AmbientTemp float64 `json:"ambient_temp" yaml:"ambient_temp"` // [°C] initial and inlet temperature
	FailureTemp float64 `json:"failure_temp" yaml:"failure_temp"` // [°C] runaway threshold
	LogInterval int     `json:"log_interval" yaml:"log_interval"` // steps between snapshots
}

// DefaultControls returns the benchmark integration settings: 0.5 s at
// dt = 2 µs with a 2 m/s primed flow and the 150 °C runaway threshold.
func DefaultControls() Controls {
	return Controls{
		TMax:        0.5,
		Dt:          2e-6,
		PrimingFlow: 2.0,
		AmbientTemp: 25.0,
		FailureTemp: 150.0,
		LogInterval: 10000,
	}
}

func (c Controls) validate() error {
	if c.Dt <= 0 || c.TMax <= 0 {
		return fmt.Errorf("%w: dt and t_max must be positive, got dt=%g t_max=%g",
			ErrInvalidControls, c.Dt, c.TMax)
	}
	if c.PrimingFlow < 0 {
		return fmt.Errorf("%w: priming flow must be non-negative, got %g",
			ErrInvalidControls, c.PrimingFlow)
	}
	if c.LogInterval < 1 {
		return fmt.Errorf("%w: log interval must be at least 1, got %d",
			ErrInvalidControls, c.LogInterval)
	}
	return nil
}

// Snapshot is one decimated time-series record.
type Snapshot struct {
	Time         float64 `json:"time"`
	TMax         float64 `json:"t_max"`
	FlowMean     float64 `json:"flow_mean"`
	HMean        float64 `json:"h_mean"`
	BoilingRatio float64 `json:"boiling_ratio"`
}

// Result is the immutable outcome of a run. Converged is false when the
// maximum wall temperature crossed the failure threshold and the run was
// terminated early; runaway is an expected physical outcome, not an error.
type Result struct {
	TimeSeries []Snapshot `json:"time_series"`
	FinalTMax  float64    `json:"final_t_max"`
	FinalFlow  float64    `json:"final_flow"`
	FinalH     float64    `json:"final_h"`
	Converged  bool       `json:"converged"`
}

// Diagnostics carries the per-step scalars Step derives from the fields.
type Diagnostics struct {
	UMean        float64
	BoilingRatio float64
}

// Simulation couples 1-D substrate conduction, Marangoni film transport and
// regime-dependent convective/boiling extraction on a shared grid. A
// Simulation is single-threaded: one goroutine per instance; independent
// instances share nothing.
type Simulation struct {
	Geom      Geometry
	Fluid     fluids.TransportProperties
	Substrate fluids.Substrate
	Profile   HeatLoadProfile
	Controls  Controls
	Tuning    Tuning
	Logger    log.FieldLogger

	dx    float64
	dh    float64
	pr    float64
	scale float64 // substrate thermal mass per area [J/(m²·K)]
}

// New builds a simulation for an applied heat flux [W/m²] spread over the
// default centered Gaussian hotspot (σ = 5 nodes). All inputs are validated
// here, before the time-marching loop; the loop itself never fails.
func New(fluxWm2 float64, geom Geometry, fluid fluids.TransportProperties,
	substrate fluids.Substrate, ctl Controls) (*Simulation, error) {
	s := &Simulation{
		Geom:      geom,
		Fluid:     fluid,
		Substrate: substrate,
		Profile:   NewHeatLoad(fluxWm2, GaussianShape(geom.Nodes, 5)),
		Controls:  ctl,
		Tuning:    DefaultTuning(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate re-checks the full configuration; callers that override Profile
// or Tuning after New should call it again.
func (s *Simulation) Validate() error {
	if err := s.Geom.Validate(); err != nil {
		return err
	}
	if err := s.Fluid.Validate(); err != nil {
		return err
	}
	if err := s.Substrate.Validate(); err != nil {
		return err
	}
	if err := s.Controls.validate(); err != nil {
		return err
	}
	if err := s.Tuning.validate(); err != nil {
		return err
	}
	if err := s.Profile.validate(s.Geom.Nodes); err != nil {
		return err
	}
	s.dx = s.Geom.DX()
	s.dh = s.Geom.HydraulicDiameter()
	s.pr = s.Fluid.Cp * s.Fluid.Viscosity / s.Fluid.KThermal
	s.scale = s.Substrate.Density * s.Substrate.Cp * s.Substrate.Thickness
	return nil
}

// InitState allocates the primed starting state for this simulation.
func (s *Simulation) InitState() *ThermalState {
	return newThermalState(s.Geom.Nodes, s.Controls.AmbientTemp, s.Controls.PrimingFlow)
}

// MaxStableDt returns the diffusive stability bound Δx²/α of the substrate.
// The wall update additionally clamps its rate to α/Δx², so runs with a
// larger dt degrade gracefully instead of diverging.
func (s *Simulation) MaxStableDt() float64 {
	return s.dx * s.dx / s.Substrate.Alpha()
}

// convection returns the bulk convective coefficient [W/(m²·K)] for a mean
// film velocity: the constant-flux laminar Nusselt number below the
// transition Reynolds number, the Gnielinski correlation at and above it.
func (s *Simulation) convection(uMean float64) float64 {
	re := s.Fluid.Density * uMean * s.dh / s.Fluid.Viscosity
	nu := s.Tuning.LaminarNu
	if re >= s.Tuning.TransitionRe {
		f := math.Pow(0.79*math.Log(re)-1.64, -2)
		nu = (f / 8) * (re - 1000) * s.pr /
			(1 + 12.7*math.Sqrt(f/8)*(math.Pow(s.pr, 2.0/3.0)-1))
	}
	return nu * s.Fluid.KThermal / s.dh
}

// Step advances the state by one time step. The update sequence is:
// Marangoni velocity from the wall gradient (relaxed), bulk Reynolds/Nusselt
// convection, nucleate boiling enhancement (capped, relaxed), explicit wall
// energy balance clamped to the diffusive stability limit, then fluid
// advection with a finite rate bound and the pinned inlet.
func (s *Simulation) Step(st *ThermalState) Diagnostics {
	var (
		n   = s.Geom.Nodes
		dt  = s.Controls.Dt
		tun = s.Tuning
	)

	// Self-pumping flow from the wall temperature gradient
	dTdx := utils.Gradient(st.TWall, s.dx)
	for i := 0; i < n; i++ {
		uLocal := marangoni.Velocity(dTdx[i], s.Fluid)
		st.UFlow[i] = (1-tun.VelocityRelax)*st.UFlow[i] + tun.VelocityRelax*uLocal
	}
	uMean := stat.Mean(st.UFlow, nil) + tun.MinFlow

	// Bulk convection coefficient from the channel correlations
	hConv := s.convection(uMean)

	// Nucleate boiling enhancement, power law in superheat, hard-capped
	boilingNodes := 0
	for i := 0; i < n; i++ {
		var hBoil float64
		if superheat := st.TWall[i] - s.Fluid.TSat; superheat > 0 {
			hBoil = utils.Clamp(tun.BoilingCoeff*superheat*superheat, 0, tun.BoilingCap)
			boilingNodes++
		}
		st.HTotal[i] = (1-tun.CoeffRelax)*st.HTotal[i] + tun.CoeffRelax*(hConv+hBoil)
	}

	// Wall energy balance per unit surface area [W/m²]:
	//   ρ·cp·t · dT/dt = k·t·d²T/dx² + q″ − h·(T_w − T_f)
	// The conduction term carries the substrate thickness so all terms are
	// per-area; the rate clamp is the explicit-scheme stability limit.
	d2T := utils.SecondGradient(st.TWall, s.dx)
	maxRate := s.Substrate.Alpha() / (s.dx * s.dx)
	kt := s.Substrate.KThermal * s.Substrate.Thickness
	for i := 0; i < n; i++ {
		extraction := st.HTotal[i] * (st.TWall[i] - st.TFluid[i])
		wallRate := (kt*d2T[i] + s.Profile[i] - extraction) / s.scale
		st.TWall[i] += utils.Clamp(wallRate, -maxRate, maxRate) * dt
	}

	// Fluid advection plus convective gain from the freshly updated wall
	dTfdx := utils.Gradient(st.TFluid, s.dx)
	fluidScale := s.Fluid.Density * s.Fluid.Cp * s.Fluid.HFilm
	for i := 0; i < n; i++ {
		gain := st.HTotal[i] * (st.TWall[i] - st.TFluid[i])
		fluidRate := gain/fluidScale - uMean*dTfdx[i]
		st.TFluid[i] += utils.Clamp(fluidRate, -tun.FluidRateLimit, tun.FluidRateLimit) * dt
	}
	// Fixed inlet boundary condition
	st.TFluid[0] = s.Controls.AmbientTemp

	return Diagnostics{
		UMean:        uMean,
		BoilingRatio: float64(boilingNodes) / float64(n),
	}
}

// Run marches the state from t = 0 to TMax, appending a decimated snapshot
// every LogInterval steps and terminating early if the maximum wall
// temperature crosses the failure threshold.
func (s *Simulation) Run() Result {
	st := s.InitState()
	steps := int(s.Controls.TMax / s.Controls.Dt)
	res := Result{}

	var diag Diagnostics
	for t := 0; t < steps; t++ {
		diag = s.Step(st)

		if t%s.Controls.LogInterval == 0 {
			snap := Snapshot{
				Time:         float64(t) * s.Controls.Dt,
				TMax:         floats.Max(st.TWall),
				FlowMean:     diag.UMean,
				HMean:        stat.Mean(st.HTotal, nil),
				BoilingRatio: diag.BoilingRatio,
			}
			res.TimeSeries = append(res.TimeSeries, snap)
			if s.Logger != nil {
				s.Logger.WithFields(log.Fields{
					"time":          fmt.Sprintf("%.4f", snap.Time),
					"t_max":         fmt.Sprintf("%.2f", snap.TMax),
					"flow_mean":     fmt.Sprintf("%.4f", snap.FlowMean),
					"h_mean":        fmt.Sprintf("%.0f", snap.HMean),
					"boiling_ratio": fmt.Sprintf("%.3f", snap.BoilingRatio),
				}).Info("step")
			}
			if snap.TMax > s.Controls.FailureTemp {
				break
			}
		}
	}

	res.FinalTMax = floats.Max(st.TWall)
	res.FinalFlow = diag.UMean
	res.FinalH = stat.Mean(st.HTotal, nil)
	res.Converged = res.FinalTMax < s.Controls.FailureTemp
	return res
}
