// Package fluids holds the thermophysical property sets consumed by the
// correlation library and the coupled solver, plus a small built-in database
// of dielectric coolants and reference fluids.
package fluids

import (
	"errors"
	"fmt"

	"github.com/ghodss/yaml"
)

var ErrInvalidFluidProperties = errors.New("invalid fluid properties")

// SinglePhaseTSat is the saturation temperature [°C] above which a fluid is
// treated as single-phase for CHF purposes: oils and glycols that never boil
// in service get sensible-heat analysis only.
const SinglePhaseTSat = 200.0

// FluidProperties is the property set required by the pool-boiling CHF
// correlations. All quantities are in SI units, temperatures in °C.
type FluidProperties struct {
	Name           string  `json:"name" yaml:"name"`
	DensityLiquid  float64 `json:"density_l" yaml:"density_l"`                       // [kg/m³]
	DensityVapor   float64 `json:"density_v" yaml:"density_v"`                       // [kg/m³]
	SurfaceTension float64 `json:"surface_tension" yaml:"surface_tension"`           // [N/m]
	HVap           float64 `json:"h_vap" yaml:"h_vap"`                               // [J/kg]
	Viscosity      float64 `json:"viscosity" yaml:"viscosity"`                       // [Pa·s]
	KThermal       float64 `json:"thermal_conductivity" yaml:"thermal_conductivity"` // [W/(m·K)]
	Cp             float64 `json:"specific_heat" yaml:"specific_heat"`               // [J/(kg·K)]
	TSat           float64 `json:"boiling_point" yaml:"boiling_point"`               // [°C]
}

func (f FluidProperties) Validate() error {
	check := func(name string, v float64) error {
		if v <= 0 {
			return fmt.Errorf("%w: %s: %s must be positive, got %g",
				ErrInvalidFluidProperties, f.Name, name, v)
		}
		return nil
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"liquid density", f.DensityLiquid},
		{"vapor density", f.DensityVapor},
		{"surface tension", f.SurfaceTension},
		{"latent heat", f.HVap},
		{"viscosity", f.Viscosity},
		{"thermal conductivity", f.KThermal},
		{"specific heat", f.Cp},
	} {
		if err := check(c.name, c.v); err != nil {
			return err
		}
	}
	if f.DensityLiquid <= f.DensityVapor {
		return fmt.Errorf("%w: %s: liquid density %g must exceed vapor density %g",
			ErrInvalidFluidProperties, f.Name, f.DensityLiquid, f.DensityVapor)
	}
	return nil
}

// SinglePhase reports whether the fluid stays liquid at electronics
// temperatures, making the boiling correlations inapplicable.
func (f FluidProperties) SinglePhase() bool {
	return f.TSat > SinglePhaseTSat
}

// TransportProperties is the reduced property set the Marangoni transport
// model and the coupled solver need. SigmaGradT is |dσ/dT|, the magnitude of
// the surface-tension temperature coefficient that drives self-pumping.
type TransportProperties struct {
	Density    float64 `json:"density" yaml:"density"`                           // [kg/m³]
	Viscosity  float64 `json:"viscosity" yaml:"viscosity"`                       // [Pa·s]
	Cp         float64 `json:"specific_heat" yaml:"specific_heat"`               // [J/(kg·K)]
	KThermal   float64 `json:"thermal_conductivity" yaml:"thermal_conductivity"` // [W/(m·K)]
	SigmaGradT float64 `json:"sigma_grad_t" yaml:"sigma_grad_t"`                 // [N/(m·K)]
	HFilm      float64 `json:"h_film" yaml:"h_film"`                             // [m]
	TSat       float64 `json:"boiling_point" yaml:"boiling_point"`               // [°C]
}

// DefaultTransport returns the self-pumping binary mixture the solver was
// calibrated against: a 500 µm film with Δσ ≈ 8 mN/m over ~40 K.
func DefaultTransport() TransportProperties {
	return TransportProperties{
		Density:    1370.0,
		Viscosity:  0.00048,
		Cp:         1180.0,
		KThermal:   0.075,
		SigmaGradT: 0.0002,
		HFilm:      0.0005,
		TSat:       33.0,
	}
}

func (p TransportProperties) Validate() error {
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"density", p.Density},
		{"viscosity", p.Viscosity},
		{"specific heat", p.Cp},
		{"thermal conductivity", p.KThermal},
		{"film thickness", p.HFilm},
	} {
		if c.v <= 0 {
			return fmt.Errorf("%w: transport: %s must be positive, got %g",
				ErrInvalidFluidProperties, c.name, c.v)
		}
	}
	if p.SigmaGradT < 0 {
		return fmt.Errorf("%w: transport: sigma gradient must be non-negative, got %g",
			ErrInvalidFluidProperties, p.SigmaGradT)
	}
	return nil
}

// Alpha returns the thermal diffusivity k/(ρ·cp) [m²/s].
func (p TransportProperties) Alpha() float64 {
	return p.KThermal / (p.Density * p.Cp)
}

// Substrate describes the solid wall the heat load is applied to.
type Substrate struct {
	Density   float64 `json:"density" yaml:"density"`                           // [kg/m³]
	Cp        float64 `json:"specific_heat" yaml:"specific_heat"`               // [J/(kg·K)]
	KThermal  float64 `json:"thermal_conductivity" yaml:"thermal_conductivity"` // [W/(m·K)]
	Thickness float64 `json:"thickness" yaml:"thickness"`                       // [m]
}

// CopperSubstrate is the 2 mm copper base plate the benchmark geometry uses.
func CopperSubstrate() Substrate {
	return Substrate{
		Density:   8960.0,
		Cp:        385.0,
		KThermal:  400.0,
		Thickness: 0.002,
	}
}

func (s Substrate) Validate() error {
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"density", s.Density},
		{"specific heat", s.Cp},
		{"thermal conductivity", s.KThermal},
		{"thickness", s.Thickness},
	} {
		if c.v <= 0 {
			return fmt.Errorf("%w: substrate: %s must be positive, got %g",
				ErrInvalidFluidProperties, c.name, c.v)
		}
	}
	return nil
}

// Alpha returns the substrate thermal diffusivity [m²/s].
func (s Substrate) Alpha() float64 {
	return s.KThermal / (s.Density * s.Cp)
}

// FromYAML parses a fluid database from YAML bytes, keyed by fluid id.
// Reading the bytes from disk is the caller's job.
func FromYAML(data []byte) (map[string]FluidProperties, error) {
	var db map[string]FluidProperties
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("fluid database: %w", err)
	}
	for key, f := range db {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("fluid database entry %q: %w", key, err)
		}
	}
	return db, nil
}
