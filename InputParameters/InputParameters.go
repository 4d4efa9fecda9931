package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/fluids"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/solver"
)

// Parameters obtained from the YAML input file
type SimulationParameters struct {
	Title        string                     `json:"Title" yaml:"Title"`
	PowerWatts   float64                    `json:"PowerWatts" yaml:"PowerWatts"`
	DieAreaCm2   float64                    `json:"DieAreaCm2" yaml:"DieAreaCm2"`
	Fluid        string                     `json:"Fluid" yaml:"Fluid"`               // database key for CHF comparison tables
	Geometry     solver.Geometry            `json:"Geometry" yaml:"Geometry"`
	Transport    fluids.TransportProperties `json:"Transport" yaml:"Transport"`
	Substrate    fluids.Substrate           `json:"Substrate" yaml:"Substrate"`
	Controls     solver.Controls            `json:"Controls" yaml:"Controls"`
	Tuning       solver.Tuning              `json:"Tuning" yaml:"Tuning"`
	HotspotSigma float64                    `json:"HotspotSigma" yaml:"HotspotSigma"` // Gaussian hotspot width in node units
}

// Defaults returns the benchmark configuration: a 1000 W / 7.5 cm² die on
// the 50-node 500 µm channel with the self-pumping mixture.
func Defaults() *SimulationParameters {
	return &SimulationParameters{
		Title:        "B200 Class Dryout Benchmark",
		PowerWatts:   1000,
		DieAreaCm2:   7.5,
		Fluid:        "novec7100",
		Geometry:     solver.DefaultGeometry(),
		Transport:    fluids.DefaultTransport(),
		Substrate:    fluids.CopperSubstrate(),
		Controls:     solver.DefaultControls(),
		Tuning:       solver.DefaultTuning(),
		HotspotSigma: 5,
	}
}

// Parse overlays YAML input onto the current parameter values.
func (ip *SimulationParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// HeatFluxWm2 returns the average applied heat flux in W/m².
func (ip *SimulationParameters) HeatFluxWm2() float64 {
	return ip.PowerWatts / ip.DieAreaCm2 * 1e4
}

// Validate checks the cross-field invariants before a run is built.
func (ip *SimulationParameters) Validate() error {
	if ip.PowerWatts <= 0 || ip.DieAreaCm2 <= 0 {
		return fmt.Errorf("%w: power and die area must be positive, got %g W / %g cm²",
			solver.ErrInvalidControls, ip.PowerWatts, ip.DieAreaCm2)
	}
	if ip.HotspotSigma <= 0 {
		return fmt.Errorf("%w: hotspot sigma must be positive, got %g",
			solver.ErrInvalidControls, ip.HotspotSigma)
	}
	return ip.Geometry.Validate()
}

func (ip *SimulationParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.1f\t\t= PowerWatts\n", ip.PowerWatts)
	fmt.Printf("%8.2f\t\t= DieAreaCm2\n", ip.DieAreaCm2)
	fmt.Printf("%8.1f\t\t= HeatFlux [W/cm²]\n", ip.HeatFluxWm2()/1e4)
	fmt.Printf("[%s]\t\t= Fluid\n", ip.Fluid)
	fmt.Printf("[%d]\t\t\t= Nodes\n", ip.Geometry.Nodes)
	fmt.Printf("%8.5f\t\t= TMax [s]\n", ip.Controls.TMax)
	fmt.Printf("%8.2e\t\t= Dt [s]\n", ip.Controls.Dt)
	fmt.Printf("%8.2f\t\t= PrimingFlow [m/s]\n", ip.Controls.PrimingFlow)
	fmt.Printf("%8.1f\t\t= FailureTemp [°C]\n", ip.Controls.FailureTemp)
}
