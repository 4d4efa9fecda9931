package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/InputParameters"
	"github.com/nickharris808/HPC-Thermal-Stability-Benchmark/solver"
)

func TestDryoutInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
PowerWatts: 700.
DieAreaCm2: 7.0
Fluid: novec7100
Geometry:
  nodes: 40
Controls:
  t_max: 0.01
  log_interval: 500
`)
	input := InputParameters.Defaults()
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.PowerWatts, 700.)
	assert.Equal(t, input.DieAreaCm2, 7.0)
	assert.Equal(t, input.Geometry.Nodes, 40)
	assert.Equal(t, input.Controls.TMax, 0.01)
	input.Print()
	assert.Equal(t, input.HeatFluxWm2(), 1e6)

	// The parsed parameters must build a runnable simulation
	sim, err := solver.New(input.HeatFluxWm2(), input.Geometry, input.Transport,
		input.Substrate, input.Controls)
	if err != nil {
		panic(err)
	}
	res := sim.Run()
	assert.Equal(t, res.Converged, true)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"dryout", "chf", "curve", "roadmap"} {
		if !names[want] {
			t.Errorf("command %q not registered", want)
		}
	}
}
