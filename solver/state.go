package solver

import "github.com/nickharris808/HPC-Thermal-Stability-Benchmark/utils"

// ThermalState is the per-node solver state: wall and fluid temperature
// fields [°C], the relaxed self-pumping velocity field [m/s], and the total
// heat-transfer coefficient field [W/(m²·K)]. All four slices always have
// length equal to the node count. The state is owned by a single simulation
// run and mutated in place by Step.
type ThermalState struct {
	TWall  []float64
	TFluid []float64
	UFlow  []float64
	HTotal []float64
}

// StartupSeed is the wall temperature perturbation [°C] applied at the
// center node so the Marangoni feedback has a gradient to latch onto.
const StartupSeed = 0.1

func newThermalState(nodes int, ambient, primingFlow float64) *ThermalState {
	st := &ThermalState{
		TWall:  utils.ConstArray(nodes, ambient),
		TFluid: utils.ConstArray(nodes, ambient),
		UFlow:  utils.ConstArray(nodes, primingFlow),
		HTotal: make([]float64, nodes),
	}
	st.TWall[nodes/2] += StartupSeed
	return st
}

// Clone deep-copies the state, for callers that want to diff steps.
func (st *ThermalState) Clone() *ThermalState {
	cp := &ThermalState{
		TWall:  make([]float64, len(st.TWall)),
		TFluid: make([]float64, len(st.TFluid)),
		UFlow:  make([]float64, len(st.UFlow)),
		HTotal: make([]float64, len(st.HTotal)),
	}
	copy(cp.TWall, st.TWall)
	copy(cp.TFluid, st.TFluid)
	copy(cp.UFlow, st.UFlow)
	copy(cp.HTotal, st.HTotal)
	return cp
}
