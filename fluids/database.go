package fluids

import "sort"

// Database returns the built-in coolant property table at 1 atm saturation
// conditions. Values are vendor datasheet / standard reference figures; the
// two oils are single-phase and excluded from CHF analysis automatically.
func Database() map[string]FluidProperties {
	return map[string]FluidProperties{
		"novec7100": {
			Name:           "Novec 7100",
			DensityLiquid:  1510.0,
			DensityVapor:   9.9,
			SurfaceTension: 0.0136,
			HVap:           112000.0,
			Viscosity:      0.00058,
			KThermal:       0.069,
			Cp:             1183.0,
			TSat:           61.0,
		},
		"novec649": {
			Name:           "Novec 649",
			DensityLiquid:  1600.0,
			DensityVapor:   13.4,
			SurfaceTension: 0.0108,
			HVap:           88000.0,
			Viscosity:      0.00064,
			KThermal:       0.059,
			Cp:             1103.0,
			TSat:           49.0,
		},
		"fc72": {
			Name:           "FC-72",
			DensityLiquid:  1680.0,
			DensityVapor:   13.1,
			SurfaceTension: 0.0100,
			HVap:           88000.0,
			Viscosity:      0.00064,
			KThermal:       0.057,
			Cp:             1100.0,
			TSat:           56.0,
		},
		"hfo1336mzz": {
			Name:           "HFO-1336mzz-Z",
			DensityLiquid:  1370.0,
			DensityVapor:   10.0,
			SurfaceTension: 0.0130,
			HVap:           195000.0,
			Viscosity:      0.00048,
			KThermal:       0.075,
			Cp:             1180.0,
			TSat:           33.0,
		},
		"hfo1234ze": {
			Name:           "HFO-1234ze",
			DensityLiquid:  1240.0,
			DensityVapor:   6.5,
			SurfaceTension: 0.0112,
			HVap:           184000.0,
			Viscosity:      0.00042,
			KThermal:       0.075,
			Cp:             1340.0,
			TSat:           -19.0,
		},
		"ethanol": {
			Name:           "Ethanol",
			DensityLiquid:  757.0,
			DensityVapor:   1.44,
			SurfaceTension: 0.0177,
			HVap:           846000.0,
			Viscosity:      0.00043,
			KThermal:       0.167,
			Cp:             3000.0,
			TSat:           78.3,
		},
		"methanol": {
			Name:           "Methanol",
			DensityLiquid:  751.0,
			DensityVapor:   1.22,
			SurfaceTension: 0.0189,
			HVap:           1100000.0,
			Viscosity:      0.00033,
			KThermal:       0.190,
			Cp:             2800.0,
			TSat:           64.7,
		},
		"water": {
			Name:           "Water",
			DensityLiquid:  958.0,
			DensityVapor:   0.598,
			SurfaceTension: 0.0589,
			HVap:           2257000.0,
			Viscosity:      0.000282,
			KThermal:       0.679,
			Cp:             4217.0,
			TSat:           100.0,
		},
		"mineraloil": {
			Name:           "Mineral Oil",
			DensityLiquid:  849.0,
			DensityVapor:   3.0,
			SurfaceTension: 0.0300,
			HVap:           250000.0,
			Viscosity:      0.0200,
			KThermal:       0.130,
			Cp:             1900.0,
			TSat:           310.0,
		},
		"pao6": {
			Name:           "PAO-6 Coolant",
			DensityLiquid:  820.0,
			DensityVapor:   2.8,
			SurfaceTension: 0.0280,
			HVap:           240000.0,
			Viscosity:      0.0310,
			KThermal:       0.140,
			Cp:             2100.0,
			TSat:           290.0,
		},
	}
}

// Lookup fetches a fluid by database key.
func Lookup(key string) (FluidProperties, bool) {
	f, ok := Database()[key]
	return f, ok
}

// Keys returns the database keys in sorted order, for stable listings.
func Keys(db map[string]FluidProperties) []string {
	keys := make([]string, 0, len(db))
	for k := range db {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
