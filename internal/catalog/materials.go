package catalog

import (
	"fmt"
	"sort"
)

// Material holds the mechanical and cost properties of a construction
// material. All values are SI except cost.
type Material struct {
	Density        float64 `json:"density"`         // kg/m^3
	ElasticModulus float64 `json:"elastic_modulus"` // Pa
	YieldStrength  float64 `json:"yield_strength"`  // Pa
	PoissonRatio   float64 `json:"poisson_ratio"`
	CostPerM3      float64 `json:"cost_per_m3"` // USD/m^3
}

// SeismicZone scales expected ground acceleration for a hazard zone.
type SeismicZone struct {
	ZoneFactor  float64 `json:"zone_factor"`
	Description string  `json:"description"`
}

var materials = map[string]Material{
	"concrete": {
		Density:        2400,
		ElasticModulus: 25e9,
		YieldStrength:  30e6,
		PoissonRatio:   0.2,
		CostPerM3:      100,
	},
	"steel": {
		Density:        7850,
		ElasticModulus: 200e9,
		YieldStrength:  250e6,
		PoissonRatio:   0.3,
		CostPerM3:      2000,
	},
	"composite": {
		Density:        3000,
		ElasticModulus: 30e9,
		YieldStrength:  40e6,
		PoissonRatio:   0.25,
		CostPerM3:      150,
	},
}

var seismicZones = map[string]SeismicZone{
	"Zone I":   {ZoneFactor: 0.1, Description: "Very Low Damage Risk Zone"},
	"Zone II":  {ZoneFactor: 0.16, Description: "Low Damage Risk Zone"},
	"Zone III": {ZoneFactor: 0.24, Description: "Moderate Damage Risk Zone"},
	"Zone IV":  {ZoneFactor: 0.36, Description: "High Damage Risk Zone"},
	"Zone V":   {ZoneFactor: 0.48, Description: "Very High Damage Risk Zone"},
}

// MaterialByName returns the catalog entry for name.
func MaterialByName(name string) (Material, error) {
	m, ok := materials[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material %q", name)
	}
	return m, nil
}

// ZoneByName returns the seismic zone entry for name.
func ZoneByName(name string) (SeismicZone, error) {
	z, ok := seismicZones[name]
	if !ok {
		return SeismicZone{}, fmt.Errorf("unknown seismic zone %q", name)
	}
	return z, nil
}

// MaterialNames lists the catalog keys in a stable order.
func MaterialNames() []string {
	return sortedKeys(materials)
}

// ZoneNames lists the seismic zone keys in a stable order.
func ZoneNames() []string {
	return sortedKeys(seismicZones)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
