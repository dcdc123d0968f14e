package lca

import "strings"

// IntensityBand is an industry benchmark range for one intensity metric.
type IntensityBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Benchmark holds per-metal industry intensity bands used as a plausibility
// reference for predictions. The bands do not currently feed the confidence
// formula numerically; they only select which benchmark table is present.
// TODO: fold energy/water/CO2 band distance into the confidence heuristic
// once calibration data for titanium is available.
type Benchmark struct {
	EnergyIntensity IntensityBand `json:"energy_intensity"`
	WaterIntensity  IntensityBand `json:"water_intensity"`
	CO2Intensity    IntensityBand `json:"co2_intensity"`
}

// industryBenchmarks keys are lower-case metal names. Titanium has no
// published band set in the source data and is intentionally absent.
var industryBenchmarks = map[string]Benchmark{
	"aluminum": {
		EnergyIntensity: IntensityBand{Min: 12.0, Max: 25.0, Avg: 18.5},
		WaterIntensity:  IntensityBand{Min: 8.0, Max: 20.0, Avg: 12.0},
		CO2Intensity:    IntensityBand{Min: 10.0, Max: 20.0, Avg: 15.0},
	},
	"copper": {
		EnergyIntensity: IntensityBand{Min: 15.0, Max: 30.0, Avg: 22.0},
		WaterIntensity:  IntensityBand{Min: 10.0, Max: 25.0, Avg: 16.0},
		CO2Intensity:    IntensityBand{Min: 12.0, Max: 25.0, Avg: 18.0},
	},
	"steel": {
		EnergyIntensity: IntensityBand{Min: 18.0, Max: 35.0, Avg: 26.0},
		WaterIntensity:  IntensityBand{Min: 12.0, Max: 30.0, Avg: 20.0},
		CO2Intensity:    IntensityBand{Min: 15.0, Max: 30.0, Avg: 22.0},
	},
}

// BenchmarkFor returns the benchmark bands for a metal, if published.
func BenchmarkFor(metal string) (Benchmark, bool) {
	b, ok := industryBenchmarks[strings.ToLower(metal)]
	return b, ok
}

// BenchmarkMetals lists the metals with published benchmark bands.
func BenchmarkMetals() []string {
	return []string{"aluminum", "copper", "steel"}
}
