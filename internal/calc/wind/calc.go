package wind

import "math"

const airDensity = 1.225 // kg/m^3

type Input struct {
	RadiusM     float64 `json:"radius_m"`
	HeightM     float64 `json:"height_m"`
	WindSpeedMS float64 `json:"wind_speed_ms"`
	ShapeFactor float64 `json:"shape_factor"`
	GustFactor  float64 `json:"gust_factor"`
}

type Result struct {
	ForceN  float64 `json:"force_n"`
	ForceKN float64 `json:"force_kn"`
	AreaM2  float64 `json:"area_m2"`
	Notes   string  `json:"notes"`
}

func Calculate(in Input) Result {
	if in.ShapeFactor <= 0 {
		in.ShapeFactor = 1.2
	}
	if in.GustFactor <= 0 {
		in.GustFactor = 1.0
	}
	f := Force(in.RadiusM, in.HeightM, in.WindSpeedMS, in.ShapeFactor, in.GustFactor)
	return Result{
		ForceN:  f,
		ForceKN: f / 1000.0,
		AreaM2:  2 * math.Pi * in.RadiusM * in.HeightM,
		Notes:   "Wind load on cylindrical face (projected side area).",
	}
}

// Force returns the wind load in newtons on the side of a cylinder of the
// given radius and height. Non-positive geometry or a negative wind speed
// yields zero rather than an error: batch callers feed unchecked samples
// through here and rely on the zero clamp.
func Force(radius, height, windSpeed, shapeFactor, gustFactor float64) float64 {
	if radius <= 0 || height <= 0 || windSpeed < 0 {
		return 0
	}
	area := 2 * math.Pi * radius * height
	dynamicPressure := 0.5 * airDensity * windSpeed * windSpeed
	return dynamicPressure * area * shapeFactor * gustFactor
}
