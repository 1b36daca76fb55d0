package analysis

import (
	"fmt"
	"math"

	"rotunda/internal/calc/beam"
	"rotunda/internal/calc/column"
	"rotunda/internal/calc/seismic"
	"rotunda/internal/calc/standards"
	"rotunda/internal/calc/wind"
	"rotunda/internal/catalog"
)

// Input describes one circular building: a ring of NumColumns columns of
// NumFloors storeys, connected by beams along the chords of the ring.
type Input struct {
	RadiusM      float64 `json:"radius_m"`
	NumColumns   int     `json:"num_columns"`
	NumFloors    int     `json:"num_floors"`
	FloorHeightM float64 `json:"floor_height_m"`
	Material     string  `json:"material"`
	LiveLoadKNM2 float64 `json:"live_load_knm2"`
	WindSpeedMS  float64 `json:"wind_speed_ms"`
	SeismicZone  string  `json:"seismic_zone"`
	BeamDesign   string  `json:"beam_design"`
	ColumnDesign string  `json:"column_design"`
}

type Result struct {
	TotalHeightM    float64 `json:"total_height_m"`
	TotalLiveLoadKN float64 `json:"total_live_load_kn"`
	WindForceN      float64 `json:"wind_force_n"`
	// TotalWeight and SeismicLoad stay in the engine's native unit: live
	// load in kN plus self-weight as density*volume, summed as-is. The
	// stress label divides the same mixture by area, so converting either
	// term would shift every label.
	TotalWeight float64 `json:"total_weight"`
	SeismicLoad float64 `json:"seismic_load"`
	BeamSpanM   float64 `json:"beam_span_m"`

	Beam   beam.Result   `json:"beam"`
	Column column.Result `json:"column"`

	// Stress is the combined-load-over-combined-area proxy used as the
	// dataset label; Strain is stress over the elastic modulus.
	Stress float64 `json:"stress"`
	Strain float64 `json:"strain"`

	// Material take-off priced from the catalog's cost-per-m3.
	BeamVolumeM3   float64 `json:"beam_volume_m3"`
	ColumnVolumeM3 float64 `json:"column_volume_m3"`
	MaterialCost   float64 `json:"material_cost_usd"`

	Standards standards.Result `json:"standards"`
}

func Calculate(in Input) (Result, error) {
	if in.RadiusM <= 0 || in.NumFloors <= 0 || in.FloorHeightM <= 0 {
		return Result{}, fmt.Errorf("invalid parameters: radius, num_floors and floor_height must be positive")
	}
	if in.NumColumns < 3 {
		return Result{}, fmt.Errorf("invalid num_columns: a closed ring needs at least 3 columns")
	}
	if in.LiveLoadKNM2 < 0 || in.WindSpeedMS < 0 {
		return Result{}, fmt.Errorf("invalid parameters: live_load and wind_speed must be non-negative")
	}
	material, err := catalog.MaterialByName(in.Material)
	if err != nil {
		return Result{}, err
	}
	zone, err := catalog.ZoneByName(in.SeismicZone)
	if err != nil {
		return Result{}, err
	}

	totalHeight := float64(in.NumFloors) * in.FloorHeightM
	planArea := math.Pi * in.RadiusM * in.RadiusM
	totalLiveLoad := in.LiveLoadKNM2 * planArea * float64(in.NumFloors)
	windForce := wind.Force(in.RadiusM, totalHeight, in.WindSpeedMS, 1.2, 1.0)
	totalWeight := totalLiveLoad + material.Density*planArea*totalHeight
	seismicLoad := seismic.BaseShear(zone.ZoneFactor, totalWeight, totalHeight, 1.0, 3.0)

	// Chord between adjacent columns on the ring.
	beamSpan := 2 * in.RadiusM * math.Sin(math.Pi/float64(in.NumColumns))

	beamRes, err := beam.Calculate(beam.Input{Design: in.BeamDesign, SpanM: beamSpan, Material: in.Material})
	if err != nil {
		return Result{}, err
	}
	colRes, err := column.Calculate(column.Input{Design: in.ColumnDesign, HeightM: in.FloorHeightM, Material: in.Material})
	if err != nil {
		return Result{}, err
	}

	stress := (windForce + seismicLoad) / (beamRes.AreaM2 + colRes.AreaM2)
	strain := stress / material.ElasticModulus

	beamVolume := beamRes.AreaM2 * beamSpan * float64(in.NumColumns) * float64(in.NumFloors)
	columnVolume := colRes.AreaM2 * totalHeight * float64(in.NumColumns)

	stdRes, err := standards.Calculate(standards.Input{
		RadiusM:      in.RadiusM,
		NumFloors:    in.NumFloors,
		FloorHeightM: in.FloorHeightM,
		WindSpeedMS:  in.WindSpeedMS,
		LiveLoadKNM2: in.LiveLoadKNM2,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		TotalHeightM:    totalHeight,
		TotalLiveLoadKN: totalLiveLoad,
		WindForceN:      windForce,
		TotalWeight:     totalWeight,
		SeismicLoad:     seismicLoad,
		BeamSpanM:       beamSpan,
		Beam:            beamRes,
		Column:          colRes,
		Stress:          stress,
		Strain:          strain,
		BeamVolumeM3:    beamVolume,
		ColumnVolumeM3:  columnVolume,
		MaterialCost:    (beamVolume + columnVolume) * material.CostPerM3,
		Standards:       stdRes,
	}, nil
}
