package column

import (
	"fmt"

	"rotunda/internal/catalog"
)

type Input struct {
	Design   string  `json:"design"`
	HeightM  float64 `json:"height_m"`
	Material string  `json:"material"`
}

type Result struct {
	Design      string             `json:"design"`
	DimensionsM map[string]float64 `json:"dimensions_m"`
	AreaM2      float64            `json:"area_m2"`
	InertiaM4   float64            `json:"moment_of_inertia_m4"`
	MaxAxialKN  float64            `json:"max_axial_load_kn"`
	Slenderness float64            `json:"slenderness_ratio"`
	Notes       string             `json:"notes"`
}

// Calculate returns the section properties of the column design for one
// storey of the given unsupported height. Column dimensions are fixed per
// design; only the slenderness ratio depends on the height.
func Calculate(in Input) (Result, error) {
	if in.HeightM <= 0 {
		return Result{}, fmt.Errorf("invalid height: must be positive")
	}
	design, err := catalog.ColumnDesignByName(in.Design)
	if err != nil {
		return Result{}, err
	}
	material, err := catalog.MaterialByName(in.Material)
	if err != nil {
		return Result{}, err
	}
	section := design.Section()
	return Result{
		Design:      design.Name(),
		DimensionsM: section.Dimensions,
		AreaM2:      section.Area,
		InertiaM4:   section.Inertia,
		MaxAxialKN:  material.YieldStrength * section.Area / 1000.0,
		Slenderness: in.HeightM / section.MinDimension,
		Notes:       "Squash-load capacity fy*A; slenderness over the smallest section dimension.",
	}, nil
}
