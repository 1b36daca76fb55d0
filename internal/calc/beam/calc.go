package beam

import (
	"fmt"

	"rotunda/internal/catalog"
)

type Input struct {
	Design   string  `json:"design"`
	SpanM    float64 `json:"span_m"`
	Material string  `json:"material"`
}

type Result struct {
	Design       string             `json:"design"`
	DimensionsM  map[string]float64 `json:"dimensions_m"`
	AreaM2       float64            `json:"area_m2"`
	InertiaM4    float64            `json:"moment_of_inertia_m4"`
	MaxMomentKNM float64            `json:"max_moment_knm"`
	SpanM        float64            `json:"span_m"`
	Notes        string             `json:"notes"`
}

// Calculate derives the cross-section for the design at the given span and
// estimates its elastic bending capacity. The capacity is fy*I/c with c at
// half the governing dimension, an approximation rather than a code check.
func Calculate(in Input) (Result, error) {
	if in.SpanM <= 0 {
		return Result{}, fmt.Errorf("invalid span length: must be positive")
	}
	design, err := catalog.BeamDesignByName(in.Design)
	if err != nil {
		return Result{}, err
	}
	material, err := catalog.MaterialByName(in.Material)
	if err != nil {
		return Result{}, err
	}
	section, err := design.Section(in.SpanM)
	if err != nil {
		return Result{}, err
	}
	maxMoment := material.YieldStrength * section.Inertia / (section.Governing / 2)
	return Result{
		Design:       design.Name(),
		DimensionsM:  section.Dimensions,
		AreaM2:       section.Area,
		InertiaM4:    section.Inertia,
		MaxMomentKNM: maxMoment / 1000.0,
		SpanM:        in.SpanM,
		Notes:        "Elastic bending capacity estimate, not a code-compliant moment check.",
	}, nil
}
