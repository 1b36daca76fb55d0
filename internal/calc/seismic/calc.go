package seismic

import (
	"fmt"
	"math"

	"rotunda/internal/catalog"
)

type Input struct {
	Zone              string  `json:"zone"`        // catalog key; overrides ZoneFactor when set
	ZoneFactor        float64 `json:"zone_factor"` // used when Zone is empty
	TotalWeight       float64 `json:"total_weight"`
	TotalHeightM      float64 `json:"total_height_m"`
	ImportanceFactor  float64 `json:"importance_factor"`
	ResponseReduction float64 `json:"response_reduction"`
}

type Result struct {
	BaseShearN  float64 `json:"base_shear_n"`
	BaseShearKN float64 `json:"base_shear_kn"`
	PeriodS     float64 `json:"period_s"`
	SaOverG     float64 `json:"sa_over_g"`
	ZoneFactor  float64 `json:"zone_factor"`
	Notes       string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	zf := in.ZoneFactor
	if in.Zone != "" {
		z, err := catalog.ZoneByName(in.Zone)
		if err != nil {
			return Result{}, err
		}
		zf = z.ZoneFactor
	}
	if zf <= 0 {
		return Result{}, fmt.Errorf("invalid zone factor")
	}
	if in.ImportanceFactor <= 0 {
		in.ImportanceFactor = 1.0
	}
	if in.ResponseReduction <= 0 {
		in.ResponseReduction = 3.0
	}
	shear := BaseShear(zf, in.TotalWeight, in.TotalHeightM, in.ImportanceFactor, in.ResponseReduction)
	t := Period(in.TotalHeightM)
	return Result{
		BaseShearN:  shear,
		BaseShearKN: shear / 1000.0,
		PeriodS:     t,
		SaOverG:     saOverG(t),
		ZoneFactor:  zf,
		Notes:       "Base shear per the equivalent static method.",
	}, nil
}

// Period approximates the fundamental period of an RC frame building from
// its total height.
func Period(totalHeight float64) float64 {
	return 0.075 * math.Pow(totalHeight, 0.75)
}

// saOverG is the spectral acceleration ratio. The floor on the period
// guards the division; both branches agree at T = 0.5 s (1.25/0.5 = 2.5).
func saOverG(period float64) float64 {
	if period <= 0.5 {
		return 2.5
	}
	return 1.25 / math.Max(period, 0.01)
}

// BaseShear returns the total horizontal seismic force at the base in the
// units of totalWeight. The caller guarantees totalHeight > 0 for a
// meaningful result; height zero degenerates to the flat branch of the
// spectrum and stays finite.
func BaseShear(zoneFactor, totalWeight, totalHeight, importanceFactor, responseReduction float64) float64 {
	ah := zoneFactor * importanceFactor * saOverG(Period(totalHeight)) / (2 * responseReduction)
	return ah * totalWeight
}
