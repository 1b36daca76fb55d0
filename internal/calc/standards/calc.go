package standards

import (
	"fmt"
	"math"
	"strings"

	"rotunda/internal/calc/wind"
)

type Input struct {
	RadiusM      float64 `json:"radius_m"`
	NumFloors    int     `json:"num_floors"`
	FloorHeightM float64 `json:"floor_height_m"`
	WindSpeedMS  float64 `json:"wind_speed_ms"`
	LiveLoadKNM2 float64 `json:"live_load_knm2"`
}

type Result struct {
	Material            string   `json:"material"`
	PrimaryStandard     string   `json:"primary_standard"`
	AlternativeStandard string   `json:"alternative_standard"`
	Grades              []string `json:"grades"`
	WindForceN          float64  `json:"wind_force_n"`
	AssumedSpanM        float64  `json:"assumed_span_m"`
	Report              string   `json:"report"`
}

// Thresholds driving the recommendation.
const (
	largeSpanRadiusM = 15.0
	highWindForceN   = 100000.0
	highFloorCount   = 10
	highLiveLoadKNM2 = 5.0
)

// Calculate recommends a material and code standard for the building
// scale. The internal span estimate always assumes 12 columns, regardless
// of the building's actual column count; the decision thresholds never
// consume it, but it is kept (and reported) for parity with the
// established behavior.
func Calculate(in Input) (Result, error) {
	if in.RadiusM <= 0 || in.NumFloors <= 0 || in.FloorHeightM <= 0 {
		return Result{}, fmt.Errorf("invalid parameters: radius, num_floors and floor_height must be positive")
	}

	totalHeight := float64(in.NumFloors) * in.FloorHeightM
	assumedSpan := 2 * in.RadiusM * math.Sin(math.Pi/12)
	windForce := wind.Force(in.RadiusM, totalHeight, in.WindSpeedMS, 1.2, 1.0)

	highStrength := in.NumFloors > highFloorCount || in.LiveLoadKNM2 > highLiveLoadKNM2
	largeSpan := in.RadiusM > largeSpanRadiusM
	highWind := windForce > highWindForceN

	res := Result{
		WindForceN:   windForce,
		AssumedSpanM: assumedSpan,
	}
	if largeSpan || highWind {
		res.Material = "Steel"
		res.PrimaryStandard = "AISC 360"
		res.AlternativeStandard = "EN 1993"
		if highStrength {
			res.Grades = []string{"ASTM A992", "S355"}
		} else {
			res.Grades = []string{"ASTM A36", "S235"}
		}
	} else {
		res.Material = "Concrete"
		res.PrimaryStandard = "ACI 318"
		res.AlternativeStandard = "EN 1992"
		if highStrength {
			res.Grades = []string{"C40/50", "M40"}
		} else {
			res.Grades = []string{"C30/37", "M30"}
		}
	}
	res.Report = formatReport(res)
	return res, nil
}

func formatReport(res Result) string {
	var b strings.Builder
	b.WriteString("\nSTRUCTURAL ANALYSIS RESULTS\n")
	b.WriteString(strings.Repeat("=", 50))
	fmt.Fprintf(&b, "\n\nRecommended Material: %s\n", res.Material)
	fmt.Fprintf(&b, "Primary Standard Code: %s\n", res.PrimaryStandard)
	fmt.Fprintf(&b, "Alternative Standard: %s\n", res.AlternativeStandard)
	if res.Material == "Steel" {
		b.WriteString("Recommended Grades:\n")
	} else {
		b.WriteString("Recommended Strength Classes:\n")
	}
	for _, g := range res.Grades {
		fmt.Fprintf(&b, "  - %s\n", g)
	}
	return b.String()
}
