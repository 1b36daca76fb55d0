package standards

import (
	"strings"
	"testing"
)

func TestSmallBuildingGetsConcrete(t *testing.T) {
	res, err := Calculate(Input{RadiusM: 5, NumFloors: 3, FloorHeightM: 3, WindSpeedMS: 10, LiveLoadKNM2: 2})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.Material != "Concrete" {
		t.Fatalf("material = %q, want Concrete", res.Material)
	}
	if res.PrimaryStandard != "ACI 318" || res.AlternativeStandard != "EN 1992" {
		t.Errorf("standards = %q/%q", res.PrimaryStandard, res.AlternativeStandard)
	}
	if len(res.Grades) != 2 || res.Grades[0] != "C30/37" {
		t.Errorf("grades = %v, want standard classes", res.Grades)
	}
	if res.WindForceN > 100000 {
		t.Fatalf("test premise broken: wind force %v exceeds steel threshold", res.WindForceN)
	}
}

// Radius over 15 m forces steel regardless of everything else.
func TestLargeRadiusForcesSteel(t *testing.T) {
	res, err := Calculate(Input{RadiusM: 25, NumFloors: 1, FloorHeightM: 2.5, WindSpeedMS: 0, LiveLoadKNM2: 0})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.Material != "Steel" {
		t.Errorf("material = %q, want Steel", res.Material)
	}
	if res.Grades[0] != "ASTM A36" {
		t.Errorf("grades = %v, want standard grades", res.Grades)
	}
}

func TestHighWindForcesSteel(t *testing.T) {
	// radius 5 but 100 m/s wind: force well past the 100 kN threshold
	res, err := Calculate(Input{RadiusM: 5, NumFloors: 3, FloorHeightM: 3, WindSpeedMS: 100, LiveLoadKNM2: 2})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.Material != "Steel" {
		t.Errorf("material = %q, want Steel for high wind", res.Material)
	}
}

func TestHighStrengthGrades(t *testing.T) {
	res, err := Calculate(Input{RadiusM: 25, NumFloors: 12, FloorHeightM: 3, WindSpeedMS: 10, LiveLoadKNM2: 2})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.Material != "Steel" || res.Grades[0] != "ASTM A992" {
		t.Errorf("want high-strength steel grades, got %s %v", res.Material, res.Grades)
	}

	res, err = Calculate(Input{RadiusM: 5, NumFloors: 3, FloorHeightM: 3, WindSpeedMS: 10, LiveLoadKNM2: 6})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.Material != "Concrete" || res.Grades[0] != "C40/50" {
		t.Errorf("want high-strength concrete classes, got %s %v", res.Material, res.Grades)
	}
}

func TestReportFormat(t *testing.T) {
	res, err := Calculate(Input{RadiusM: 5, NumFloors: 3, FloorHeightM: 3, WindSpeedMS: 10, LiveLoadKNM2: 2})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if !strings.Contains(res.Report, "STRUCTURAL ANALYSIS RESULTS") {
		t.Error("report missing title section")
	}
	if !strings.Contains(res.Report, "Recommended Material: Concrete") {
		t.Error("report missing material line")
	}
	for _, g := range res.Grades {
		if !strings.Contains(res.Report, g) {
			t.Errorf("report missing grade %q", g)
		}
	}
}

func TestInvalidParameters(t *testing.T) {
	for _, in := range []Input{
		{RadiusM: 0, NumFloors: 3, FloorHeightM: 3},
		{RadiusM: 5, NumFloors: 0, FloorHeightM: 3},
		{RadiusM: 5, NumFloors: 3, FloorHeightM: 0},
	} {
		if _, err := Calculate(in); err == nil {
			t.Errorf("expected error for %+v", in)
		}
	}
}
