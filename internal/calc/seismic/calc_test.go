package seismic

import (
	"math"
	"testing"
)

func TestBaseShearFlatSpectrum(t *testing.T) {
	// Height zero degenerates to T=0, Sa/g=2.5:
	// Ah = 0.36*1*2.5/(2*3) = 0.15, V = 0.15*1000 = 150
	got := BaseShear(0.36, 1000, 0, 1.0, 3.0)
	if math.Abs(got-150) > 1e-9 {
		t.Errorf("BaseShear = %v, want 150", got)
	}
}

// The two spectral branches must agree at the T=0.5s switch point
// (1.25/0.5 == 2.5), so base shear is continuous in height.
func TestBaseShearContinuousAtBranchPoint(t *testing.T) {
	// T = 0.075*h^0.75 crosses 0.5s near h = 12.55 m
	below := BaseShear(0.24, 1e6, 12.5, 1.0, 3.0)
	above := BaseShear(0.24, 1e6, 12.6, 1.0, 3.0)
	if rel := math.Abs(above-below) / below; rel > 0.01 {
		t.Errorf("discontinuity at branch point: below=%v above=%v rel=%v", below, above, rel)
	}
}

func TestBaseShearDecaysWithHeight(t *testing.T) {
	// Past the plateau, taller buildings see a lower coefficient.
	short := BaseShear(0.24, 1e6, 20, 1.0, 3.0)
	tall := BaseShear(0.24, 1e6, 200, 1.0, 3.0)
	if tall >= short {
		t.Errorf("base shear should decay with height on constant weight: short=%v tall=%v", short, tall)
	}
}

func TestPeriod(t *testing.T) {
	got := Period(16)
	want := 0.075 * math.Pow(16, 0.75) // 0.075*8 = 0.6
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Period(16) = %v, want %v", got, want)
	}
}

func TestCalculateZoneLookup(t *testing.T) {
	res, err := Calculate(Input{Zone: "Zone V", TotalWeight: 1000, TotalHeightM: 10})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.ZoneFactor != 0.48 {
		t.Errorf("ZoneFactor = %v, want 0.48", res.ZoneFactor)
	}
	want := BaseShear(0.48, 1000, 10, 1.0, 3.0)
	if math.Abs(res.BaseShearN-want) > 1e-9 {
		t.Errorf("BaseShearN = %v, want %v", res.BaseShearN, want)
	}

	if _, err := Calculate(Input{Zone: "Zone Z", TotalWeight: 1000, TotalHeightM: 10}); err == nil {
		t.Error("expected error for unknown zone")
	}
	if _, err := Calculate(Input{TotalWeight: 1000, TotalHeightM: 10}); err == nil {
		t.Error("expected error for missing zone factor")
	}
}
