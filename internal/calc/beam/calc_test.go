package beam

import (
	"math"
	"testing"
)

func TestCalculateRectangularSteel(t *testing.T) {
	// span 6 m saturates both clamps: width 0.5, height 0.8
	res, err := Calculate(Input{Design: "rectangular", SpanM: 6, Material: "steel"})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if math.Abs(res.DimensionsM["width"]-0.5) > 1e-12 || math.Abs(res.DimensionsM["height"]-0.8) > 1e-12 {
		t.Errorf("dimensions = %v, want width 0.5 height 0.8", res.DimensionsM)
	}
	if math.Abs(res.AreaM2-0.4) > 1e-12 {
		t.Errorf("area = %v, want 0.4", res.AreaM2)
	}
	wantInertia := 0.5 * 0.8 * 0.8 * 0.8 / 12
	if math.Abs(res.InertiaM4-wantInertia) > 1e-12 {
		t.Errorf("inertia = %v, want %v", res.InertiaM4, wantInertia)
	}
	// M = fy*I/(h/2) = 250e6 * I / 0.4, in kN*m
	wantMoment := 250e6 * wantInertia / 0.4 / 1000
	if math.Abs(res.MaxMomentKNM-wantMoment) > 1e-6*wantMoment {
		t.Errorf("max moment = %v kNm, want %v", res.MaxMomentKNM, wantMoment)
	}
}

func TestCalculateCircular(t *testing.T) {
	// span 2 m: diameter = 0.3 + 2/20 = 0.4
	res, err := Calculate(Input{Design: "circular", SpanM: 2, Material: "concrete"})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	d := res.DimensionsM["diameter"]
	if math.Abs(d-0.4) > 1e-12 {
		t.Errorf("diameter = %v, want 0.4", d)
	}
	if math.Abs(res.AreaM2-math.Pi*0.2*0.2) > 1e-12 {
		t.Errorf("area = %v, want %v", res.AreaM2, math.Pi*0.04)
	}
}

func TestCalculateFlangedAreas(t *testing.T) {
	// At a long span every dimension saturates at its max.
	tRes, err := Calculate(Input{Design: "t-beam", SpanM: 100, Material: "steel"})
	if err != nil {
		t.Fatalf("t-beam: %v", err)
	}
	// 0.4*0.7 + 0.8*0.25
	if math.Abs(tRes.AreaM2-(0.4*0.7+0.8*0.25)) > 1e-12 {
		t.Errorf("t-beam area = %v", tRes.AreaM2)
	}

	iRes, err := Calculate(Input{Design: "i-beam", SpanM: 100, Material: "steel"})
	if err != nil {
		t.Fatalf("i-beam: %v", err)
	}
	// 0.3*0.6 + 2*0.6*0.2
	if math.Abs(iRes.AreaM2-(0.3*0.6+2*0.6*0.2)) > 1e-12 {
		t.Errorf("i-beam area = %v", iRes.AreaM2)
	}
}

func TestCalculateFailures(t *testing.T) {
	if _, err := Calculate(Input{Design: "rectangular", SpanM: 0, Material: "steel"}); err == nil {
		t.Error("expected error for zero span")
	}
	if _, err := Calculate(Input{Design: "rectangular", SpanM: -3, Material: "steel"}); err == nil {
		t.Error("expected error for negative span")
	}
	if _, err := Calculate(Input{Design: "box", SpanM: 5, Material: "steel"}); err == nil {
		t.Error("expected error for unknown design")
	}
	if _, err := Calculate(Input{Design: "rectangular", SpanM: 5, Material: "timber"}); err == nil {
		t.Error("expected error for unknown material")
	}
}
