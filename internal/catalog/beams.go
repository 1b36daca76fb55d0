package catalog

import (
	"fmt"
	"math"
	"sort"
)

// BeamSection is the validated cross-section a beam design derives from
// its span. Dimensions are in meters, keyed by the part they describe.
// Governing is the dimension whose half-depth sets the extreme fiber for
// the bending-capacity estimate.
type BeamSection struct {
	Dimensions map[string]float64 `json:"dimensions_m"`
	Area       float64            `json:"area_m2"`
	Inertia    float64            `json:"moment_of_inertia_m4"`
	Governing  float64            `json:"-"`
}

// BeamDesign derives a concrete cross-section from a span length. Section
// fails when a derived dimension falls outside the design's declared
// manufacturing bounds.
type BeamDesign interface {
	Name() string
	Section(span float64) (BeamSection, error)
}

// dimRule grows one dimension linearly with span, capped at max. The base
// equals the declared minimum, so derived values start at the lower bound;
// check still verifies both bounds so a rule change cannot leak an
// undersized section.
type dimRule struct {
	base    float64
	perSpan float64 // span divisor
	min     float64
	max     float64
}

func (r dimRule) derive(span float64) float64 {
	return math.Min(r.base+span/r.perSpan, r.max)
}

func (r dimRule) check(part string, v float64) error {
	if v < r.min || v > r.max {
		return fmt.Errorf("beam %s %.3f m out of range [%.2f, %.2f]", part, v, r.min, r.max)
	}
	return nil
}

type rectangularBeam struct {
	width  dimRule
	height dimRule
}

func (rectangularBeam) Name() string { return "rectangular" }

func (b rectangularBeam) Section(span float64) (BeamSection, error) {
	w := b.width.derive(span)
	h := b.height.derive(span)
	if err := b.width.check("width", w); err != nil {
		return BeamSection{}, err
	}
	if err := b.height.check("height", h); err != nil {
		return BeamSection{}, err
	}
	return BeamSection{
		Dimensions: map[string]float64{"width": w, "height": h},
		Area:       w * h,
		Inertia:    w * h * h * h / 12,
		Governing:  h,
	}, nil
}

// flangedBeam covers T- and I-sections: a web plus one or two flange
// regions. Inertia is the plain sum of the component inertias, matching
// the engine's simplified compound-section model (no parallel-axis
// offset).
type flangedBeam struct {
	name         string
	flanges      float64
	webWidth     dimRule
	webHeight    dimRule
	flangeWidth  dimRule
	flangeHeight dimRule
}

func (b flangedBeam) Name() string { return b.name }

func (b flangedBeam) Section(span float64) (BeamSection, error) {
	ww := b.webWidth.derive(span)
	wh := b.webHeight.derive(span)
	fw := b.flangeWidth.derive(span)
	fh := b.flangeHeight.derive(span)
	for _, c := range []struct {
		part string
		rule dimRule
		v    float64
	}{
		{"web width", b.webWidth, ww},
		{"web height", b.webHeight, wh},
		{"flange width", b.flangeWidth, fw},
		{"flange height", b.flangeHeight, fh},
	} {
		if err := c.rule.check(c.part, c.v); err != nil {
			return BeamSection{}, err
		}
	}
	return BeamSection{
		Dimensions: map[string]float64{
			"web_width":     ww,
			"web_height":    wh,
			"flange_width":  fw,
			"flange_height": fh,
		},
		Area:      ww*wh + b.flanges*fw*fh,
		Inertia:   ww*wh*wh*wh/12 + b.flanges*fw*fh*fh*fh/12,
		Governing: wh,
	}, nil
}

type circularBeam struct {
	diameter dimRule
}

func (circularBeam) Name() string { return "circular" }

func (b circularBeam) Section(span float64) (BeamSection, error) {
	d := b.diameter.derive(span)
	if err := b.diameter.check("diameter", d); err != nil {
		return BeamSection{}, err
	}
	return BeamSection{
		Dimensions: map[string]float64{"diameter": d},
		Area:       math.Pi * (d / 2) * (d / 2),
		Inertia:    math.Pi * d * d * d * d / 64,
		Governing:  d,
	}, nil
}

var beamDesigns = map[string]BeamDesign{
	"rectangular": rectangularBeam{
		width:  dimRule{base: 0.2, perSpan: 20, min: 0.2, max: 0.5},
		height: dimRule{base: 0.4, perSpan: 15, min: 0.4, max: 0.8},
	},
	"t-beam": flangedBeam{
		name:         "t-beam",
		flanges:      1,
		webWidth:     dimRule{base: 0.2, perSpan: 30, min: 0.2, max: 0.4},
		webHeight:    dimRule{base: 0.4, perSpan: 15, min: 0.4, max: 0.7},
		flangeWidth:  dimRule{base: 0.4, perSpan: 15, min: 0.4, max: 0.8},
		flangeHeight: dimRule{base: 0.15, perSpan: 40, min: 0.15, max: 0.25},
	},
	"i-beam": flangedBeam{
		name:         "i-beam",
		flanges:      2,
		webWidth:     dimRule{base: 0.15, perSpan: 35, min: 0.15, max: 0.3},
		webHeight:    dimRule{base: 0.3, perSpan: 15, min: 0.3, max: 0.6},
		flangeWidth:  dimRule{base: 0.3, perSpan: 20, min: 0.3, max: 0.6},
		flangeHeight: dimRule{base: 0.12, perSpan: 45, min: 0.12, max: 0.2},
	},
	"circular": circularBeam{
		diameter: dimRule{base: 0.3, perSpan: 20, min: 0.3, max: 0.6},
	},
}

// BeamDesignByName returns the design rule for name.
func BeamDesignByName(name string) (BeamDesign, error) {
	d, ok := beamDesigns[name]
	if !ok {
		return nil, fmt.Errorf("unknown beam design %q", name)
	}
	return d, nil
}

// BeamDesignNames lists the beam design keys in a stable order.
func BeamDesignNames() []string {
	keys := make([]string, 0, len(beamDesigns))
	for k := range beamDesigns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
