package catalog

import (
	"fmt"
	"math"
	"sort"
)

// ColumnSection is the fixed cross-section of a column design. Unlike
// beams, column dimensions are constants per design and do not depend on
// the column height. MinDimension is the smallest governing dimension
// used for the slenderness ratio.
type ColumnSection struct {
	Dimensions   map[string]float64 `json:"dimensions_m"`
	Area         float64            `json:"area_m2"`
	Inertia      float64            `json:"moment_of_inertia_m4"`
	MinDimension float64            `json:"-"`
}

// ColumnDesign exposes the fixed section of one column shape.
type ColumnDesign interface {
	Name() string
	Section() ColumnSection
}

type rectangularColumn struct {
	width, depth float64
}

func (rectangularColumn) Name() string { return "rectangular" }

func (c rectangularColumn) Section() ColumnSection {
	return ColumnSection{
		Dimensions:   map[string]float64{"width": c.width, "depth": c.depth},
		Area:         c.width * c.depth,
		Inertia:      c.width * c.depth * c.depth * c.depth / 12,
		MinDimension: math.Min(c.width, c.depth),
	}
}

type circularColumn struct {
	diameter float64
}

func (circularColumn) Name() string { return "circular" }

func (c circularColumn) Section() ColumnSection {
	d := c.diameter
	return ColumnSection{
		Dimensions:   map[string]float64{"diameter": d},
		Area:         math.Pi * (d / 2) * (d / 2),
		Inertia:      math.Pi * d * d * d * d / 64,
		MinDimension: d,
	}
}

type squareColumn struct {
	width float64
}

func (squareColumn) Name() string { return "square" }

func (c squareColumn) Section() ColumnSection {
	w := c.width
	return ColumnSection{
		Dimensions:   map[string]float64{"width": w},
		Area:         w * w,
		Inertia:      w * w * w * w / 12,
		MinDimension: w,
	}
}

type lShapedColumn struct {
	width, depth, thickness float64
}

func (lShapedColumn) Name() string { return "l-shaped" }

func (c lShapedColumn) Section() ColumnSection {
	return ColumnSection{
		Dimensions: map[string]float64{
			"width":     c.width,
			"depth":     c.depth,
			"thickness": c.thickness,
		},
		Area:         (c.width + c.depth - c.thickness) * c.thickness,
		Inertia:      c.thickness * (c.width*c.width*c.width + c.depth*c.depth*c.depth) / 3,
		MinDimension: c.thickness,
	}
}

var columnDesigns = map[string]ColumnDesign{
	"rectangular": rectangularColumn{width: 0.4, depth: 0.4},
	"circular":    circularColumn{diameter: 0.5},
	"square":      squareColumn{width: 0.45},
	"l-shaped":    lShapedColumn{width: 0.4, depth: 0.4, thickness: 0.1},
}

// ColumnDesignByName returns the design for name.
func ColumnDesignByName(name string) (ColumnDesign, error) {
	d, ok := columnDesigns[name]
	if !ok {
		return nil, fmt.Errorf("unknown column design %q", name)
	}
	return d, nil
}

// ColumnDesignNames lists the column design keys in a stable order.
func ColumnDesignNames() []string {
	keys := make([]string, 0, len(columnDesigns))
	for k := range columnDesigns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
