package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"rotunda/internal/calc/beam"
	"rotunda/internal/calc/column"
	"rotunda/internal/calc/seismic"
	"rotunda/internal/calc/wind"
	"rotunda/internal/catalog"
)

// Row is one labeled sample: ten numeric features plus the stress label.
type Row struct {
	RadiusM        float64
	NumColumns     int
	NumFloors      int
	FloorHeightM   float64
	LiveLoadKNM2   float64
	WindSpeedMS    float64
	ZoneFactor     float64
	Density        float64
	ElasticModulus float64
	BeamSpanM      float64
	Stress         float64
}

// Header matches the column order of WriteCSV and WriteXLSX.
var Header = []string{
	"radius", "num_columns", "num_floors", "floor_height", "live_load",
	"wind_speed", "zone_factor", "density", "elastic_modulus", "beam_span",
	"stress",
}

type Config struct {
	Samples int
	Workers int   // defaults to GOMAXPROCS-ish via NumCPU
	Seed    int64 // 0 seeds from the clock
}

// A sample whose section derivation fails validation is discarded and
// redrawn, so a run always yields exactly Samples rows. The cap turns a
// catalog misconfiguration into an error instead of a spin loop.
const maxConsecutiveFailures = 1000

// Generate draws Config.Samples independent buildings and labels each with
// the combined-load-over-combined-area stress proxy. Samples are
// independent, so the work is fanned out across workers and merged; row
// order carries no meaning.
func Generate(cfg Config) ([]Row, error) {
	if cfg.Samples <= 0 {
		return nil, fmt.Errorf("invalid sample count %d", cfg.Samples)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Samples {
		workers = cfg.Samples
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	parts := make([][]Row, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		n := cfg.Samples / workers
		if i < cfg.Samples%workers {
			n++
		}
		wg.Add(1)
		go func(i, n int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(i)))
			parts[i], errs[i] = generatePart(rng, n)
		}(i, n)
	}
	wg.Wait()

	rows := make([]Row, 0, cfg.Samples)
	for i := range parts {
		if errs[i] != nil {
			return nil, errs[i]
		}
		rows = append(rows, parts[i]...)
	}
	return rows, nil
}

func generatePart(rng *rand.Rand, n int) ([]Row, error) {
	rows := make([]Row, 0, n)
	failures := 0
	for len(rows) < n {
		row, err := sampleOne(rng)
		if err != nil {
			failures++
			if failures >= maxConsecutiveFailures {
				return nil, fmt.Errorf("dataset generation stalled: %w", err)
			}
			continue
		}
		failures = 0
		rows = append(rows, row)
	}
	return rows, nil
}

var (
	materialNames     = catalog.MaterialNames()
	zoneNames         = catalog.ZoneNames()
	beamDesignNames   = catalog.BeamDesignNames()
	columnDesignNames = catalog.ColumnDesignNames()
)

func sampleOne(rng *rand.Rand) (Row, error) {
	radius := uniform(rng, 10, 500)
	numColumns := 4 + rng.Intn(46) // [4, 50)
	numFloors := 1 + rng.Intn(199) // [1, 200)
	floorHeight := uniform(rng, 2.5, 4.0)
	materialName := pick(rng, materialNames)
	liveLoad := uniform(rng, 1.0, 10.0)
	windSpeed := uniform(rng, 10, 500)
	zoneName := pick(rng, zoneNames)
	beamDesign := pick(rng, beamDesignNames)
	columnDesign := pick(rng, columnDesignNames)

	material, err := catalog.MaterialByName(materialName)
	if err != nil {
		return Row{}, err
	}
	zone, err := catalog.ZoneByName(zoneName)
	if err != nil {
		return Row{}, err
	}

	totalHeight := float64(numFloors) * floorHeight
	planArea := math.Pi * radius * radius
	totalLiveLoad := liveLoad * planArea * float64(numFloors)
	windForce := wind.Force(radius, totalHeight, windSpeed, 1.2, 1.0)
	totalWeight := totalLiveLoad + material.Density*planArea*totalHeight
	seismicLoad := seismic.BaseShear(zone.ZoneFactor, totalWeight, totalHeight, 1.0, 3.0)
	beamSpan := 2 * radius * math.Sin(math.Pi/float64(numColumns))

	beamRes, err := beam.Calculate(beam.Input{Design: beamDesign, SpanM: beamSpan, Material: materialName})
	if err != nil {
		return Row{}, err
	}
	colRes, err := column.Calculate(column.Input{Design: columnDesign, HeightM: floorHeight, Material: materialName})
	if err != nil {
		return Row{}, err
	}

	return Row{
		RadiusM:        radius,
		NumColumns:     numColumns,
		NumFloors:      numFloors,
		FloorHeightM:   floorHeight,
		LiveLoadKNM2:   liveLoad,
		WindSpeedMS:    windSpeed,
		ZoneFactor:     zone.ZoneFactor,
		Density:        material.Density,
		ElasticModulus: material.ElasticModulus,
		BeamSpanM:      beamSpan,
		Stress:         (windForce + seismicLoad) / (beamRes.AreaM2 + colRes.AreaM2),
	}, nil
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func pick(rng *rand.Rand, names []string) string {
	return names[rng.Intn(len(names))]
}
