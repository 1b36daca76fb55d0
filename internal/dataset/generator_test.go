package dataset

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"
)

func TestGenerateRowCountAndRanges(t *testing.T) {
	rows, err := Generate(Config{Samples: 200, Workers: 4, Seed: 42})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(rows) != 200 {
		t.Fatalf("got %d rows, want 200", len(rows))
	}
	for i, r := range rows {
		if r.RadiusM < 10 || r.RadiusM >= 500 {
			t.Errorf("row %d: radius %v outside [10, 500)", i, r.RadiusM)
		}
		if r.NumColumns < 4 || r.NumColumns >= 50 {
			t.Errorf("row %d: num_columns %v outside [4, 50)", i, r.NumColumns)
		}
		if r.NumFloors < 1 || r.NumFloors >= 200 {
			t.Errorf("row %d: num_floors %v outside [1, 200)", i, r.NumFloors)
		}
		if r.FloorHeightM < 2.5 || r.FloorHeightM >= 4.0 {
			t.Errorf("row %d: floor_height %v outside [2.5, 4.0)", i, r.FloorHeightM)
		}
		if r.LiveLoadKNM2 < 1 || r.LiveLoadKNM2 >= 10 {
			t.Errorf("row %d: live_load %v outside [1, 10)", i, r.LiveLoadKNM2)
		}
		if r.WindSpeedMS < 10 || r.WindSpeedMS >= 500 {
			t.Errorf("row %d: wind_speed %v outside [10, 500)", i, r.WindSpeedMS)
		}
		if r.ZoneFactor <= 0 || r.ZoneFactor > 1 {
			t.Errorf("row %d: zone_factor %v outside (0, 1]", i, r.ZoneFactor)
		}
		if r.Density <= 0 || r.ElasticModulus <= 0 {
			t.Errorf("row %d: non-positive material properties", i)
		}
		if r.BeamSpanM <= 0 || r.BeamSpanM >= 2*r.RadiusM {
			t.Errorf("row %d: beam span %v not a chord of radius %v", i, r.BeamSpanM, r.RadiusM)
		}
		if r.Stress <= 0 || math.IsNaN(r.Stress) || math.IsInf(r.Stress, 0) {
			t.Errorf("row %d: stress %v not finite positive", i, r.Stress)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	cfg := Config{Samples: 50, Workers: 3, Seed: 7}
	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different datasets")
	}
}

func TestGenerateInvalidCount(t *testing.T) {
	if _, err := Generate(Config{Samples: 0}); err == nil {
		t.Error("expected error for zero samples")
	}
	if _, err := Generate(Config{Samples: -5}); err == nil {
		t.Error("expected error for negative samples")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	rows, err := Generate(Config{Samples: 25, Workers: 2, Seed: 11})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := WriteCSV(path, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != len(rows)+1 {
		t.Fatalf("got %d records, want %d", len(records), len(rows)+1)
	}
	if !reflect.DeepEqual(records[0], Header) {
		t.Errorf("header = %v, want %v", records[0], Header)
	}
	for i, rec := range records[1:] {
		if len(rec) != len(Header) {
			t.Fatalf("row %d has %d fields, want %d", i, len(rec), len(Header))
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				t.Fatalf("row %d col %s: %v", i, Header[j], err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("row %d col %s not finite: %v", i, Header[j], v)
			}
		}
	}
	// spot-check the label column round-trips exactly
	got, err := strconv.ParseFloat(records[1][len(Header)-1], 64)
	if err != nil {
		t.Fatalf("label parse: %v", err)
	}
	if got != rows[0].Stress {
		t.Errorf("label = %v, want %v", got, rows[0].Stress)
	}
}
