package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"rotunda/internal/calc/analysis"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int               `json:"count"`
	Skipped int               `json:"skipped"`
	Results []analysis.Result `json:"results"`
}

// Analyze accepts an xlsx upload with one building per row and runs the
// full analysis for each. Rows that fail to parse or analyze are skipped,
// not fatal.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var out ImportResult
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := analysis.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// expected columns: radius, num_columns, num_floors, floor_height,
// material, live_load, wind_speed, seismic_zone, beam_design, column_design
func parseRow(row []string) (analysis.Input, error) {
	if len(row) < 10 {
		return analysis.Input{}, fmt.Errorf("bad row")
	}
	radius, err := toFloat(row[0])
	if err != nil {
		return analysis.Input{}, err
	}
	numColumns, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return analysis.Input{}, err
	}
	numFloors, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return analysis.Input{}, err
	}
	floorHeight, err := toFloat(row[3])
	if err != nil {
		return analysis.Input{}, err
	}
	liveLoad, err := toFloat(row[5])
	if err != nil {
		return analysis.Input{}, err
	}
	windSpeed, err := toFloat(row[6])
	if err != nil {
		return analysis.Input{}, err
	}
	return analysis.Input{
		RadiusM:      radius,
		NumColumns:   numColumns,
		NumFloors:    numFloors,
		FloorHeightM: floorHeight,
		Material:     strings.TrimSpace(row[4]),
		LiveLoadKNM2: liveLoad,
		WindSpeedMS:  windSpeed,
		SeismicZone:  strings.TrimSpace(row[7]),
		BeamDesign:   strings.TrimSpace(row[8]),
		ColumnDesign: strings.TrimSpace(row[9]),
	}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
