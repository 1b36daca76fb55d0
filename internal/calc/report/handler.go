package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"rotunda/internal/calc/analysis"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project  string         `json:"project"`
	Author   string         `json:"author"`
	Title    string         `json:"title"`
	Building analysis.Input `json:"building"`
}

type Handler struct{}

// Generate runs the analysis for the building and renders it as a PDF.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Circular Building Analysis Report"
	}
	res, err := analysis.Calculate(input.Building)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Building Parameters")
	line(pdf, "Radius: %.2f m, Columns: %d, Floors: %d, Floor Height: %.2f m",
		input.Building.RadiusM, input.Building.NumColumns, input.Building.NumFloors, input.Building.FloorHeightM)
	line(pdf, "Total Height: %.2f m, Beam Span: %.2f m", res.TotalHeightM, res.BeamSpanM)
	line(pdf, "Material: %s, Seismic Zone: %s", input.Building.Material, input.Building.SeismicZone)
	pdf.Ln(4)

	section(pdf, "Loading")
	line(pdf, "Total Live Load: %.2f kN", res.TotalLiveLoadKN)
	line(pdf, "Wind Force: %.2f kN (wind speed %.1f m/s)", res.WindForceN/1000.0, input.Building.WindSpeedMS)
	line(pdf, "Seismic Base Shear: %.2f kN-equivalent", res.SeismicLoad/1000.0)
	line(pdf, "Stress Estimate: %.2f, Strain: %.6g", res.Stress, res.Strain)
	pdf.Ln(4)

	section(pdf, fmt.Sprintf("Beam (%s)", res.Beam.Design))
	line(pdf, "Dimensions: %s", formatDims(res.Beam.DimensionsM))
	line(pdf, "Area: %.3f m2, Inertia: %.6f m4, Max Moment: %.1f kNm",
		res.Beam.AreaM2, res.Beam.InertiaM4, res.Beam.MaxMomentKNM)
	pdf.Ln(4)

	section(pdf, fmt.Sprintf("Column (%s)", res.Column.Design))
	line(pdf, "Dimensions: %s", formatDims(res.Column.DimensionsM))
	line(pdf, "Area: %.3f m2, Max Axial Load: %.1f kN, Slenderness: %.1f",
		res.Column.AreaM2, res.Column.MaxAxialKN, res.Column.Slenderness)
	pdf.Ln(4)

	section(pdf, "Material Cost Estimate")
	line(pdf, "Beam Volume: %.1f m3, Column Volume: %.1f m3", res.BeamVolumeM3, res.ColumnVolumeM3)
	line(pdf, "Estimated Cost: %.0f USD", res.MaterialCost)
	pdf.Ln(4)

	section(pdf, "Material Standards Recommendation")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, res.Standards.Report, "", "L", false)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"analysis-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func line(pdf *gofpdf.Fpdf, format string, args ...interface{}) {
	pdf.Cell(0, 6, fmt.Sprintf(format, args...))
	pdf.Ln(6)
}

func formatDims(dims map[string]float64) string {
	keys := make([]string, 0, len(dims))
	for k := range dims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s %.2f m", k, dims[k])
	}
	return out
}
