package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// WriteCSV persists rows to path with the Header row first. The whole
// table is written in one pass after generation finishes, so a concurrent
// reader never observes a partial row.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(record(row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX persists rows to an xlsx workbook with the same layout as the
// CSV output.
func WriteXLSX(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.RadiusM, row.NumColumns, row.NumFloors, row.FloorHeightM,
			row.LiveLoadKNM2, row.WindSpeedMS, row.ZoneFactor, row.Density,
			row.ElasticModulus, row.BeamSpanM, row.Stress,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func record(row Row) []string {
	return []string{
		formatFloat(row.RadiusM),
		strconv.Itoa(row.NumColumns),
		strconv.Itoa(row.NumFloors),
		formatFloat(row.FloorHeightM),
		formatFloat(row.LiveLoadKNM2),
		formatFloat(row.WindSpeedMS),
		formatFloat(row.ZoneFactor),
		formatFloat(row.Density),
		formatFloat(row.ElasticModulus),
		formatFloat(row.BeamSpanM),
		formatFloat(row.Stress),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
