package dataset

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"rotunda/internal/repo"
)

type Handler struct {
	Repo repo.Repository
	Dir  string // output directory for generated datasets
}

type GenerateRequest struct {
	Samples int    `json:"samples"`
	Workers int    `json:"workers"`
	Seed    int64  `json:"seed"`
	Format  string `json:"format"` // "csv" (default) or "xlsx"
}

type GenerateResponse struct {
	RunID   int    `json:"run_id"`
	Samples int    `json:"samples"`
	Path    string `json:"path"`
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Samples <= 0 {
		http.Error(w, "samples must be positive", http.StatusBadRequest)
		return
	}

	rows, err := Generate(Config{Samples: req.Samples, Workers: req.Workers, Seed: req.Seed})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ext := "csv"
	if req.Format == "xlsx" {
		ext = "xlsx"
	}
	name := fmt.Sprintf("structural_dataset_%s.%s", time.Now().Format("20060102T150405"), ext)
	path := filepath.Join(h.Dir, name)
	if ext == "xlsx" {
		err = WriteXLSX(path, rows)
	} else {
		err = WriteCSV(path, rows)
	}
	if err != nil {
		log.Printf("dataset write error: %v", err)
		http.Error(w, "Dataset write error", http.StatusInternalServerError)
		return
	}

	runID, err := h.Repo.CreateDatasetRun(r.Context(), len(rows), path)
	if err != nil {
		log.Printf("CreateDatasetRun error: %v", err)
		http.Error(w, "Dataset run record error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GenerateResponse{RunID: runID, Samples: len(rows), Path: path})
}

func (h *Handler) Runs(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Repo.ListDatasetRuns(r.Context(), 50)
	if err != nil {
		log.Printf("ListDatasetRuns error: %v", err)
		http.Error(w, "Dataset run listing error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}
