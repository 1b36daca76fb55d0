package batch

import (
	"fmt"

	"rotunda/internal/calc/analysis"
)

type Input struct {
	Items []analysis.Input `json:"items"`
}

type Result struct {
	Results []analysis.Result `json:"results"`
}

// Calculate runs the full analysis for every item. The first invalid item
// aborts the whole batch so a partial result is never returned.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]analysis.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := analysis.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
