package main

import (
	"flag"
	"log"
	"time"

	"rotunda/internal/dataset"
)

func main() {
	samples := flag.Int("samples", 100000, "number of samples to generate")
	out := flag.String("out", "structural_dataset.csv", "output file path")
	xlsx := flag.Bool("xlsx", false, "write xlsx instead of csv")
	workers := flag.Int("workers", 0, "worker goroutines (0 = all CPUs)")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	start := time.Now()
	rows, err := dataset.Generate(dataset.Config{
		Samples: *samples,
		Workers: *workers,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatal("generation failed: ", err)
	}

	if *xlsx {
		err = dataset.WriteXLSX(*out, rows)
	} else {
		err = dataset.WriteCSV(*out, rows)
	}
	if err != nil {
		log.Fatal("write failed: ", err)
	}
	log.Printf("wrote %d samples to %s in %s", len(rows), *out, time.Since(start).Round(time.Millisecond))
}
