package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdmatos/timetabling/internal/model"
	"github.com/gocarina/gocsv"
)

const resultsPath = "benchmark.csv"

type BenchmarkResult struct {
	Seed       int64  `csv:"seed"`
	Budget     int    `csv:"budget_seconds"`
	Strategy   string `csv:"strategy"`
	Restarts   int    `csv:"restarts"`
	Score      int    `csv:"score"`
	DurationMs int64  `csv:"duration_ms"`
}

// Sweeps the reference dataset over seeds and improvement budgets and writes
// the per-run scores to a csv file, to compare how budget buys quality.
func main() {
	seeds := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	budgets := []int{0, 1, 5}

	results := make([]BenchmarkResult, 0, len(seeds)*len(budgets))
	for _, budget := range budgets {
		for _, seed := range seeds {
			fmt.Printf("Benchmarking seed %v with budget %vs\n", seed, budget)

			options := model.DefaultOptions()
			options.Phase2Seconds = budget
			options.RandomSeed = &seed

			problem, err := model.NewProblem(model.ReferenceDataset(), options)
			if err != nil {
				log.Fatalf("cannot build problem model: %v", err)
			}

			timetabler := model.NewTimetabler(options)
			timetable, stats, err := timetabler.Build(problem)
			if err != nil {
				log.Fatalf("seed %v failed: %v", seed, err)
			}
			if !timetabler.Verify(timetable, problem) {
				log.Fatalf("seed %v produced a timetable that failed verification", seed)
			}

			results = append(results, BenchmarkResult{
				Seed:       seed,
				Budget:     budget,
				Strategy:   stats.Strategy,
				Restarts:   stats.Restarts,
				Score:      stats.Score,
				DurationMs: stats.Duration.Milliseconds(),
			})
		}
	}

	file, err := os.Create(resultsPath)
	if err != nil {
		log.Fatalf("cannot create results file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		log.Fatalf("cannot write results file: %v", err)
	}

	fmt.Printf("Results written to %v\n", resultsPath)
}
