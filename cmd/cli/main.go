package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdmatos/timetabling/internal/csvio"
	"github.com/gdmatos/timetabling/internal/model"
)

var days = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
}

// Exit codes: 0 when a feasible timetable was found and reported, 1 on
// invalid input, 2 when no feasible timetable exists.
func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to the dataset file; .json files use the json layout, anything else the text format")
	configPtr := flag.String("config", "", "Path to a json options file; command-line flags override its values")
	outFilePtr := flag.String("out", "", "Path to the file where the timetable will be written as csv; if empty, no export happens")
	secondsPtr := flag.Int("seconds", -1, "Wall-clock budget in seconds for the improvement phase; negative keeps the configured value (default 60)")
	itersPtr := flag.Int("iters", 0, "Iteration cap per local-search run; non-positive keeps the configured value (default 1000)")
	seedPtr := flag.Int64("seed", -1, "Random seed for reproducible runs; negative seeds from the clock")
	flag.Parse()

	// Resolve options
	options := model.DefaultOptions()
	if *configPtr != "" {
		var err error
		options, err = model.OptionsFromJson(*configPtr)
		if err != nil {
			log.Fatalf("cannot parse options file: %v", err)
		}
	}
	if *secondsPtr >= 0 {
		options.Phase2Seconds = *secondsPtr
	}
	if *itersPtr > 0 {
		options.MinConflictsIters = *itersPtr
	}
	if *seedPtr >= 0 {
		seed := *seedPtr
		options.RandomSeed = &seed
	}

	path := *filePtr
	if path == "" {
		path = options.DatasetPath
	}
	if path == "" {
		log.Fatal("a dataset file must be specified")
	}

	// Extract input
	var dataset model.Dataset
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dataset, err = model.DatasetFromJson(path)
	} else {
		dataset, err = model.DatasetFromFile(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot parse dataset file: %v\n", err)
		os.Exit(1)
	}

	// Build problem model
	problem, err := model.NewProblem(dataset, options)
	if err != nil {
		var emptyDomain *model.EmptyDomainError
		if errors.As(err, &emptyDomain) {
			fmt.Fprintln(os.Stderr, emptyDomain)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Build timetable
	timetabler := model.NewTimetabler(options)
	timetable, stats, err := timetabler.Build(problem)
	if err != nil {
		var unsat *model.UnsatisfiableError
		if errors.As(err, &unsat) {
			fmt.Fprintln(os.Stderr, unsat)
			os.Exit(2)
		}
		log.Fatalf("an error occurred during timetable construction: %v", err)
	}

	// Verify timetable correctness
	if !timetabler.Verify(timetable, problem) {
		log.Fatal("built timetable failed verification")
	}

	printSchedule(problem, timetable, stats)

	if *outFilePtr != "" {
		if err := csvio.ExportTimetable(*outFilePtr, problem.Rows(timetable)); err != nil {
			log.Fatalf("an error occurred while writing the output file: %v", err)
		}
	}
}

func printSchedule(problem *model.Problem, timetable model.Timetable, stats model.BuildStats) {
	class := ""
	for _, row := range problem.Rows(timetable) {
		if row.Class != class {
			class = row.Class
			fmt.Printf("\nClass %v:\n", class)
		}
		fmt.Printf("  %v, slot %v: %v_L%v [%v]\n", days[row.Day], row.DaySlot, row.Course, row.Occurrence, row.Room)
	}

	fmt.Printf("\nVariables: %v\n", stats.Variables)
	fmt.Printf("Constraints: %v\n", stats.Constraints)
	fmt.Printf("Strategy: %v\n", stats.Strategy)
	fmt.Printf("Restarts: %v\n", stats.Restarts)
	fmt.Printf("Score: %v\n", stats.Score)
	fmt.Printf("Duration: %v\n", stats.Duration)
}
