package main

import (
	"fmt"
	"log"

	"github.com/gdmatos/timetabling/internal/model"
)

var days = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
}

func main() {
	options := model.DefaultOptions()
	options.Phase2Seconds = 5

	problem, err := model.NewProblem(model.ReferenceDataset(), options)
	if err != nil {
		log.Fatalf("cannot build problem model: %v", err)
	}

	timetabler := model.NewTimetabler(options)
	timetable, stats, err := timetabler.Build(problem)
	if err != nil {
		log.Fatal(err)
	}

	class := ""
	for _, row := range problem.Rows(timetable) {
		if row.Class != class {
			class = row.Class
			fmt.Printf("\nClass %v:\n", class)
		}
		fmt.Printf("  %v, slot %v: %v_L%v [%v]\n", days[row.Day], row.DaySlot, row.Course, row.Occurrence, row.Room)
	}

	if !timetabler.Verify(timetable, problem) {
		log.Fatal("Verification failed")
	}

	fmt.Printf("\nScore: %v (strategy %v, %v restarts, %v)\n", stats.Score, stats.Strategy, stats.Restarts, stats.Duration)
	fmt.Println("Well done!")
}
