package model

import "time"

// BuildStats reports how a timetable was found.
type BuildStats struct {
	Variables   int
	Constraints int
	// Strategy is the search that produced the first feasible assignment:
	// "minconflicts" or "backtracking".
	Strategy string
	// Restarts counts the improvement-phase local-search runs.
	Restarts int
	Score    int
	Duration time.Duration
}

// Timetabler builds a feasible timetable for a problem and can re-check one
// against the hard rules.
type Timetabler interface {
	Build(problem *Problem) (Timetable, BuildStats, error)
	Verify(timetable Timetable, problem *Problem) bool
}

func NewTimetabler(options Options) Timetabler {
	return newCspTimetabler(options)
}
