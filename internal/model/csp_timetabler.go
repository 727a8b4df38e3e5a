package model

import (
	"errors"
	"time"

	"github.com/gdmatos/timetabling/internal/csp"
)

type cspTimetabler struct {
	maxSteps int
	budget   time.Duration
	baseSeed uint64
	seeded   bool
}

func newCspTimetabler(options Options) *cspTimetabler {
	timetabler := &cspTimetabler{
		maxSteps: options.MinConflictsIters,
		budget:   time.Duration(options.Phase2Seconds) * time.Second,
	}
	if timetabler.maxSteps <= 0 {
		timetabler.maxSteps = DefaultOptions().MinConflictsIters
	}
	if options.RandomSeed != nil {
		timetabler.baseSeed = uint64(*options.RandomSeed)
		timetabler.seeded = true
	}
	return timetabler
}

// Build runs the two-phase pipeline. Phase 1 tries local search once and
// falls back to complete backtracking; phase 2 restarts local search with
// fresh seeds until the wall-clock budget runs out, keeping the best-scored
// feasible timetable. Restart seeds are base seed plus the restart counter,
// so a recorded seed reproduces the whole run.
func (timetabler *cspTimetabler) Build(problem *Problem) (Timetable, BuildStats, error) {
	start := time.Now()

	instance := csp.New(problem.Domains())
	for _, constraint := range problem.BuildConstraints() {
		instance.AddConstraint(constraint)
	}
	stats := BuildStats{
		Variables:   instance.Variables(),
		Constraints: len(instance.Constraints()),
	}

	seed := timetabler.baseSeed
	if !timetabler.seeded {
		seed = uint64(time.Now().UnixNano())
	}

	//** Phase 1: find any feasible assignment
	stats.Strategy = "minconflicts"
	assignment, err := csp.NewMinConflictsSolver(timetabler.maxSteps, seed).Solve(instance)
	if errors.Is(err, csp.ErrExhausted) {
		attempt := assignment
		stats.Strategy = "backtracking"
		assignment, err = csp.NewBacktrackingSolver().Solve(instance)
		if err == nil && assignment == nil {
			stats.Duration = time.Since(start)
			return nil, stats, unsatisfiable(instance, attempt)
		}
	}
	if err != nil {
		return nil, stats, err
	}

	evaluator := NewEvaluator(problem)
	best := problem.Decode(assignment)
	bestScore := evaluator.Score(best)

	//** Phase 2: restart local search until the deadline, keep the best score
	deadline := time.Now().Add(timetabler.budget)
	for time.Now().Before(deadline) {
		stats.Restarts++
		candidate, err := csp.NewMinConflictsSolver(timetabler.maxSteps, seed+uint64(stats.Restarts)).Solve(instance)
		if err != nil {
			continue // exhausted restart; the next seed explores elsewhere
		}
		timetable := problem.Decode(candidate)
		if score := evaluator.Score(timetable); score > bestScore {
			best, bestScore = timetable, score
		}
	}

	stats.Score = bestScore
	stats.Duration = time.Since(start)
	return best, stats, nil
}

func (timetabler *cspTimetabler) Verify(timetable Timetable, problem *Problem) bool {
	return verify(timetable, problem)
}

// unsatisfiable aggregates the violations left in local search's best attempt
// into per-family counts, as a hint on where the instance is over-constrained.
func unsatisfiable(instance *csp.CSP, attempt csp.Assignment) *UnsatisfiableError {
	violations := map[string]int{}
	for _, id := range instance.Violated(attempt) {
		if constraint, ok := instance.Constraints()[id].(familyConstraint); ok {
			violations[constraint.Family()]++
		}
	}
	return &UnsatisfiableError{FamilyViolations: violations}
}
