package csp

import "math/rand/v2"

type minConflictsSolver struct {
	maxSteps int
	rng      *rand.Rand
}

// NewMinConflictsSolver returns a stochastic local-search solver bounded by
// maxSteps repair iterations. Runs are deterministic for a given seed: two
// solvers built with the same seed walk the same trajectory.
func NewMinConflictsSolver(maxSteps int, seed uint64) Solver {
	return &minConflictsSolver{
		maxSteps: maxSteps,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (solver *minConflictsSolver) Solve(instance *CSP) (Assignment, error) {
	assignment := solver.initialAssignment(instance)

	for range solver.maxSteps {
		conflicted := solver.conflictedVariables(instance, assignment)
		if len(conflicted) == 0 {
			return assignment, nil
		}

		variable := conflicted[solver.rng.IntN(len(conflicted))]
		assignment[variable] = solver.repairValue(instance, variable, assignment)
	}

	return assignment, ErrExhausted
}

// initialAssignment greedily assigns each variable, in the instance's
// variable order, the value with the fewest conflicts against the variables
// assigned so far. Ties are broken at random.
func (solver *minConflictsSolver) initialAssignment(instance *CSP) Assignment {
	assignment := make(Assignment, instance.Variables())
	for variable := range assignment {
		assignment[variable] = Unassigned
	}

	for variable := range assignment {
		best := []Value{}
		bestConflicts := -1
		for _, candidate := range instance.Domain(variable) {
			conflicts := instance.conflicts(variable, candidate, assignment)
			if bestConflicts < 0 || conflicts < bestConflicts {
				best = best[:0]
				bestConflicts = conflicts
			}
			if conflicts == bestConflicts {
				best = append(best, candidate)
			}
		}
		assignment[variable] = best[solver.rng.IntN(len(best))]
	}

	return assignment
}

func (solver *minConflictsSolver) conflictedVariables(instance *CSP, assignment Assignment) []int {
	inConflict := make([]bool, instance.Variables())
	for _, id := range instance.Violated(assignment) {
		for _, variable := range instance.Constraints()[id].Variables() {
			inConflict[variable] = true
		}
	}

	conflicted := []int{}
	for variable, conflicting := range inConflict {
		if conflicting {
			conflicted = append(conflicted, variable)
		}
	}
	return conflicted
}

// repairValue picks a minimum-conflict value for the variable, breaking ties
// at random. When the current value sits on a minimum plateau together with
// other values, one of the others is chosen so the search keeps moving.
func (solver *minConflictsSolver) repairValue(instance *CSP, variable int, assignment Assignment) Value {
	current := assignment[variable]

	best := []Value{}
	bestConflicts := -1
	for _, candidate := range instance.Domain(variable) {
		conflicts := instance.conflicts(variable, candidate, assignment)
		if bestConflicts < 0 || conflicts < bestConflicts {
			best = best[:0]
			bestConflicts = conflicts
		}
		if conflicts == bestConflicts {
			best = append(best, candidate)
		}
	}

	if len(best) > 1 {
		others := make([]Value, 0, len(best))
		for _, candidate := range best {
			if candidate != current {
				others = append(others, candidate)
			}
		}
		if len(others) > 0 {
			best = others
		}
	}

	return best[solver.rng.IntN(len(best))]
}
