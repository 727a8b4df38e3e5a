package model

import (
	"fmt"
	"sort"
	"strings"
)

// InputError reports a dataset record that fails validation. Record carries
// the identifier of the offending line.
type InputError struct {
	Record string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input at %q: %v", e.Record, e.Reason)
}

// EmptyDomainError reports a lesson whose candidate set became empty during
// node consistency, together with the unary restrictions that emptied it.
type EmptyDomainError struct {
	Class        string
	Course       string
	Occurrence   int
	Restrictions []string
}

func (e *EmptyDomainError) Error() string {
	return fmt.Sprintf("lesson %v/%v occurrence %v has an empty domain (restrictions: %v)",
		e.Class, e.Course, e.Occurrence, strings.Join(e.Restrictions, ", "))
}

// UnsatisfiableError reports that both search strategies exhausted without a
// feasible assignment. FamilyViolations counts, per constraint family, the
// violations left in the best attempt local search produced, as a debugging
// hint on where the instance is over-constrained.
type UnsatisfiableError struct {
	FamilyViolations map[string]int
}

func (e *UnsatisfiableError) Error() string {
	families := make([]string, 0, len(e.FamilyViolations))
	for family := range e.FamilyViolations {
		families = append(families, family)
	}
	sort.Slice(families, func(i, j int) bool {
		if e.FamilyViolations[families[i]] != e.FamilyViolations[families[j]] {
			return e.FamilyViolations[families[i]] > e.FamilyViolations[families[j]]
		}
		return families[i] < families[j]
	})

	parts := make([]string, len(families))
	for i, family := range families {
		parts[i] = fmt.Sprintf("%v=%v", family, e.FamilyViolations[family])
	}
	return fmt.Sprintf("no feasible assignment exists (violations in best attempt: %v)", strings.Join(parts, ", "))
}
