package csp

import "math/rand/v2"

// notEqual is the classic graph-coloring constraint used by the solver tests.
type notEqual struct {
	variables [2]int
}

func (constraint *notEqual) Variables() []int {
	return constraint.variables[:]
}

func (constraint *notEqual) Holds(values []Value) bool {
	if values[0] == Unassigned || values[1] == Unassigned {
		return true
	}
	return values[0] != values[1]
}

// NotEqual builds a binary constraint rejecting equal values, for tests and
// examples.
func NotEqual(variable1, variable2 int) Constraint {
	return &notEqual{variables: [2]int{variable1, variable2}}
}

// GenerateColoringInstance builds a random graph-coloring CSP: variables are
// nodes with the full color range as domain, and each unordered pair of nodes
// is connected with the given probability.
func GenerateColoringInstance(variables, colors int, density float32, seed uint64) *CSP {
	rng := rand.New(rand.NewPCG(seed, seed))

	domains := make([][]Value, variables)
	for variable := range domains {
		domains[variable] = make([]Value, colors)
		for color := range colors {
			domains[variable][color] = Value(color)
		}
	}

	instance := New(domains)
	for i := range variables - 1 {
		for j := i + 1; j < variables; j++ {
			if rng.Float32() < density {
				instance.AddConstraint(NotEqual(i, j))
			}
		}
	}

	return instance
}

// AssertSolution checks that the assignment is complete and violates no
// constraint of the instance.
func AssertSolution(instance *CSP, assignment Assignment) bool {
	if len(assignment) != instance.Variables() {
		return false
	}
	for _, value := range assignment {
		if value == Unassigned {
			return false
		}
	}
	return instance.Consistent(assignment)
}
