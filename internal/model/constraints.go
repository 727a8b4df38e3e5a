package model

import "github.com/gdmatos/timetabling/internal/csp"

// Constraint family labels, used by the unsatisfiability report.
const (
	FamilyRoomUniqueness   = "room-uniqueness"
	FamilyLecturerConflict = "lecturer-conflict"
	FamilyClassConflict    = "class-conflict"
	FamilyOnlineSameDay    = "online-same-day"
	FamilyClassDailyCap    = "class-daily-cap"
	FamilyOnlineDailyCap   = "online-daily-cap"
)

// BuildConstraints decomposes the hard rules into engine constraints over the
// problem's lesson variables: pairwise binaries for room uniqueness and
// lecturer/class/online-day conflicts, plus the two daily-cap guards.
func (problem *Problem) BuildConstraints() []csp.Constraint {
	physical := []int{}
	online := []int{}
	byLecturer := make([][]int, len(problem.Lecturers))
	byClass := make([][]int, len(problem.Classes))
	onlineByCourse := make([][]int, len(problem.Courses))

	for variable, lesson := range problem.Lessons {
		course := problem.Courses[lesson.Course]
		byLecturer[course.Lecturer] = append(byLecturer[course.Lecturer], variable)
		byClass[course.Class] = append(byClass[course.Class], variable)
		if problem.Online(lesson) {
			online = append(online, variable)
			onlineByCourse[lesson.Course] = append(onlineByCourse[lesson.Course], variable)
		} else {
			physical = append(physical, variable)
		}
	}

	constraints := []csp.Constraint{}

	// The n-ary "all physical lessons in distinct (slot, room)" rule, as its
	// pairwise decomposition. Online lessons are exempt.
	for i := range physical {
		for j := i + 1; j < len(physical); j++ {
			constraints = append(constraints, &roomUnique{
				variables: [2]int{physical[i], physical[j]},
				indexer:   problem.indexer,
			})
		}
	}

	for _, variables := range byLecturer {
		constraints = append(constraints, pairwiseDistinctSlots(variables, problem.indexer, FamilyLecturerConflict)...)
	}

	for _, variables := range byClass {
		constraints = append(constraints, pairwiseDistinctSlots(variables, problem.indexer, FamilyClassConflict)...)
		constraints = append(constraints, &dailyCap{
			variables: variables,
			indexer:   problem.indexer,
			cap:       problem.MaxLessonsPerClassDay,
			family:    FamilyClassDailyCap,
		})
	}

	for _, variables := range onlineByCourse {
		for i := range variables {
			for j := i + 1; j < len(variables); j++ {
				constraints = append(constraints, &onlineSameDay{
					variables: [2]int{variables[i], variables[j]},
					indexer:   problem.indexer,
				})
			}
		}
	}

	if len(online) > 0 {
		constraints = append(constraints, &dailyCap{
			variables: online,
			indexer:   problem.indexer,
			cap:       problem.MaxOnlinePerDay,
			family:    FamilyOnlineDailyCap,
		})
	}

	return constraints
}

func pairwiseDistinctSlots(variables []int, indexer Indexer, family string) []csp.Constraint {
	constraints := []csp.Constraint{}
	for i := range variables {
		for j := i + 1; j < len(variables); j++ {
			constraints = append(constraints, &distinctSlots{
				variables: [2]int{variables[i], variables[j]},
				indexer:   indexer,
				family:    family,
			})
		}
	}
	return constraints
}

// familyConstraint tags an engine constraint with the hard-rule family it
// belongs to, for diagnostics.
type familyConstraint interface {
	csp.Constraint
	Family() string
}

// roomUnique rejects two physical lessons sharing the same (slot, room).
type roomUnique struct {
	variables [2]int
	indexer   Indexer
}

func (constraint *roomUnique) Variables() []int { return constraint.variables[:] }
func (constraint *roomUnique) Family() string   { return FamilyRoomUniqueness }

func (constraint *roomUnique) Holds(values []csp.Value) bool {
	if values[0] == csp.Unassigned || values[1] == csp.Unassigned {
		return true
	}
	slot1, room1 := constraint.indexer.Attributes(values[0])
	slot2, room2 := constraint.indexer.Attributes(values[1])
	return slot1 != slot2 || room1 != room2
}

// distinctSlots rejects two lessons sharing a timeslot; it encodes both the
// lecturer-conflict and class-conflict families.
type distinctSlots struct {
	variables [2]int
	indexer   Indexer
	family    string
}

func (constraint *distinctSlots) Variables() []int { return constraint.variables[:] }
func (constraint *distinctSlots) Family() string   { return constraint.family }

func (constraint *distinctSlots) Holds(values []csp.Value) bool {
	if values[0] == csp.Unassigned || values[1] == csp.Unassigned {
		return true
	}
	slot1, _ := constraint.indexer.Attributes(values[0])
	slot2, _ := constraint.indexer.Attributes(values[1])
	return slot1 != slot2
}

// onlineSameDay forces two online lessons of one course onto the same day.
type onlineSameDay struct {
	variables [2]int
	indexer   Indexer
}

func (constraint *onlineSameDay) Variables() []int { return constraint.variables[:] }
func (constraint *onlineSameDay) Family() string   { return FamilyOnlineSameDay }

func (constraint *onlineSameDay) Holds(values []csp.Value) bool {
	if values[0] == csp.Unassigned || values[1] == csp.Unassigned {
		return true
	}
	slot1, _ := constraint.indexer.Attributes(values[0])
	slot2, _ := constraint.indexer.Attributes(values[1])
	return DayOf(slot1) == DayOf(slot2)
}

// dailyCap bounds how many of its variables may land on one day. Unassigned
// variables are ignored, so the guard also prunes partial assignments.
type dailyCap struct {
	variables []int
	indexer   Indexer
	cap       int
	family    string
}

func (constraint *dailyCap) Variables() []int { return constraint.variables }
func (constraint *dailyCap) Family() string   { return constraint.family }

func (constraint *dailyCap) Holds(values []csp.Value) bool {
	counts := [DaysPerWeek + 1]int{}
	for _, value := range values {
		if value == csp.Unassigned {
			continue
		}
		slot, _ := constraint.indexer.Attributes(value)
		day := DayOf(slot)
		if counts[day]++; counts[day] > constraint.cap {
			return false
		}
	}
	return true
}
