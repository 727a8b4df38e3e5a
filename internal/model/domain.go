package model

import (
	"slices"

	"github.com/gdmatos/timetabling/internal/csp"
)

// buildDomains applies node consistency to every lesson and orders lessons by
// ascending domain size (fail-first). The initial (class, course, occurrence)
// order survives as the tie-breaker through the stable sort.
func (problem *Problem) buildDomains() error {
	domains := make([][]csp.Value, len(problem.Lessons))
	for i, lesson := range problem.Lessons {
		domain, restrictions := problem.lessonDomain(lesson)
		if len(domain) == 0 {
			course := problem.Courses[lesson.Course]
			return &EmptyDomainError{
				Class:        problem.Classes[course.Class],
				Course:       course.Name,
				Occurrence:   lesson.Occurrence,
				Restrictions: restrictions,
			}
		}
		domains[i] = domain
	}

	order := make([]int, len(problem.Lessons))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return len(domains[a]) - len(domains[b])
	})

	orderedLessons := make([]Lesson, len(order))
	orderedDomains := make([][]csp.Value, len(order))
	for position, original := range order {
		orderedLessons[position] = problem.Lessons[original]
		orderedDomains[position] = domains[original]
	}
	problem.Lessons = orderedLessons
	problem.domains = orderedDomains

	return nil
}

// lessonDomain computes the candidate (timeslot, room) pairs of one lesson
// from its unary restrictions, returning the packed values sorted ascending
// together with the names of the restrictions that were applied.
func (problem *Problem) lessonDomain(lesson Lesson) ([]csp.Value, []string) {
	course := problem.Courses[lesson.Course]
	restrictions := []string{}

	slots := []int{}
	for slot := 1; slot <= Timeslots; slot++ {
		if problem.Available(course.Lecturer, slot) {
			slots = append(slots, slot)
		}
	}
	if len(slots) < Timeslots {
		restrictions = append(restrictions, "lecturer "+problem.Lecturers[course.Lecturer]+" availability")
	}

	var rooms []int
	switch {
	case problem.Online(lesson):
		rooms = []int{problem.OnlineRoom()}
		restrictions = append(restrictions, "online occurrence")
	case course.RequiredRoom >= 0:
		rooms = []int{course.RequiredRoom}
		restrictions = append(restrictions, "required room "+problem.Rooms[course.RequiredRoom])
	case problem.preferredRooms[course.Class] != nil:
		rooms = problem.preferredRooms[course.Class]
		restrictions = append(restrictions, "class "+problem.Classes[course.Class]+" preferred rooms")
	default:
		for room := range problem.OnlineRoom() {
			rooms = append(rooms, room)
		}
	}

	// Room-major iteration yields the packed values already sorted.
	domain := make([]csp.Value, 0, len(slots)*len(rooms))
	for _, room := range rooms {
		for _, slot := range slots {
			domain = append(domain, problem.indexer.Index(slot, room))
		}
	}
	return domain, restrictions
}
