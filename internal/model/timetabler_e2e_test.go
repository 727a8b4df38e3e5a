package model

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestMinimalScenarioEndToEnd(t *testing.T) {
	g := gomega.NewWithT(t)

	// Arrange: one class, one course, one fully available lecturer
	dataset := Dataset{
		ClassCourses:    map[string][]string{"t01": {"UC1"}},
		LecturerCourses: map[string][]string{"L1": {"UC1"}},
		ForbiddenSlots:  map[string][]int{},
		RequiredRooms:   map[string]string{},
		OnlineCounts:    map[string]int{},
	}
	options := buildOptions(13)

	problem, err := NewProblem(dataset, options)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	timetabler := NewTimetabler(options)

	// Act
	timetable, stats, err := timetabler.Build(problem)

	// Assert
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(timetable).To(gomega.HaveLen(2))
	g.Expect(timetable[0].Slot).ToNot(gomega.Equal(timetable[1].Slot))
	g.Expect(timetabler.Verify(timetable, problem)).To(gomega.BeTrue())

	// Same-day placements score between -4 and 3 depending on adjacency and
	// rooms, distinct days 8 with one room and 6 with two.
	score := NewEvaluator(problem).Score(timetable)
	g.Expect(score).To(gomega.BeElementOf(-4, -2, 1, 3, 6, 8))
	g.Expect(stats.Score).To(gomega.Equal(score))
}

func TestHardConstraintsHoldAcrossSeeds(t *testing.T) {
	g := gomega.NewWithT(t)

	for seed := int64(0); seed < 20; seed++ {
		// Arrange
		options := buildOptions(seed)
		problem, err := NewProblem(ReferenceDataset(), options)
		g.Expect(err).ToNot(gomega.HaveOccurred())
		timetabler := NewTimetabler(options)

		// Act
		timetable, _, err := timetabler.Build(problem)

		// Assert
		g.Expect(err).ToNot(gomega.HaveOccurred())
		g.Expect(timetabler.Verify(timetable, problem)).To(gomega.BeTrue())
	}
}
