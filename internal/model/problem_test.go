package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProblemVariableCount(t *testing.T) {
	// Act
	problem, err := NewProblem(ReferenceDataset(), DefaultOptions())

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, 15, len(problem.Courses))
	assert.Equal(t, 15*LessonsPerCourse, len(problem.Lessons))
	assert.Equal(t, len(problem.Lessons), len(problem.Domains()))
}

func TestCoursePartitionCoversEveryClass(t *testing.T) {
	// Arrange
	dataset := ReferenceDataset()

	// Act
	problem, err := NewProblem(dataset, DefaultOptions())
	assert.Nil(t, err)

	// Assert
	coursesPerClass := make([]int, len(problem.Classes))
	for _, course := range problem.Courses {
		coursesPerClass[course.Class]++
	}
	for class, count := range coursesPerClass {
		assert.Equal(t, len(dataset.ClassCourses[problem.Classes[class]]), count)
	}
}

func TestSharedCourseNamesSplitPerClass(t *testing.T) {
	// Arrange
	dataset := Dataset{
		ClassCourses: map[string][]string{
			"t01": {"UC1"},
			"t02": {"UC1"},
		},
		LecturerCourses: map[string][]string{"jo": {"UC1"}},
		ForbiddenSlots:  map[string][]int{},
		RequiredRooms:   map[string]string{},
		OnlineCounts:    map[string]int{},
	}

	// Act
	problem, err := NewProblem(dataset, DefaultOptions())

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, 2, len(problem.Courses))
	assert.NotEqual(t, problem.Courses[0].Class, problem.Courses[1].Class)
	assert.Equal(t, 2*LessonsPerCourse, len(problem.Lessons))
}

func TestDomainsRespectUnaryRestrictions(t *testing.T) {
	// Arrange
	problem, err := NewProblem(ReferenceDataset(), DefaultOptions())
	assert.Nil(t, err)
	indexer := problem.Indexer()

	// Assert
	for i, lesson := range problem.Lessons {
		course := problem.Courses[lesson.Course]
		for _, value := range problem.Domains()[i] {
			slot, room := indexer.Attributes(value)

			assert.True(t, problem.Available(course.Lecturer, slot))
			assert.Equal(t, problem.Online(lesson), room == problem.OnlineRoom())
			if !problem.Online(lesson) && course.RequiredRoom >= 0 {
				assert.Equal(t, course.RequiredRoom, room)
			}
		}
	}
}

func TestLessonsOrderedByAscendingDomainSize(t *testing.T) {
	// Act
	problem, err := NewProblem(ReferenceDataset(), DefaultOptions())

	// Assert
	assert.Nil(t, err)
	domains := problem.Domains()
	for i := 1; i < len(domains); i++ {
		assert.LessOrEqual(t, len(domains[i-1]), len(domains[i]))
	}
}

func TestEmptyDomainIsReported(t *testing.T) {
	// Arrange: jo has no available slot left
	dataset := ReferenceDataset()
	forbidden := make([]int, Timeslots)
	for i := range forbidden {
		forbidden[i] = i + 1
	}
	dataset.ForbiddenSlots["jo"] = forbidden

	// Act
	_, err := NewProblem(dataset, DefaultOptions())

	// Assert
	var emptyDomain *EmptyDomainError
	assert.ErrorAs(t, err, &emptyDomain)
	assert.Contains(t, emptyDomain.Restrictions, "lecturer jo availability")
}

func TestPreferredRoomsAreHardOnlyWhenFlagged(t *testing.T) {
	preferred := map[string][]string{
		"t01": {"RoomA", "RoomB"},
		"t02": {"RoomB", "RoomC"},
		"t03": {"RoomA", "RoomC"},
	}

	t.Run("hard filter narrows physical domains", func(t *testing.T) {
		// Arrange
		options := DefaultOptions()
		options.ClassPreferredRooms = preferred
		options.PreferredRoomsHard = true

		// Act
		problem, err := NewProblem(ReferenceDataset(), options)
		assert.Nil(t, err)

		// Assert
		for i, lesson := range problem.Lessons {
			course := problem.Courses[lesson.Course]
			if problem.Online(lesson) || course.RequiredRoom >= 0 {
				continue
			}
			allowed := preferred[problem.Classes[course.Class]]
			for _, value := range problem.Domains()[i] {
				_, room := problem.Indexer().Attributes(value)
				assert.True(t, slices.Contains(allowed, problem.Rooms[room]))
			}
		}
	})

	t.Run("soft default leaves domains untouched", func(t *testing.T) {
		// Arrange
		options := DefaultOptions()
		options.ClassPreferredRooms = preferred

		// Act
		restricted, err := NewProblem(ReferenceDataset(), options)
		assert.Nil(t, err)
		unrestricted, err := NewProblem(ReferenceDataset(), DefaultOptions())
		assert.Nil(t, err)

		// Assert
		assert.Equal(t, unrestricted.Domains(), restricted.Domains())
	})

	t.Run("unknown preferred room is rejected", func(t *testing.T) {
		// Arrange
		options := DefaultOptions()
		options.ClassPreferredRooms = map[string][]string{"t01": {"Lab99"}}
		options.PreferredRoomsHard = true

		// Act
		_, err := NewProblem(ReferenceDataset(), options)

		// Assert
		var inputError *InputError
		assert.ErrorAs(t, err, &inputError)
	})
}

func TestDayGeometry(t *testing.T) {
	assert.Equal(t, 1, DayOf(1))
	assert.Equal(t, 1, DayOf(4))
	assert.Equal(t, 2, DayOf(5))
	assert.Equal(t, 5, DayOf(20))
	assert.Equal(t, 1, SlotOfDay(1))
	assert.Equal(t, 4, SlotOfDay(4))
	assert.Equal(t, 1, SlotOfDay(5))
	assert.Equal(t, 4, SlotOfDay(20))
}
