package model

import (
	"slices"

	"github.com/gdmatos/timetabling/internal/csp"
	"github.com/samber/lo"
)

// Week geometry and scheduling caps. The week is DaysPerWeek days of
// SlotsPerDay slots; timeslots are numbered 1..Timeslots.
const (
	DaysPerWeek      = 5
	SlotsPerDay      = 4
	Timeslots        = DaysPerWeek * SlotsPerDay
	LessonsPerCourse = 2

	// MaxDailyLessons caps the lessons of one class on a single day.
	MaxDailyLessons = 3
	// MaxDailyOnline caps the online lessons across all classes on a
	// single day.
	MaxDailyOnline = 3

	OnlineRoomName = "Online"
)

// DayOf returns the 1-based day of a timeslot.
func DayOf(slot int) int {
	return (slot-1)/SlotsPerDay + 1
}

// SlotOfDay returns the 1-based position of a timeslot within its day.
func SlotOfDay(slot int) int {
	return (slot-1)%SlotsPerDay + 1
}

// Course is one curricular unit owned by a single class and taught by a
// single lecturer. A course identifier shared by several classes in the input
// becomes one Course per class.
type Course struct {
	Name         string
	Class        int
	Lecturer     int
	RequiredRoom int // room index, -1 when any room serves
	OnlineCount  int // occurrences 1..OnlineCount are delivered online
}

// Lesson is the atomic scheduling unit: one occurrence of a course.
type Lesson struct {
	Course     int
	Occurrence int // 1-based
}

// Problem is the immutable scheduling model handed to every component.
// Lessons are ordered by ascending domain size (fail-first), ties broken by
// (class, course, occurrence); domains are aligned with that order.
type Problem struct {
	Classes   []string
	Lecturers []string
	Rooms     []string // physical rooms plus the online room, last
	Courses   []Course
	Lessons   []Lesson

	// Caps, exposed so callers can tighten or relax the defaults.
	MaxLessonsPerClassDay int
	MaxOnlinePerDay       int

	availability   [][]bool // [lecturer][slot-1]
	preferredRooms [][]int  // per class, nil when unrestricted
	domains        [][]csp.Value
	indexer        Indexer
}

// NewProblem validates the dataset and derives the immutable problem model:
// entities, derived maps, and per-lesson node-consistent domains.
func NewProblem(dataset Dataset, options Options) (*Problem, error) {
	if err := dataset.Validate(); err != nil {
		return nil, err
	}

	problem := &Problem{
		Classes:               lo.Keys(dataset.ClassCourses),
		Lecturers:             lo.Keys(dataset.LecturerCourses),
		Rooms:                 append(slices.Clone(dataset.PhysicalRooms()), OnlineRoomName),
		MaxLessonsPerClassDay: MaxDailyLessons,
		MaxOnlinePerDay:       MaxDailyOnline,
	}
	slices.Sort(problem.Classes)
	slices.Sort(problem.Lecturers)
	problem.indexer = NewIndexer(Timeslots, len(problem.Rooms))

	problem.availability = make([][]bool, len(problem.Lecturers))
	for i, lecturer := range problem.Lecturers {
		problem.availability[i] = make([]bool, Timeslots)
		for slot := range problem.availability[i] {
			problem.availability[i][slot] = true
		}
		for _, slot := range dataset.ForbiddenSlots[lecturer] {
			problem.availability[i][slot-1] = false
		}
	}

	lecturerOf := map[string]int{}
	for i, lecturer := range problem.Lecturers {
		for _, course := range dataset.LecturerCourses[lecturer] {
			lecturerOf[course] = i
		}
	}

	// Shared course names split into one course per owning class.
	for classIndex, class := range problem.Classes {
		for _, name := range dataset.ClassCourses[class] {
			course := Course{
				Name:         name,
				Class:        classIndex,
				Lecturer:     lecturerOf[name],
				RequiredRoom: -1,
				OnlineCount:  dataset.OnlineCounts[name],
			}
			if room, restricted := dataset.RequiredRooms[name]; restricted {
				course.RequiredRoom = slices.Index(problem.Rooms, room)
			}
			problem.Courses = append(problem.Courses, course)
		}
	}

	for courseIndex := range problem.Courses {
		for occurrence := 1; occurrence <= LessonsPerCourse; occurrence++ {
			problem.Lessons = append(problem.Lessons, Lesson{Course: courseIndex, Occurrence: occurrence})
		}
	}

	if err := problem.resolvePreferredRooms(options); err != nil {
		return nil, err
	}
	if err := problem.buildDomains(); err != nil {
		return nil, err
	}

	return problem, nil
}

func (problem *Problem) resolvePreferredRooms(options Options) error {
	problem.preferredRooms = make([][]int, len(problem.Classes))
	if !options.PreferredRoomsHard || options.ClassPreferredRooms == nil {
		return nil
	}

	for class, rooms := range options.ClassPreferredRooms {
		classIndex := slices.Index(problem.Classes, class)
		if classIndex < 0 {
			return &InputError{Record: class, Reason: "preferred rooms for an unknown class"}
		}
		for _, room := range rooms {
			roomIndex := slices.Index(problem.Rooms, room)
			if roomIndex < 0 || roomIndex == problem.OnlineRoom() {
				return &InputError{Record: class, Reason: "preferred room " + room + " is not a physical room"}
			}
			problem.preferredRooms[classIndex] = append(problem.preferredRooms[classIndex], roomIndex)
		}
		slices.Sort(problem.preferredRooms[classIndex])
	}

	return nil
}

// OnlineRoom returns the index of the distinguished online room.
func (problem *Problem) OnlineRoom() int {
	return len(problem.Rooms) - 1
}

// Online reports whether the lesson's occurrence is an online one.
func (problem *Problem) Online(lesson Lesson) bool {
	return lesson.Occurrence <= problem.Courses[lesson.Course].OnlineCount
}

// Available reports whether the lecturer is free at the timeslot.
func (problem *Problem) Available(lecturer, slot int) bool {
	return problem.availability[lecturer][slot-1]
}

// Domains returns the node-consistent candidate sets, aligned with Lessons.
// The slices are shared and must be treated as read-only.
func (problem *Problem) Domains() [][]csp.Value {
	return problem.domains
}

func (problem *Problem) Indexer() Indexer {
	return problem.indexer
}
