package model

import (
	"slices"
	"strings"

	"github.com/gdmatos/timetabling/internal/csp"
)

// Placement is the assigned (timeslot, room) of one lesson.
type Placement struct {
	Slot int
	Room int
}

// Timetable holds one placement per lesson, aligned with Problem.Lessons.
type Timetable []Placement

// Decode translates a complete engine assignment into a timetable. Feeding it
// a partial assignment is a programmer error.
func (problem *Problem) Decode(assignment csp.Assignment) Timetable {
	timetable := make(Timetable, len(assignment))
	for variable, value := range assignment {
		if value == csp.Unassigned {
			panic("cannot decode a partial assignment")
		}
		slot, room := problem.indexer.Attributes(value)
		timetable[variable] = Placement{Slot: slot, Room: room}
	}
	return timetable
}

// Row is one flattened line of a built timetable.
type Row struct {
	Class      string `csv:"class"`
	Course     string `csv:"course"`
	Occurrence int    `csv:"occurrence"`
	Day        int    `csv:"day"`
	DaySlot    int    `csv:"day_slot"`
	Timeslot   int    `csv:"timeslot"`
	Room       string `csv:"room"`
}

// Rows flattens a timetable for presentation and export, ordered by class and
// then chronologically.
func (problem *Problem) Rows(timetable Timetable) []Row {
	rows := make([]Row, len(timetable))
	for i, placement := range timetable {
		lesson := problem.Lessons[i]
		course := problem.Courses[lesson.Course]
		rows[i] = Row{
			Class:      problem.Classes[course.Class],
			Course:     course.Name,
			Occurrence: lesson.Occurrence,
			Day:        DayOf(placement.Slot),
			DaySlot:    SlotOfDay(placement.Slot),
			Timeslot:   placement.Slot,
			Room:       problem.Rooms[placement.Room],
		}
	}

	slices.SortFunc(rows, func(a, b Row) int {
		if a.Class != b.Class {
			return strings.Compare(a.Class, b.Class)
		}
		if a.Timeslot != b.Timeslot {
			return a.Timeslot - b.Timeslot
		}
		if a.Course != b.Course {
			return strings.Compare(a.Course, b.Course)
		}
		return a.Occurrence - b.Occurrence
	})
	return rows
}
