package model

// verify re-checks a complete timetable against every hard rule, independently
// of the engine constraints that produced it.
func verify(timetable Timetable, problem *Problem) bool {
	if len(timetable) != len(problem.Lessons) {
		return false
	}

	//** Initialize occupancy matrices
	roomOccupied := make([][]bool, len(problem.Rooms))
	for room := range roomOccupied {
		roomOccupied[room] = make([]bool, Timeslots+1)
	}
	lecturerBusy := make([][]bool, len(problem.Lecturers))
	for lecturer := range lecturerBusy {
		lecturerBusy[lecturer] = make([]bool, Timeslots+1)
	}
	classBusy := make([][]bool, len(problem.Classes))
	classDaily := make([][]int, len(problem.Classes))
	for class := range classBusy {
		classBusy[class] = make([]bool, Timeslots+1)
		classDaily[class] = make([]int, DaysPerWeek+1)
	}
	onlineDaily := make([]int, DaysPerWeek+1)
	onlineDay := map[int]int{} // course -> day of its online lessons

	for i, lesson := range problem.Lessons {
		placement := timetable[i]
		if placement.Slot < 1 || placement.Slot > Timeslots || placement.Room < 0 || placement.Room >= len(problem.Rooms) {
			return false
		}

		course := problem.Courses[lesson.Course]
		online := problem.Online(lesson)
		day := DayOf(placement.Slot)

		// Check that:
		// - The room matches the lesson's online obligation
		// - The lecturer is available at the timeslot
		// - A required room is honoured
		// - No physical room, lecturer or class is double-booked
		if online != (placement.Room == problem.OnlineRoom()) {
			return false
		}
		if !problem.Available(course.Lecturer, placement.Slot) {
			return false
		}
		if !online && course.RequiredRoom >= 0 && placement.Room != course.RequiredRoom {
			return false
		}
		if !online && course.RequiredRoom < 0 && problem.preferredRooms[course.Class] != nil {
			allowed := false
			for _, room := range problem.preferredRooms[course.Class] {
				if room == placement.Room {
					allowed = true
					break
				}
			}
			if !allowed {
				return false
			}
		}
		if !online {
			if roomOccupied[placement.Room][placement.Slot] {
				return false
			}
			roomOccupied[placement.Room][placement.Slot] = true
		}
		if lecturerBusy[course.Lecturer][placement.Slot] {
			return false
		}
		lecturerBusy[course.Lecturer][placement.Slot] = true
		if classBusy[course.Class][placement.Slot] {
			return false
		}
		classBusy[course.Class][placement.Slot] = true

		if classDaily[course.Class][day]++; classDaily[course.Class][day] > problem.MaxLessonsPerClassDay {
			return false
		}
		if online {
			if onlineDaily[day]++; onlineDaily[day] > problem.MaxOnlinePerDay {
				return false
			}
			if seen, ok := onlineDay[lesson.Course]; ok && seen != day {
				return false
			}
			onlineDay[lesson.Course] = day
		}
	}

	return true
}
