package model

// ReferenceDataset returns the built-in demonstration input: three classes of
// five courses each, four lecturers with assorted blackout slots, two courses
// pinned to Lab01 and two delivered fully online.
func ReferenceDataset() Dataset {
	return Dataset{
		ClassCourses: map[string][]string{
			"t01": {"UC11", "UC12", "UC13", "UC14", "UC15"},
			"t02": {"UC21", "UC22", "UC23", "UC24", "UC25"},
			"t03": {"UC31", "UC32", "UC33", "UC34", "UC35"},
		},
		LecturerCourses: map[string][]string{
			"jo":   {"UC11", "UC21", "UC22", "UC31"},
			"mike": {"UC12", "UC23", "UC32"},
			"rob":  {"UC13", "UC14", "UC24", "UC33"},
			"sue":  {"UC15", "UC25", "UC34", "UC35"},
		},
		ForbiddenSlots: map[string][]int{
			"mike": {13, 14, 15, 16, 17, 18, 19, 20},
			"rob":  {1, 2, 3, 4},
			"sue":  {9, 10, 11, 12, 17, 18, 19, 20},
		},
		RequiredRooms: map[string]string{
			"UC14": "Lab01",
			"UC22": "Lab01",
		},
		OnlineCounts: map[string]int{
			"UC21": 2,
			"UC31": 2,
		},
	}
}
