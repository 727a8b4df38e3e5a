package model

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Dataset is the raw scheduling input: five sections keyed by opaque string
// identifiers, plus an optional room list overriding the default one.
type Dataset struct {
	ClassCourses    map[string][]string `mapstructure:"cc"`
	LecturerCourses map[string][]string `mapstructure:"dsd"`
	ForbiddenSlots  map[string][]int    `mapstructure:"tr"`
	RequiredRooms   map[string]string   `mapstructure:"rr"`
	OnlineCounts    map[string]int      `mapstructure:"oc"`
	Rooms           []string            `mapstructure:"rooms"`
}

// DefaultRooms is the physical room list used when the dataset carries no
// #rooms section. The online room is implicit and always present.
var DefaultRooms = []string{"RoomA", "RoomB", "RoomC", "Lab01"}

// ParseDataset reads the text dataset format: sections opened by a line whose
// first token is #cc, #dsd, #tr, #rr, #oc or #rooms, followed by
// whitespace-separated records. Unknown sections are ignored.
func ParseDataset(reader io.Reader) (Dataset, error) {
	dataset := Dataset{
		ClassCourses:    map[string][]string{},
		LecturerCourses: map[string][]string{},
		ForbiddenSlots:  map[string][]int{},
		RequiredRooms:   map[string]string{},
		OnlineCounts:    map[string]int{},
	}

	section := ""
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			section = strings.Fields(line)[0]
			continue
		}

		fields := strings.Fields(line)
		switch section {
		case "#cc":
			if len(fields) < 2 {
				return Dataset{}, &InputError{Record: fields[0], Reason: "class without courses"}
			}
			dataset.ClassCourses[fields[0]] = fields[1:]
		case "#dsd":
			if len(fields) < 2 {
				return Dataset{}, &InputError{Record: fields[0], Reason: "lecturer without courses"}
			}
			dataset.LecturerCourses[fields[0]] = fields[1:]
		case "#tr":
			slots := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				slot, err := strconv.Atoi(field)
				if err != nil {
					return Dataset{}, &InputError{Record: fields[0], Reason: fmt.Sprintf("timeslot %q is not a number", field)}
				}
				slots = append(slots, slot)
			}
			dataset.ForbiddenSlots[fields[0]] = slots
		case "#rr":
			if len(fields) != 2 {
				return Dataset{}, &InputError{Record: fields[0], Reason: "room restriction must name exactly one room"}
			}
			dataset.RequiredRooms[fields[0]] = fields[1]
		case "#oc":
			if len(fields) != 2 {
				return Dataset{}, &InputError{Record: fields[0], Reason: "online count must be a single number"}
			}
			count, err := strconv.Atoi(fields[1])
			if err != nil {
				return Dataset{}, &InputError{Record: fields[0], Reason: fmt.Sprintf("online count %q is not a number", fields[1])}
			}
			dataset.OnlineCounts[fields[0]] = count
		case "#rooms":
			dataset.Rooms = append(dataset.Rooms, fields...)
		}
	}
	if err := scanner.Err(); err != nil {
		return Dataset{}, err
	}

	return dataset, nil
}

// DatasetFromFile parses the text dataset format from a file.
func DatasetFromFile(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer file.Close()
	return ParseDataset(file)
}

// DatasetFromJson reads the same five sections from a json file.
func DatasetFromJson(file string) (Dataset, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Dataset{}, err
	}
	var datasetJson map[string]any
	if err := json.Unmarshal(bytes, &datasetJson); err != nil {
		return Dataset{}, err
	}

	var dataset Dataset
	if err := mapstructure.Decode(datasetJson, &dataset); err != nil {
		return Dataset{}, err
	}

	if dataset.ClassCourses == nil {
		dataset.ClassCourses = map[string][]string{}
	}
	if dataset.LecturerCourses == nil {
		dataset.LecturerCourses = map[string][]string{}
	}
	if dataset.ForbiddenSlots == nil {
		dataset.ForbiddenSlots = map[string][]int{}
	}
	if dataset.RequiredRooms == nil {
		dataset.RequiredRooms = map[string]string{}
	}
	if dataset.OnlineCounts == nil {
		dataset.OnlineCounts = map[string]int{}
	}

	return dataset, nil
}

// PhysicalRooms returns the dataset's room list, falling back to the default
// when the dataset carries none.
func (dataset Dataset) PhysicalRooms() []string {
	if len(dataset.Rooms) > 0 {
		return dataset.Rooms
	}
	return DefaultRooms
}

// Validate fails fast on records that can never yield a consistent problem
// model: unknown identifiers, shared lecturers, out-of-range timeslots and
// online/room combinations that are infeasible by construction.
func (dataset Dataset) Validate() error {
	courseNames := lo.Uniq(lo.Flatten(lo.Values(dataset.ClassCourses)))
	physicalRooms := dataset.PhysicalRooms()

	for class, courses := range dataset.ClassCourses {
		if len(courses) == 0 {
			return &InputError{Record: class, Reason: "class without courses"}
		}
	}

	for lecturer, courses := range dataset.LecturerCourses {
		for _, course := range courses {
			if !slices.Contains(courseNames, course) {
				return &InputError{Record: lecturer, Reason: fmt.Sprintf("course %v is not assigned to any class", course)}
			}
		}
	}

	for _, course := range courseNames {
		lecturers := lo.Filter(lo.Keys(dataset.LecturerCourses), func(lecturer string, _ int) bool {
			return slices.Contains(dataset.LecturerCourses[lecturer], course)
		})
		if len(lecturers) == 0 {
			return &InputError{Record: course, Reason: "course has no lecturer"}
		} else if len(lecturers) > 1 {
			slices.Sort(lecturers)
			return &InputError{Record: course, Reason: fmt.Sprintf("course has more than one lecturer: %v", lecturers)}
		}
	}

	for lecturer, forbidden := range dataset.ForbiddenSlots {
		if _, known := dataset.LecturerCourses[lecturer]; !known {
			return &InputError{Record: lecturer, Reason: "timeslot restriction for an unknown lecturer"}
		}
		for _, slot := range forbidden {
			if slot < 1 || slot > Timeslots {
				return &InputError{Record: lecturer, Reason: fmt.Sprintf("timeslot %v is out of range 1..%v", slot, Timeslots)}
			}
		}
	}

	for course, room := range dataset.RequiredRooms {
		if !slices.Contains(courseNames, course) {
			return &InputError{Record: course, Reason: "room restriction for an unknown course"}
		}
		if !slices.Contains(physicalRooms, room) {
			return &InputError{Record: course, Reason: fmt.Sprintf("required room %v is not a known room", room)}
		}
	}

	for course, count := range dataset.OnlineCounts {
		if !slices.Contains(courseNames, course) {
			return &InputError{Record: course, Reason: "online count for an unknown course"}
		}
		if count < 1 || count > LessonsPerCourse {
			return &InputError{Record: course, Reason: fmt.Sprintf("online count must be between 1 and %v, got %v", LessonsPerCourse, count)}
		}
		if _, restricted := dataset.RequiredRooms[course]; restricted && count == LessonsPerCourse {
			return &InputError{Record: course, Reason: "every lesson is online, yet a physical room is required"}
		}
	}

	return nil
}
