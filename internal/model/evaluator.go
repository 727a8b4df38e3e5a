package model

import (
	"slices"

	"github.com/samber/lo"
)

// Evaluator scores a complete feasible timetable against the soft criteria.
// Higher is better; scoring is pure, so the same timetable always yields the
// same integer.
type Evaluator interface {
	Score(timetable Timetable) int
}

func NewEvaluator(problem *Problem) Evaluator {
	return &softEvaluator{problem: problem}
}

type softEvaluator struct {
	problem *Problem
}

func (evaluator *softEvaluator) Score(timetable Timetable) int {
	if len(timetable) != len(evaluator.problem.Lessons) {
		panic("timetable does not cover every lesson")
	}
	return evaluator.temporalDistribution(timetable) +
		evaluator.weeklyDistribution(timetable) +
		evaluator.roomMinimization(timetable) +
		evaluator.consecutivity(timetable)
}

// temporalDistribution awards +10 for every course whose occurrences fall on
// pairwise distinct days.
func (evaluator *softEvaluator) temporalDistribution(timetable Timetable) int {
	days := make([][]int, len(evaluator.problem.Courses))
	for i, placement := range timetable {
		course := evaluator.problem.Lessons[i].Course
		days[course] = append(days[course], DayOf(placement.Slot))
	}

	score := 0
	for _, courseDays := range days {
		if len(lo.Uniq(courseDays)) == len(courseDays) {
			score += 10
		}
	}
	return score
}

// weeklyDistribution awards +20 for every class spreading its lessons over at
// least four distinct days.
func (evaluator *softEvaluator) weeklyDistribution(timetable Timetable) int {
	days := make([][]int, len(evaluator.problem.Classes))
	for i, placement := range timetable {
		class := evaluator.problem.Courses[evaluator.problem.Lessons[i].Course].Class
		days[class] = append(days[class], DayOf(placement.Slot))
	}

	score := 0
	for _, classDays := range days {
		if len(lo.Uniq(classDays)) >= 4 {
			score += 20
		}
	}
	return score
}

// roomMinimization penalizes each class 2 points per distinct physical room
// it occupies.
func (evaluator *softEvaluator) roomMinimization(timetable Timetable) int {
	rooms := make([][]int, len(evaluator.problem.Classes))
	for i, placement := range timetable {
		if placement.Room == evaluator.problem.OnlineRoom() {
			continue
		}
		class := evaluator.problem.Courses[evaluator.problem.Lessons[i].Course].Class
		rooms[class] = append(rooms[class], placement.Room)
	}

	score := 0
	for _, classRooms := range rooms {
		score -= 2 * len(lo.Uniq(classRooms))
	}
	return score
}

// consecutivity awards +5 for each pair of back-to-back lessons a class has
// within a day.
func (evaluator *softEvaluator) consecutivity(timetable Timetable) int {
	slotsByClassDay := map[[2]int][]int{}
	for i, placement := range timetable {
		class := evaluator.problem.Courses[evaluator.problem.Lessons[i].Course].Class
		key := [2]int{class, DayOf(placement.Slot)}
		slotsByClassDay[key] = append(slotsByClassDay[key], SlotOfDay(placement.Slot))
	}

	score := 0
	for _, slots := range slotsByClassDay {
		slices.Sort(slots)
		for i := 1; i < len(slots); i++ {
			if slots[i]-slots[i-1] == 1 {
				score += 5
			}
		}
	}
	return score
}
