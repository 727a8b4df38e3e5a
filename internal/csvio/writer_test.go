package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdmatos/timetabling/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestExportTimetable(t *testing.T) {
	// Arrange
	rows := []model.Row{
		{Class: "t01", Course: "UC11", Occurrence: 1, Day: 1, DaySlot: 2, Timeslot: 2, Room: "RoomA"},
		{Class: "t02", Course: "UC21", Occurrence: 2, Day: 3, DaySlot: 1, Timeslot: 9, Room: "Online"},
	}
	path := filepath.Join(t.TempDir(), "timetable.csv")

	// Act
	err := ExportTimetable(path, rows)

	// Assert
	assert.Nil(t, err)
	content, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Contains(t, string(content), "class,course,occurrence,day,day_slot,timeslot,room")
	assert.Contains(t, string(content), "t01,UC11,1,1,2,2,RoomA")
	assert.Contains(t, string(content), "t02,UC21,2,3,1,9,Online")
}
