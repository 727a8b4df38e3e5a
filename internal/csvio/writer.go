// Package csvio exports built timetables as CSV.
package csvio

import (
	"os"

	"github.com/gdmatos/timetabling/internal/model"
	"github.com/gocarina/gocsv"
)

// ExportTimetable writes the timetable rows to a CSV file, one lesson per
// line with a header row.
func ExportTimetable(path string, rows []model.Row) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&rows, file)
}
