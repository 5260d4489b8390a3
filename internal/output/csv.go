package output

import (
	"encoding/csv"
	"strconv"
)

// CSVScheduleWriter writes schedule reports as CSV.
type CSVScheduleWriter struct{}

// Write outputs the schedule report as CSV, one row per planned commit.
func (w *CSVScheduleWriter) Write(report *ScheduleReport, options OutputOptions) error {
	writer, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	cw := csv.NewWriter(writer)
	defer cw.Flush()

	if err := cw.Write([]string{"Date", "Time", "Message", "DayCommits"}); err != nil {
		return err
	}

	for _, day := range report.Days {
		for _, ev := range day.Events {
			row := []string{
				day.Date.Format(reportDateLayout),
				ev.At.Format("15:04:05"),
				ev.Message,
				strconv.Itoa(len(day.Events)),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	return nil
}
