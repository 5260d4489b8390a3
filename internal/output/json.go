package output

import (
	"encoding/json"
)

// JSONScheduleWriter writes schedule reports as JSON.
type JSONScheduleWriter struct{}

// JSONScheduleReport is the JSON output structure for a plan.
type JSONScheduleReport struct {
	Start        string    `json:"start"`
	End          string    `json:"end"`
	GeneratedAt  string    `json:"generatedAt"`
	TotalCommits int       `json:"totalCommits"`
	Days         []JSONDay `json:"days"`
}

// JSONDay is the JSON output structure for a single day.
type JSONDay struct {
	Date    string      `json:"date"`
	Skipped bool        `json:"skipped,omitempty"`
	Events  []JSONEvent `json:"events"`
}

// JSONEvent is the JSON output structure for a single planned commit.
type JSONEvent struct {
	At      string `json:"at"`
	Message string `json:"message"`
}

// Write outputs the schedule report as JSON.
func (w *JSONScheduleWriter) Write(report *ScheduleReport, options OutputOptions) error {
	out := JSONScheduleReport{
		Start:        report.Start.Format(reportDateLayout),
		End:          report.End.Format(reportDateLayout),
		GeneratedAt:  report.GeneratedAt.Format(reportDateTimeLayout),
		TotalCommits: report.TotalEvents(),
		Days:         make([]JSONDay, 0, len(report.Days)),
	}

	for _, day := range report.Days {
		jd := JSONDay{
			Date:    day.Date.Format(reportDateLayout),
			Skipped: day.Skipped,
			Events:  make([]JSONEvent, 0, len(day.Events)),
		}
		for _, ev := range day.Events {
			jd.Events = append(jd.Events, JSONEvent{
				At:      ev.At.Format(reportDateTimeLayout),
				Message: ev.Message,
			})
		}
		out.Days = append(out.Days, jd)
	}

	writer, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
