package output

import (
	"time"

	"gardener/internal/schedule"
)

// Compile-time interface conformance checks.
var (
	_ ScheduleWriter = (*ConsoleScheduleWriter)(nil)
	_ ScheduleWriter = (*JSONScheduleWriter)(nil)
	_ ScheduleWriter = (*CSVScheduleWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// DayPlan is the planned events of one calendar day.
type DayPlan struct {
	Date    time.Time
	Skipped bool // weekend day dropped by the skip gate or zero-count day
	Events  []schedule.Event
}

// ScheduleReport holds a dry-run fabrication plan for a window.
type ScheduleReport struct {
	Start       time.Time
	End         time.Time
	GeneratedAt time.Time
	Days        []DayPlan
}

// TotalEvents counts the events across all days.
func (r *ScheduleReport) TotalEvents() int {
	total := 0
	for _, d := range r.Days {
		total += len(d.Events)
	}
	return total
}

// ScheduleWriter writes schedule reports.
type ScheduleWriter interface {
	Write(report *ScheduleReport, options OutputOptions) error
}

// NewScheduleWriter creates a schedule writer for the specified format.
func NewScheduleWriter(format OutputFormat) ScheduleWriter {
	switch format {
	case FormatJSON:
		return &JSONScheduleWriter{}
	case FormatCSV:
		return &CSVScheduleWriter{}
	default:
		return &ConsoleScheduleWriter{}
	}
}
