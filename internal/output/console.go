package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleScheduleWriter writes schedule reports to the console.
type ConsoleScheduleWriter struct{}

// Write outputs the schedule report to the console.
func (w *ConsoleScheduleWriter) Write(report *ScheduleReport, options OutputOptions) error {
	color.Green("Fabrication plan")
	fmt.Printf("Window: %s to %s (exclusive)\n", report.Start.Format(reportDateLayout), report.End.Format(reportDateLayout))
	fmt.Printf("Days: %d, commits: %d\n\n", len(report.Days), report.TotalEvents())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tCommits\tTimes and messages")

	for _, day := range report.Days {
		if day.Skipped {
			fmt.Fprintf(tw, "%s\t0\t(skipped)\n", day.Date.Format(reportDateLayout))
			continue
		}
		for i, ev := range day.Events {
			date := day.Date.Format(reportDateLayout)
			count := ""
			if i == 0 {
				count = fmt.Sprintf("%d", len(day.Events))
			} else {
				date = ""
			}
			fmt.Fprintf(tw, "%s\t%s\t%s  %s\n", date, count, ev.At.Format("15:04:05"), ev.Message)
		}
	}

	return tw.Flush()
}
