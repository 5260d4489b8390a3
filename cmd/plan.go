package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"gardener/internal/fabricate"
	"gardener/internal/output"
)

// PlanCmd creates the plan command: a dry run that prints the schedule a
// window would produce without touching any repository.
func PlanCmd() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Preview the commit schedule for a window (no git operations)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "start",
				Usage: "Window start (YYYY-MM-DD, default: --days before today)",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "Window end, exclusive (YYYY-MM-DD, default: tomorrow)",
			},
			&cli.IntFlag{
				Name:  "days",
				Usage: "Window length in days when --start is omitted",
				Value: 14,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Random seed for a reproducible plan (0 = random)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (console, json, csv)",
				Value:   "console",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to configuration file",
			},
		},
		Action: planAction,
	}
}

func planAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	start, err := parseDateFlag(c.String("start"))
	if err != nil {
		return err
	}
	end, err := parseDateFlag(c.String("end"))
	if err != nil {
		return err
	}

	now := time.Now()
	window := fabricate.Window{
		Start: fabricate.StartOfDay(now.AddDate(0, 0, -c.Int("days"))),
		End:   fabricate.StartOfDay(now.AddDate(0, 0, 1)),
	}
	if start != nil {
		window.Start = *start
	}
	if end != nil {
		window.End = *end
	}

	gen, err := newGenerator(cfg, c.Int64("seed"))
	if err != nil {
		return err
	}

	report := &output.ScheduleReport{
		Start:       window.Start,
		End:         window.End,
		GeneratedAt: now,
	}
	for _, day := range window.Days() {
		events := gen.PlanDay(day)
		report.Days = append(report.Days, output.DayPlan{
			Date:    day,
			Skipped: len(events) == 0,
			Events:  events,
		})
	}

	writer := output.NewScheduleWriter(getOutputFormat(c.String("format")))
	return writer.Write(report, output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
	})
}
