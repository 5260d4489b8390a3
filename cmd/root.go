package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"gardener/config"
	"gardener/internal/logging"
	"gardener/internal/output"
	"gardener/internal/schedule"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gardener",
		Usage:   "Synthetic commit-history gardener for Git repositories",
		Version: "1.0.0",
		Commands: []*cli.Command{
			RunCmd(),
			PlanCmd(),
			StatusCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			// A .env next to the binary may carry GARDENER_CONFIG and
			// GARDENER_LOGS for cron deployments.
			if exe, err := os.Executable(); err == nil {
				_ = godotenv.Load(filepath.Join(filepath.Dir(exe), ".env"))
			}
			_ = godotenv.Load()

			logging.Init(c.Bool("verbose"))
			return nil
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "start",
			Usage: "Fabrication window start (YYYY-MM-DD, overrides detection)",
		},
		&cli.StringFlag{
			Name:  "end",
			Usage: "Fabrication window end, exclusive (YYYY-MM-DD, overrides detection)",
		},
	}
}

// parseDateFlag parses a date string flag.
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// poolFromConfig builds the message pool, falling back to the built-in set.
func poolFromConfig(cfg *config.Config) (schedule.Pool, error) {
	if len(cfg.Messages) == 0 {
		return schedule.DefaultPool(), nil
	}
	entries := make([]schedule.Message, 0, len(cfg.Messages))
	for _, m := range cfg.Messages {
		entries = append(entries, schedule.Message{Text: m.Text, Weight: m.Weight})
	}
	return schedule.NewPool(entries)
}

func scheduleOptions(cfg *config.Config) schedule.Options {
	return schedule.Options{
		WeekdayMax:     cfg.Schedule.WeekdayMax,
		WeekendMax:     cfg.Schedule.WeekendMax,
		HalveThreshold: cfg.Schedule.HalveThreshold,
		HourMin:        cfg.Schedule.HourMin,
		HourMax:        cfg.Schedule.HourMax,
	}
}

// newGenerator wires the message pool and schedule tuning to a rand source.
// Seed 0 means a fresh non-reproducible source.
func newGenerator(cfg *config.Config, seed int64) (*schedule.Generator, error) {
	pool, err := poolFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	return schedule.NewGenerator(rnd, pool, scheduleOptions(cfg)), nil
}

// Run executes the CLI application. An interrupt cancels the context so the
// daily loop stops before its next operation.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := App().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
