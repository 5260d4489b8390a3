package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"gardener/internal/fabricate"
	"gardener/internal/gitops"
)

// StatusCmd creates the status command: report the mode decision and the
// computed window without mutating anything.
func StatusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the detected run mode and fabrication window",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to configuration file",
			},
		),
		Action: statusAction,
	}
}

func statusAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts, err := fabricatorOptions(c, cfg)
	if err != nil {
		return err
	}

	inspector, err := gitops.NewInspector(c.String("repo"))
	if err != nil {
		return fmt.Errorf("not a Git repository: %w", err)
	}

	// Plan only inspects; no git client or generator is needed.
	fab := fabricate.New(nil, inspector, nil, opts)
	window, err := fab.Plan()
	if err != nil {
		return err
	}

	stable, _ := inspector.LastCommitInfo(cfg.Branches.Stable)
	staging, _ := inspector.LastCommitInfo(cfg.Branches.Staging)

	if window.Mode == fabricate.ModeFresh {
		color.Red("Mode: fresh (stable will be reset onto staging and force-pushed)")
	} else {
		color.Green("Mode: resume")
	}
	fmt.Printf("Window: %s to %s (exclusive), %d days\n",
		window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"), len(window.Days()))
	fmt.Printf("%s: %s (%s)\n", cfg.Branches.Stable, stable.Subject, stable.When.Format("2006-01-02 15:04:05"))
	fmt.Printf("%s: %s (%s)\n", cfg.Branches.Staging, staging.Subject, staging.When.Format("2006-01-02 15:04:05"))
	return nil
}
