package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"gardener/config"
	"gardener/internal/fabricate"
	"gardener/internal/gitops"
)

// RunCmd creates the run command: detect the run mode, fabricate commits
// over the window, and push them.
func RunCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Fabricate backdated commits and push them to the remote",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to configuration file",
			},
		),
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts, err := fabricatorOptions(c, cfg)
	if err != nil {
		return err
	}

	repoPath := c.String("repo")
	inspector, err := gitops.NewInspector(repoPath)
	if err != nil {
		return fmt.Errorf("not a Git repository: %w", err)
	}
	client := gitops.NewClient(repoPath, gitops.ExecRunner{})

	gen, err := newGenerator(cfg, 0)
	if err != nil {
		return err
	}

	fab := fabricate.New(client, inspector, gen, opts)
	return fab.Run(c.Context)
}

// fabricatorOptions maps config and flags onto fabricate.Options.
func fabricatorOptions(c *cli.Context, cfg *config.Config) (fabricate.Options, error) {
	start, err := parseDateFlag(c.String("start"))
	if err != nil {
		return fabricate.Options{}, err
	}
	end, err := parseDateFlag(c.String("end"))
	if err != nil {
		return fabricate.Options{}, err
	}

	return fabricate.Options{
		RepoPath:       c.String("repo"),
		Stable:         cfg.Branches.Stable,
		Staging:        cfg.Branches.Staging,
		Remote:         cfg.Remote,
		ScratchFile:    cfg.ScratchFile,
		FlushEveryDays: cfg.Schedule.FlushEveryDays,
		BackfillWeeks:  cfg.Schedule.BackfillWeeks,
		GuardAllow:     cfg.Guard.Allow,
		Start:          start,
		End:            end,
	}, nil
}
