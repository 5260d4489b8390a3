package fabricate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"gardener/internal/gitops"
	"gardener/internal/schedule"
)

const dayFormat = "2006-01-02"

// GitClient is the mutating side of the git collaborator. It mirrors
// gitops.Client so tests can record operations without a repository.
type GitClient interface {
	Stage(ctx context.Context, path string) error
	Commit(ctx context.Context, message string, when time.Time) error
	Push(ctx context.Context, remote string, force bool) error
	ResetHard(ctx context.Context, ref string) error
	Switch(ctx context.Context, branch string) error
	StatusEntries(ctx context.Context) ([]gitops.StatusEntry, error)
}

// Compile-time interface conformance check.
var _ GitClient = (*gitops.Client)(nil)

// Options configures a Fabricator.
type Options struct {
	RepoPath    string
	Stable      string // branch whose history is rewritten
	Staging     string // branch holding the real baseline
	Remote      string
	ScratchFile string // repo-relative file overwritten per event

	FlushEveryDays int // push after this many processed days
	BackfillWeeks  int // fresh-run window length

	GuardAllow []string // globs for dirty paths safe to discard on reset

	// Explicit window bounds; nil means derived from mode detection.
	Start *time.Time
	End   *time.Time

	// Now overrides the clock for tests; nil means time.Now.
	Now func() time.Time
}

// Fabricator drives one fabrication run: mode detection, the optional
// destructive reset, the daily commit loop, and the push cadence.
type Fabricator struct {
	git  GitClient
	info gitops.InfoSource
	gen  *schedule.Generator
	opts Options
}

// New creates a Fabricator.
func New(git GitClient, info gitops.InfoSource, gen *schedule.Generator, opts Options) *Fabricator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Fabricator{git: git, info: info, gen: gen, opts: opts}
}

// Plan decides between a fresh run and a resume by comparing the last
// commit subjects of the stable and staging refs, and derives the
// fabrication window. A failed history query aborts the invocation; there
// is no safe default window to fall back to.
func (f *Fabricator) Plan() (Window, error) {
	stable, err := f.info.LastCommitInfo(f.opts.Stable)
	if err != nil {
		return Window{}, fmt.Errorf("inspect %s: %w", f.opts.Stable, err)
	}
	staging, err := f.info.LastCommitInfo(f.opts.Staging)
	if err != nil {
		return Window{}, fmt.Errorf("inspect %s: %w", f.opts.Staging, err)
	}

	now := f.opts.Now()

	var w Window
	if stable.Subject == staging.Subject {
		// Staging has not diverged since the last fabricated run: start
		// over from a full backfill window.
		w = Window{
			Start: StartOfDay(now.AddDate(0, 0, -7*f.opts.BackfillWeeks)),
			End:   now,
			Mode:  ModeFresh,
		}
	} else {
		// Continue forward from the last fabricated checkpoint on stable.
		w = Window{
			Start: StartOfDay(stable.When),
			End:   now.AddDate(0, 0, 1),
			Mode:  ModeResume,
		}
	}

	if f.opts.Start != nil {
		w.Start = StartOfDay(*f.opts.Start)
	}
	if f.opts.End != nil {
		w.End = *f.opts.End
	}
	return w, nil
}

// Run executes a full fabrication pass. Per-commit and per-push failures
// are logged and the loop continues; a failure while establishing the
// fresh-run base aborts the whole run.
func (f *Fabricator) Run(ctx context.Context) error {
	w, err := f.Plan()
	if err != nil {
		log.Error().Err(err).Msg("cannot determine fabrication window")
		return err
	}

	log.Info().
		Str("mode", w.Mode.String()).
		Str("start", w.Start.Format(dayFormat)).
		Str("end", w.End.Format(dayFormat)).
		Msg("planned fabrication window")

	if w.Mode == ModeFresh {
		if err := f.resetBase(ctx); err != nil {
			log.Error().Err(err).Msg("fresh-run base reset failed; aborting")
			return err
		}
	}

	f.commitLoop(ctx, w)
	return nil
}

// resetBase rewinds stable onto staging and force-pushes, after checking
// the worktree guard. No fabrication happens without a known-good base.
func (f *Fabricator) resetBase(ctx context.Context) error {
	entries, err := f.git.StatusEntries(ctx)
	if err != nil {
		return err
	}
	if err := gitops.GuardWorktree(entries, f.opts.GuardAllow); err != nil {
		return err
	}

	if err := f.git.Switch(ctx, f.opts.Stable); err != nil {
		return err
	}
	if err := f.git.ResetHard(ctx, f.opts.Staging); err != nil {
		return err
	}
	if err := f.git.Push(ctx, f.opts.Remote, true); err != nil {
		return err
	}

	log.Info().
		Str("stable", f.opts.Stable).
		Str("staging", f.opts.Staging).
		Msg("stable branch reset onto staging")
	return nil
}

// commitLoop walks the window day by day. An interrupt stops before the
// next operation; commits already applied stay in place.
func (f *Fabricator) commitLoop(ctx context.Context, w Window) {
	processed := 0
	for _, day := range w.Days() {
		if interrupted(ctx) {
			return
		}

		events := f.gen.PlanDay(day)
		for _, ev := range events {
			if interrupted(ctx) {
				return
			}
			if err := f.applyEvent(ctx, ev); err != nil {
				log.Error().Err(err).Str("at", ev.At.Format(gitops.DateFormat)).Msg("commit failed")
			}
		}
		log.Info().Str("day", day.Format(dayFormat)).Int("commits", len(events)).Msg("day processed")

		processed++
		if processed%f.opts.FlushEveryDays == 0 {
			f.flush(ctx)
		}
	}
	f.flush(ctx)
}

// applyEvent overwrites the scratch file with the event's timestamp, stages
// it, and commits with the timestamp backdated.
func (f *Fabricator) applyEvent(ctx context.Context, ev schedule.Event) error {
	stamp := ev.At.Format(gitops.DateFormat)

	path := filepath.Join(f.opts.RepoPath, f.opts.ScratchFile)
	if err := os.WriteFile(path, []byte(stamp+"\n"), 0644); err != nil {
		return fmt.Errorf("write scratch file %s: %w", path, err)
	}

	if err := f.git.Stage(ctx, f.opts.ScratchFile); err != nil {
		return err
	}
	if err := f.git.Commit(ctx, ev.Message, ev.At); err != nil {
		return err
	}

	log.Debug().Str("message", ev.Message).Str("at", stamp).Msg("committed")
	return nil
}

// flush pushes accumulated local commits. A failure leaves them local; the
// next cadence trigger or the final flush retries.
func (f *Fabricator) flush(ctx context.Context) {
	if err := f.git.Push(ctx, f.opts.Remote, false); err != nil {
		log.Error().Err(err).Msg("push failed; commits remain local")
		return
	}
	log.Info().Str("remote", f.opts.Remote).Msg("pushed accumulated commits")
}

func interrupted(ctx context.Context) bool {
	if ctx.Err() != nil {
		log.Info().Msg("interrupted; applied commits are durable, remaining events abandoned")
		return true
	}
	return false
}
