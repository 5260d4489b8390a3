package gitops

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// DateFormat is the timestamp layout written to the scratch file and passed
// to git for both author and committer dates.
const DateFormat = "2006-01-02 15:04:05"

const committerDateEnv = "GIT_COMMITTER_DATE"

// Client performs history-mutating git operations on one repository by
// shelling out to the git binary.
type Client struct {
	repo string
	run  Runner
}

// NewClient creates a client for the repository at repoPath.
func NewClient(repoPath string, run Runner) *Client {
	return &Client{repo: repoPath, run: run}
}

// RepoPath returns the repository path the client operates on.
func (c *Client) RepoPath() string {
	return c.repo
}

// Stage marks the file's current content for the next commit.
func (c *Client) Stage(ctx context.Context, path string) error {
	_, err := c.git(ctx, "add", path)
	return err
}

// Commit creates a commit whose author and committer timestamps both equal
// when, regardless of the wall clock. The author date goes through the
// --date flag; the committer date needs the GIT_COMMITTER_DATE override,
// scoped to this single invocation.
func (c *Client) Commit(ctx context.Context, message string, when time.Time) error {
	stamp := when.Format(DateFormat)
	return withCommitterDate(stamp, func() error {
		_, err := c.git(ctx, "commit", "--date", stamp, "-m", message)
		return err
	})
}

// Push sends local history to the remote. With force the remote history is
// rewritten unconditionally.
func (c *Client) Push(ctx context.Context, remote string, force bool) error {
	args := []string{"push", remote}
	if force {
		args = append(args, "--force")
	}
	_, err := c.git(ctx, args...)
	return err
}

// ResetHard moves the current branch pointer to ref, discarding local
// divergence.
func (c *Client) ResetHard(ctx context.Context, ref string) error {
	_, err := c.git(ctx, "reset", "--hard", ref)
	return err
}

// Switch changes the active branch.
func (c *Client) Switch(ctx context.Context, branch string) error {
	_, err := c.git(ctx, "switch", branch)
	return err
}

// StatusEntry is one line of porcelain status output.
type StatusEntry struct {
	Code string // two-character XY status code
	Path string // path after rename resolution
}

// StatusEntries lists the dirty and untracked paths of the worktree.
func (c *Client) StatusEntries(ctx context.Context) ([]StatusEntry, error) {
	out, err := c.git(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseStatus(out), nil
}

func (c *Client) git(ctx context.Context, args ...string) (string, error) {
	full := append([]string{"-C", c.repo}, args...)
	return c.run.Run(ctx, "git", full...)
}

// parseStatus parses `git status --porcelain` output. Rename lines carry
// "old -> new"; the destination path is the one that matters for guarding.
func parseStatus(out string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		path := strings.TrimSpace(line[3:])
		if idx := strings.Index(path, " -> "); idx != -1 {
			path = path[idx+len(" -> "):]
		}
		path = strings.Trim(path, `"`)
		entries = append(entries, StatusEntry{Code: code, Path: path})
	}
	return entries
}

// withCommitterDate sets GIT_COMMITTER_DATE to value around fn and restores
// the previous ambient value (or clears it) on every exit path.
func withCommitterDate(value string, fn func() error) error {
	prev, had := os.LookupEnv(committerDateEnv)
	if err := os.Setenv(committerDateEnv, value); err != nil {
		return fmt.Errorf("set %s: %w", committerDateEnv, err)
	}
	defer func() {
		if had {
			os.Setenv(committerDateEnv, prev)
		} else {
			os.Unsetenv(committerDateEnv)
		}
	}()
	return fn()
}
