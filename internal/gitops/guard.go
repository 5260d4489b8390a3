package gitops

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// GuardWorktree verifies that every dirty or untracked path matches one of
// the allow globs. A hard reset follows this check, so anything the globs do
// not cover is treated as real work and aborts the run.
func GuardWorktree(entries []StatusEntry, allow []string) error {
	for _, e := range entries {
		ok, err := matchesAny(e.Path, allow)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("worktree has unexpected changes: %q (%s); refusing to reset", e.Path, e.Code)
		}
	}
	return nil
}

func matchesAny(path string, patterns []string) (bool, error) {
	for _, p := range patterns {
		ok, err := doublestar.Match(p, path)
		if err != nil {
			return false, fmt.Errorf("invalid guard pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
