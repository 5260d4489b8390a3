package gitops

import (
	"fmt"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CommitSummary is the minimal information needed about the tip of a ref.
type CommitSummary struct {
	When    time.Time
	Subject string
}

// InfoSource answers read-only history queries. The controller depends on
// this interface so tests can substitute canned answers.
type InfoSource interface {
	// LastCommitInfo returns the committer timestamp and subject line of
	// the most recent commit reachable from ref. It fails if the ref does
	// not resolve or has no history.
	LastCommitInfo(ref string) (CommitSummary, error)
}

// Inspector reads history through go-git, keeping queries off the exec path.
// Mutations still go through Client; only inspection lives here.
type Inspector struct {
	repo *git.Repository
}

// NewInspector opens the repository at path for inspection.
func NewInspector(path string) (*Inspector, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", path, err)
	}
	return &Inspector{repo: repo}, nil
}

// LastCommitInfo resolves ref and returns its tip commit's committer time
// and subject (first line of the message).
func (i *Inspector) LastCommitInfo(ref string) (CommitSummary, error) {
	hash, err := i.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return CommitSummary{}, fmt.Errorf("resolve %q: %w", ref, err)
	}

	commit, err := i.repo.CommitObject(*hash)
	if err != nil {
		return CommitSummary{}, fmt.Errorf("read commit %s: %w", hash, err)
	}

	subject := commit.Message
	if idx := strings.IndexByte(subject, '\n'); idx != -1 {
		subject = subject[:idx]
	}

	return CommitSummary{When: commit.Committer.When, Subject: subject}, nil
}

// Compile-time interface conformance check.
var _ InfoSource = (*Inspector)(nil)
