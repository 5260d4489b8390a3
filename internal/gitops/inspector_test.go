package gitops

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo initializes a temporary repository with a worktree.
func createTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := git.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return tmpDir, repo
}

// addCommit writes a file and commits it with the given timestamp.
func addCommit(t *testing.T, dir string, repo *git.Repository, message string, when time.Time) {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	path := filepath.Join(dir, "edit.txt")
	if err := os.WriteFile(path, []byte(when.Format(DateFormat)+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := w.Add("edit.txt"); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	sig := &object.Signature{Name: "tester", Email: "tester@example.com", When: when}
	if _, err := w.Commit(message, &git.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
}

func TestInspector_LastCommitInfo(t *testing.T) {
	dir, repo := createTestRepo(t)

	first := time.Date(2023, 2, 1, 10, 0, 0, 0, time.UTC)
	last := time.Date(2023, 2, 3, 18, 30, 0, 0, time.UTC)
	addCommit(t, dir, repo, "Add a new feature", first)
	addCommit(t, dir, repo, "Fix a bug\n\nLonger body that must not leak into the subject.", last)

	inspector, err := NewInspector(dir)
	if err != nil {
		t.Fatalf("NewInspector: %v", err)
	}

	info, err := inspector.LastCommitInfo("HEAD")
	if err != nil {
		t.Fatalf("LastCommitInfo: %v", err)
	}

	if info.Subject != "Fix a bug" {
		t.Errorf("Subject = %q, expected first message line only", info.Subject)
	}
	if !info.When.Equal(last) {
		t.Errorf("When = %v, expected %v", info.When, last)
	}
}

func TestInspector_LastCommitInfo_UnknownRef(t *testing.T) {
	dir, repo := createTestRepo(t)
	addCommit(t, dir, repo, "Add a new feature", time.Date(2023, 2, 1, 10, 0, 0, 0, time.UTC))

	inspector, err := NewInspector(dir)
	if err != nil {
		t.Fatalf("NewInspector: %v", err)
	}

	if _, err := inspector.LastCommitInfo("no-such-branch"); err == nil {
		t.Error("expected error for unknown ref")
	}
}

func TestNewInspector_NotARepository(t *testing.T) {
	if _, err := NewInspector(t.TempDir()); err == nil {
		t.Error("expected error for a directory that is not a repository")
	}
}
