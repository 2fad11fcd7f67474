// Package git reads repository context for the dashboard header.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

// Detector implements ports.GitDetector with go-git. It holds no state;
// every call re-reads the filesystem so the header reflects the current
// checkout.
type Detector struct{}

// NewDetector creates a new git detector.
func NewDetector() *Detector {
	return &Detector{}
}

var _ ports.GitDetector = (*Detector)(nil)

// Detect reports the repository enclosing dir (the working directory when
// dir is empty): branch, HEAD hash, modified files and the remote-derived
// repository name.
func (d *Detector) Detect(ctx context.Context, dir string) (*ports.GitInfo, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	root, err := repoRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("git repository not found: %w", err)
	}

	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	info := &ports.GitInfo{
		Branch:     branchLabel(head.Name().Short()),
		Commit:     head.Hash().String(),
		Repository: remoteName(repo),
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}
	info.IsClean = status.IsClean()
	for file, st := range status {
		if st.Worktree == git.Unmodified || st.Worktree == git.Untracked {
			continue
		}
		info.Modified = append(info.Modified, file)
	}

	return info, nil
}

// IsAvailable reports whether a repository encloses the current directory.
func (d *Detector) IsAvailable() bool {
	wd, err := os.Getwd()
	if err != nil {
		return false
	}
	_, err = repoRoot(wd)
	return err == nil
}

// branchLabel turns the detached-HEAD pseudo branch into a display label.
func branchLabel(short string) string {
	if short == "HEAD" {
		return "HEAD detached"
	}
	return short
}

// remoteName derives owner/repo from the first remote, or "" without one.
func remoteName(repo *git.Repository) string {
	remotes, err := repo.Remotes()
	if err != nil || len(remotes) == 0 {
		return ""
	}
	urls := remotes[0].Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return repoNameFromURL(urls[0])
}

// repoRoot walks from dir toward the filesystem root until it finds a .git
// entry. A regular .git file counts too: linked worktrees keep a "gitdir:"
// pointer there instead of a directory.
func repoRoot(dir string) (string, error) {
	for {
		entry := filepath.Join(dir, ".git")
		if fi, err := os.Stat(entry); err == nil {
			if fi.IsDir() {
				return dir, nil
			}
			if body, err := os.ReadFile(entry); err == nil && strings.HasPrefix(string(body), "gitdir: ") {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no .git directory found")
		}
		dir = parent
	}
}

// repoNameFromURL reduces a remote URL to owner/repo. Unrecognized shapes
// come back unchanged.
func repoNameFromURL(url string) string {
	switch {
	case strings.HasPrefix(url, "git@"):
		// git@github.com:owner/repo.git
		if i := strings.LastIndex(url, ":"); i >= 0 {
			return strings.TrimSuffix(url[i+1:], ".git")
		}
	case strings.HasPrefix(url, "http"):
		// https://github.com/owner/repo.git
		parts := strings.Split(url, "/")
		if len(parts) >= 2 {
			repo := strings.TrimSuffix(parts[len(parts)-1], ".git")
			return parts[len(parts)-2] + "/" + repo
		}
	}
	return url
}

// ShortCommit abbreviates a commit hash for display.
func ShortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
