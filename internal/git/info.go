// Package git derives revision information for schema files so generated
// wrappers can record which schema state they were produced from.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Info describes the repository state a schema file was read from.
type Info struct {
	// CommitHash is the current HEAD commit hash
	CommitHash string
	// Branch is the current branch name
	Branch string
	// IsDirty indicates if the working tree has uncommitted changes
	IsDirty bool
}

// Revision formats the info as a single stamp line for generated headers,
// e.g. "3f2a9c1d (main)" or "3f2a9c1d (main, dirty)".
func (i *Info) Revision() string {
	hash := i.CommitHash
	if len(hash) > 8 {
		hash = hash[:8]
	}
	if i.IsDirty {
		return fmt.Sprintf("%s (%s, dirty)", hash, i.Branch)
	}
	return fmt.Sprintf("%s (%s)", hash, i.Branch)
}

// Describe looks up revision information for the repository containing path,
// seeking upwards for the enclosing repository. A path outside any repository
// is not an error; it returns nil info so callers can skip the stamp.
func Describe(path string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository for %q: %w", path, err)
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD reference for %q: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree for %q: %w", path, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status for %q: %w", path, err)
	}

	return &Info{
		CommitHash: headRef.Hash().String(),
		Branch:     headRef.Name().Short(),
		IsDirty:    !status.IsClean(),
	}, nil
}
