package git

import (
	"context"
	"fmt"
)

// Repo runs the branch helper's git commands against one working tree.
type Repo struct {
	Dir        string
	HashLength int
	Checkout   bool
}

// NewRepo returns a Repo for dir that checks out created branches.
func NewRepo(dir string) *Repo {
	return &Repo{Dir: dir, HashLength: DefaultHashLength, Checkout: true}
}

// HeadCommit reads the current branch and returns its short tip hash.
func (r *Repo) HeadCommit(ctx context.Context) (branch, hash string, err error) {
	branch, err = GetCurrentBranch(ctx, r.Dir)
	if err != nil {
		return "", "", fmt.Errorf("read current branch: %w", err)
	}
	hash, err = LatestCommit(ctx, r.Dir, branch, r.hashLength())
	if err != nil {
		return branch, "", fmt.Errorf("read latest commit of %s: %w", branch, err)
	}
	return branch, hash, nil
}

// Create creates the named branch.
func (r *Repo) Create(ctx context.Context, name string) error {
	if err := CreateBranch(ctx, r.Dir, name, r.Checkout); err != nil {
		return fmt.Errorf("create branch %s: %w", name, err)
	}
	return nil
}

func (r *Repo) hashLength() int {
	if r.HashLength <= 0 {
		return DefaultHashLength
	}
	return r.HashLength
}
