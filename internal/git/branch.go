package git

import "context"

// CreateBranch creates name at HEAD. With checkout it runs
// `git checkout -b`, otherwise `git branch`. Existing names are not checked
// first; git reports the conflict.
func CreateBranch(ctx context.Context, repoPath, name string, checkout bool) error {
	args := []string{"branch", name}
	if checkout {
		args = []string{"checkout", "-b", name}
	}
	_, err := RunGitCtx(ctx, repoPath, args...)
	return err
}
