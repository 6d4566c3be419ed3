package git

import (
	"context"
	"strings"
)

// DefaultHashLength is the number of hash characters used in branch names.
const DefaultHashLength = 8

// LatestCommit returns the first n characters of the full hash of branch's tip.
// n <= 0 returns the full hash.
func LatestCommit(ctx context.Context, repoPath, branch string, n int) (string, error) {
	output, err := RunGitCtx(ctx, repoPath, "log", "--pretty=format:%H", "-n", "1", branch, "--")
	if err != nil {
		return "", err
	}
	hash := strings.TrimSpace(output)
	if n > 0 && len(hash) > n {
		hash = hash[:n]
	}
	return hash, nil
}
