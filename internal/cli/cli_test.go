package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func skipIfNoGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "GIT_DIR=") &&
			!strings.HasPrefix(e, "GIT_WORK_TREE=") &&
			!strings.HasPrefix(e, "GIT_INDEX_FILE=") {
			env = append(env, e)
		}
	}
	cmd.Env = append(env,
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, string(out))
	}
	return strings.TrimSpace(string(out))
}

func initRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	runGit(t, root, "init", "-b", "main")
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("init"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	runGit(t, root, "add", "README.md")
	runGit(t, root, "commit", "-m", "init")
	return root
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return runCLIContext(t, context.Background(), strings.NewReader(stdin), args...)
}

func runCLIContext(t *testing.T, ctx context.Context, stdin io.Reader, args ...string) result {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"MKBRANCH_HASH_LENGTH", "MKBRANCH_CHECKOUT", "MKBRANCH_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cmd := NewRootCmd("1.2.3", "abc", "today")
	var out, errOut bytes.Buffer
	cmd.SetIn(stdin)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	code := execute(ctx, cmd, args)
	return result{code: code, stdout: ansi.Strip(out.String()), stderr: errOut.String()}
}

// release, my, master, "/", no date
const releaseAnswers = "3\n1\n1\n1\nn\n"

func TestRunDryRun(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)
	hash := runGit(t, repo, "rev-parse", "HEAD")[:8]

	res := runCLI(t, releaseAnswers, "--plain", "--dry-run", "-C", repo)
	if res.code != ExitOK {
		t.Fatalf("exit = %d, stderr = %s", res.code, res.stderr)
	}
	want := "release/my/" + hash + "/master"
	if !strings.Contains(res.stdout, want) {
		t.Fatalf("output missing %q:\n%s", want, res.stdout)
	}
	if !strings.Contains(res.stdout, "Dry run") {
		t.Fatalf("expected dry run notice:\n%s", res.stdout)
	}
	if got := runGit(t, repo, "rev-parse", "--abbrev-ref", "HEAD"); got != "main" {
		t.Fatalf("HEAD = %q, want main", got)
	}
}

func TestRunCreatesBranch(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)
	hash := runGit(t, repo, "rev-parse", "HEAD")[:8]

	// feature, manual username, free-text detail, "_" separator, date
	stdin := "2\n7\nalice\nlogin-page\n2\ny\n"
	res := runCLI(t, stdin, "--plain", "-C", repo)
	if res.code != ExitOK {
		t.Fatalf("exit = %d, stderr = %s", res.code, res.stderr)
	}

	head := runGit(t, repo, "rev-parse", "--abbrev-ref", "HEAD")
	prefix := "feature_alice_" + hash + "_login-page_"
	if !strings.HasPrefix(head, prefix) {
		t.Fatalf("HEAD = %q, want prefix %q", head, prefix)
	}
	if len(strings.TrimPrefix(head, prefix)) != 8 {
		t.Fatalf("date suffix of %q is not 8 digits", head)
	}
	if !strings.Contains(res.stdout, "checked out") {
		t.Fatalf("expected checkout notice:\n%s", res.stdout)
	}
}

func TestRunSeparatorConflict(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)
	hash := runGit(t, repo, "rev-parse", "HEAD")[:8]

	// dev, manual username containing "/", detail, "/" separator, no date
	stdin := "1\n7\nteam/ann\nfix-login\n1\nn\n"

	res := runCLI(t, stdin, "--plain", "--dry-run", "-C", repo)
	if res.code != ExitOK {
		t.Fatalf("exit = %d, stderr = %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "dev/team/ann/"+hash+"/fix-login") {
		t.Fatalf("name should be joined as typed:\n%s", res.stdout)
	}
	if !strings.Contains(res.stdout, "appears in username") {
		t.Fatalf("expected conflict warning:\n%s", res.stdout)
	}

	res = runCLI(t, stdin, "--plain", "--dry-run", "--sanitize", "-C", repo)
	if res.code != ExitOK {
		t.Fatalf("exit = %d, stderr = %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "dev/team-ann/"+hash+"/fix-login") {
		t.Fatalf("expected sanitized name:\n%s", res.stdout)
	}
}

func TestRunNoCheckout(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)
	hash := runGit(t, repo, "rev-parse", "HEAD")[:8]

	res := runCLI(t, releaseAnswers, "--plain", "--no-checkout", "-C", repo)
	if res.code != ExitOK {
		t.Fatalf("exit = %d, stderr = %s", res.code, res.stderr)
	}
	if got := runGit(t, repo, "rev-parse", "--abbrev-ref", "HEAD"); got != "main" {
		t.Fatalf("HEAD = %q, want main", got)
	}
	name := "release/my/" + hash + "/master"
	if got := runGit(t, repo, "branch", "--list", name); !strings.Contains(got, name) {
		t.Fatalf("branch %s not created", name)
	}
}

func TestRunOutsideRepositoryFails(t *testing.T) {
	skipIfNoGit(t)
	dir := t.TempDir()

	res := runCLI(t, releaseAnswers, "--plain", "-C", dir)
	if res.code != ExitError {
		t.Fatalf("exit = %d, want %d", res.code, ExitError)
	}
	if !strings.HasPrefix(res.stderr, "Error: commit:") {
		t.Fatalf("stderr = %q", res.stderr)
	}
	// The detail question is never reached.
	if strings.Contains(res.stdout, "environment") {
		t.Fatalf("prompted past the commit step:\n%s", res.stdout)
	}
}

func TestRunCancelled(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)

	res := runCLI(t, "3\n", "--plain", "-C", repo)
	if res.code != ExitError {
		t.Fatalf("exit = %d, want %d", res.code, ExitError)
	}
	if strings.TrimSpace(res.stderr) != "Error: cancelled" {
		t.Fatalf("stderr = %q", res.stderr)
	}
	branches := runGit(t, repo, "branch", "--format=%(refname:short)")
	if branches != "main" {
		t.Fatalf("branches = %q, want only main", branches)
	}
}

func TestRunCancelledContext(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := runCLIContext(t, ctx, strings.NewReader(releaseAnswers), "--plain", "-C", repo)
	if res.code != ExitError {
		t.Fatalf("exit = %d, want %d", res.code, ExitError)
	}
	if strings.TrimSpace(res.stderr) != "Error: cancelled" {
		t.Fatalf("stderr = %q", res.stderr)
	}
	if branches := runGit(t, repo, "branch", "--format=%(refname:short)"); branches != "main" {
		t.Fatalf("branches = %q, want only main", branches)
	}
}

func TestRunCancelWhileWaitingForInput(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)

	r, w := io.Pipe()
	defer w.Close()
	go func() {
		// Answer prefix and username, then leave the detail prompt waiting.
		_, _ = io.WriteString(w, "3\n1\n")
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(300*time.Millisecond, cancel)

	done := make(chan result, 1)
	go func() { done <- runCLIContext(t, ctx, r, "--plain", "-C", repo) }()

	select {
	case res := <-done:
		if res.code != ExitError {
			t.Fatalf("exit = %d, want %d", res.code, ExitError)
		}
		if strings.TrimSpace(res.stderr) != "Error: cancelled" {
			t.Fatalf("stderr = %q", res.stderr)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run still blocked after the context was cancelled")
	}
	if branches := runGit(t, repo, "branch", "--format=%(refname:short)"); branches != "main" {
		t.Fatalf("branches = %q, want only main", branches)
	}
}

func TestVerbosePrintsLogPath(t *testing.T) {
	res := runCLI(t, "", "version", "-v")
	if res.code != ExitOK {
		t.Fatalf("exit = %d", res.code)
	}
	if !strings.Contains(res.stderr, filepath.Join(".mkbranch", "logs", "mkbranch-")) {
		t.Fatalf("stderr = %q, want log path", res.stderr)
	}
}

func TestRunRejectsArgsAndFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"positional arg", []string{"feature"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)
			if res.code == ExitOK {
				t.Fatalf("expected failure for %v", tt.args)
			}
			if !strings.HasPrefix(res.stderr, "Error: ") {
				t.Fatalf("stderr = %q", res.stderr)
			}
		})
	}
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	data := "prefixes:\n  - chore\n  - fix\nhash_length: 10\n"
	if err := os.WriteFile(cfgPath, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	res := runCLI(t, "", "config", "show", "--config", cfgPath, "-C", dir)
	if res.code != ExitOK {
		t.Fatalf("exit = %d, stderr = %s", res.code, res.stderr)
	}
	for _, want := range []string{cfgPath, "chore", "hash_length: 10"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("config show missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigShowMissingExplicitFile(t *testing.T) {
	dir := t.TempDir()
	res := runCLI(t, "", "config", "show", "--config", filepath.Join(dir, "missing.yaml"), "-C", dir)
	if res.code != ExitError {
		t.Fatalf("exit = %d, want %d", res.code, ExitError)
	}
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	res := runCLI(t, "", "config", "path", "-C", dir)
	if res.code != ExitOK {
		t.Fatalf("exit = %d, stderr = %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, filepath.Join(dir, ".mkbranch.yaml")) {
		t.Fatalf("missing project path:\n%s", res.stdout)
	}
	if !strings.Contains(res.stdout, filepath.Join(".mkbranch", "config.yaml")) {
		t.Fatalf("missing global path:\n%s", res.stdout)
	}
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "", "version")
	if res.code != ExitOK {
		t.Fatalf("exit = %d", res.code)
	}
	if got, want := strings.TrimSpace(res.stdout), "mkbranch 1.2.3 (commit: abc, built: today)"; got != want {
		t.Fatalf("version = %q, want %q", got, want)
	}
}
