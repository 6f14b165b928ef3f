package git

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// queryTimeout bounds every individual git invocation. An expired query is
// handled the same as a non-zero exit: the caller degrades the matching
// field to its zero or sentinel value.
const queryTimeout = 5 * time.Second

// Querier is the narrow surface the inspector needs from the version-control
// tool. The production implementation shells out to git; tests substitute
// canned output.
type Querier interface {
	// Version probes that the tool is runnable at all.
	Version(ctx context.Context) (string, error)
	// IsWorkTree reports whether dir is inside a git working tree.
	IsWorkTree(ctx context.Context, dir string) (bool, error)
	// CurrentBranch returns the checked-out branch name, empty when detached.
	CurrentBranch(ctx context.Context, dir string) (string, error)
	// RemoteURL returns the configured origin URL.
	RemoteURL(ctx context.Context, dir string) (string, error)
	// Upstream resolves the tracking reference of the current branch.
	Upstream(ctx context.Context, dir string) (string, error)
	// CommitCount counts commits reachable from ref ("HEAD", "a..b", ...).
	CommitCount(ctx context.Context, dir, ref string) (int, error)
	// ShortStatus returns the machine-readable `status --porcelain` listing.
	ShortStatus(ctx context.Context, dir string) (string, error)
}

// CLIQuerier runs git as a subprocess, one invocation per query.
type CLIQuerier struct {
	gitPath string
}

// NewCLIQuerier locates the git executable on PATH.
func NewCLIQuerier() (*CLIQuerier, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("git not found in PATH: %w", err)
	}
	return &CLIQuerier{gitPath: gitPath}, nil
}

// run executes one git command under the per-query timeout and returns its
// raw standard output, fully consumed.
func (q *CLIQuerier) run(ctx context.Context, dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	full := args
	if dir != "" {
		full = append([]string{"-C", dir}, args...)
	}
	cmd := exec.CommandContext(ctx, q.gitPath, full...)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(output), nil
}

func (q *CLIQuerier) Version(ctx context.Context) (string, error) {
	out, err := q.run(ctx, "", "version")
	return strings.TrimSpace(out), err
}

func (q *CLIQuerier) IsWorkTree(ctx context.Context, dir string) (bool, error) {
	out, err := q.run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "true", nil
}

func (q *CLIQuerier) CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := q.run(ctx, dir, "branch", "--show-current")
	return strings.TrimSpace(out), err
}

func (q *CLIQuerier) RemoteURL(ctx context.Context, dir string) (string, error) {
	out, err := q.run(ctx, dir, "config", "--get", "remote.origin.url")
	return strings.TrimSpace(out), err
}

func (q *CLIQuerier) Upstream(ctx context.Context, dir string) (string, error) {
	out, err := q.run(ctx, dir, "rev-parse", "--abbrev-ref", "@{u}")
	return strings.TrimSpace(out), err
}

func (q *CLIQuerier) CommitCount(ctx context.Context, dir, ref string) (int, error) {
	out, err := q.run(ctx, dir, "rev-list", "--count", ref)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", out, err)
	}
	return n, nil
}

// ShortStatus keeps leading whitespace intact: the first column of the
// two-character code may be a space.
func (q *CLIQuerier) ShortStatus(ctx context.Context, dir string) (string, error) {
	out, err := q.run(ctx, dir, "status", "--porcelain")
	return strings.TrimRight(out, "\n"), err
}
