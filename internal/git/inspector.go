package git

import (
	"context"
	"path/filepath"

	"gitscan/internal/domain"
)

// Options control how much work Inspect does per repository.
type Options struct {
	Policy CountPolicy
	// TotalCommits also counts commits reachable from HEAD. Only the
	// detailed view shows the figure, so the query is skipped otherwise.
	TotalCommits bool
}

// Inspector builds one immutable Repository record per directory. Every
// query failure is absorbed: the matching field degrades to its zero or
// sentinel value and construction carries on. Only the work-tree check
// decides whether the record is discarded upstream.
type Inspector struct {
	querier Querier
	opts    Options
}

// NewInspector creates an inspector backed by the given querier.
func NewInspector(querier Querier, opts Options) *Inspector {
	return &Inspector{querier: querier, opts: opts}
}

// Inspect issues the fixed query sequence against dir and reduces the
// outputs into a single record. It never returns an error.
func (in *Inspector) Inspect(ctx context.Context, dir string) domain.Repository {
	repo := domain.Repository{
		Name: filepath.Base(dir),
		Path: dir,
	}

	ok, err := in.querier.IsWorkTree(ctx, dir)
	repo.Valid = err == nil && ok

	repo.Branch = in.branch(ctx, dir)
	repo.RemoteURL = in.remoteURL(ctx, dir)
	repo.Ahead, repo.Behind = in.aheadBehind(ctx, dir)
	repo.Changed, repo.Untracked = in.workingTreeCounts(ctx, dir)

	if in.opts.TotalCommits {
		if n, err := in.querier.CommitCount(ctx, dir, "HEAD"); err == nil {
			repo.TotalCommits = n
		}
	}
	return repo
}

func (in *Inspector) branch(ctx context.Context, dir string) string {
	branch, err := in.querier.CurrentBranch(ctx, dir)
	if err != nil {
		return domain.BranchUnknown
	}
	if branch == "" {
		return domain.BranchDetached
	}
	return branch
}

func (in *Inspector) remoteURL(ctx context.Context, dir string) string {
	url, err := in.querier.RemoteURL(ctx, dir)
	if err != nil || url == "" {
		return domain.NoRemote
	}
	return url
}

// aheadBehind resolves the tracking reference first; a branch without an
// upstream legitimately has nothing to diverge from, so both counts are zero
// rather than an error.
func (in *Inspector) aheadBehind(ctx context.Context, dir string) (ahead, behind int) {
	upstream, err := in.querier.Upstream(ctx, dir)
	if err != nil || upstream == "" {
		return 0, 0
	}
	if n, err := in.querier.CommitCount(ctx, dir, upstream+"..HEAD"); err == nil {
		ahead = n
	}
	if n, err := in.querier.CommitCount(ctx, dir, "HEAD.."+upstream); err == nil {
		behind = n
	}
	return ahead, behind
}

func (in *Inspector) workingTreeCounts(ctx context.Context, dir string) (changed, untracked int) {
	listing, err := in.querier.ShortStatus(ctx, dir)
	if err != nil {
		return 0, 0
	}
	return ClassifyShortStatus(listing, in.opts.Policy)
}
