package domain

import (
	"sort"
	"strings"
)

// Sentinel values for fields whose underlying query had no answer.
const (
	BranchDetached = "HEAD detached"
	BranchUnknown  = "Unknown"
	NoRemote       = "No remote"
)

// Repository is a status snapshot of a single working copy. It is built once
// by the inspector and never mutated afterwards.
type Repository struct {
	Name         string // final path segment
	Path         string // absolute path to the working copy
	Branch       string // current branch, or a sentinel
	RemoteURL    string // origin URL, or NoRemote
	Ahead        int    // local commits not on the upstream
	Behind       int    // upstream commits not merged locally
	Changed      int    // changed entries per the active counting policy
	Untracked    int    // entries reported as untracked
	TotalCommits int    // commits reachable from HEAD, detailed mode only
	Valid        bool   // directory is confirmed to be a working tree
}

// Quiet reports whether the repository has nothing worth showing in the
// compact view: no divergence from upstream and a clean working tree.
func (r Repository) Quiet() bool {
	return r.Ahead == 0 && r.Behind == 0 && r.Changed == 0 && r.Untracked == 0
}

// ScanResult collects the valid repositories found during a single scan.
// Records are keyed by path so a repository is never listed twice; records
// with Valid=false are discarded on Add.
type ScanResult struct {
	byPath map[string]Repository
}

// NewScanResult creates an empty result set.
func NewScanResult() *ScanResult {
	return &ScanResult{byPath: make(map[string]Repository)}
}

// Add stores a repository record. Invalid records and duplicate paths are
// silently ignored.
func (s *ScanResult) Add(repo Repository) {
	if !repo.Valid {
		return
	}
	if _, ok := s.byPath[repo.Path]; ok {
		return
	}
	s.byPath[repo.Path] = repo
}

// Len returns the number of repositories collected.
func (s *ScanResult) Len() int {
	return len(s.byPath)
}

// Sorted returns the repositories ordered by case-insensitive name, with the
// path as a tie-breaker so output is deterministic.
func (s *ScanResult) Sorted() []Repository {
	repos := make([]Repository, 0, len(s.byPath))
	for _, repo := range s.byPath {
		repos = append(repos, repo)
	}
	sort.Slice(repos, func(i, j int) bool {
		a, b := strings.ToLower(repos[i].Name), strings.ToLower(repos[j].Name)
		if a != b {
			return a < b
		}
		return repos[i].Path < repos[j].Path
	})
	return repos
}
