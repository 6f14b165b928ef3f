package scan

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gitscan/internal/domain"
)

// InspectFunc builds the status record for one candidate directory.
type InspectFunc func(ctx context.Context, dir string) domain.Repository

// Scanner enumerates the immediate children of a root directory and hands
// every plausible working copy to the inspector. It does not recurse below
// the first level.
type Scanner struct {
	inspect     InspectFunc
	includeRoot bool
}

// New creates a scanner. When includeRoot is set the root itself is also
// considered a candidate repository.
func New(inspect InspectFunc, includeRoot bool) *Scanner {
	return &Scanner{inspect: inspect, includeRoot: includeRoot}
}

// Scan resolves root to an absolute path and inspects each candidate in
// turn, one at a time. A permission error listing the root is reported and
// treated as zero additional repositories rather than a failure; only
// context cancellation aborts the scan.
func (s *Scanner) Scan(ctx context.Context, root string) (*domain.ScanResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	result := domain.NewScanResult()

	if s.includeRoot && hasGitMarker(absRoot) {
		result.Add(s.inspect(ctx, absRoot))
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		log.Printf("Permission denied accessing: %s (%v)", absRoot, err)
		return result, nil
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dir := filepath.Join(absRoot, entry.Name())
		if !hasGitMarker(dir) {
			continue
		}
		result.Add(s.inspect(ctx, dir))
	}
	return result, nil
}

// hasGitMarker is a cheap pre-filter so git is only invoked on directories
// that can possibly be working copies. A .git file (linked worktree or
// submodule) counts as well as a .git directory.
func hasGitMarker(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
