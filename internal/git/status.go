package git

import "strings"

// CountPolicy selects how short-status lines are folded into the changed
// count. The two policies match the tool's two historical output variants
// and are deliberately kept apart.
type CountPolicy int

const (
	// CountTrackedOnly counts every entry except untracked (`??`) ones.
	CountTrackedOnly CountPolicy = iota
	// CountAllLines counts every non-empty line, untracked entries included.
	CountAllLines
)

// ClassifyShortStatus reduces a `git status --porcelain` listing to a changed
// and an untracked count. Untracked is always the number of lines whose
// two-character code is exactly "??"; what counts as changed depends on the
// policy. An empty listing yields zero for both.
func ClassifyShortStatus(listing string, policy CountPolicy) (changed, untracked int) {
	for _, line := range strings.Split(listing, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) >= 2 && line[:2] == "??" {
			untracked++
			if policy == CountAllLines {
				changed++
			}
			continue
		}
		changed++
	}
	return changed, untracked
}
