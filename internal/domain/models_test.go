package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepositoryQuiet(t *testing.T) {
	require.True(t, Repository{Branch: "main", TotalCommits: 100}.Quiet(),
		"total commits alone should not make a repository noisy")

	for name, repo := range map[string]Repository{
		"ahead":     {Ahead: 1},
		"behind":    {Behind: 2},
		"changed":   {Changed: 3},
		"untracked": {Untracked: 4},
	} {
		require.False(t, repo.Quiet(), name)
	}
}

func TestScanResultDropsInvalid(t *testing.T) {
	result := NewScanResult()
	result.Add(Repository{Name: "ghost", Path: "/r/ghost", Valid: false})

	require.Zero(t, result.Len())
	require.Empty(t, result.Sorted())
}

func TestScanResultDeduplicatesByPath(t *testing.T) {
	result := NewScanResult()
	result.Add(Repository{Name: "app", Path: "/r/app", Branch: "main", Valid: true})
	result.Add(Repository{Name: "app", Path: "/r/app", Branch: "other", Valid: true})

	require.Equal(t, 1, result.Len())
	require.Equal(t, "main", result.Sorted()[0].Branch, "first record wins")
}

func TestScanResultSortedCaseInsensitive(t *testing.T) {
	result := NewScanResult()
	for _, name := range []string{"Zebra", "alpha", "Beta"} {
		result.Add(Repository{Name: name, Path: "/r/" + name, Valid: true})
	}

	sorted := result.Sorted()
	require.Len(t, sorted, 3)
	require.Equal(t, "alpha", sorted[0].Name)
	require.Equal(t, "Beta", sorted[1].Name)
	require.Equal(t, "Zebra", sorted[2].Name)
}
