package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitscan/internal/domain"
)

func TestMenubar_ExactFormat(t *testing.T) {
	repos := []domain.Repository{
		{
			Name: "widgets", Path: "/r/widgets", Branch: "main",
			RemoteURL: "https://example.com/widgets.git",
			Ahead:     1, Behind: 0, Changed: 2, Untracked: 3, Valid: true,
		},
	}

	expected := strings.Join([]string{
		"📦 GitStatus",
		"---",
		fmt.Sprintf("%-18s %-12s%-10s%-10s%-10s%-10s | font=Menlo size=11",
			"Repository", "Branch", "Ahead", "Behind", "Change", "Untracked"),
		"---",
		fmt.Sprintf("%-18s %-12s%-10s%-10s%-10s%-10s | href=https://example.com/widgets.git font=Menlo size=11",
			"widgets", "main", "1", "0", "2", "3"),
		"🔄 Refresh | refresh=true",
		"",
	}, "\n")

	require.Equal(t, expected, Menubar(repos))
}

func TestMenubar_TruncatesLongNames(t *testing.T) {
	repos := []domain.Repository{
		{
			Name: "a-very-long-repository-name", Path: "/r/long",
			Branch:    "release/2026-candidate",
			RemoteURL: "No remote", Valid: true,
		},
	}

	out := Menubar(repos)
	require.Contains(t, out, "a-very-long-...", "names longer than 15 runes are clipped with an ellipsis")
	require.Contains(t, out, "release/2...", "branches longer than 12 runes are clipped")
	require.NotContains(t, out, "a-very-long-repository-name")
}

func TestMenubar_ShowsQuietRepositoriesWithLiteralZeroes(t *testing.T) {
	repos := []domain.Repository{
		{Name: "tidy", Path: "/r/tidy", Branch: "main", RemoteURL: "No remote", Valid: true},
	}

	out := Menubar(repos)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7, "title, ---, header, ---, one row, refresh, trailing newline")

	row := lines[4]
	require.True(t, strings.HasPrefix(row, "tidy"), "quiet repositories are still listed")
	require.Contains(t, row, "0", "counts are literal, never blanked")
	require.True(t, strings.HasSuffix(row, "| href=No remote font=Menlo size=11"))
}

func TestMenubar_EmptyStillRendersFrame(t *testing.T) {
	out := Menubar(nil)
	lines := strings.Split(out, "\n")

	require.Equal(t, "📦 GitStatus", lines[0])
	require.Equal(t, "---", lines[1])
	require.Equal(t, "🔄 Refresh | refresh=true", lines[len(lines)-2])
}
