package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"gitscan/internal/domain"
)

// SwiftBar/xbar line conventions. The menu-bar host parses everything after
// the "|" on a line as rendering hints, so the suffixes below must be
// preserved byte for byte.
const (
	menubarTitle   = "📦 GitStatus"
	menubarFont    = "font=Menlo size=11"
	menubarRefresh = "🔄 Refresh | refresh=true"

	menubarNameTrunc   = 15
	menubarNameWidth   = 18
	menubarBranchWidth = 12
	menubarCountWidth  = 10
)

// Menubar renders the listing consumed by the menu-bar host: a title, the
// fixed-width header, one row per repository with its remote URL as the
// click target, and a refresh entry. Every repository is shown and counts
// are always literal, zeroes included.
func Menubar(repos []domain.Repository) string {
	var b strings.Builder
	b.WriteString(menubarTitle)
	b.WriteString("\n---\n")

	fmt.Fprintf(&b, "%s %s%s%s%s%s | %s\n",
		padRunes("Repository", menubarNameWidth),
		padRunes("Branch", menubarBranchWidth),
		padRunes("Ahead", menubarCountWidth),
		padRunes("Behind", menubarCountWidth),
		padRunes("Change", menubarCountWidth),
		padRunes("Untracked", menubarCountWidth),
		menubarFont)
	b.WriteString("---\n")

	for _, r := range repos {
		line := fmt.Sprintf("%s %s%s%s%s%s",
			padRunes(truncateRunes(r.Name, menubarNameTrunc), menubarNameWidth),
			truncateRunes(r.Branch, menubarBranchWidth),
			padRunes(strconv.Itoa(r.Ahead), menubarCountWidth),
			padRunes(strconv.Itoa(r.Behind), menubarCountWidth),
			padRunes(strconv.Itoa(r.Changed), menubarCountWidth),
			padRunes(strconv.Itoa(r.Untracked), menubarCountWidth))
		fmt.Fprintf(&b, "%s | href=%s %s\n", line, r.RemoteURL, menubarFont)
	}

	b.WriteString(menubarRefresh)
	b.WriteByte('\n')
	return b.String()
}

// truncateRunes clips text to width runes with a "..." suffix, or pads it to
// width when it already fits.
func truncateRunes(text string, width int) string {
	runes := []rune(text)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return padRunes(text, width)
}

// padRunes left-justifies text in a field of width runes.
func padRunes(text string, width int) string {
	if n := width - utf8.RuneCountInString(text); n > 0 {
		return text + strings.Repeat(" ", n)
	}
	return text
}
