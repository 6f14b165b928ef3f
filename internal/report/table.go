package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"gitscan/internal/domain"
)

// Messages produced instead of a table when there is nothing to render.
const (
	MsgNoRepos   = "No Git repositories found."
	MsgNoChanges = "No Git repositories with changes found. Use --detailed to see all repositories."
)

var (
	compactHeaders  = []string{"Repository", "Branch", "Ahead", "Behind", "Changed", "Untracked"}
	detailedHeaders = []string{"Repository", "Branch", "Ahead", "Behind", "Changed", "Untracked", "Total Commits", "Remote URL"}
)

// Table renders repositories as an aligned text table.
//
// Compact mode blanks zero-valued count cells and drops quiet repositories
// entirely; detailed mode shows every record with literal counts plus the
// total-commit and remote-URL columns. Column widths are recomputed on every
// call from the header labels and the cell values.
func Table(repos []domain.Repository, detailed bool) string {
	if len(repos) == 0 {
		return MsgNoRepos
	}

	headers := compactHeaders
	rows := repos
	if !detailed {
		rows = make([]domain.Repository, 0, len(repos))
		for _, r := range repos {
			if !r.Quiet() {
				rows = append(rows, r)
			}
		}
		if len(rows) == 0 {
			return MsgNoChanges
		}
	} else {
		headers = detailedHeaders
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		row := []string{
			r.Name,
			r.Branch,
			countCell(r.Ahead, detailed),
			countCell(r.Behind, detailed),
			countCell(r.Changed, detailed),
			countCell(r.Untracked, detailed),
		}
		if detailed {
			row = append(row, strconv.Itoa(r.TotalCommits), r.RemoteURL)
		}
		cells[i] = row
	}

	widths := columnWidths(headers, cells)

	var b strings.Builder
	header := formatRow(headers, widths)
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", runewidth.StringWidth(header)))
	for _, row := range cells {
		b.WriteByte('\n')
		b.WriteString(formatRow(row, widths))
	}
	return b.String()
}

// countCell renders a count. Zeroes are blank in compact mode so clean
// columns stay visually empty.
func countCell(n int, detailed bool) string {
	if n == 0 && !detailed {
		return ""
	}
	return strconv.Itoa(n)
}

// columnWidths sizes each column to the wider of its header label and its
// widest cell, measured in display cells so wide runes line up.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.Join(padded, " | ")
}
