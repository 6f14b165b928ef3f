package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"gitscan/internal/domain"
)

// Write assembles the standalone text report around the table: the scan
// banner, the repository count, the table itself and a trailing summary.
// Count figures are colored when stdout is a terminal; the color package
// strips the codes everywhere else.
func Write(w io.Writer, root string, repos []domain.Repository, detailed bool) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintf(w, "Scanning for Git repositories in: %s\n", cyan(root))
	fmt.Fprintf(w, "\nFound %s Git repositories:\n\n", green(fmt.Sprintf("%d", len(repos))))
	fmt.Fprintln(w, Table(repos, detailed))

	if len(repos) > 0 {
		fmt.Fprintf(w, "\nSummary: %s Git repositories found\n", green(fmt.Sprintf("%d", len(repos))))
	} else {
		fmt.Fprintln(w, "\nNo Git repositories found in the specified directory.")
	}
}
