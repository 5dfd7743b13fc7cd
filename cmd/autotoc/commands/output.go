package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"git.home.luguber.info/inful/autotoc/internal/autotoc"
	"git.home.luguber.info/inful/autotoc/internal/config"
)

var (
	// titleStyle for the summary header
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for counts of written files
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// printSummary writes a boxed summary of a finished run.
func printSummary(w io.Writer, cfg *config.Config, res *autotoc.Result) {
	rows := [][2]string{
		{"Docs root", res.Root},
		{"Content folder", cfg.ContentDir},
		{"Paths collected", fmt.Sprintf("%d", res.Collected)},
		{"Navigators", successStyle.Render(fmt.Sprintf("%d", len(res.Navigators)))},
		{"Entry page", res.EntryPage.String()},
	}
	if cfg.AutosummaryActive() {
		rows = append(rows, [2]string{"Autosummary links", fmt.Sprintf("%d", res.Rewrites)})
	}
	rows = append(rows, [2]string{"Duration", res.Duration().Round(time.Millisecond).String()})

	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(cfg.ProjectName))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%-*s", width, r[0])))
		b.WriteString("  ")
		b.WriteString(r[1])
	}
	_, _ = fmt.Fprintln(w, boxStyle.Render(b.String()))
}
