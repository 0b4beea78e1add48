package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/speclint/pkg/domain/report"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	badgeStyles = map[string]lipgloss.Style{
		"Excellent":  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"Good":       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		"Needs Work": lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		"Incomplete": lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
	badgeIcons = map[string]string{
		"Excellent":  "🟢",
		"Good":       "🟡",
		"Needs Work": "🟠",
		"Incomplete": "🔴",
	}
)

func renderBadge(label string) string {
	return badgeStyles[label].Render(badgeIcons[label] + " " + label)
}

// printReport writes one document's report block.
func printReport(w io.Writer, rep *report.Report) {
	fmt.Fprintf(w, "\n%s\n", titleStyle.Render(rep.Document))
	fmt.Fprintln(w, strings.Repeat("-", len(rep.Document)))
	for _, msg := range rep.Messages {
		fmt.Fprintln(w, msg)
	}
	fmt.Fprintf(w, "Score: %d/%d (%s)\n", rep.Score, report.MaxScore, renderBadge(rep.Badge()))
	if len(rep.Hints) > 0 {
		fmt.Fprintln(w, "\n🪄 Suggestions:")
		for _, h := range rep.Hints {
			fmt.Fprintf(w, "   - %s\n", h)
		}
	}
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("=", 60)))
}

// printSummary writes the score table and the mean line.
func printSummary(w io.Writer, summary *report.Summary) {
	if len(summary.Reports) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, summaryTable(summary).View())
	}
	fmt.Fprintf(w, "\n🏁 Average Spec Quality: %.1f/%d (%s)\n", summary.Mean, report.MaxScore, renderBadge(summary.Badge()))
}

func summaryTable(summary *report.Summary) table.Model {
	columns := []table.Column{
		{Title: "Document", Width: 32},
		{Title: "Score", Width: 7},
		{Title: "Badge", Width: 12},
	}
	for _, r := range summary.Reports {
		if w := len(r.Document); w > columns[0].Width {
			columns[0].Width = w
		}
	}

	rows := make([]table.Row, 0, len(summary.Reports))
	for _, r := range summary.Reports {
		rows = append(rows, table.Row{r.Document, fmt.Sprintf("%d", r.Score), r.Badge()})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
