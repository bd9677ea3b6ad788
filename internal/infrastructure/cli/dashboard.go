package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [path]",
	Short: "Browse review results in an interactive table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, summary, err := reviewPath(cmd, loadServices(), targetPath(args))
		if err != nil {
			return err
		}

		if os.Getenv("E2ELINT_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(newDashboardModel(summary))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

type dashboardModel struct {
	table   table.Model
	summary *review.Summary
}

func newDashboardModel(summary *review.Summary) dashboardModel {
	columns := []table.Column{
		{Title: "Score", Width: 6},
		{Title: "High", Width: 5},
		{Title: "Medium", Width: 7},
		{Title: "Role", Width: 12},
		{Title: "Path", Width: 50},
	}

	rows := make([]table.Row, 0, len(summary.Reports))
	for _, r := range summary.Reports {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d/%d", r.Score, review.MaxScore),
			strconv.Itoa(r.HighCount()),
			strconv.Itoa(r.MediumCount()),
			string(r.Role),
			r.Path,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))
	t.SetStyles(s)

	return dashboardModel{table: t, summary: summary}
}

func (m dashboardModel) Init() tea.Cmd { return nil }

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) selected() *review.FileReport {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.summary.Reports) {
		return nil
	}
	return m.summary.Reports[i]
}

func (m dashboardModel) View() string {
	if m.summary.Empty() {
		return fmt.Sprintf("No test files found in %s\nPress q to quit.\n", m.summary.Root)
	}

	header := headerStyle.Render(fmt.Sprintf("e2elint %s", m.summary.Root))
	totals := fmt.Sprintf("Files: %d  Issues: %d  Unreadable: %d",
		len(m.summary.Reports), m.summary.IssueCount(), len(m.summary.Failures))

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			totals,
			"",
			m.table.View(),
			m.detailView(),
			"[q] Quit  [Up/Down] Navigate",
		),
	) + "\n"
}

func (m dashboardModel) detailView() string {
	r := m.selected()
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	if len(r.Issues) == 0 {
		b.WriteString(positiveStyle.Render("No issues found"))
		b.WriteString("\n")
	}
	for _, i := range r.Issues {
		fmt.Fprintf(&b, "%s %s: %s\n", severityLabel(i.Severity), lineLabel(i.Line), i.Description)
	}
	for _, p := range r.Positives {
		b.WriteString(positiveStyle.Render(fmt.Sprintf("+ %s: %s", lineLabel(p.Line), p.Description)))
		b.WriteString("\n")
	}
	return b.String()
}
