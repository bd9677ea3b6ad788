package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/e2elint/internal/infrastructure/config"
	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

var (
	fileStyle     = lipgloss.NewStyle().Bold(true)
	roleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	highStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mediumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func render(w io.Writer, summary *review.Summary, format string) error {
	switch format {
	case config.OutputJSON:
		return renderJSON(w, summary)
	case config.OutputYAML:
		return renderYAML(w, summary)
	}
	renderText(w, summary)
	return nil
}

func renderJSON(w io.Writer, summary *review.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// renderYAML writes v as one YAML document.
func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

func renderText(w io.Writer, summary *review.Summary) {
	if summary.Empty() {
		fmt.Fprintf(w, "No test files found in %s\n", summary.Root)
		return
	}

	fmt.Fprintf(w, "Reviewing %d file(s) in %s\n\n", len(summary.Reports)+len(summary.Failures), summary.Root)

	for _, f := range summary.Failures {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Error reading %s: %s", f.Path, f.Error)))
	}
	if len(summary.Failures) > 0 {
		fmt.Fprintln(w)
	}

	for _, r := range summary.Reports {
		renderFileReport(w, r)
	}

	fmt.Fprintln(w, "Review complete.")
}

func renderFileReport(w io.Writer, r *review.FileReport) {
	fmt.Fprintf(w, "%s %s\n", fileStyle.Render(r.Path), roleStyle.Render("("+string(r.Role)+")"))

	if len(r.Issues) == 0 {
		fmt.Fprintln(w, positiveStyle.Render("  No issues found"))
	}
	for _, i := range r.Issues {
		fmt.Fprintf(w, "  %s %s: %s\n", severityLabel(i.Severity), lineLabel(i.Line), i.Description)
		if i.Suggestion != "" {
			fmt.Fprintln(w, hintStyle.Render("      Suggestion: "+i.Suggestion))
		}
	}
	for _, p := range r.Positives {
		fmt.Fprintln(w, positiveStyle.Render(fmt.Sprintf("  + %s: %s", lineLabel(p.Line), p.Description)))
	}

	fmt.Fprintf(w, "  Score: %s\n\n", scoreStyle(r.Score).Render(fmt.Sprintf("%d/%d", r.Score, review.MaxScore)))
}

func severityLabel(s review.Severity) string {
	label := "[" + string(s) + "]"
	if s == review.SeverityHigh {
		return highStyle.Render(label)
	}
	return mediumStyle.Render(label)
}

func lineLabel(line int) string {
	if line == 0 {
		return "file"
	}
	return fmt.Sprintf("line %d", line)
}

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 8:
		return positiveStyle
	case score >= 5:
		return mediumStyle
	default:
		return highStyle
	}
}
