package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
	"github.com/felixgeelhaar/e2elint/pkg/domain/role"
)

func sampleSummary() *review.Summary {
	return &review.Summary{
		Root:   "suite",
		Status: review.RunCompleted,
		Reports: []*review.FileReport{
			{
				Path:  "suite/tests/login.spec.ts",
				Role:  role.TestSpec,
				Score: 4,
				Issues: []review.Issue{
					{RuleID: "hard-wait", Severity: review.SeverityHigh, Description: "Hard-coded wait", Line: 3},
					{RuleID: "weak-typing", Severity: review.SeverityMedium, Description: "Weak typing", Line: 5},
				},
				Positives: []review.Positive{},
			},
			{
				Path:   "suite/pages/login.page.ts",
				Role:   role.PageObject,
				Score:  10,
				Issues: []review.Issue{},
				Positives: []review.Positive{
					{RuleID: "readonly-property", Description: "Uses readonly properties", Line: 2},
				},
			},
		},
	}
}

func TestDashboardModel_View(t *testing.T) {
	m := newDashboardModel(sampleSummary())

	view := m.View()
	for _, want := range []string{"e2elint suite", "Files: 2", "Issues: 2", "login.spec.ts", "4/10", "Hard-coded wait", "line 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
	if m.Init() != nil {
		t.Error("expected nil init command")
	}
}

func TestDashboardModel_Navigate(t *testing.T) {
	m := newDashboardModel(sampleSummary())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(dashboardModel)

	if got := m.selected(); got == nil || got.Role != role.PageObject {
		t.Fatalf("expected page object selected, got %+v", got)
	}
	view := m.View()
	if !strings.Contains(view, "No issues found") || !strings.Contains(view, "Uses readonly properties") {
		t.Errorf("expected detail of second file, got:\n%s", view)
	}
}

func TestDashboardModel_Quit(t *testing.T) {
	m := newDashboardModel(sampleSummary())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestDashboardModel_Empty(t *testing.T) {
	m := newDashboardModel(&review.Summary{Root: "suite", Reports: []*review.FileReport{}})
	if !strings.Contains(m.View(), "No test files found in suite") {
		t.Fatalf("unexpected view: %s", m.View())
	}
	if m.selected() != nil {
		t.Fatal("expected no selection")
	}
}

func TestDashboardCommandSkipsRun(t *testing.T) {
	t.Setenv("E2ELINT_SKIP_DASHBOARD_RUN", "true")
	dir := t.TempDir()
	writeFile(t, dir, "tests/login.spec.ts", flakySpec)

	if _, err := runCLI(t, "dashboard", dir); err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
}
