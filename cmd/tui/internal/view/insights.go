package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/angsur/internal/installment"
	"github.com/MrJamesThe3rd/angsur/internal/money"
)

type insightsLoadedMsg struct {
	snapshot installment.Snapshot
	relief   installment.Relief
}

// InsightsModel is the read-only analytics tab: the snapshot summary and
// the relief timeline, recomputed from the live collection on entry and
// on refresh.
type InsightsModel struct {
	svc *installment.Service
	now time.Time

	snapshot installment.Snapshot
	relief   installment.Relief
	loaded   bool
}

func NewInsightsModel(svc *installment.Service, now time.Time) InsightsModel {
	return InsightsModel{svc: svc, now: now}
}

func (m InsightsModel) Title() string { return "Insights" }

func (m InsightsModel) ShortHelp() string {
	return "r: refresh | esc: back"
}

func (m InsightsModel) Init() tea.Cmd {
	return m.reload
}

func (m InsightsModel) reload() tea.Msg {
	enriched := installment.EnrichAll(m.svc.List(), m.now)

	return insightsLoadedMsg{
		snapshot: installment.TakeSnapshot(enriched),
		relief:   installment.ProjectRelief(enriched, m.now),
	}
}

func (m InsightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsLoadedMsg:
		m.snapshot = msg.snapshot
		m.relief = msg.relief
		m.loaded = true

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, Back
		case "r":
			return m, m.reload
		}
	}

	return m, nil
}

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	bulletStyle  = lipgloss.NewStyle().PaddingLeft(2)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func (m InsightsModel) View() string {
	if !m.loaded {
		return dimStyle.Render("computing insights...")
	}

	var b strings.Builder

	b.WriteString(sectionStyle.Render("Snapshot — " + MonthLabel(m.now)))
	b.WriteString("\n")

	if m.snapshot.ActiveCount == 0 {
		b.WriteString(dimStyle.Render("No active installments."))
		b.WriteString("\n")
	}

	for _, line := range m.snapshot.Lines {
		b.WriteString(bulletStyle.Render("• " + line))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Relief timeline"))
	b.WriteString("\n")

	if len(m.relief.Rows) == 0 {
		b.WriteString(dimStyle.Render("Nothing to project."))
		b.WriteString("\n")
	} else {
		b.WriteString(bulletStyle.Render(fmt.Sprintf(
			"Starting monthly: %s over %d months", money.FormatIDR(m.relief.StartMonthly), len(m.relief.Rows))))
		b.WriteString("\n")

		for _, row := range m.relief.Rows {
			line := fmt.Sprintf("%-8s %2d active  during %-12s", row.Label, row.ActiveCount, money.FormatIDR(row.MonthlyDuring))
			if row.Relief > 0 {
				line += fmt.Sprintf("  −%s → %s", money.FormatIDR(row.Relief), money.FormatIDR(row.MonthlyAfter))
			}

			b.WriteString(bulletStyle.Render(line))
			b.WriteString("\n")
		}
	}

	if len(m.relief.Bullets) > 0 {
		b.WriteString(sectionStyle.Render("Upcoming relief"))
		b.WriteString("\n")

		for _, bullet := range m.relief.Bullets {
			b.WriteString(bulletStyle.Render("• " + bullet))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.ShortHelp()))

	return b.String()
}
