package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/angsur/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/angsur/internal/config"
	"github.com/MrJamesThe3rd/angsur/internal/database"
	"github.com/MrJamesThe3rd/angsur/internal/installment"
	"github.com/MrJamesThe3rd/angsur/internal/installment/store"
	"github.com/MrJamesThe3rd/angsur/internal/kv"
)

type model struct {
	svc *installment.Service

	currentView View

	tableView    view.TableModel
	insightsView view.InsightsModel
}

type View int

const (
	ViewMenu     View = 0
	ViewTable    View = 1
	ViewInsights View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	kvStore, err := openKV(cfg)
	if err != nil {
		slog.Error("failed to open kv backend", "backend", cfg.KV.Backend, "error", err)
		os.Exit(1)
	}

	svc := installment.NewService(store.New(kvStore))
	if err := svc.Init(context.Background()); err != nil {
		slog.Error("failed to load installments", "error", err)
		os.Exit(1)
	}

	now := time.Now()

	return model{
		svc:          svc,
		currentView:  ViewMenu,
		tableView:    view.NewTableModel(svc, now),
		insightsView: view.NewInsightsModel(svc, now),
	}
}

func openKV(cfg *config.Config) (kv.Store, error) {
	switch cfg.KV.Backend {
	case config.BackendPostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		pg := kv.NewPostgresStore(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}

		return pg, nil
	case config.BackendFile:
		return kv.NewFileStore(cfg.KV.Dir)
	default:
		return nil, fmt.Errorf("unknown kv backend: %q", cfg.KV.Backend)
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewTable
				now := time.Now()
				m.tableView = view.NewTableModel(m.svc, now)

				return m, m.tableView.Init()
			case "2":
				m.currentView = ViewInsights
				m.insightsView = view.NewInsightsModel(m.svc, time.Now())

				return m, m.insightsView.Init()
			}
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewTable:
		var newModel tea.Model
		newModel, cmd = m.tableView.Update(msg)
		m.tableView = newModel.(view.TableModel)
	case ViewInsights:
		var newModel tea.Model
		newModel, cmd = m.insightsView.Update(msg)
		m.insightsView = newModel.(view.InsightsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Angsur TUI\n\n" +
				"1. Installments\n" +
				"2. Insights\n\n" +
				"q. Quit",
		)
	case ViewTable:
		return m.tableView.View()
	case ViewInsights:
		return m.insightsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
