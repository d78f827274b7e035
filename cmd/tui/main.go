package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/akiramoriyama0316-alt/money-tracker/cmd/tui/internal/view"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/config"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/database"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/goal"
	goalStore "github.com/akiramoriyama0316-alt/money-tracker/internal/goal/store"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/summary"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
	txStore "github.com/akiramoriyama0316-alt/money-tracker/internal/transaction/store"
)

type model struct {
	txService      *transaction.Service
	goalService    *goal.Service
	summaryService *summary.Service

	currentView View

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewTransactions View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DBPool())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	goalSvc := goal.NewService(goalStore.New(db), cfg.Goal.DefaultTarget)
	txSvc := transaction.NewService(txStore.New(db), goalSvc)
	summarySvc := summary.NewService(txSvc, goalSvc)

	return model{
		txService:        txSvc,
		goalService:      goalSvc,
		summaryService:   summarySvc,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(summarySvc),
		transactionsView: view.NewTransactionsModel(txSvc),
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
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.summaryService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService)

				return m, m.transactionsView.Init()
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
	case ViewDashboard:
		var updated tea.Model
		updated, cmd = m.dashboardView.Update(msg)
		m.dashboardView = updated.(view.DashboardModel)

		return m, cmd
	case ViewTransactions:
		var updated tea.Model
		updated, cmd = m.transactionsView.Update(msg)
		m.transactionsView = updated.(view.TransactionsModel)

		return m, cmd
	}

	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 0, 1, 2)
	menuItemStyle  = lipgloss.NewStyle().Padding(0, 0, 0, 2)
	menuHelpStyle  = lipgloss.NewStyle().Faint(true).Padding(1, 0, 0, 2)
)

func (m model) View() string {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	}

	return menuTitleStyle.Render("Money Tracker") + "\n" +
		menuItemStyle.Render("1. Dashboard") + "\n" +
		menuItemStyle.Render("2. Transactions") + "\n" +
		menuHelpStyle.Render("q: quit")
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
