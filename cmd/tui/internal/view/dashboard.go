package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/summary"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	sectionStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// trendBarWidth is the maximum bar length in the monthly trend section.
const trendBarWidth = 24

type DashboardModel struct {
	CommonModel
	summaryService *summary.Service

	period   summary.Period
	overview *summary.Overview
	bar      progress.Model

	loading bool
	err     error
}

func NewDashboardModel(summarySvc *summary.Service) DashboardModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return DashboardModel{
		summaryService: summarySvc,
		period:         summary.PeriodThisMonth,
		bar:            bar,
		loading:        true,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "Esc: back | p: switch period | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadOverviewCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "p":
			m.period = nextPeriod(m.period)
			m.loading = true

			return m, m.loadOverviewCmd()
		case "r":
			m.loading = true
			return m, m.loadOverviewCmd()
		}

	case overviewMsg:
		m.loading = false
		m.overview = msg.overview
		m.err = msg.err

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	ov := m.overview
	if ov == nil {
		return ""
	}

	sections := []string{
		m.goalSection(ov),
		m.monthSection(ov),
		m.categorySection(ov),
		m.trendSection(ov),
	}

	return lipgloss.NewStyle().Padding(1).Render(
		strings.Join(sections, "\n") + "\n" + faintStyle.Render(fmt.Sprintf("period: %s", periodLabel(m.period))),
	)
}

func (m DashboardModel) goalSection(ov *summary.Overview) string {
	if ov.Goal == nil || ov.GoalStatus == nil {
		return sectionStyle.Render(titleStyle.Render("Savings Goal") + "\n" + faintStyle.Render("unavailable"))
	}

	st := ov.GoalStatus

	// The numeric readout stays unclamped; only the bar is capped.
	ratio := st.Percent / 100
	if ratio > 1 {
		ratio = 1
	}

	lines := []string{
		titleStyle.Render("Savings Goal"),
		m.bar.ViewAs(ratio),
		fmt.Sprintf("%s / %s (%.1f%%)",
			FormatAmount(ov.Goal.CurrentAmount),
			FormatAmount(ov.Goal.TargetAmount),
			st.Percent,
		),
	}

	switch {
	case st.DaysRemaining == nil:
	case st.Overdue:
		lines = append(lines, expenseStyle.Render(fmt.Sprintf("deadline passed %d days ago", -*st.DaysRemaining)))
	case st.DailyPace != nil:
		lines = append(lines, fmt.Sprintf("%d days left, save %s/day", *st.DaysRemaining, FormatAmount(*st.DailyPace)))
	default:
		lines = append(lines, fmt.Sprintf("%d days left", *st.DaysRemaining))
	}

	return sectionStyle.Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) monthSection(ov *summary.Overview) string {
	return sectionStyle.Render(
		titleStyle.Render("This Month") + "\n" +
			incomeStyle.Render(fmt.Sprintf("income  %12s", FormatAmount(ov.MonthIncome))) + "\n" +
			expenseStyle.Render(fmt.Sprintf("expense %12s", FormatAmount(ov.MonthExpense))),
	)
}

func (m DashboardModel) categorySection(ov *summary.Overview) string {
	lines := []string{titleStyle.Render("Spending by Category")}

	if len(ov.Categories) == 0 {
		lines = append(lines, faintStyle.Render("no expenses in this period"))
	}

	for _, ct := range ov.Categories {
		lines = append(lines, fmt.Sprintf("%-16s %12s", ct.Category, FormatAmount(ct.Amount)))
	}

	return sectionStyle.Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) trendSection(ov *summary.Overview) string {
	lines := []string{titleStyle.Render("Monthly Trend")}

	if len(ov.Trend) == 0 {
		lines = append(lines, faintStyle.Render("no transactions yet"))
	}

	var maxAmount int64

	for _, mt := range ov.Trend {
		maxAmount = max(maxAmount, max(mt.Income, mt.Expense))
	}

	for _, mt := range ov.Trend {
		lines = append(lines,
			fmt.Sprintf("%s %s %s", mt.Month, incomeStyle.Render(trendBar(mt.Income, maxAmount)), FormatAmount(mt.Income)),
			fmt.Sprintf("        %s %s", expenseStyle.Render(trendBar(mt.Expense, maxAmount)), FormatAmount(mt.Expense)),
		)
	}

	return sectionStyle.Render(strings.Join(lines, "\n"))
}

func trendBar(amount, maxAmount int64) string {
	if maxAmount <= 0 {
		return ""
	}

	n := int(amount * trendBarWidth / maxAmount)

	return strings.Repeat("█", n)
}

func nextPeriod(p summary.Period) summary.Period {
	switch p {
	case summary.PeriodThisMonth:
		return summary.PeriodLastMonth
	case summary.PeriodLastMonth:
		return summary.PeriodAll
	}

	return summary.PeriodThisMonth
}

func periodLabel(p summary.Period) string {
	switch p {
	case summary.PeriodThisMonth:
		return "This Month"
	case summary.PeriodLastMonth:
		return "Last Month"
	case summary.PeriodAll:
		return "All Time"
	}

	return "Unknown"
}

// Messages

type overviewMsg struct {
	overview *summary.Overview
	err      error
}

func (m DashboardModel) loadOverviewCmd() tea.Cmd {
	period := m.period

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		ov, err := m.summaryService.Overview(ctx, period)

		return overviewMsg{overview: ov, err: err}
	}
}
