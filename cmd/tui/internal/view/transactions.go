package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

type txState int

const (
	txStateList txState = iota
	txStateAdding
	txStateConfirmDelete
)

// txItem wraps a transaction to implement list.Item.
type txItem struct {
	tx *transaction.Transaction
}

func (i txItem) Title() string {
	kind := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.tx.Type))

	return fmt.Sprintf("%s  %10s  %s  %s", FormatDate(i.tx.Date), FormatAmount(i.tx.Amount), kind, i.tx.Category)
}

func (i txItem) Description() string {
	return i.tx.Memo
}

func (i txItem) FilterValue() string {
	return i.tx.Category + " " + i.tx.Memo
}

type TransactionsModel struct {
	CommonModel
	txService *transaction.Service

	state txState
	list  list.Model
	form  *huh.Form

	txs        []*transaction.Transaction
	selectedTx *transaction.Transaction

	loading bool
	status  string

	// Form field bindings
	formAmount   string
	formType     transaction.Type
	formCategory string
	formMemo     string
	formDate     string
	formConfirm  bool
}

func NewTransactionsModel(txSvc *transaction.Service) TransactionsModel {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Transactions"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return TransactionsModel{
		txService: txSvc,
		list:      l,
		loading:   true,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case txStateAdding:
		return "Esc: cancel | Enter/Tab: navigate form"
	case txStateConfirmDelete:
		return "Confirm deletion"
	}

	return "Esc: back | a: add | x: delete | /: filter"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTxsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.txs = msg.txs
		m.refreshListItems()

		if len(msg.txs) == 0 {
			m.status = "No transactions recorded yet."
		}

		return m, nil

	case recordResultMsg:
		m.state = txStateList
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = "Recorded."
		m.loading = true

		return m, m.loadTxsCmd()

	case deleteResultMsg:
		m.state = txStateList
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
			return m, nil
		}

		m.status = "Deleted."
		m.loading = true

		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-8)

		return m, nil
	}

	switch m.state {
	case txStateList:
		return m.updateList(msg)
	case txStateAdding:
		return m.updateForm(msg, m.recordCmd)
	case txStateConfirmDelete:
		return m.updateForm(msg, m.deleteCmd)
	}

	return m, nil
}

func (m TransactionsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.list.FilterState() != list.Filtering {
			switch keyMsg.String() {
			case "esc":
				return m, Back
			case "a":
				return m.startAdding()
			case "x":
				return m.startDelete()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m TransactionsModel) startAdding() (tea.Model, tea.Cmd) {
	m.formAmount = ""
	m.formType = transaction.TypeExpense
	m.formCategory = ""
	m.formMemo = ""
	m.formDate = FormatDate(time.Now())

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[transaction.Type]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", transaction.TypeExpense),
					huh.NewOption("Income", transaction.TypeIncome),
				).
				Value(&m.formType),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("1234.56").
				Value(&m.formAmount).
				Validate(validateAmount),

			huh.NewInput().
				Key("category").
				Title("Category").
				Value(&m.formCategory).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("category cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("memo").
				Title("Memo (optional)").
				Value(&m.formMemo),

			huh.NewInput().
				Key("date").
				Title("Date").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = txStateAdding

	return m, m.form.Init()
}

func (m TransactionsModel) startDelete() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(txItem)
	if !ok {
		return m, nil
	}

	m.selectedTx = selected.tx
	m.formConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete %s %s (%s)?",
					FormatDate(selected.tx.Date),
					FormatAmount(selected.tx.Amount),
					selected.tx.Category,
				)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.formConfirm),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = txStateConfirmDelete

	return m, m.form.Init()
}

func (m TransactionsModel) updateForm(msg tea.Msg, done func() tea.Cmd) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateList
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, done()
}

func (m TransactionsModel) View() string {
	switch m.state {
	case txStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())

	case txStateAdding, txStateConfirmDelete:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	return ""
}

func (m *TransactionsModel) refreshListItems() {
	items := make([]list.Item, len(m.txs))
	for i, tx := range m.txs {
		items[i] = txItem{tx: tx}
	}

	m.list.SetItems(items)
}

func validateAmount(s string) error {
	cents, err := parseAmountInput(s)
	if err != nil {
		return fmt.Errorf("invalid amount")
	}

	if cents <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	return nil
}

func parseAmountInput(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// Messages

type loadTxsMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m TransactionsModel) loadTxsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, transaction.ListFilter{})

		return loadTxsMsg{txs: txs, err: err}
	}
}

type recordResultMsg struct {
	err error
}

func (m TransactionsModel) recordCmd() tea.Cmd {
	amount, _ := parseAmountInput(m.formAmount)
	date, _ := time.Parse(time.DateOnly, m.formDate)
	params := transaction.RecordParams{
		Amount:   amount,
		Type:     m.formType,
		Category: m.formCategory,
		Memo:     m.formMemo,
		Date:     date,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.txService.Record(ctx, params)

		return recordResultMsg{err: err}
	}
}

type deleteResultMsg struct {
	err error
}

func (m TransactionsModel) deleteCmd() tea.Cmd {
	if !m.formConfirm || m.selectedTx == nil {
		return func() tea.Msg { return deleteResultMsg{} }
	}

	id := m.selectedTx.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return deleteResultMsg{err: m.txService.Delete(ctx, id)}
	}
}
