package view

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/angsur/internal/export"
	"github.com/MrJamesThe3rd/angsur/internal/importer"
	"github.com/MrJamesThe3rd/angsur/internal/installment"
	"github.com/MrJamesThe3rd/angsur/internal/money"
)

type tableState int

const (
	stateList tableState = iota
	stateForm
	stateNote
	stateImport
	stateExport
)

// rowItem wraps an enriched installment to implement list.Item.
type rowItem struct {
	e installment.Enriched
}

func (i rowItem) Title() string {
	bank := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.e.Bank))
	return fmt.Sprintf("%s  %s/mo  %s", bank, money.FormatIDR(i.e.MonthlyPayment), i.e.Transaction)
}

func (i rowItem) Description() string {
	status := fmt.Sprintf("month %v/%v", i.e.CurrentInst, i.e.TotalMonths)
	if i.e.IsCompleted {
		status = "completed"
	}

	desc := fmt.Sprintf("%s  %s  rest %s  ETA %s",
		ProgressBar(i.e.Progress), status, money.FormatIDR(i.e.RestBill), i.e.FinishETA)

	if i.e.Note != "" {
		desc += "  ∙ " + i.e.Note
	}

	return desc
}

func (i rowItem) FilterValue() string {
	return i.e.Transaction + " " + i.e.Bank + " " + i.e.Note
}

type rowsLoadedMsg struct {
	rows   []installment.Enriched
	totals installment.Totals
	banks  []string
}

// TableModel is the installments tab: the table itself plus the add/edit
// form, note editing, and CSV import/export prompts.
type TableModel struct {
	svc *installment.Service
	now time.Time

	state tableState
	list  list.Model
	form  *huh.Form

	hideCompleted bool
	bankFilter    string
	banks         []string
	sortKey       installment.SortKey
	sortDesc      bool

	totals installment.Totals
	status string

	// Form field bindings; huh edits strings, saving runs them through
	// the numeric parser.
	editingID       string
	formBank        string
	formTransaction string
	formPayment     string
	formPaid        string
	formTotal       string
	formNote        string
	pathDraft       string
}

func NewTableModel(svc *installment.Service, now time.Time) TableModel {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Installments"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return TableModel{
		svc:           svc,
		now:           now,
		list:          l,
		hideCompleted: true,
		bankFilter:    installment.AllBanks,
		sortKey:       installment.SortByBank,
	}
}

func (m TableModel) Title() string { return "Installments" }

func (m TableModel) ShortHelp() string {
	switch m.state {
	case stateList:
		return "a: add | e: edit | p: pay 1 | n: note | d: delete | h: completed | b: bank | s: sort | i/x: import/export | esc: back"
	default:
		return "Esc: cancel | Enter/Tab: navigate form"
	}
}

func (m TableModel) Init() tea.Cmd {
	return m.reload
}

func (m TableModel) reload() tea.Msg {
	records := m.svc.List()

	enriched := installment.EnrichAll(records, m.now)
	totals := installment.SumTotals(enriched)

	enriched = installment.Filter(enriched, "", m.bankFilter, m.hideCompleted)
	enriched = installment.SortRows(enriched, m.sortKey, m.sortDesc)

	return rowsLoadedMsg{rows: enriched, totals: totals, banks: installment.Banks(records)}
}

func (m TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rowsLoadedMsg:
		m.totals = msg.totals
		m.banks = msg.banks

		items := make([]list.Item, 0, len(msg.rows))
		for _, r := range msg.rows {
			items = append(items, rowItem{e: r})
		}

		return m, m.list.SetItems(items)

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-6)
		return m, nil

	case StatusMsg:
		m.status = string(msg)
		return m, nil

	case ErrMsg:
		m.status = "error: " + msg.Err.Error()
		return m, nil
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m TableModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch key.String() {
		case "esc", "q":
			return m, Back

		case "a":
			m.openForm(nil)
			return m, m.form.Init()

		case "e":
			if item, ok := m.list.SelectedItem().(rowItem); ok {
				m.openForm(&item.e)
				return m, m.form.Init()
			}

		case "p":
			if item, ok := m.list.SelectedItem().(rowItem); ok {
				return m, m.payOne(item.e.ID)
			}

		case "d":
			if item, ok := m.list.SelectedItem().(rowItem); ok {
				return m, m.deleteRow(item.e.ID)
			}

		case "n":
			if item, ok := m.list.SelectedItem().(rowItem); ok {
				m.openNote(item.e)
				return m, m.form.Init()
			}

		case "h":
			m.hideCompleted = !m.hideCompleted
			return m, m.reload

		case "b":
			m.bankFilter = nextBank(m.banks, m.bankFilter)
			return m, m.reload

		case "s":
			m.sortKey, m.sortDesc = nextSort(m.sortKey, m.sortDesc)
			return m, m.reload

		case "i":
			m.openPath(stateImport, "Path of the CSV to import")
			return m, m.form.Init()

		case "x":
			m.openPath(stateExport, "Where to write the CSV")
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m TableModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		done := m.completeForm()
		m.state = stateList

		return m, tea.Batch(cmd, done, m.reload)

	case huh.StateAborted:
		m.state = stateList
		return m, m.reload
	}

	return m, cmd
}

// completeForm applies whatever the finished form was editing.
func (m *TableModel) completeForm() tea.Cmd {
	switch m.state {
	case stateForm:
		return m.saveDraft()
	case stateNote:
		return m.saveNote()
	case stateImport:
		return m.importCSV()
	case stateExport:
		return m.exportCSV()
	}

	return nil
}

func (m *TableModel) openForm(e *installment.Enriched) {
	m.editingID = ""
	m.formBank, m.formTransaction, m.formNote = "", "", ""
	m.formPayment, m.formPaid, m.formTotal = "0", "0", "1"

	if e != nil {
		m.editingID = e.ID
		m.formBank = e.Bank
		m.formTransaction = e.Transaction
		m.formPayment = formatNumber(e.MonthlyPayment)
		m.formPaid = formatNumber(e.MonthsPaid)
		m.formTotal = formatNumber(e.TotalMonths)
		m.formNote = e.Note
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Bank").Value(&m.formBank),
		huh.NewInput().Title("Transaction").Value(&m.formTransaction),
		huh.NewInput().Title("Monthly Payment (IDR)").Value(&m.formPayment),
		huh.NewInput().Title("Total Months").Value(&m.formTotal),
		huh.NewInput().Title("Months Already Paid").Value(&m.formPaid),
		huh.NewText().Title("Note (optional)").Value(&m.formNote),
	))
	m.state = stateForm
}

func (m *TableModel) openNote(e installment.Enriched) {
	m.editingID = e.ID
	m.formNote = e.Note

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewText().Title("Note for " + e.Transaction).Value(&m.formNote),
	))
	m.state = stateNote
}

func (m *TableModel) openPath(state tableState, title string) {
	m.pathDraft = ""
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(&m.pathDraft),
	))
	m.state = state
}

// draft assembles the record currently described by the form fields.
func (m TableModel) draft() installment.Record {
	return installment.Record{
		ID:             m.editingID,
		Bank:           m.formBank,
		Transaction:    m.formTransaction,
		MonthlyPayment: money.ParseString(m.formPayment),
		MonthsPaid:     money.ParseString(m.formPaid),
		TotalMonths:    money.ParseString(m.formTotal),
		Note:           m.formNote,
	}
}

func (m TableModel) saveDraft() tea.Cmd {
	draft := m.draft()
	editingID := m.editingID

	return func() tea.Msg {
		ctx, cancel := SaveCtx()
		defer cancel()

		if editingID == "" {
			if _, err := m.svc.Add(ctx, installment.CreateParams{
				Bank:           draft.Bank,
				Transaction:    draft.Transaction,
				MonthlyPayment: draft.MonthlyPayment,
				MonthsPaid:     draft.MonthsPaid,
				TotalMonths:    draft.TotalMonths,
				Note:           draft.Note,
			}); err != nil {
				return ErrMsg{Err: err}
			}

			return StatusMsg("installment added")
		}

		patch := installment.Patch{
			Bank:           &draft.Bank,
			Transaction:    &draft.Transaction,
			MonthlyPayment: &draft.MonthlyPayment,
			MonthsPaid:     &draft.MonthsPaid,
			TotalMonths:    &draft.TotalMonths,
			Note:           &draft.Note,
		}

		if _, err := m.svc.Update(ctx, editingID, patch); err != nil {
			return ErrMsg{Err: err}
		}

		return StatusMsg("installment updated")
	}
}

func (m TableModel) saveNote() tea.Cmd {
	id, note := m.editingID, m.formNote

	return func() tea.Msg {
		ctx, cancel := SaveCtx()
		defer cancel()

		if _, err := m.svc.SetNote(ctx, id, note); err != nil {
			return ErrMsg{Err: err}
		}

		return StatusMsg("note saved")
	}
}

func (m TableModel) payOne(id string) tea.Cmd {
	return tea.Sequence(func() tea.Msg {
		ctx, cancel := SaveCtx()
		defer cancel()

		record, err := m.svc.PayOneMonth(ctx, id)
		if err != nil {
			return ErrMsg{Err: err}
		}

		return StatusMsg(fmt.Sprintf("paid 1 month of %s", record.Transaction))
	}, m.reload)
}

func (m TableModel) deleteRow(id string) tea.Cmd {
	return tea.Sequence(func() tea.Msg {
		ctx, cancel := SaveCtx()
		defer cancel()

		if err := m.svc.Delete(ctx, id); err != nil {
			return ErrMsg{Err: err}
		}

		return StatusMsg("installment deleted")
	}, m.reload)
}

func (m TableModel) importCSV() tea.Cmd {
	path := m.pathDraft

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return ErrMsg{Err: err}
		}
		defer f.Close()

		params, err := importer.Parse(f)
		if err != nil {
			return ErrMsg{Err: err}
		}

		if len(params) == 0 {
			return StatusMsg("no valid rows; kept existing data")
		}

		ctx, cancel := SaveCtx()
		defer cancel()

		records, err := m.svc.Replace(ctx, params)
		if err != nil {
			return ErrMsg{Err: err}
		}

		return StatusMsg(fmt.Sprintf("imported %d installments", len(records)))
	}
}

func (m TableModel) exportCSV() tea.Cmd {
	path := m.pathDraft
	enriched := installment.EnrichAll(m.svc.List(), m.now)

	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return ErrMsg{Err: err}
		}
		defer f.Close()

		if err := export.CSV(f, enriched); err != nil {
			return ErrMsg{Err: err}
		}

		return StatusMsg("exported to " + path)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m TableModel) View() string {
	if m.state == stateForm {
		return lipgloss.JoinVertical(lipgloss.Left, m.form.View(), m.impactPanel())
	}

	if m.state != stateList {
		return m.form.View()
	}

	header := headerStyle.Render(fmt.Sprintf(
		"Monthly %s | Remaining %s | %d active | Current month: %s",
		money.FormatIDR(m.totals.TotalMonthly),
		money.FormatIDR(m.totals.TotalRemaining),
		m.totals.ActiveCount,
		MonthLabel(m.now),
	))

	filters := faintStyle.Render(fmt.Sprintf(
		"bank: %s | hide completed: %v | sort: %s %s",
		m.bankFilter, m.hideCompleted, m.sortKey, sortArrow(m.sortDesc),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		filters,
		m.list.View(),
		faintStyle.Render(m.status),
		faintStyle.Render(m.ShortHelp()),
	)
}

// impactPanel mirrors the "impact if you save this" box of the add/edit
// form, recomputed live from the current field values.
func (m TableModel) impactPanel() string {
	impact := installment.PreviewImpact(m.svc.List(), m.draft(), m.editingID, m.now)

	return panelStyle.Render(fmt.Sprintf(
		"Months left: %s   Remaining bill: %s\n"+
			"Current monthly (others): %s\n"+
			"This installment monthly: %s\n"+
			"New total monthly: %s (+%s)\n"+
			"Finish month (ETA): %s",
		formatNumber(impact.MonthsLeft), money.FormatIDR(impact.RestBill),
		money.FormatIDR(impact.BaselineMonthly),
		money.FormatIDR(impact.DraftMonthly),
		money.FormatIDR(impact.WithDraftMonthly), money.FormatIDR(impact.AdditionalMonthly),
		impact.FinishETA,
	))
}

func nextBank(banks []string, current string) string {
	options := append([]string{installment.AllBanks}, banks...)

	for i, b := range options {
		if b == current {
			return options[(i+1)%len(options)]
		}
	}

	return installment.AllBanks
}

var sortCycle = []installment.SortKey{
	installment.SortByBank,
	installment.SortByTransaction,
	installment.SortByMonthlyPayment,
	installment.SortByMonthsPaid,
	installment.SortByTotalMonths,
	installment.SortByMonthsLeft,
	installment.SortByRestBill,
}

// nextSort advances through ascending and descending passes of each key.
func nextSort(key installment.SortKey, desc bool) (installment.SortKey, bool) {
	if !desc {
		return key, true
	}

	for i, k := range sortCycle {
		if k == key {
			return sortCycle[(i+1)%len(sortCycle)], false
		}
	}

	return installment.SortByBank, false
}

func sortArrow(desc bool) string {
	if desc {
		return "▼"
	}

	return "▲"
}

func formatNumber(n float64) string {
	return fmt.Sprintf("%g", n)
}
