// Package historyui provides the Bubble Tea history browser.
package historyui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/lexname/internal/model"
	"github.com/verte-zerg/lexname/internal/store"
)

const (
	viewBatches = iota
	viewEntries
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea history UI.
type Model struct {
	store *store.Store
	limit int

	batches []model.BatchSummary
	totals  []model.LangCount

	batchTable table.Model
	entryTable table.Model
	activeView int
	openBatch  model.BatchSummary

	width  int
	height int

	notice string
	errMsg string
}

// NewModel constructs a history UI model and loads the batch list. A
// limit > 0 restricts the list to the most recent batches.
func NewModel(st *store.Store, limit int) *Model {
	m := &Model{store: st, limit: limit}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTables()
		return m, nil
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC || msg.String() == "q":
			return m, tea.Quit
		case msg.Type == tea.KeyEsc:
			if m.activeView == viewEntries {
				m.activeView = viewBatches
				m.notice = ""
				return m, tea.ClearScreen
			}
			return m, tea.Quit
		case msg.Type == tea.KeyEnter:
			if m.activeView == viewBatches {
				m.openSelectedBatch()
				return m, tea.ClearScreen
			}
			m.copySelected()
			return m, nil
		case msg.String() == "c":
			if m.activeView == viewEntries {
				m.copySelected()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			if m.activeView == viewBatches {
				m.batchTable, cmd = m.batchTable.Update(msg)
			} else {
				m.entryTable, cmd = m.entryTable.Update(msg)
			}
			return m, cmd
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var b strings.Builder
	if m.activeView == viewBatches {
		b.WriteString(titleStyle.Render("lexname history"))
		b.WriteString("\n\n")
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render(m.errMsg))
			b.WriteString("\n")
		} else if len(m.batches) == 0 {
			b.WriteString(mutedStyle.Render("No batches yet. Run lexname to generate one."))
			b.WriteString("\n")
		} else {
			b.WriteString(m.batchTable.View())
			b.WriteString("\n")
			b.WriteString(m.renderTotals())
		}
		b.WriteString(footerStyle.Render("enter open · q quit"))
		return b.String()
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("batch #%d · %s",
		m.openBatch.ID, m.openBatch.GeneratedAt.Local().Format("2006-01-02 15:04"))))
	b.WriteString("\n\n")
	b.WriteString(m.entryTable.View())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("enter/c copy · esc back · q quit"))
	return b.String()
}

func (m *Model) refresh() {
	ctx := context.Background()
	batches, err := m.store.ListBatches(ctx, m.limit)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load history: %v", err)
		return
	}
	totals, err := m.store.LanguageTotals(ctx)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load totals: %v", err)
		return
	}
	m.batches = batches
	m.totals = totals
	m.rebuildTables()
}

func (m *Model) openSelectedBatch() {
	idx := m.batchTable.Cursor()
	if idx < 0 || idx >= len(m.batches) {
		return
	}
	summary := m.batches[idx]
	entries, err := m.store.GetBatchEntries(context.Background(), summary.ID)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load batch %d: %v", summary.ID, err)
		return
	}
	m.openBatch = summary
	m.entryTable = newEntryTable(entries, m.width, m.tableHeight())
	m.activeView = viewEntries
	m.notice = ""
}

func (m *Model) copySelected() {
	row := m.entryTable.SelectedRow()
	if len(row) == 0 {
		return
	}
	name := row[0]
	if err := clipboard.WriteAll(name); err != nil {
		m.notice = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.notice = fmt.Sprintf("copied %q", name)
}

func (m *Model) renderTotals() string {
	if len(m.totals) == 0 {
		return ""
	}
	shown := m.totals
	if len(shown) > 5 {
		shown = shown[:5]
	}
	parts := make([]string, 0, len(shown))
	for _, lc := range shown {
		parts = append(parts, fmt.Sprintf("%s %d", lc.LangName, lc.Count))
	}
	return mutedStyle.Render("Top languages: "+strings.Join(parts, " · ")) + "\n"
}

func (m *Model) tableHeight() int {
	height := m.height - 6
	if height < 3 {
		height = 3
	}
	return height
}

func (m *Model) rebuildTables() {
	m.batchTable = newBatchTable(m.batches, m.width, m.tableHeight())
	if m.activeView == viewEntries {
		entries, err := m.store.GetBatchEntries(context.Background(), m.openBatch.ID)
		if err == nil {
			m.entryTable = newEntryTable(entries, m.width, m.tableHeight())
		}
	}
}

func newBatchTable(batches []model.BatchSummary, width, height int) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Generated", Width: 17},
		{Title: "Count", Width: 6},
		{Title: "Case", Width: 11},
		{Title: "Number", Width: 7},
	}
	rows := make([]table.Row, 0, len(batches))
	for _, batch := range batches {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", batch.ID),
			batch.GeneratedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", batch.Count),
			batch.CaseStyle,
			batch.NumberStyle,
		})
	}
	return buildTable(columns, rows, width, height)
}

func newEntryTable(entries []model.Entry, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Username", Width: 24},
		{Title: "Language", Width: 20},
	}
	rows := make([]table.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, table.Row{entry.Username, entry.LangName})
	}
	return buildTable(columns, rows, width, height)
}

func buildTable(columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	if width > 0 {
		t.SetWidth(width)
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}
