// Package tui provides the Bubble Tea results interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/lexname/internal/model"
	"github.com/verte-zerg/lexname/internal/store"
	"github.com/verte-zerg/lexname/internal/username"
)

const maxLogLines = 6

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	logStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type progressMsg struct {
	done  int
	total int
}

type lookupWarnMsg struct {
	lang string
	err  error
}

type batchDoneMsg struct {
	entries []model.Entry
	saveErr error
	err     error
}

// Model implements the Bubble Tea results UI.
type Model struct {
	source username.Source
	store  *store.Store
	langs  []string
	count  int
	style  username.Style

	events chan tea.Msg

	width  int
	height int

	generating bool
	entries    []model.Entry
	results    table.Model
	logLines   []string
	notice     string
	errMsg     string
}

// NewModel constructs the results TUI model. store may be nil when history
// persistence is unavailable.
func NewModel(source username.Source, st *store.Store, langs []string, count int, style username.Style) *Model {
	m := &Model{
		source: source,
		store:  st,
		langs:  langs,
		count:  count,
		style:  style,
	}
	m.results = newResultsTable(nil, 0, 1)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.startBatch()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
		return m, nil
	case progressMsg:
		m.appendLog(fmt.Sprintf("Generating username %d/%d...", msg.done, msg.total))
		return m, m.waitForEvent()
	case lookupWarnMsg:
		m.appendLog(fmt.Sprintf("Failed to fetch words for %q: %v", msg.lang, msg.err))
		return m, m.waitForEvent()
	case batchDoneMsg:
		m.generating = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.appendLog("Generation failed.")
			return m, nil
		}
		m.entries = msg.entries
		m.results = newResultsTable(msg.entries, m.width, m.tableHeight())
		m.appendLog("Username generation completed.")
		if msg.saveErr != nil {
			m.appendLog(fmt.Sprintf("Failed to save batch: %v", msg.saveErr))
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC || msg.String() == "q":
			return m, tea.Quit
		case msg.String() == "r":
			if m.generating {
				m.notice = "a batch is already running"
				return m, nil
			}
			return m, m.startBatch()
		case msg.Type == tea.KeyEnter || msg.String() == "c":
			m.copySelected()
			return m, nil
		default:
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
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
	b.WriteString(titleStyle.Render("lexname"))
	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else {
		b.WriteString(m.results.View())
		b.WriteString("\n")
	}
	for _, line := range m.logLines {
		b.WriteString(logStyle.Render(line))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("enter/c copy · r regenerate · q quit"))
	return b.String()
}

// startBatch launches one generation run in a goroutine and begins
// draining its event channel. The run key is rejected while one is in
// flight, so at most one goroutine exists at a time.
func (m *Model) startBatch() tea.Cmd {
	m.generating = true
	m.errMsg = ""
	m.notice = ""
	m.logLines = nil
	m.appendLog("Generating usernames...")

	ch := make(chan tea.Msg, m.count+16)
	m.events = ch
	source := m.source
	st := m.store
	langs := m.langs
	count := m.count
	style := m.style
	go func() {
		gen := username.New(source)
		gen.OnProgress = func(done, total int) {
			ch <- progressMsg{done: done, total: total}
		}
		gen.OnLookupError = func(lang string, err error) {
			ch <- lookupWarnMsg{lang: lang, err: err}
		}
		entries, err := gen.Generate(context.Background(), langs, count, style)
		var saveErr error
		if err == nil && st != nil {
			_, saveErr = st.InsertBatch(context.Background(), model.Batch{
				GeneratedAt: time.Now().UTC(),
				Count:       count,
				CaseStyle:   style.Case.String(),
				NumberStyle: style.Number.String(),
				MinLen:      style.MinLen,
				Langs:       langs,
				Entries:     entries,
			})
		}
		ch <- batchDoneMsg{entries: entries, saveErr: saveErr, err: err}
		close(ch)
	}()
	return m.waitForEvent()
}

func (m *Model) waitForEvent() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) copySelected() {
	row := m.results.SelectedRow()
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

func (m *Model) appendLog(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func (m *Model) tableHeight() int {
	// Title, blank line, log pane, notice, and footer surround the table.
	height := m.height - maxLogLines - 5
	if height < 3 {
		height = 3
	}
	return height
}

func (m *Model) resizeTable() {
	m.results = newResultsTable(m.entries, m.width, m.tableHeight())
}

func newResultsTable(entries []model.Entry, width, height int) table.Model {
	nameWidth := 24
	langWidth := 20
	if width > 0 && width < nameWidth+langWidth+4 {
		nameWidth = width / 2
		langWidth = width - nameWidth - 4
		if langWidth < 4 {
			langWidth = 4
		}
	}
	columns := []table.Column{
		{Title: "Username", Width: nameWidth},
		{Title: "Language", Width: langWidth},
	}
	rows := make([]table.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, table.Row{entry.Username, entry.LangName})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	t.SetStyles(resultsTableStyles())
	return t
}

func resultsTableStyles() table.Styles {
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
	return styles
}
