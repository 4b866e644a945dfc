package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"assethub/internal/client/action"
	"assethub/internal/client/views"
	"assethub/internal/errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the number of lines around the table: title, search or prompt, toast and help.
const chromeHeight = 7

type browserState int

const (
	stateBrowsing browserState = iota
	stateSearching
	stateConfirming
)

type loadedMsg struct {
	err error
}

type actionDoneMsg struct {
	name string
	err  error
}

// BrowserModel is the bubbletea model that pages through one list and runs its row actions.
// Confirmation of destructive actions happens inside the model, so its runner never prompts.
type BrowserModel struct {
	ctx    context.Context
	list   views.List
	runner *action.Runner
	toast  *Toast

	table   table.Model
	search  textinput.Model
	state   browserState
	pending action.Action

	busy     bool
	quitting bool
}

func NewBrowserModel(ctx context.Context, list views.List, logger *slog.Logger) BrowserModel {
	toast := &Toast{}

	columns := make([]table.Column, 0, len(list.Columns()))
	for _, c := range list.Columns() {
		columns = append(columns, table.Column{Title: c.Title, Width: c.Width})
	}

	keys := table.DefaultKeyMap()
	keys.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"))
	keys.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"))
	keys.PageUp = key.NewBinding(key.WithKeys("pgup"))
	keys.PageDown = key.NewBinding(key.WithKeys("pgdown"))

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorMuted).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#0F1923")).Background(colorAccent)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithKeyMap(keys),
		table.WithHeight(10),
		table.WithWidth(80),
	)
	t.SetStyles(styles)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"

	return BrowserModel{
		ctx:    ctx,
		list:   list,
		runner: action.NewRunner(toast, Assume(true), logger),
		toast:  toast,
		table:  t,
		search: search,
		busy:   true,
	}
}

func (m BrowserModel) Init() tea.Cmd {
	return m.load(m.list.Load)
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(3, msg.Height-chromeHeight))

		return m, nil

	case loadedMsg:
		m.busy = false
		if msg.err != nil {
			m.toast.Error("Could not load "+strings.ToLower(m.list.Title()), msg.err)
		}
		m.refreshRows()

		return m, nil

	case actionDoneMsg:
		m.busy = false
		m.refreshRows()

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateSearching:
			return m.updateSearch(msg)
		case stateConfirming:
			return m.updateConfirm(msg)
		}

		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m BrowserModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true

		return m, tea.Quit
	case "n", "right":
		if m.list.Next() {
			m.refreshRows()
		}

		return m, nil
	case "p", "left":
		if m.list.Prev() {
			m.refreshRows()
		}

		return m, nil
	case "ctrl+r":
		m.busy = true

		return m, m.load(m.list.Refetch)
	case "/":
		m.state = stateSearching
		m.search.SetValue("")
		cmd := m.search.Focus()

		return m, cmd
	}

	if m.busy {
		return m, nil
	}

	if a, ok := m.actionFor(msg.String()); ok {
		if a.Destructive() {
			m.state = stateConfirming
			m.pending = a

			return m, nil
		}

		return m.run(a)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BrowserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateBrowsing
		m.search.Blur()

		return m, nil
	case tea.KeyEnter:
		m.state = stateBrowsing
		m.search.Blur()
		m.busy = true
		term := strings.TrimSpace(m.search.Value())

		return m, m.load(func(ctx context.Context) error {
			searchable, err := m.list.Search(ctx, term)
			if err == nil && !searchable {
				m.toast.Error("This list has no search", nil)
			}

			return err
		})
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

func (m BrowserModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.state = stateBrowsing
	pending := m.pending
	m.pending = action.Action{}

	if msg.String() == "y" || msg.String() == "Y" {
		return m.run(pending)
	}

	return m, nil
}

func (m BrowserModel) run(a action.Action) (tea.Model, tea.Cmd) {
	m.busy = true
	m.toast.Clear()

	return m, func() tea.Msg {
		return actionDoneMsg{name: a.Name, err: m.runner.Run(m.ctx, a, m.list.Refetch)}
	}
}

func (m BrowserModel) load(fetch func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: fetch(m.ctx)}
	}
}

func (m BrowserModel) actionFor(k string) (action.Action, bool) {
	if m.list.Len() == 0 {
		return action.Action{}, false
	}

	for _, a := range m.list.Actions(m.table.Cursor()) {
		if a.Key == k {
			return a, true
		}
	}

	return action.Action{}, false
}

func (m *BrowserModel) refreshRows() {
	rows := m.list.Rows()
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r)
	}
	m.table.SetRows(tableRows)

	if m.table.Cursor() >= len(tableRows) {
		m.table.SetCursor(max(0, len(tableRows)-1))
	}
}

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.list.Title()))
	if pages := m.list.TotalPages(); pages > 0 {
		b.WriteString(mutedStyle.Render("  page " + strconv.Itoa(m.list.Page()) + "/" + strconv.Itoa(pages)))
	}
	if m.busy {
		b.WriteString(mutedStyle.Render("  loading..."))
	}
	b.WriteString("\n\n")

	switch {
	case m.list.Len() == 0 && m.list.Err() != nil:
		b.WriteString(boxStyle.BorderForeground(colorError).Render(errorStyle.Render("Something went wrong. Press ctrl+r to retry.")))
	case m.list.Len() == 0 && !m.busy:
		empty := m.list.Empty()
		if empty == views.NoCompany {
			empty += "\n" + mutedStyle.Render(views.NoCompanyHint)
		}
		b.WriteString(boxStyle.Render(empty))
	default:
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")

	switch m.state {
	case stateSearching:
		b.WriteString(m.search.View())
	case stateConfirming:
		b.WriteString(warningStyle.Render(iconWarning + " " + m.pending.Confirm + " [y/N]"))
	}
	b.WriteString("\n")

	if text, failed := m.toast.Last(); text != "" {
		if failed {
			b.WriteString(errorStyle.Render(iconError + " " + text))
		} else {
			b.WriteString(successStyle.Render(iconSuccess + " " + text))
		}
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help()))

	return b.String()
}

func (m BrowserModel) help() string {
	parts := make([]string, 0, 8)
	if m.list.Len() > 0 {
		for _, a := range m.list.Actions(m.table.Cursor()) {
			parts = append(parts, a.Key+" "+a.Name)
		}
	}
	parts = append(parts, "n/p page", "/ search", "ctrl+r refresh", "q quit")

	return strings.Join(parts, " · ")
}

// Browse runs the browser full screen until the user quits.
func Browse(ctx context.Context, list views.List, logger *slog.Logger) error {
	program := tea.NewProgram(NewBrowserModel(ctx, list, logger), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "run browser")
	}

	return nil
}
