// Package tui is an interactive terminal front end for the todo page. It
// draws the list items found in the document and turns key presses into
// the same click and submit events a browser would fire.
package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/app"
)

// listItem is one rendered todo as read back from the document.
type listItem struct {
	ID   int
	Text string
	Done bool
}

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// single-line rows
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box, text := mutedStyle.Render(boxUnchecked), it.Text
	if it.Done {
		box, text = successStyle.Render(boxChecked), doneStyle.Render(it.Text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, box, text, mutedStyle.Render("#"+strconv.Itoa(it.ID)))
}

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Remove key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "complete")),
		Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

type Model struct {
	app  *app.App
	list list.Model
	keys keyMap

	adding bool
	ti     textinput.Model
	addErr string

	empty string // placeholder text the document shows for an empty list
}

// New builds the model and reads the current document.
func New(a *app.App) Model {
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	bindings := func() []key.Binding { return []key.Binding{keys.Add, keys.Toggle, keys.Remove} }
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	ti.CharLimit = 200

	m := Model{app: a, list: l, keys: keys, ti: ti}
	m.refresh()
	return m
}

// Run starts the program on the alternate screen.
func Run(a *app.App) error {
	_, err := tea.NewProgram(New(a), tea.WithAltScreen()).Run()
	return err
}

// refresh re-reads the list items and placeholder from the document.
func (m *Model) refresh() tea.Cmd {
	doc := m.app.Document()
	var items []list.Item
	done := 0
	for _, el := range doc.QuerySelectorAll("." + app.ClassItem) {
		id, err := strconv.Atoi(el.Data("id"))
		if err != nil {
			continue
		}
		text := ""
		if span := el.QuerySelector("." + app.ClassItemText); span != nil {
			text = span.Text()
		}
		it := listItem{ID: id, Text: text, Done: el.HasClass(app.ClassCompleted)}
		if it.Done {
			done++
		}
		items = append(items, it)
	}

	m.empty = ""
	if ph := doc.QuerySelector("." + app.ClassNotFound); ph != nil {
		m.empty = ph.Text()
	}

	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(items)-done,
		accentStyle.Render("Total"), len(items),
	)
	cmd := m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

// click fires a click on the given button of the selected item.
func (m *Model) click(buttonClass string) tea.Cmd {
	sel, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	el := m.app.ItemElement(sel.ID)
	if el == nil {
		return nil
	}
	if btn := el.QuerySelector("." + buttonClass); btn != nil {
		btn.Click()
	}
	return m.refresh()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(size.Width-4, size.Height-6)
		return m, nil
	}

	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				before := m.app.LastID()
				m.app.Enter(m.ti.Value())
				if m.app.LastID() == before {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				m.addErr = ""
				m.adding = false
				m.ti.SetValue("")
				m.ti.Blur()
				cmd = m.refresh()
				m.list.Select(len(m.list.Items()) - 1)
				return m, cmd
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// let the list own the keyboard while the filter prompt is open
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if x, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(x, m.keys.Quit):
			if x.String() == "esc" && m.list.FilterState() != list.Unfiltered {
				break
			}
			return m, tea.Quit
		case key.Matches(x, m.keys.Toggle):
			return m, m.click(app.ClassBtnComplete)
		case key.Matches(x, m.keys.Remove):
			return m, m.click(app.ClassBtnRemove)
		case key.Matches(x, m.keys.Add):
			m.adding = true
			m.ti.SetValue("")
			return m, m.ti.Focus()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	content := m.list.View()
	if m.empty != "" {
		content = mutedStyle.Render(m.empty) + "\n" + content
	}
	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += " - " + errorStyle.Render(m.addErr)
		}
		content += "\n" + frameStyle.Render(title+"\n"+m.ti.View())
	}
	return frameStyle.Render(content)
}
