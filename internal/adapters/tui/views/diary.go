package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offjournal/internal/adapters/tui/styles"
	"offjournal/internal/frontend"
)

const listWidth = 34

// DiaryKeyMap defines key bindings for the diary view
type DiaryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Search   key.Binding
	New      key.Binding
	Delete   key.Binding
	Mood     key.Binding
	Copy     key.Binding
	External key.Binding
	Save     key.Binding
	Back     key.Binding
	Submit   key.Binding
}

// DefaultDiaryKeys returns the default diary key bindings
var DefaultDiaryKeys = DiaryKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "prev"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Mood: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mood"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	External: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "$EDITOR"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "create"),
	),
}

type diaryFocus int

const (
	focusList diaryFocus = iota
	focusSearch
	focusEditor
	focusNewTitle
)

// DiaryModel renders the entry list and the editor, forwarding every
// user intent to the controller
type DiaryModel struct {
	ViewState
	ctrl  *frontend.Controller
	keys  DiaryKeyMap
	focus diaryFocus

	search textinput.Model
	title  textinput.Model
	editor textarea.Model

	// entryID is the entry whose content the editor holds
	entryID string
	content string
}

// NewDiaryModel creates the diary view
func NewDiaryModel(ctrl *frontend.Controller) *DiaryModel {
	search := textinput.New()
	search.Placeholder = "Filter entries..."
	search.Prompt = "/ "

	title := textinput.New()
	title.Placeholder = "Entry title"
	title.CharLimit = 120

	editor := textarea.New()
	editor.Placeholder = "Write about your day..."
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0

	return &DiaryModel{
		ctrl:   ctrl,
		keys:   DefaultDiaryKeys,
		search: search,
		title:  title,
		editor: editor,
	}
}

// SetSize updates the view dimensions
func (m *DiaryModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.search.Width = listWidth - 6
	m.title.Width = listWidth - 6
	m.editor.SetWidth(max(width-listWidth-8, 20))
	m.editor.SetHeight(max(height-8, 5))
}

// Capturing reports whether keystrokes go to a text field
func (m *DiaryModel) Capturing() bool {
	return m.focus != focusList
}

// Sync copies controller state into the widgets
func (m *DiaryModel) Sync(vm frontend.ViewModel) {
	if vm.Query != m.search.Value() {
		m.search.SetValue(vm.Query)
	}

	if vm.EntryID != m.entryID || vm.Content != m.content {
		m.entryID = vm.EntryID
		m.content = vm.Content
		if m.editor.Value() != vm.Content {
			m.editor.SetValue(vm.Content)
		}
	}
	if vm.ShowWelcome && m.focus == focusEditor {
		m.setFocus(focusList)
	}
}

// Update handles messages for the diary view
func (m *DiaryModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch m.focus {
	case focusSearch:
		if key.Matches(keyMsg, m.keys.Back) || key.Matches(keyMsg, m.keys.Submit) {
			m.setFocus(focusList)
			return nil
		}
		return m.updateFocused(msg)

	case focusNewTitle:
		switch {
		case key.Matches(keyMsg, m.keys.Back):
			m.title.Reset()
			m.setFocus(focusList)
			return nil
		case key.Matches(keyMsg, m.keys.Submit):
			if m.ctrl.NewEntry(m.title.Value()) {
				m.title.Reset()
				m.setFocus(focusList)
			}
			return nil
		}
		return m.updateFocused(msg)

	case focusEditor:
		switch {
		case key.Matches(keyMsg, m.keys.Back):
			m.setFocus(focusList)
			return nil
		case key.Matches(keyMsg, m.keys.Save):
			m.ctrl.Save()
			return nil
		}
		return m.updateFocused(msg)
	}

	return m.handleListKey(keyMsg)
}

func (m *DiaryModel) handleListKey(msg tea.KeyMsg) tea.Cmd {
	m.ClearMessage()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.ctrl.Navigate(frontend.Up)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.Navigate(frontend.Down)
	case key.Matches(msg, m.keys.Edit):
		if m.entryID != "" {
			m.setFocus(focusEditor)
		}
	case key.Matches(msg, m.keys.Search):
		m.setFocus(focusSearch)
	case key.Matches(msg, m.keys.New):
		m.setFocus(focusNewTitle)
	case key.Matches(msg, m.keys.Delete):
		m.ctrl.RemoveEntry()
	case key.Matches(msg, m.keys.Mood):
		m.ctrl.RequestMood()
	case key.Matches(msg, m.keys.Copy):
		if m.entryID == "" {
			return nil
		}
		text := m.editor.Value()
		return func() tea.Msg {
			return CopiedMsg{Err: clipboard.WriteAll(text)}
		}
	case key.Matches(msg, m.keys.External):
		if m.entryID == "" {
			return nil
		}
		id := m.entryID
		return func() tea.Msg { return OpenExternalMsg{EntryID: id} }
	}
	return nil
}

// updateFocused forwards msg to the focused widget and reports changes
func (m *DiaryModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if after := m.search.Value(); after != before {
			m.ctrl.SetQuery(after)
		}
	case focusNewTitle:
		m.title, cmd = m.title.Update(msg)
	case focusEditor:
		before := m.editor.Value()
		m.editor, cmd = m.editor.Update(msg)
		if after := m.editor.Value(); after != before {
			m.content = after
			m.ctrl.Edit(after)
		}
	}
	return cmd
}

func (m *DiaryModel) setFocus(f diaryFocus) {
	m.search.Blur()
	m.title.Blur()
	m.editor.Blur()

	m.focus = f
	switch f {
	case focusSearch:
		m.search.Focus()
	case focusNewTitle:
		m.title.Focus()
	case focusEditor:
		m.editor.Focus()
	}
}

// View renders the diary
func (m *DiaryModel) View(vm frontend.ViewModel, spin string) string {
	list := m.renderList(vm, spin)
	body := m.renderEditor(vm)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", body)
}

func (m *DiaryModel) renderList(vm frontend.ViewModel, spin string) string {
	var b strings.Builder

	header := "Entries"
	if vm.DiaryBusy {
		header += " " + spin
	}
	b.WriteString(styles.InputLabel.Render(header))
	b.WriteString("\n")

	if m.focus == focusSearch || vm.Query != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(vm.Entries) == 0 {
		b.WriteString(RenderMuted(vm.EmptyMessage))
		b.WriteString("\n")
	}
	for _, row := range vm.Entries {
		line := truncate(row.Title, listWidth-6)
		if row.Selected {
			b.WriteString(styles.RowSelected.Render("> " + line))
		} else {
			b.WriteString(styles.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.focus == focusNewTitle {
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render("New entry"))
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(m.title.View()))
		b.WriteString("\n")
	}

	pane := styles.Pane
	if m.focus != focusEditor {
		pane = styles.PaneFocused
	}
	return pane.Width(listWidth).Render(b.String())
}

func (m *DiaryModel) renderEditor(vm frontend.ViewModel) string {
	width := max(m.Width-listWidth-6, 24)

	if vm.ShowWelcome {
		v := NewViewBuilder().
			Title("Welcome to your diary").
			Subtitle(fmt.Sprintf("%d entries", len(vm.Entries))).
			Muted("Select an entry on the left, or press n to write a new one.").
			BlankLine().
			Message(m.Message, m.MessageErr)
		return styles.Pane.Width(width).Render(v.String())
	}

	v := NewViewBuilder()
	title := vm.EntryTitle
	if vm.Dirty {
		title += " *"
	}
	v.Raw(RenderTitle(title)).BlankLine()
	v.Raw(m.editor.View()).BlankLine()
	if vm.Mood != "" {
		v.Line(RenderMood(vm.Mood))
	}
	v.Message(m.Message, m.MessageErr)
	if m.focus == focusEditor {
		v.Help(m.keys.Save, m.keys.Back)
	} else {
		v.Help(m.keys.Edit, m.keys.Mood, m.keys.Copy, m.keys.External, m.keys.Delete)
	}

	pane := styles.Pane
	if m.focus == focusEditor {
		pane = styles.PaneFocused
	}
	return pane.Width(width).Render(v.String())
}

// CopyResult turns a clipboard outcome into a flash message
func (m *DiaryModel) CopyResult(msg CopiedMsg) {
	if msg.Err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed: %v", msg.Err), true)
		return
	}
	m.SetMessage("Entry copied to clipboard.", false)
}
