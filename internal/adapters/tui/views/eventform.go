package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"offjournal/internal/adapters/tui/styles"
	"offjournal/internal/domain"
)

type eventField int

const (
	fieldDate eventField = iota
	fieldTitle
)

// EventFormKeyMap defines key bindings for the add-event form
type EventFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
}

// DefaultEventFormKeys returns the default add-event form bindings
var DefaultEventFormKeys = EventFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add event"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "date/title"),
	),
}

// EventForm holds the date and title inputs of a new planner event
type EventForm struct {
	Keys  EventFormKeyMap
	date  textinput.Model
	title textinput.Model
	focus eventField
	// active is false while the planner list has the keyboard
	active bool
}

// NewEventForm creates an unfocused form with the date set to today
func NewEventForm(today string) *EventForm {
	date := textinput.New()
	date.Placeholder = domain.DateLayout
	date.CharLimit = len(domain.DateLayout)
	date.Width = len(domain.DateLayout) + 1
	date.SetValue(today)

	title := textinput.New()
	title.Placeholder = "What is happening?"
	title.CharLimit = 200

	return &EventForm{
		Keys:  DefaultEventFormKeys,
		date:  date,
		title: title,
		focus: fieldTitle,
	}
}

// Focus activates the form on one field
func (f *EventForm) Focus(field eventField) tea.Cmd {
	f.active = true
	f.focus = field
	if field == fieldDate {
		f.title.Blur()
		f.date.Focus()
	} else {
		f.date.Blur()
		f.title.Focus()
	}
	return textinput.Blink
}

// Blur hands the keyboard back to the list
func (f *EventForm) Blur() {
	f.active = false
	f.date.Blur()
	f.title.Blur()
}

// Active reports whether the form has the keyboard
func (f *EventForm) Active() bool {
	return f.active
}

// Update forwards msg to the focused input. Next toggles between the fields.
func (f *EventForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, f.Keys.Next) {
		if f.focus == fieldDate {
			return f.Focus(fieldTitle)
		}
		return f.Focus(fieldDate)
	}

	var cmd tea.Cmd
	if f.focus == fieldDate {
		f.date, cmd = f.date.Update(msg)
	} else {
		f.title, cmd = f.title.Update(msg)
	}
	return cmd
}

// Date returns the trimmed date input
func (f *EventForm) Date() string {
	return strings.TrimSpace(f.date.Value())
}

// Title returns the title as typed; blank titles are rejected upstream
func (f *EventForm) Title() string {
	return f.title.Value()
}

// SetTitle replaces the title input
func (f *EventForm) SetTitle(s string) {
	f.title.SetValue(s)
}

// View renders both fields, highlighting the focused one
func (f *EventForm) View() string {
	return f.renderField("Date", f.date, f.active && f.focus == fieldDate) + "\n" +
		f.renderField("Title", f.title, f.active && f.focus == fieldTitle)
}

func (f *EventForm) renderField(label string, input textinput.Model, focused bool) string {
	style := styles.InputField
	if focused {
		style = styles.InputFocused
	}
	return styles.InputLabel.Render(label) + "\n" + style.Render(input.View())
}

// Help renders the form's key help
func (f *EventForm) Help() string {
	return RenderHelpLine(f.Keys.Next, f.Keys.Submit, f.Keys.Cancel)
}
