package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"offjournal/internal/adapters/tui/styles"
	"offjournal/internal/domain"
	"offjournal/internal/frontend"
)

// PlannerKeyMap defines key bindings for the planner view
type PlannerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
}

// DefaultPlannerKeys returns the default planner key bindings
var DefaultPlannerKeys = PlannerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "prev"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next"),
	),
	Add: key.NewBinding(
		key.WithKeys("a", "n"),
		key.WithHelp("a", "add event"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
}

// PlannerModel renders the event list and the add-event form
type PlannerModel struct {
	ViewState
	ctrl *frontend.Controller
	keys PlannerKeyMap

	form *EventForm

	events    []frontend.EventRow
	cursor    int
	lastTitle string
}

// NewPlannerModel creates the planner view. The date field starts at today.
func NewPlannerModel(ctrl *frontend.Controller, today time.Time) *PlannerModel {
	return &PlannerModel{
		ctrl: ctrl,
		keys: DefaultPlannerKeys,
		form: NewEventForm(today.Format(domain.DateLayout)),
	}
}

// Capturing reports whether keystrokes go to the form
func (m *PlannerModel) Capturing() bool {
	return m.form.Active()
}

// Sync copies controller state into the widgets
func (m *PlannerModel) Sync(vm frontend.ViewModel) {
	m.events = vm.Events
	m.cursor = clamp(m.cursor, len(m.events))

	if vm.PlannerTitle != m.lastTitle {
		m.lastTitle = vm.PlannerTitle
		m.form.SetTitle(vm.PlannerTitle)
	}
}

// Update handles messages for the planner view
func (m *PlannerModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form.Active() {
			return m.form.Update(msg)
		}
		return nil
	}

	if m.form.Active() {
		switch {
		case key.Matches(keyMsg, m.form.Keys.Cancel):
			m.form.Blur()
			return nil
		case key.Matches(keyMsg, m.form.Keys.Submit):
			m.ctrl.SubmitEvent(m.form.Date(), m.form.Title())
			return nil
		}
		return m.form.Update(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, len(m.events))
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, len(m.events))
	case key.Matches(keyMsg, m.keys.Add):
		return m.form.Focus(fieldTitle)
	case key.Matches(keyMsg, m.keys.Delete):
		if len(m.events) > 0 {
			m.ctrl.RemoveEvent(m.events[m.cursor].ID)
		}
	}
	return nil
}

// View renders the planner
func (m *PlannerModel) View(vm frontend.ViewModel, spin string) string {
	var b strings.Builder

	header := "Upcoming events"
	if vm.PlannerBusy {
		header += " " + spin
	}
	b.WriteString(styles.InputLabel.Render(header))
	b.WriteString("\n\n")

	if len(m.events) == 0 {
		b.WriteString(RenderMuted("No events planned."))
		b.WriteString("\n")
	}
	for i, ev := range m.events {
		title := truncate(ev.Title, max(m.Width-24, 16))
		if i == m.cursor && !m.form.Active() {
			b.WriteString(styles.RowSelected.Render("> " + ev.Date + "  " + title))
		} else {
			b.WriteString("  " + styles.RowDate.Render(ev.Date) + "  " + title)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.form.View())
	b.WriteString("\n\n")

	if m.form.Active() {
		b.WriteString(m.form.Help())
	} else {
		b.WriteString(RenderHelpLine(m.keys.Add, m.keys.Delete))
	}

	pane := styles.Pane
	if m.form.Active() {
		pane = styles.PaneFocused
	}
	return pane.Width(max(m.Width-4, 40)).Render(b.String())
}
