package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"offjournal/internal/adapters/tui/styles"
	"offjournal/internal/frontend"
)

// ConfirmKeyMap defines key bindings for confirmation dialogs
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
	Dismiss key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc", " "),
		key.WithHelp("enter", "dismiss"),
	),
}

// PromptModel renders modal questions and alerts on top of the app.
// A question is answered later, when the user presses a key.
type PromptModel struct {
	Keys ConfirmKeyMap

	question string
	decide   func(ok bool)
	alerts   []string
}

var _ frontend.Prompter = (*PromptModel)(nil)

// NewPromptModel creates a prompt model with default keys
func NewPromptModel() *PromptModel {
	return &PromptModel{Keys: DefaultConfirmKeys}
}

// Confirm opens a yes/no question. An unanswered earlier question is declined.
func (m *PromptModel) Confirm(message string, decide func(ok bool)) {
	if prev := m.decide; prev != nil {
		m.question, m.decide = "", nil
		prev(false)
	}
	m.question = message
	m.decide = decide
}

// Alert queues a message the user has to dismiss
func (m *PromptModel) Alert(message string) {
	m.alerts = append(m.alerts, message)
}

// Active reports whether a dialog is on screen
func (m *PromptModel) Active() bool {
	return len(m.alerts) > 0 || m.decide != nil
}

// HandleKeyMsg processes key messages while a dialog is open.
// Returns true if the key was consumed.
func (m *PromptModel) HandleKeyMsg(msg tea.KeyMsg) bool {
	if len(m.alerts) > 0 {
		if key.Matches(msg, m.Keys.Dismiss) {
			m.alerts = m.alerts[1:]
		}
		return true
	}
	if m.decide == nil {
		return false
	}

	switch {
	case key.Matches(msg, m.Keys.Confirm):
		m.answer(true)
	case key.Matches(msg, m.Keys.Cancel):
		m.answer(false)
	}
	return true
}

// answer clears the question before deciding; decide may open another one
func (m *PromptModel) answer(ok bool) {
	decide := m.decide
	m.question, m.decide = "", nil
	decide(ok)
}

// View renders the topmost dialog, or "" when none is open
func (m *PromptModel) View() string {
	if len(m.alerts) > 0 {
		var b strings.Builder
		b.WriteString(styles.ErrorMsg.Render(m.alerts[0]))
		b.WriteString("\n\n")
		b.WriteString(RenderKeyHelp(m.Keys.Dismiss))
		return styles.ModalAlert.Render(b.String())
	}
	if m.decide != nil {
		return styles.Modal.Render(RenderConfirmPrompt(m.question))
	}
	return ""
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
