package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offjournal/internal/adapters/tui/styles"
)

var closeHelp = key.NewBinding(
	key.WithKeys("esc", "q", "?"),
	key.WithHelp("esc/q/?", "close"),
)

// General bindings handled by the app itself
var (
	switchViewKey = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch diary/planner"))
	helpKey       = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help"))
	quitKey       = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q/ctrl+c", "quit (saves first)"))
)

type helpSection struct {
	title    string
	bindings []key.Binding
}

// HelpModel is the full-screen key reference
type HelpModel struct {
	ViewState
	sections []helpSection
}

// NewHelpModel lists the bindings of every view
func NewHelpModel() *HelpModel {
	d, p, f := DefaultDiaryKeys, DefaultPlannerKeys, DefaultEventFormKeys
	return &HelpModel{sections: []helpSection{
		{"Diary", []key.Binding{d.Up, d.Down, d.Edit, d.Search, d.New, d.Delete, d.Mood, d.Copy, d.External}},
		{"Editor", []key.Binding{d.Save, d.Back}},
		{"Planner", []key.Binding{p.Up, p.Down, p.Add, p.Delete}},
		{"Event form", []key.Binding{f.Next, f.Submit, f.Cancel}},
		{"General", []key.Binding{switchViewKey, helpKey, quitKey}},
	}}
}

// Update closes the overlay on its close keys
func (m *HelpModel) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, closeHelp) {
		return func() tea.Msg { return CloseHelpMsg{} }
	}
	return nil
}

func (m *HelpModel) View() string {
	v := NewViewBuilder().
		Title("Offjournal Help").
		Subtitle("Offline diary and planner")

	for _, s := range m.sections {
		v.Line(styles.InputLabel.Render(s.title))
		for _, b := range s.bindings {
			h := b.Help()
			v.Line("  " + styles.HelpKey.Width(14).Render(h.Key) + styles.HelpDesc.Render(h.Desc))
		}
		v.BlankLine()
	}
	v.Help(closeHelp)

	return styles.App.Render(lipgloss.PlaceHorizontal(max(m.Width-4, 0), lipgloss.Left, v.String()))
}
