package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"offjournal/internal/adapters/tui/styles"
)

// RenderKeyHelp formats one binding as "key desc"
func RenderKeyHelp(b key.Binding) string {
	h := b.Help()
	return styles.HelpKey.Render(h.Key) + " " + styles.HelpDesc.Render(h.Desc)
}

// RenderHelpLine joins bindings with the help separator
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage styles a flash message; empty stays empty
func RenderMessage(message string, isError bool) string {
	switch {
	case message == "":
		return ""
	case isError:
		return styles.ErrorMsg.Render(message)
	default:
		return styles.Success.Render(message)
	}
}

func RenderTitle(title string) string {
	return styles.Title.Render(title)
}

func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// RenderMood colors a "Label (+p / -n)" mood line by its label
func RenderMood(mood string) string {
	label, _, _ := strings.Cut(mood, " ")
	value := lipgloss.NewStyle().Foreground(styles.MoodColor(label)).Render(mood)
	return styles.InputLabel.Render("Mood:") + " " + value
}

// ViewBuilder accumulates the sections of a pane
type ViewBuilder struct {
	b strings.Builder
}

func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

func (v *ViewBuilder) Title(title string) *ViewBuilder {
	return v.Raw(RenderTitle(title) + "\n\n")
}

func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	return v.Raw(styles.Subtitle.Render(subtitle) + "\n\n")
}

func (v *ViewBuilder) Line(text string) *ViewBuilder {
	return v.Raw(text + "\n")
}

func (v *ViewBuilder) BlankLine() *ViewBuilder {
	return v.Raw("\n")
}

func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.Line(RenderMuted(text))
}

// Message adds a flash message followed by a blank line, if there is one
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	return v.Raw(RenderMessage(message, isError) + "\n\n")
}

func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	return v.Raw(RenderHelpLine(bindings...))
}

// Raw appends text as is
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

func (v *ViewBuilder) String() string {
	return v.b.String()
}
