package views

// ViewState contains common state shared by the diary and planner panes.
// Embed this struct in view models to get width/height and flash messages.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a flash message shown under the pane
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// OpenExternalMsg asks the app to open an entry in $EDITOR
type OpenExternalMsg struct {
	EntryID string
}

// CopiedMsg reports the outcome of a clipboard copy
type CopiedMsg struct {
	Err error
}

// CloseHelpMsg closes the help overlay
type CloseHelpMsg struct{}

// clamp keeps i within [0, n)
func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
