package ports

import "os/exec"

// EditorOpener opens entry files in an external editor
type EditorOpener interface {
	// OpenFile edits path in $EDITOR (falling back to $VISUAL and common editors)
	OpenFile(path string) error

	// Command returns the editor process for path without starting it,
	// so the TUI can suspend itself through tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}
