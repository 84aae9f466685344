package launcher

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Launcher hands files and URIs to the desktop's default application
type Launcher struct {
	goos string
}

// New creates a launcher for the running operating system
func New() *Launcher {
	return &Launcher{goos: runtime.GOOS}
}

// Open opens target (a path or a URI) and waits for the handler to return
func (l *Launcher) Open(target string) error {
	cmd, err := l.Command(target)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the process that opens target without starting it
func (l *Launcher) Command(target string) (*exec.Cmd, error) {
	switch l.goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", target), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", l.goos)
	}
}

// ObsidianURI builds the obsidian:// link for file inside the vault at
// vaultDir. The vault name is the folder name.
func ObsidianURI(vaultDir, file string) (string, error) {
	relPath, err := filepath.Rel(vaultDir, file)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if strings.HasPrefix(relPath, "..") {
		return "", fmt.Errorf("file is outside the vault: %s", file)
	}

	// Obsidian expects forward slashes in paths
	relPath = filepath.ToSlash(relPath)

	return fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		escape(filepath.Base(vaultDir)),
		escape(relPath),
	), nil
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
