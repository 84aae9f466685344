package gpg

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"offjournal/internal/ports"
)

// Suffix is appended to encrypted files
const Suffix = ".gpg"

// Encryptor implements ports.Encryptor by shelling out to gpg
type Encryptor struct {
	binary string
}

var _ ports.Encryptor = (*Encryptor)(nil)

// New creates an encryptor using the gpg binary found on PATH
func New() *Encryptor {
	return &Encryptor{binary: "gpg"}
}

// IsAvailable reports whether the gpg binary can be found
func (e *Encryptor) IsAvailable() bool {
	_, err := exec.LookPath(e.binary)
	return err == nil
}

// Encrypt writes <path>.gpg encrypted for recipient
func (e *Encryptor) Encrypt(path, recipient string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("cannot encrypt %s: %w", path, err)
	}

	out := path + Suffix
	if err := e.run("--yes", "--output", out, "--encrypt", "--recipient", recipient, path); err != nil {
		return "", err
	}
	return out, nil
}

// Decrypt writes path without its .gpg suffix
func (e *Encryptor) Decrypt(path string) (string, error) {
	if !strings.HasSuffix(path, Suffix) {
		return "", fmt.Errorf("%s is not a %s file", path, Suffix)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("cannot decrypt %s: %w", path, err)
	}

	out := strings.TrimSuffix(path, Suffix)
	if err := e.run("--yes", "--output", out, "--decrypt", path); err != nil {
		return "", err
	}
	return out, nil
}

func (e *Encryptor) run(args ...string) error {
	cmd := exec.Command(e.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("gpg failed: %s", msg)
		}
		return fmt.Errorf("gpg failed: %w", err)
	}
	return nil
}
