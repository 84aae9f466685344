package commands

import (
	"context"
	"fmt"
	"strings"

	"offjournal/internal/application"
	"offjournal/internal/ports"
)

// CryptoResult contains the output file of an encrypt or decrypt run
type CryptoResult struct {
	OutPath string
	Message string
}

// EncryptEntryCommand encrypts the file backing an entry
type EncryptEntryCommand struct {
	repo      ports.EntryRepository
	enc       ports.Encryptor
	ID        string
	Recipient string
}

// NewEncryptEntryCommand creates a new EncryptEntryCommand
func NewEncryptEntryCommand(repo ports.EntryRepository, enc ports.Encryptor, id, recipient string) *EncryptEntryCommand {
	return &EncryptEntryCommand{
		repo:      repo,
		enc:       enc,
		ID:        id,
		Recipient: recipient,
	}
}

// Validate checks if the encryption is valid
func (c *EncryptEntryCommand) Validate() error {
	if err := application.ValidateRequired("entryID", c.ID); err != nil {
		return err
	}
	return application.ValidateRequired("recipient", c.Recipient)
}

// Execute runs the encrypt command
func (c *EncryptEntryCommand) Execute(ctx context.Context) (*CryptoResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !c.enc.IsAvailable() {
		return nil, fmt.Errorf("gpg: %w", application.ErrUnavailable)
	}

	path, err := c.repo.Path(c.ID)
	if err != nil {
		return nil, err
	}

	out, err := c.enc.Encrypt(path, c.Recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt %s: %w", c.ID, err)
	}

	return &CryptoResult{
		OutPath: out,
		Message: fmt.Sprintf("Encrypted to %s", out),
	}, nil
}

// DecryptFileCommand decrypts a .gpg file next to itself
type DecryptFileCommand struct {
	enc  ports.Encryptor
	Path string
}

// NewDecryptFileCommand creates a new DecryptFileCommand
func NewDecryptFileCommand(enc ports.Encryptor, path string) *DecryptFileCommand {
	return &DecryptFileCommand{
		enc:  enc,
		Path: path,
	}
}

// Validate checks if the decryption is valid
func (c *DecryptFileCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	if !strings.HasSuffix(c.Path, ".gpg") {
		return &application.ValidationError{
			Field:   "path",
			Message: "file must end in .gpg",
		}
	}
	return nil
}

// Execute runs the decrypt command
func (c *DecryptFileCommand) Execute(ctx context.Context) (*CryptoResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !c.enc.IsAvailable() {
		return nil, fmt.Errorf("gpg: %w", application.ErrUnavailable)
	}

	out, err := c.enc.Decrypt(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt %s: %w", c.Path, err)
	}

	return &CryptoResult{
		OutPath: out,
		Message: fmt.Sprintf("Decrypted to %s", out),
	}, nil
}
