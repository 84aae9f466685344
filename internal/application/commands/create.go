package commands

import (
	"context"
	"fmt"
	"strings"

	"offjournal/internal/application"
	"offjournal/internal/domain"
	"offjournal/internal/ports"
)

// CreateEntryResult contains the result of creating an entry
type CreateEntryResult struct {
	Entry   *domain.EntrySummary
	Message string
}

// CreateEntryCommand creates a journal entry
type CreateEntryCommand struct {
	repo  ports.EntryRepository
	Title string
}

// NewCreateEntryCommand creates a new CreateEntryCommand
func NewCreateEntryCommand(repo ports.EntryRepository, title string) *CreateEntryCommand {
	return &CreateEntryCommand{
		repo:  repo,
		Title: title,
	}
}

// Validate checks if the create operation is valid
func (c *CreateEntryCommand) Validate() error {
	return application.ValidateRequired("title", c.Title)
}

// Execute runs the create entry command
func (c *CreateEntryCommand) Execute(ctx context.Context) (*CreateEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.repo.Create(strings.TrimSpace(c.Title))
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &CreateEntryResult{
		Entry:   entry,
		Message: fmt.Sprintf("Created entry: %s %s", entry.ID, entry.Title),
	}, nil
}
