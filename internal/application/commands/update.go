package commands

import (
	"context"
	"fmt"

	"offjournal/internal/application"
	"offjournal/internal/ports"
)

// UpdateEntryResult contains the result of saving an entry
type UpdateEntryResult struct {
	ID      string
	Message string
}

// UpdateEntryCommand replaces the content of an entry
type UpdateEntryCommand struct {
	repo    ports.EntryRepository
	ID      string
	Content string
}

// NewUpdateEntryCommand creates a new UpdateEntryCommand
func NewUpdateEntryCommand(repo ports.EntryRepository, id, content string) *UpdateEntryCommand {
	return &UpdateEntryCommand{
		repo:    repo,
		ID:      id,
		Content: content,
	}
}

// Validate checks if the update operation is valid.
// Empty content is allowed; an entry may be cleared.
func (c *UpdateEntryCommand) Validate() error {
	return application.ValidateRequired("entryID", c.ID)
}

// Execute runs the update command
func (c *UpdateEntryCommand) Execute(ctx context.Context) (*UpdateEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.Update(c.ID, c.Content); err != nil {
		return nil, fmt.Errorf("failed to save entry %s: %w", c.ID, err)
	}

	return &UpdateEntryResult{
		ID:      c.ID,
		Message: "Entry saved.",
	}, nil
}
