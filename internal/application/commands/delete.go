package commands

import (
	"context"
	"fmt"

	"offjournal/internal/application"
	"offjournal/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID string
	Message   string
}

// DeleteEntryCommand deletes a journal entry by ID
type DeleteEntryCommand struct {
	repo ports.EntryRepository
	ID   string
}

// NewDeleteEntryCommand creates a new DeleteEntryCommand
func NewDeleteEntryCommand(repo ports.EntryRepository, id string) *DeleteEntryCommand {
	return &DeleteEntryCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteEntryCommand) Validate() error {
	return application.ValidateRequired("entryID", c.ID)
}

// Execute runs the delete command
func (c *DeleteEntryCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.Delete(c.ID); err != nil {
		return nil, fmt.Errorf("failed to delete entry %s: %w", c.ID, err)
	}

	return &DeleteResult{
		DeletedID: c.ID,
		Message:   "Entry deleted.",
	}, nil
}
