package commands

import (
	"context"

	"offjournal/internal/application"
	"offjournal/internal/domain"
	"offjournal/internal/ports"
)

// GetEntryCommand reads a single entry with its content
type GetEntryCommand struct {
	repo ports.EntryRepository
	ID   string
}

// NewGetEntryCommand creates a new GetEntryCommand
func NewGetEntryCommand(repo ports.EntryRepository, id string) *GetEntryCommand {
	return &GetEntryCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the read operation is valid
func (c *GetEntryCommand) Validate() error {
	return application.ValidateRequired("entryID", c.ID)
}

// Execute runs the read command
func (c *GetEntryCommand) Execute(ctx context.Context) (*domain.Entry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.repo.Get(c.ID)
}
