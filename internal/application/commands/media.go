package commands

import (
	"context"
	"fmt"

	"offjournal/internal/application"
	"offjournal/internal/ports"
)

// MediaResult contains the result of an attachment operation
type MediaResult struct {
	EntryID  string
	Filename string
	Message  string
}

// AddMediaCommand attaches a file to an entry
type AddMediaCommand struct {
	store   ports.MediaStore
	EntryID string
	SrcPath string
}

// NewAddMediaCommand creates a new AddMediaCommand
func NewAddMediaCommand(store ports.MediaStore, entryID, srcPath string) *AddMediaCommand {
	return &AddMediaCommand{
		store:   store,
		EntryID: entryID,
		SrcPath: srcPath,
	}
}

// Validate checks if the attach operation is valid
func (c *AddMediaCommand) Validate() error {
	if err := application.ValidateRequired("entryID", c.EntryID); err != nil {
		return err
	}
	return application.ValidateRequired("srcPath", c.SrcPath)
}

// Execute runs the attach command
func (c *AddMediaCommand) Execute(ctx context.Context) (*MediaResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name, err := c.store.Add(c.EntryID, c.SrcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to attach %s: %w", c.SrcPath, err)
	}

	return &MediaResult{
		EntryID:  c.EntryID,
		Filename: name,
		Message:  fmt.Sprintf("Attached %s to %s", name, c.EntryID),
	}, nil
}

// ListMediaCommand lists the attachments of an entry
type ListMediaCommand struct {
	store   ports.MediaStore
	EntryID string
}

// NewListMediaCommand creates a new ListMediaCommand
func NewListMediaCommand(store ports.MediaStore, entryID string) *ListMediaCommand {
	return &ListMediaCommand{
		store:   store,
		EntryID: entryID,
	}
}

// Execute runs the list command
func (c *ListMediaCommand) Execute(ctx context.Context) ([]string, error) {
	if err := application.ValidateRequired("entryID", c.EntryID); err != nil {
		return nil, err
	}
	names, err := c.store.List(c.EntryID)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// RemoveMediaCommand deletes an attachment
type RemoveMediaCommand struct {
	store    ports.MediaStore
	EntryID  string
	Filename string
}

// NewRemoveMediaCommand creates a new RemoveMediaCommand
func NewRemoveMediaCommand(store ports.MediaStore, entryID, filename string) *RemoveMediaCommand {
	return &RemoveMediaCommand{
		store:    store,
		EntryID:  entryID,
		Filename: filename,
	}
}

// Validate checks if the remove operation is valid
func (c *RemoveMediaCommand) Validate() error {
	if err := application.ValidateRequired("entryID", c.EntryID); err != nil {
		return err
	}
	return application.ValidateRequired("filename", c.Filename)
}

// Execute runs the remove command
func (c *RemoveMediaCommand) Execute(ctx context.Context) (*MediaResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Remove(c.EntryID, c.Filename); err != nil {
		return nil, err
	}

	return &MediaResult{
		EntryID:  c.EntryID,
		Filename: c.Filename,
		Message:  fmt.Sprintf("Removed %s from %s", c.Filename, c.EntryID),
	}, nil
}
