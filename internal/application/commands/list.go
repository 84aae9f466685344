package commands

import (
	"context"

	"offjournal/internal/domain"
	"offjournal/internal/ports"
)

// ListEntriesCommand lists all journal entries, newest first
type ListEntriesCommand struct {
	repo ports.EntryRepository
}

// NewListEntriesCommand creates a new ListEntriesCommand
func NewListEntriesCommand(repo ports.EntryRepository) *ListEntriesCommand {
	return &ListEntriesCommand{repo: repo}
}

// Execute runs the list entries command
func (c *ListEntriesCommand) Execute(ctx context.Context) ([]domain.EntrySummary, error) {
	entries, err := c.repo.List()
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.EntrySummary{}
	}
	return entries, nil
}

// ListEventsCommand lists planner events sorted by date
type ListEventsCommand struct {
	repo ports.PlannerRepository
}

// NewListEventsCommand creates a new ListEventsCommand
func NewListEventsCommand(repo ports.PlannerRepository) *ListEventsCommand {
	return &ListEventsCommand{repo: repo}
}

// Execute runs the list events command
func (c *ListEventsCommand) Execute(ctx context.Context) ([]domain.Event, error) {
	events, err := c.repo.List()
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.Event{}
	}
	domain.SortEvents(events)
	return events, nil
}
