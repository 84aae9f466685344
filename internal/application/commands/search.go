package commands

import (
	"context"
	"fmt"
	"strings"

	"offjournal/internal/domain"
	"offjournal/internal/ports"
)

// MinQueryLen is the shortest query sent to the index
const MinQueryLen = 2

// SearchCommand searches entry titles and content through the index
type SearchCommand struct {
	index ports.EntryIndex
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(index ports.EntryIndex, query string) *SearchCommand {
	return &SearchCommand{
		index: index,
		Query: strings.TrimSpace(query),
	}
}

// Execute runs the search command. Queries shorter than MinQueryLen return nothing.
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.EntrySummary, error) {
	if len([]rune(c.Query)) < MinQueryLen {
		return []domain.EntrySummary{}, nil
	}

	results, err := c.index.Search(c.Query)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.EntrySummary{}
	}
	return results, nil
}

// SyncIndexCommand rebuilds the search index from the entry repository
type SyncIndexCommand struct {
	repo  ports.EntryRepository
	index ports.EntryIndex
}

// NewSyncIndexCommand creates a new SyncIndexCommand
func NewSyncIndexCommand(repo ports.EntryRepository, index ports.EntryIndex) *SyncIndexCommand {
	return &SyncIndexCommand{
		repo:  repo,
		index: index,
	}
}

// Execute reads every entry and replaces the index contents
func (c *SyncIndexCommand) Execute(ctx context.Context) (*domain.SyncStats, error) {
	summaries, err := c.repo.List()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(summaries))
	for _, s := range summaries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, err := c.repo.Get(s.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to read entry %s: %w", s.ID, err)
		}
		entries = append(entries, *e)
	}

	return c.index.SyncFull(entries)
}
