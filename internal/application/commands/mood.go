package commands

import (
	"context"

	"offjournal/internal/application"
	"offjournal/internal/domain"
	"offjournal/internal/ports"
)

// AnalyzeMoodCommand classifies the sentiment of an entry
type AnalyzeMoodCommand struct {
	repo ports.EntryRepository
	ID   string
}

// NewAnalyzeMoodCommand creates a new AnalyzeMoodCommand
func NewAnalyzeMoodCommand(repo ports.EntryRepository, id string) *AnalyzeMoodCommand {
	return &AnalyzeMoodCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the analysis is valid
func (c *AnalyzeMoodCommand) Validate() error {
	return application.ValidateRequired("entryID", c.ID)
}

// Execute runs the mood analysis
func (c *AnalyzeMoodCommand) Execute(ctx context.Context) (*domain.MoodReport, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.repo.Get(c.ID)
	if err != nil {
		return nil, err
	}

	mood, pos, neg := domain.AnalyzeMood(entry.Content)
	return &domain.MoodReport{
		EntryID:       entry.ID,
		Filename:      entry.Filename,
		Mood:          mood,
		PositiveScore: pos,
		NegativeScore: neg,
	}, nil
}
