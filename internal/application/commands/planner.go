package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"offjournal/internal/application"
	"offjournal/internal/domain"
	"offjournal/internal/ports"
)

// AddEventResult contains the result of adding a planner event
type AddEventResult struct {
	Event   *domain.Event
	Message string
}

// AddEventCommand adds an event to the planner
type AddEventCommand struct {
	repo  ports.PlannerRepository
	Date  string
	Title string
}

// NewAddEventCommand creates a new AddEventCommand
func NewAddEventCommand(repo ports.PlannerRepository, date, title string) *AddEventCommand {
	return &AddEventCommand{
		repo:  repo,
		Date:  strings.TrimSpace(date),
		Title: title,
	}
}

// Validate checks if the add operation is valid
func (c *AddEventCommand) Validate() error {
	if err := application.ValidateRequired("date", c.Date); err != nil {
		return err
	}
	if err := application.ValidateDate("date", c.Date); err != nil {
		return err
	}
	return application.ValidateRequired("title", c.Title)
}

// Execute runs the add event command
func (c *AddEventCommand) Execute(ctx context.Context) (*AddEventResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ev, err := c.repo.Add(c.Date, strings.TrimSpace(c.Title))
	if err != nil {
		return nil, fmt.Errorf("failed to add event: %w", err)
	}

	return &AddEventResult{
		Event:   ev,
		Message: fmt.Sprintf("Event added: %s %s", ev.Date, ev.Title),
	}, nil
}

// UpdateEventResult contains the result of editing a planner event
type UpdateEventResult struct {
	Event   domain.Event
	Message string
}

// UpdateEventCommand edits the date and/or title of an event.
// Empty fields keep their current value.
type UpdateEventCommand struct {
	repo  ports.PlannerRepository
	ID    int
	Date  string
	Title string
}

// NewUpdateEventCommand creates a new UpdateEventCommand
func NewUpdateEventCommand(repo ports.PlannerRepository, id int, date, title string) *UpdateEventCommand {
	return &UpdateEventCommand{
		repo:  repo,
		ID:    id,
		Date:  strings.TrimSpace(date),
		Title: strings.TrimSpace(title),
	}
}

// Validate checks if the update operation is valid
func (c *UpdateEventCommand) Validate() error {
	if err := application.ValidateEventID(c.ID); err != nil {
		return err
	}
	if c.Date == "" && c.Title == "" {
		return &application.ValidationError{
			Field:   "event",
			Message: "nothing to update, give a date or a title",
		}
	}
	if c.Date != "" {
		return application.ValidateDate("date", c.Date)
	}
	return nil
}

// Execute runs the update event command
func (c *UpdateEventCommand) Execute(ctx context.Context) (*UpdateEventResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	events, err := c.repo.List()
	if err != nil {
		return nil, err
	}

	var current *domain.Event
	for i := range events {
		if events[i].ID == c.ID {
			current = &events[i]
			break
		}
	}
	if current == nil {
		return nil, &application.NotFoundError{Kind: "event", ID: strconv.Itoa(c.ID)}
	}

	updated := *current
	if c.Date != "" {
		updated.Date = c.Date
	}
	if c.Title != "" {
		updated.Title = c.Title
	}

	if err := c.repo.Update(updated.ID, updated.Date, updated.Title); err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", c.ID, err)
	}

	return &UpdateEventResult{
		Event:   updated,
		Message: fmt.Sprintf("Event %d updated.", c.ID),
	}, nil
}

// DeleteEventCommand removes an event from the planner
type DeleteEventCommand struct {
	repo ports.PlannerRepository
	ID   int
}

// NewDeleteEventCommand creates a new DeleteEventCommand
func NewDeleteEventCommand(repo ports.PlannerRepository, id int) *DeleteEventCommand {
	return &DeleteEventCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteEventCommand) Validate() error {
	return application.ValidateEventID(c.ID)
}

// Execute runs the delete event command
func (c *DeleteEventCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.Delete(c.ID); err != nil {
		return nil, fmt.Errorf("failed to delete event %d: %w", c.ID, err)
	}

	return &DeleteResult{
		DeletedID: strconv.Itoa(c.ID),
		Message:   "Event deleted.",
	}, nil
}
