package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"offjournal/internal/application"
	"offjournal/internal/ports"
)

// Supported export formats
const (
	FormatTxt  = "txt"
	FormatMd   = "md"
	FormatJSON = "json"
)

// ExportResult contains the result of an export
type ExportResult struct {
	OutPath string
	Message string
}

// exportDocument is the json export wrapper
type exportDocument struct {
	SourceFilename string `json:"source_filename"`
	ExportFormat   string `json:"export_format"`
	Content        string `json:"content"`
}

// ExportEntryCommand writes an entry to a file in another format
type ExportEntryCommand struct {
	repo    ports.EntryRepository
	ID      string
	Format  string
	OutPath string
}

// NewExportEntryCommand creates a new ExportEntryCommand
func NewExportEntryCommand(repo ports.EntryRepository, id, format, outPath string) *ExportEntryCommand {
	return &ExportEntryCommand{
		repo:    repo,
		ID:      id,
		Format:  strings.ToLower(strings.TrimSpace(format)),
		OutPath: outPath,
	}
}

// Validate checks if the export is valid
func (c *ExportEntryCommand) Validate() error {
	if err := application.ValidateRequired("entryID", c.ID); err != nil {
		return err
	}
	if err := application.ValidateRequired("outPath", c.OutPath); err != nil {
		return err
	}
	switch c.Format {
	case FormatTxt, FormatMd, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q (use txt, md or json)", application.ErrUnsupportedFmt, c.Format)
	}
}

// Execute runs the export command
func (c *ExportEntryCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.repo.Get(c.ID)
	if err != nil {
		return nil, err
	}

	data := []byte(entry.Content)
	if c.Format == FormatJSON {
		data, err = json.MarshalIndent(exportDocument{
			SourceFilename: entry.Filename,
			ExportFormat:   FormatJSON,
			Content:        entry.Content,
		}, "", "  ")
		if err != nil {
			return nil, err
		}
	}

	if dir := filepath.Dir(c.OutPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(c.OutPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write export: %w", err)
	}

	return &ExportResult{
		OutPath: c.OutPath,
		Message: fmt.Sprintf("Exported %s to %s", entry.Filename, c.OutPath),
	}, nil
}

// ExportCalendarCommand encodes the planner as an iCalendar stream
type ExportCalendarCommand struct {
	repo    ports.PlannerRepository
	encoder ports.CalendarEncoder
}

// NewExportCalendarCommand creates a new ExportCalendarCommand
func NewExportCalendarCommand(repo ports.PlannerRepository, encoder ports.CalendarEncoder) *ExportCalendarCommand {
	return &ExportCalendarCommand{
		repo:    repo,
		encoder: encoder,
	}
}

// Execute writes every planner event to w
func (c *ExportCalendarCommand) Execute(ctx context.Context, w io.Writer) (int, error) {
	events, err := NewListEventsCommand(c.repo).Execute(ctx)
	if err != nil {
		return 0, err
	}
	if err := c.encoder.Encode(w, events); err != nil {
		return 0, fmt.Errorf("failed to encode calendar: %w", err)
	}
	return len(events), nil
}
