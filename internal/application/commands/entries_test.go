package commands

import (
	"context"
	"errors"
	"testing"

	"offjournal/internal/application"
	"offjournal/internal/domain"
)

func TestCreateEntryCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
		errMsg  string
	}{
		{name: "valid title", title: "My Trip"},
		{name: "empty title", title: "", wantErr: true, errMsg: "title is required"},
		{name: "blank title", title: "   ", wantErr: true, errMsg: "title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateEntryCommand{Title: tt.title}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateEntryCommand_Execute(t *testing.T) {
	repo := newMemEntries()
	cmd := NewCreateEntryCommand(repo, "  My Trip  ")

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Entry.Title != "My Trip" {
		t.Errorf("title = %q, want %q", result.Entry.Title, "My Trip")
	}
	if !contains(result.Message, result.Entry.ID) {
		t.Errorf("message %q does not name id %s", result.Message, result.Entry.ID)
	}
	if _, err := repo.Get(result.Entry.ID); err != nil {
		t.Errorf("created entry not stored: %v", err)
	}
}

func TestEntryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newMemEntries()

	created, err := NewCreateEntryCommand(repo, "Groceries").Execute(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.Entry.ID

	list, err := NewListEntriesCommand(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != id {
		t.Fatalf("list = %+v, want one entry %s", list, id)
	}

	if _, err := NewUpdateEntryCommand(repo, id, "milk, eggs").Execute(ctx); err != nil {
		t.Fatalf("update: %v", err)
	}

	entry, err := NewGetEntryCommand(repo, id).Execute(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entry.Content != "milk, eggs" {
		t.Errorf("content = %q, want %q", entry.Content, "milk, eggs")
	}

	if _, err := NewDeleteEntryCommand(repo, id).Execute(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = NewGetEntryCommand(repo, id).Execute(ctx)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("get after delete: expected ErrNotFound, got %v", err)
	}
}

func TestListEntriesCommand_EmptyIsNotNil(t *testing.T) {
	list, err := NewListEntriesCommand(newMemEntries()).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestUpdateEntryCommand_AllowsEmptyContent(t *testing.T) {
	repo := newMemEntries(domain.Entry{
		EntrySummary: domain.EntrySummary{ID: "20250715100000", Title: "A", Filename: "20250715100000_A.md"},
		Content:      "text",
	})

	if _, err := NewUpdateEntryCommand(repo, "20250715100000", "").Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, _ := repo.Get("20250715100000")
	if e.Content != "" {
		t.Errorf("content = %q, want empty", e.Content)
	}
}

func TestEntryCommands_RequireID(t *testing.T) {
	repo := newMemEntries()
	ctx := context.Background()

	checks := map[string]error{}
	_, checks["get"] = NewGetEntryCommand(repo, "").Execute(ctx)
	_, checks["update"] = NewUpdateEntryCommand(repo, " ", "x").Execute(ctx)
	_, checks["delete"] = NewDeleteEntryCommand(repo, "").Execute(ctx)
	_, checks["mood"] = NewAnalyzeMoodCommand(repo, "").Execute(ctx)

	for name, err := range checks {
		var ve *application.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %v", name, err)
			continue
		}
		if !contains(ve.Message, "entry ID is required") {
			t.Errorf("%s: message = %q", name, ve.Message)
		}
	}
}

func TestAnalyzeMoodCommand(t *testing.T) {
	repo := newMemEntries(
		domain.Entry{
			EntrySummary: domain.EntrySummary{ID: "1", Filename: "1_Good.md"},
			Content:      "A happy day, so much joy. Happy again!",
		},
		domain.Entry{
			EntrySummary: domain.EntrySummary{ID: "2", Filename: "2_Bad.md"},
			Content:      "Sad and angry.",
		},
		domain.Entry{
			EntrySummary: domain.EntrySummary{ID: "3", Filename: "3_Plain.md"},
			Content:      "Went to the store.",
		},
	)

	tests := []struct {
		id       string
		wantMood domain.Mood
		wantPos  int
		wantNeg  int
	}{
		{id: "1", wantMood: domain.MoodPositive, wantPos: 2, wantNeg: 0},
		{id: "2", wantMood: domain.MoodNegative, wantPos: 0, wantNeg: 2},
		{id: "3", wantMood: domain.MoodNeutral, wantPos: 0, wantNeg: 0},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			report, err := NewAnalyzeMoodCommand(repo, tt.id).Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if report.Mood != tt.wantMood || report.PositiveScore != tt.wantPos || report.NegativeScore != tt.wantNeg {
				t.Errorf("report = %+v, want %s (+%d/-%d)", report, tt.wantMood, tt.wantPos, tt.wantNeg)
			}
			if report.EntryID != tt.id {
				t.Errorf("entry id = %q, want %q", report.EntryID, tt.id)
			}
		})
	}
}
