package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offjournal/internal/adapters/filesystem"
	"offjournal/internal/bridge"
)

func newTestHandler(t *testing.T) (bridge.Handler, *filesystem.Repository) {
	t.Helper()
	dir := t.TempDir()
	clock := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	repo := filesystem.NewRepository(dir).WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})
	return bridge.NewServer(repo, filesystem.NewPlannerStore(dir)), repo
}

func invoke(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text, res.IsError
}

func TestTools_EntryLifecycle(t *testing.T) {
	h, repo := newTestHandler(t)

	out, isErr := invoke(t, createEntryHandler(h), map[string]any{"title": "Beach day"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Created entry: 20250715100100 Beach day")

	out, isErr = invoke(t, listEntriesHandler(h), map[string]any{"filter": "beach"})
	require.False(t, isErr, out)
	assert.Equal(t, "20250715100100  Beach day\n", out)

	out, isErr = invoke(t, updateEntryHandler(h), map[string]any{"id": "20250715100100", "content": "a happy day"})
	require.False(t, isErr, out)
	assert.Equal(t, "Entry saved.", out)

	entry, err := repo.Get("20250715100100")
	require.NoError(t, err)
	assert.Equal(t, "a happy day", entry.Content)

	out, isErr = invoke(t, moodHandler(h), map[string]any{"id": "20250715100100"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Positive")

	out, isErr = invoke(t, readEntryHandler(h), map[string]any{"id": "20250715100100"})
	require.False(t, isErr, out)
	assert.Equal(t, "a happy day", out)

	out, isErr = invoke(t, deleteEntryHandler(h), map[string]any{"id": "20250715100100"})
	require.False(t, isErr, out)

	out, isErr = invoke(t, listEntriesHandler(h), nil)
	require.False(t, isErr, out)
	assert.Equal(t, "No results.", out)
}

func TestTools_Events(t *testing.T) {
	h, _ := newTestHandler(t)

	out, isErr := invoke(t, addEventHandler(h), map[string]any{"date": "2025-08-01", "title": "Dentist"})
	require.False(t, isErr, out)
	assert.Equal(t, "Added event 1: 2025-08-01 Dentist", out)

	out, isErr = invoke(t, updateEventHandler(h), map[string]any{"id": float64(1), "title": "Dentist 9am"})
	require.False(t, isErr, out)

	out, isErr = invoke(t, listEventsHandler(h), nil)
	require.False(t, isErr, out)
	assert.Equal(t, "1  2025-08-01  Dentist 9am\n", out)

	out, isErr = invoke(t, deleteEventHandler(h), map[string]any{"id": float64(1)})
	require.False(t, isErr, out)
	assert.Equal(t, "Event deleted.", out)
}

func TestTools_Errors(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name    string
		handler server.ToolHandlerFunc
		args    map[string]any
	}{
		{name: "read without id", handler: readEntryHandler(h), args: nil},
		{name: "read unknown", handler: readEntryHandler(h), args: map[string]any{"id": "19990101000000"}},
		{name: "blank title", handler: createEntryHandler(h), args: map[string]any{"title": "  "}},
		{name: "bad date", handler: addEventHandler(h), args: map[string]any{"date": "tomorrow", "title": "x"}},
		{name: "unknown event", handler: deleteEventHandler(h), args: map[string]any{"id": float64(42)}},
		{name: "search without index", handler: searchHandler(h), args: map[string]any{"query": "day"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, isErr := invoke(t, tt.handler, tt.args)
			assert.True(t, isErr, "expected tool error, got %q", out)
		})
	}
}
