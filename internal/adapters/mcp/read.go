package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"offjournal/internal/bridge"
	"offjournal/internal/domain"
)

// RegisterReadTools adds all read-only journal tools to the MCP server.
// Every tool goes through h, the same backend the TUI talks to.
func RegisterReadTools(s *server.MCPServer, h bridge.Handler) {
	s.AddTool(listEntriesTool(), listEntriesHandler(h))
	s.AddTool(readEntryTool(), readEntryHandler(h))
	s.AddTool(searchTool(), searchHandler(h))
	s.AddTool(moodTool(), moodHandler(h))
	s.AddTool(listEventsTool(), listEventsHandler(h))
}

// --- list_entries ---

func listEntriesTool() mcp.Tool {
	return mcp.NewTool("list_entries",
		mcp.WithDescription("List diary entries, newest first. Optionally filter by a case-insensitive title substring."),
		mcp.WithString("filter",
			mcp.Description("Title substring to filter by"),
		),
	)
}

func listEntriesHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := call[[]domain.EntrySummary](ctx, h, bridge.CmdEntriesList, nil)
		if err != nil {
			return toolError(err)
		}
		entries = domain.FilterEntries(entries, req.GetString("filter", ""))
		return formatList(entries, formatEntry)
	}
}

// --- read_entry ---

func readEntryTool() mcp.Tool {
	return mcp.NewTool("read_entry",
		mcp.WithDescription("Read the full markdown content of a diary entry."),
		mcp.WithString("id",
			mcp.Description("Entry ID (timestamp, e.g. 20250715100000)"),
			mcp.Required(),
		),
	)
}

func readEntryHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		content, err := call[string](ctx, h, bridge.CmdEntriesGetContent, bridge.IDPayload{ID: id})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(content), nil
	}
}

// --- search_entries ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_entries",
		mcp.WithDescription("Search entry titles and content. Returns matching entries with their IDs."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := call[[]domain.EntrySummary](ctx, h, bridge.CmdEntriesSearch, bridge.QueryPayload{Query: query})
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}
		return formatList(results, formatEntry)
	}
}

// --- analyze_mood ---

func moodTool() mcp.Tool {
	return mcp.NewTool("analyze_mood",
		mcp.WithDescription("Score the mood of an entry by counting positive and negative keywords."),
		mcp.WithString("id",
			mcp.Description("Entry ID"),
			mcp.Required(),
		),
	)
}

func moodHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		report, err := call[domain.MoodReport](ctx, h, bridge.CmdEntriesMood, bridge.IDPayload{ID: id})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (positive %d, negative %d)",
			report.Mood, report.PositiveScore, report.NegativeScore)), nil
	}
}

// --- list_events ---

func listEventsTool() mcp.Tool {
	return mcp.NewTool("list_events",
		mcp.WithDescription("List planner events ordered by date."),
	)
}

func listEventsHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		events, err := call[[]domain.Event](ctx, h, bridge.CmdPlannerList, nil)
		if err != nil {
			return toolError(err)
		}
		return formatList(events, formatEvent)
	}
}

// --- helpers ---

// call sends one request through h and decodes the success data into T
func call[T any](ctx context.Context, h bridge.Handler, command string, payload any) (T, error) {
	var v T
	req, err := bridge.NewRequest(command, payload, uuid.NewString())
	if err != nil {
		return v, err
	}

	resp := h.Handle(ctx, req)
	if !resp.OK() {
		return v, errors.New(resp.Message)
	}
	if err := json.Unmarshal(resp.Data, &v); err != nil {
		return v, fmt.Errorf("decoding %s response: %w", command, err)
	}
	return v, nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatList[T any](items []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(format(item))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatEntry(e domain.EntrySummary) string {
	return fmt.Sprintf("%s  %s", e.ID, e.Title)
}

func formatEvent(e domain.Event) string {
	return fmt.Sprintf("%d  %s  %s", e.ID, e.Date, e.Title)
}
