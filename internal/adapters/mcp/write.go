package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"offjournal/internal/bridge"
	"offjournal/internal/domain"
)

// mutation mirrors bridge.Result with typed data
type mutation[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// RegisterWriteTools adds all journal mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, h bridge.Handler) {
	s.AddTool(createEntryTool(), createEntryHandler(h))
	s.AddTool(updateEntryTool(), updateEntryHandler(h))
	s.AddTool(deleteEntryTool(), deleteEntryHandler(h))
	s.AddTool(addEventTool(), addEventHandler(h))
	s.AddTool(updateEventTool(), updateEventHandler(h))
	s.AddTool(deleteEventTool(), deleteEventHandler(h))
}

// --- create_entry ---

func createEntryTool() mcp.Tool {
	return mcp.NewTool("create_entry",
		mcp.WithDescription("Create a new diary entry. The file starts with a heading and the creation time."),
		mcp.WithString("title",
			mcp.Description("Entry title"),
			mcp.Required(),
		),
	)
}

func createEntryHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := req.GetString("title", "")

		res, err := call[mutation[domain.EntrySummary]](ctx, h, bridge.CmdEntriesCreate, bridge.TitlePayload{Title: title})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Created entry: %s %s", res.Data.ID, res.Data.Title)), nil
	}
}

// --- update_entry ---

func updateEntryTool() mcp.Tool {
	return mcp.NewTool("update_entry",
		mcp.WithDescription("Replace the content of a diary entry."),
		mcp.WithString("id",
			mcp.Description("Entry ID"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("New markdown content (replaces the whole file)"),
			mcp.Required(),
		),
	)
}

func updateEntryHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payload := bridge.UpdatePayload{
			ID:      req.GetString("id", ""),
			Content: req.GetString("content", ""),
		}

		res, err := call[mutation[any]](ctx, h, bridge.CmdEntriesUpdate, payload)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}

// --- delete_entry ---

func deleteEntryTool() mcp.Tool {
	return mcp.NewTool("delete_entry",
		mcp.WithDescription("Delete a diary entry by its ID."),
		mcp.WithString("id",
			mcp.Description("Entry ID"),
			mcp.Required(),
		),
	)
}

func deleteEntryHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		res, err := call[mutation[any]](ctx, h, bridge.CmdEntriesDelete, bridge.IDPayload{ID: id})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}

// --- add_event ---

func addEventTool() mcp.Tool {
	return mcp.NewTool("add_event",
		mcp.WithDescription("Add an event to the planner."),
		mcp.WithString("date",
			mcp.Description("Event date, YYYY-MM-DD"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Event title"),
			mcp.Required(),
		),
	)
}

func addEventHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payload := bridge.EventPayload{
			Date:  req.GetString("date", ""),
			Title: req.GetString("title", ""),
		}

		res, err := call[mutation[domain.Event]](ctx, h, bridge.CmdPlannerAdd, payload)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Added event %d: %s %s", res.Data.ID, res.Data.Date, res.Data.Title)), nil
	}
}

// --- update_event ---

func updateEventTool() mcp.Tool {
	return mcp.NewTool("update_event",
		mcp.WithDescription("Change the date and/or title of a planner event. Omitted fields keep their value."),
		mcp.WithNumber("id",
			mcp.Description("Event ID"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("New date, YYYY-MM-DD"),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
	)
}

func updateEventHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payload := bridge.EventUpdatePayload{
			ID:    req.GetInt("id", 0),
			Date:  req.GetString("date", ""),
			Title: req.GetString("title", ""),
		}

		res, err := call[mutation[any]](ctx, h, bridge.CmdPlannerUpdate, payload)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}

// --- delete_event ---

func deleteEventTool() mcp.Tool {
	return mcp.NewTool("delete_event",
		mcp.WithDescription("Delete a planner event by its ID."),
		mcp.WithNumber("id",
			mcp.Description("Event ID"),
			mcp.Required(),
		),
	)
}

func deleteEventHandler(h bridge.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetInt("id", 0)

		res, err := call[mutation[any]](ctx, h, bridge.CmdPlannerDelete, bridge.EventIDPayload{ID: id})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}
