package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "offjournal/internal/adapters/mcp"
	"offjournal/internal/backend"
	"offjournal/internal/config"
	"offjournal/internal/logging"
)

func main() {
	v := config.New()
	dataDir := flag.String("data-dir", "", "journal data directory (overrides config)")
	flag.Parse()
	if *dataDir != "" {
		v.Set(config.KeyDataDir, *dataDir)
	}

	cfg, err := config.Load(v)
	if err != nil {
		log.Fatalf("offjournal-mcp: %v", err)
	}
	// stdout carries the protocol, log to the file only
	logger, closer, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("offjournal-mcp: %v", err)
	}
	defer closer.Close()

	be, err := backend.Open(context.Background(), cfg, logger.With("component", "mcp"))
	if err != nil {
		log.Fatalf("offjournal-mcp: %v", err)
	}
	defer be.Close()

	mcpServer := server.NewMCPServer(
		"offjournal-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, be.Server)
	mcpadapter.RegisterWriteTools(mcpServer, be.Server)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("serve", "error", err)
		log.Printf("offjournal-mcp: %v", err)
	}
}
