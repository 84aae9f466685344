package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"offjournal/internal/adapters/editor"
	"offjournal/internal/adapters/filesystem"
	"offjournal/internal/adapters/tui"
	"offjournal/internal/backend"
	"offjournal/internal/bridge"
	"offjournal/internal/config"
	"offjournal/internal/frontend"
	"offjournal/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// transport is a bridge the host has to shut down
type transport interface {
	frontend.Bridge
	io.Closer
}

func run() error {
	cfg, err := config.Load(config.New())
	if err != nil {
		return err
	}

	// the TUI owns the terminal, log to the file only
	logger, closer, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	policy, err := frontend.ParseSavePolicy(cfg.SavePolicy)
	if err != nil {
		return err
	}
	correlation, err := frontend.ParseCorrelationMode(cfg.Correlation)
	if err != nil {
		return err
	}

	mb := tui.NewMailbox()

	var (
		conn      transport
		entryPath func(id string) (string, error)
	)
	if cfg.Backend == "" {
		be, err := backend.Open(context.Background(), cfg, logger)
		if err != nil {
			return err
		}
		defer be.Close()

		conn = bridge.NewLocal(be.Server, mb.Deliver, logger)
		entryPath = be.Entries.Path
	} else {
		conn, err = startBackend(cfg.Backend, mb.Deliver, logger)
		if err != nil {
			return err
		}
		entryPath = filesystem.NewRepository(cfg.DataDir).Path
	}

	app := tui.NewApp(conn, mb, tui.Options{
		Frontend: frontend.Options{
			SaveDelay:   cfg.SaveDelay,
			StatusTTL:   cfg.StatusTTL,
			SavePolicy:  policy,
			Correlation: correlation,
			Logger:      logger,
		},
		EntryPath: entryPath,
		Editor:    editor.NewOpener(),
	})

	logger.Info("starting", "data_dir", cfg.DataDir, "backend", cfg.Backend)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, runErr := p.Run()

	// drop late responses, then let the bridge finish queued saves
	mb.Close()
	if err := conn.Close(); err != nil {
		logger.Warn("closing bridge", "error", err)
	}
	return runErr
}

// processBridge talks to a backend child process over its stdio
type processBridge struct {
	*bridge.Client
	cmd *exec.Cmd
}

func (p *processBridge) Close() error {
	err := p.Client.Close()
	if waitErr := p.cmd.Wait(); err == nil {
		err = waitErr
	}
	return err
}

// startBackend runs command (e.g. "offjournal-cli serve") and connects to it
func startBackend(command string, deliver func([]byte), logger *slog.Logger) (*processBridge, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty backend command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start backend %q: %w", command, err)
	}

	return &processBridge{
		Client: bridge.NewClient(stdin, stdout, deliver, logger),
		cmd:    cmd,
	}, nil
}
