// Package backend assembles the journal stores and the bridge server
// from configuration. Every binary opens its backend through here.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"offjournal/internal/adapters/attachments"
	"offjournal/internal/adapters/filesystem"
	"offjournal/internal/adapters/sqlite"
	"offjournal/internal/application/commands"
	"offjournal/internal/bridge"
	"offjournal/internal/config"
)

// Backend is an opened set of stores
type Backend struct {
	Entries *filesystem.Repository
	Planner *filesystem.PlannerStore
	Media   *attachments.Store
	// Index is nil when the search index is disabled
	Index  *sqlite.Index
	Server *bridge.Server

	logger *slog.Logger
}

// Open creates the data directory, opens the stores and brings the search
// index in step with the entry files
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	b := &Backend{
		Entries: filesystem.NewRepository(cfg.DataDir),
		Planner: filesystem.NewPlannerStore(cfg.DataDir),
		Media:   attachments.New(cfg.DataDir),
		logger:  logger,
	}

	opts := []bridge.Option{bridge.WithLogger(logger)}
	if cfg.Index {
		idx := sqlite.NewIndex()
		if err := idx.Open(cfg.IndexPath()); err != nil {
			return nil, err
		}
		b.Index = idx
		if err := b.SyncIndex(ctx); err != nil {
			idx.Close()
			return nil, err
		}
		opts = append(opts, bridge.WithIndex(idx))
	}

	b.Server = bridge.NewServer(b.Entries, b.Planner, opts...)
	return b, nil
}

// SyncIndex rebuilds the search index from the entry files. Files edited
// outside the app are picked up here.
func (b *Backend) SyncIndex(ctx context.Context) error {
	if b.Index == nil {
		return errors.New("search index is disabled")
	}
	if b.Index.NeedsFullRebuild() {
		b.logger.Info("building search index")
	}

	stats, err := commands.NewSyncIndexCommand(b.Entries, b.Index).Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync search index: %w", err)
	}
	b.logger.Debug("search index synced",
		"indexed", stats.EntriesIndexed,
		"removed", stats.EntriesRemoved,
		"duration", stats.Duration)
	return nil
}

// Close releases the search index
func (b *Backend) Close() error {
	if b.Index == nil {
		return nil
	}
	return b.Index.Close()
}
