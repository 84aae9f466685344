package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"offjournal/internal/backend"
	"offjournal/internal/config"
	"offjournal/internal/logging"
)

var (
	v       = config.New()
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
	be     *backend.Backend
)

var rootCmd = &cobra.Command{
	Use:   "offjournal-cli",
	Short: "CLI for the offline diary and planner",
	Long: `offjournal-cli manages the diary entries and planner events that the
offjournal TUI edits.

It provides commands to create, read, list, search, export, encrypt and
delete entries, to manage entry attachments and planner events, and to
serve the backend over stdio for a separate front-end process.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("data-dir", config.DefaultDataDir, "journal data directory")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("no-index", false, "disable the sqlite search index")
	flags.BoolVar(&verbose, "verbose", false, "also log to stderr")

	bindFlag(v, config.KeyDataDir, "data-dir")
	bindFlag(v, config.KeyLogLevel, "log-level")
}

func bindFlag(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	var err error
	if noIndex, _ := cmd.Root().PersistentFlags().GetBool("no-index"); noIndex {
		v.Set(config.KeyIndex, false)
	}

	cfg, err = config.Load(v)
	if err != nil {
		return err
	}

	logger, closer, err = logging.New(logging.Options{
		File:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Stderr: verbose,
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	be, err = backend.Open(ctx, cfg, logger)
	return err
}

func teardown() error {
	var err error
	if be != nil {
		err = be.Close()
	}
	if closer != nil {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
