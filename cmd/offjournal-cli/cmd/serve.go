package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"offjournal/internal/bridge"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Maintain the search index",
}

var indexSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the search index from the entry files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := be.SyncIndex(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Index synced.")
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the backend over stdio",
	Long: `Read one JSON request envelope per line from stdin and write one
response envelope per line to stdout, until stdin closes.

The TUI starts this when the backend config key is set, e.g.
  backend: offjournal-cli serve`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("serving bridge on stdio")
		return bridge.Serve(cmd.Context(), be.Server, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexSyncCmd)
	rootCmd.AddCommand(serveCmd)
}
