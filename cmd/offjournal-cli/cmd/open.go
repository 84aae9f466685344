package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"offjournal/internal/adapters/editor"
	"offjournal/internal/adapters/launcher"
)

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open an entry in $EDITOR or Obsidian",
	Long: `Open the file of an entry in $EDITOR (falling back to $VISUAL, nvim,
vim, vi and nano). With --obsidian the entries folder is treated as an
Obsidian vault and the entry opens there instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := be.Entries.Path(args[0])
		if err != nil {
			return err
		}

		if useObsidian, _ := cmd.Flags().GetBool("obsidian"); useObsidian {
			uri, err := launcher.ObsidianURI(be.Entries.Dir(), path)
			if err != nil {
				return err
			}
			return launcher.New().Open(uri)
		}

		if err := editor.NewOpener().OpenFile(path); err != nil {
			return err
		}
		// pick up what was written in the editor
		if be.Index != nil {
			return indexEntry(args[0])
		}
		return nil
	},
}

var mediaOpenCmd = &cobra.Command{
	Use:   "open <entry-id> <filename>",
	Short: "Open an attachment with the default application",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := be.Media.FilePath(args[0], args[1])
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("attachment not found: %s", args[1])
		}
		return launcher.New().Open(path)
	},
}

func init() {
	openCmd.Flags().Bool("obsidian", false, "open in Obsidian instead of $EDITOR")

	rootCmd.AddCommand(openCmd)
	mediaCmd.AddCommand(mediaOpenCmd)
}
