package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"offjournal/internal/application/commands"
)

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage entry attachments",
	Long: `Attach files to entries, list and remove them.

Examples:
  offjournal-cli media add 20250715100000 ~/photos/pier.jpg
  offjournal-cli media list 20250715100000
  offjournal-cli media rm 20250715100000 pier.jpg`,
}

var mediaAddCmd = &cobra.Command{
	Use:   "add <entry-id> <file>",
	Short: "Attach a file to an entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := be.Entries.Path(args[0]); err != nil {
			return err
		}
		result, err := commands.NewAddMediaCommand(be.Media, args[0], args[1]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var mediaListCmd = &cobra.Command{
	Use:   "list <entry-id>",
	Short: "List the attachments of an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := commands.NewListMediaCommand(be.Media, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No attachments")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var mediaRemoveCmd = &cobra.Command{
	Use:     "rm <entry-id> <filename>",
	Aliases: []string{"remove"},
	Short:   "Remove an attachment",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRemoveMediaCommand(be.Media, args[0], args[1]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mediaCmd)
	mediaCmd.AddCommand(mediaAddCmd)
	mediaCmd.AddCommand(mediaListCmd)
	mediaCmd.AddCommand(mediaRemoveCmd)
}
