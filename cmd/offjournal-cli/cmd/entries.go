package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"offjournal/internal/application/commands"
	"offjournal/internal/domain"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new entry",
	Long: `Create a new diary entry named after the current time and title.

Examples:
  offjournal-cli new "Trip to the coast"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewCreateEntryCommand(be.Entries, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if be.Index != nil {
			if err := indexEntry(result.Entry.ID); err != nil {
				return err
			}
		}
		fmt.Println(result.Message)
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Print an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := commands.NewGetEntryCommand(be.Entries, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(entry.Content)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List entries, newest first",
	Long: `List diary entries, newest first. An optional filter keeps the
entries whose title contains it, ignoring case.

Examples:
  offjournal-cli list
  offjournal-cli list coast`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := commands.NewListEntriesCommand(be.Entries).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(args) == 1 {
			entries = domain.FilterEntries(entries, args[0])
		}
		for _, e := range entries {
			fmt.Printf("%s %s\n", e.ID, e.Title)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Long: `Delete a diary entry.

Warning: This operation cannot be undone. Attachments stay in the media
folder until removed with "media rm".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteEntryCommand(be.Entries, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if be.Index != nil {
			if err := be.Index.Remove(result.DeletedID); err != nil {
				return err
			}
		}
		fmt.Println(result.Message)
		return nil
	},
}

var moodCmd = &cobra.Command{
	Use:   "mood <id>",
	Short: "Analyse the mood of an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewAnalyzeMoodCommand(be.Entries, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s (positive %d, negative %d)\n", report.Mood, report.PositiveScore, report.NegativeScore)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entry titles and content",
	Long: `Search entry titles and content through the sqlite index.

Examples:
  offjournal-cli search lighthouse`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if be.Index == nil {
			return fmt.Errorf("search index is disabled")
		}
		results, err := commands.NewSearchCommand(be.Index, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s %s\n", r.ID, r.Title)
		}
		return nil
	},
}

// indexEntry refreshes one entry in the search index
func indexEntry(id string) error {
	entry, err := be.Entries.Get(id)
	if err != nil {
		return err
	}
	return be.Index.Upsert(*entry)
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(searchCmd)
}
