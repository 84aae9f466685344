package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"offjournal/internal/adapters/calendar"
	"offjournal/internal/application/commands"
)

var plannerCmd = &cobra.Command{
	Use:   "planner",
	Short: "Manage planner events",
	Long: `List, add, update and delete planner events, or export them as an
iCalendar file.

Examples:
  offjournal-cli planner add 2025-08-01 "Dentist"
  offjournal-cli planner update 3 --date 2025-08-02
  offjournal-cli planner ics > planner.ics`,
}

var plannerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events by date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := commands.NewListEventsCommand(be.Planner).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, ev := range events {
			fmt.Printf("%d %s %s\n", ev.ID, ev.Date, ev.Title)
		}
		return nil
	},
}

var plannerAddCmd = &cobra.Command{
	Use:   "add <YYYY-MM-DD> <title>",
	Short: "Add an event",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddEventCommand(be.Planner, args[0], args[1]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var plannerUpdateCmd = &cobra.Command{
	Use:   "update <event-id>",
	Short: "Change the date or title of an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEventID(args[0])
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		title, _ := cmd.Flags().GetString("title")

		result, err := commands.NewUpdateEventCommand(be.Planner, id, date, title).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var plannerDeleteCmd = &cobra.Command{
	Use:     "del <event-id>",
	Aliases: []string{"delete"},
	Short:   "Delete an event",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEventID(args[0])
		if err != nil {
			return err
		}
		result, err := commands.NewDeleteEventCommand(be.Planner, id).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var plannerICSCmd = &cobra.Command{
	Use:   "ics [out-path]",
	Short: "Export events as iCalendar",
	Long: `Export every planner event as an all-day VEVENT. Writes to stdout
unless an output path is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
		}

		n, err := commands.NewExportCalendarCommand(be.Planner, calendar.NewEncoder()).Execute(cmd.Context(), out)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			fmt.Printf("Exported %d events to %s\n", n, args[0])
		}
		return nil
	},
}

func parseEventID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid event id %q", s)
	}
	return id, nil
}

func init() {
	plannerUpdateCmd.Flags().String("date", "", "new date (YYYY-MM-DD)")
	plannerUpdateCmd.Flags().String("title", "", "new title")

	rootCmd.AddCommand(plannerCmd)
	plannerCmd.AddCommand(plannerListCmd)
	plannerCmd.AddCommand(plannerAddCmd)
	plannerCmd.AddCommand(plannerUpdateCmd)
	plannerCmd.AddCommand(plannerDeleteCmd)
	plannerCmd.AddCommand(plannerICSCmd)
}
