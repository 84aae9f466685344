package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"offjournal/internal/adapters/gpg"
	"offjournal/internal/application/commands"
)

var exportCmd = &cobra.Command{
	Use:   "export <id> <txt|md|json> <out-path>",
	Short: "Export an entry to another format",
	Long: `Export an entry as plain text, markdown, or a json document of the
form {"source_filename", "export_format", "content"}.

Examples:
  offjournal-cli export 20250715100000 json ~/beach.json`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewExportEntryCommand(be.Entries, args[0], args[1], args[2]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <id>",
	Short: "Encrypt an entry with gpg",
	Long: `Encrypt the file of an entry for a gpg recipient, writing <file>.gpg next
to it. The recipient defaults to the gpg_recipient config key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipient, _ := cmd.Flags().GetString("recipient")
		if recipient == "" {
			recipient = cfg.GPGRecipient
		}

		result, err := commands.NewEncryptEntryCommand(be.Entries, gpg.New(), args[0], recipient).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <file.gpg>",
	Short: "Decrypt a gpg file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDecryptFileCommand(gpg.New(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	encryptCmd.Flags().StringP("recipient", "r", "", "gpg recipient (key id or email)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
}
