package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/holocron/internal/directory"
	"github.com/papapumpkin/holocron/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the names in the character directory",
	Long: `Fetch the character directory and print one name per line. With
--roster, print the chip names instead (defaults plus roster file) without
contacting SWAPI.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().Bool("roster", false, "print the chip names instead of the directory")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	printer := ui.NewWithWriter(out, colorFor(out))

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if onlyRoster, _ := cmd.Flags().GetBool("roster"); onlyRoster {
		r, err := s.roster(nil)
		if err != nil {
			return err
		}
		printer.Names(r.Names())
		return nil
	}

	if err := s.directory.Load(cmd.Context()); err != nil {
		printer.Error(directory.LoadErrorMessage)
		return err
	}
	names := s.directory.Names()
	printer.Names(names)
	printer.Info(fmt.Sprintf("%d characters", len(names)))
	return nil
}
