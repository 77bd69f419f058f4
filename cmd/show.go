package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/holocron/internal/directory"
	"github.com/papapumpkin/holocron/internal/enrich"
	"github.com/papapumpkin/holocron/internal/roster"
	"github.com/papapumpkin/holocron/internal/ui"
)

// errNotFound is returned by show when no record matches.
var errNotFound = errors.New("character not found")

var showCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print one character's details and physical stats",
	Long: `Look up NAME (case-insensitive; several words may be given unquoted),
resolve its films, species, vehicles and starships, and print the sheet
followed by the height/mass chart.`,
	Example: `  holocron show luke skywalker
  holocron show "Darth Vader"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	printer := ui.NewWithWriter(out, colorFor(out))

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	name := roster.Normalize(strings.Join(args, " "))
	if err := s.directory.Load(cmd.Context()); err != nil {
		printer.Error(directory.LoadErrorMessage)
		return err
	}

	person, ok := s.directory.FindByName(name)
	if !ok {
		printer.NotFound(name)
		return fmt.Errorf("%w: %s", errNotFound, name)
	}

	details, err := s.enricher.Enrich(cmd.Context(), person)
	var rerr *enrich.ResolveError
	if err != nil && !errors.As(err, &rerr) {
		return err
	}
	printer.Character(person, details)
	return nil
}
