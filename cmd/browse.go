package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/holocron/internal/roster"
	"github.com/papapumpkin/holocron/internal/tui"
	"github.com/papapumpkin/holocron/internal/watch"
)

// browseCmd launches the interactive character browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive character browser",
	Long: `Launch the character browser. The chip row starts with the configured
default names, followed by any names from --roster-file. With --watch the
roster file is followed and new names appear as chips while browsing.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("name", "", "character to select on start (added to the chips if missing)")
	browseCmd.Flags().Bool("watch", false, "follow the roster file for new names")
	_ = viper.BindPFlag("watch_roster", browseCmd.Flags().Lookup("watch"))
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !isStderrTTY() {
		return fmt.Errorf("holocron browse requires a TTY (terminal)")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	name, _ := cmd.Flags().GetString("name")
	var extra []string
	if name != "" {
		extra = append(extra, name)
	}
	r, err := s.roster(extra)
	if err != nil {
		return err
	}
	if name != "" {
		r.Select(roster.Normalize(name))
	}

	deps := tui.Deps{
		Directory: s.directory,
		Enricher:  s.enricher,
		Roster:    r,
		Logger:    s.logger,
		Events:    s.events,
	}

	if s.cfg.WatchRoster {
		w, err := watch.New(s.cfg.RosterFile)
		if err != nil {
			return fmt.Errorf("watch roster file: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("watch roster file: %w", err)
		}
		defer w.Stop()
		deps.Updates = w.Updates
		s.logger.Info("watching roster file", "path", w.Path)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, deps, tui.WithOutput(cmd.ErrOrStderr()))
}
