package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/holocron/internal/config"
	"github.com/papapumpkin/holocron/internal/directory"
	"github.com/papapumpkin/holocron/internal/enrich"
	"github.com/papapumpkin/holocron/internal/logging"
	"github.com/papapumpkin/holocron/internal/roster"
	"github.com/papapumpkin/holocron/internal/swapi"
	"github.com/papapumpkin/holocron/internal/telemetry"
)

// session bundles the collaborators every command builds from config.
type session struct {
	cfg       config.Config
	logger    *slog.Logger
	events    *telemetry.Emitter
	client    *swapi.Client
	directory *directory.Directory
	enricher  *enrich.Aggregator

	logCloser io.Closer
}

// newSession loads config and wires the logger, telemetry, SWAPI client,
// directory and aggregator. Callers must close the session.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, logCloser, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var events *telemetry.Emitter
	if cfg.TelemetryFile != "" {
		events, err = telemetry.NewEmitter(cfg.TelemetryFile)
		if err != nil {
			_ = logCloser.Close()
			return nil, err
		}
		logger = logger.With("session", events.Session())
	}
	_ = events.Record(telemetry.KindSessionStart, "", map[string]string{
		"command":  cmd.Name(),
		"base_url": cfg.BaseURL,
	})

	client := swapi.NewClient(cfg.BaseURL, cfg.UserAgent, cfg.Timeout)
	logger.Debug("session started", "command", cmd.Name(), "base_url", client.BaseURL())

	return &session{
		cfg:    cfg,
		logger: logger,
		events: events,
		client: client,
		directory: directory.New(client,
			directory.WithLogger(logger),
			directory.WithEvents(events),
		),
		enricher: enrich.New(client,
			enrich.WithLogger(logger),
			enrich.WithEvents(events),
			enrich.WithMaxFetches(cfg.MaxFetches),
		),
		logCloser: logCloser,
	}, nil
}

// roster seeds the chip row from the configured defaults, the roster file,
// and any extra names, in that order.
func (s *session) roster(extra []string) (*roster.Roster, error) {
	r := roster.New(s.cfg.DefaultNames...)
	if s.cfg.RosterFile != "" {
		f, err := roster.LoadFile(s.cfg.RosterFile)
		if err != nil {
			return nil, err
		}
		r.Add(f.Names...)
	}
	r.Add(extra...)
	return r, nil
}

func (s *session) Close() error {
	return errors.Join(s.events.Close(), s.logCloser.Close())
}
