// Package directory holds the list of known characters. The list is fetched
// once per Directory and every lookup after that is served from memory.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/papapumpkin/holocron/internal/swapi"
	"github.com/papapumpkin/holocron/internal/telemetry"
)

// LoadErrorMessage is what the UI shows when the directory cannot be loaded.
const LoadErrorMessage = "Error fetching characters"

// ErrLoad marks a failed directory fetch. The cause is wrapped alongside it.
var ErrLoad = errors.New("directory load failed")

// State is the directory's lifecycle position.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Lister fetches the character list.
type Lister interface {
	ListPeople(ctx context.Context) ([]swapi.Person, error)
}

// Directory stores the fetched character records.
type Directory struct {
	lister Lister
	logger *slog.Logger
	events *telemetry.Emitter

	once   sync.Once
	mu     sync.RWMutex
	state  State
	people []swapi.Person
	err    error
}

// Option configures a Directory.
type Option func(*Directory)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Directory) { d.logger = l }
}

// WithEvents sets the telemetry emitter.
func WithEvents(e *telemetry.Emitter) Option {
	return func(d *Directory) { d.events = e }
}

// New creates a directory in the loading state.
func New(lister Lister, opts ...Option) *Directory {
	d := &Directory{
		lister: lister,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load fetches the character list. Only the first call reaches the network;
// concurrent and later calls wait for it and return the same outcome. A
// failed load stays failed for the lifetime of the Directory.
func (d *Directory) Load(ctx context.Context) error {
	d.once.Do(func() {
		start := time.Now()
		people, err := d.lister.ListPeople(ctx)

		d.mu.Lock()
		if err != nil {
			d.state = StateFailed
			d.err = fmt.Errorf("%w: %w", ErrLoad, err)
		} else {
			d.state = StateReady
			d.people = people
		}
		d.mu.Unlock()

		elapsed := time.Since(start)
		if err != nil {
			d.logger.Error("directory load failed", "error", err, "elapsed", elapsed)
			d.emit(telemetry.KindDirectoryFailed, map[string]any{"error": err.Error()})
			return
		}
		d.logger.Info("directory loaded", "count", len(people), "elapsed", elapsed)
		d.emit(telemetry.KindDirectoryLoaded, map[string]any{"count": len(people)})
	})
	return d.Err()
}

func (d *Directory) emit(kind string, data any) {
	if err := d.events.Record(kind, "", data); err != nil {
		d.logger.Warn("telemetry emit failed", "kind", kind, "error", err)
	}
}

// State reports where the directory is in its lifecycle.
func (d *Directory) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Err returns the load error, or nil if the directory is loading or ready.
func (d *Directory) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

// FindByName returns the first record whose name matches case-insensitively.
// Nothing matches until the directory is ready.
func (d *Directory) FindByName(name string) (swapi.Person, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, p := range d.people {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return swapi.Person{}, false
}

// Names lists the loaded character names in API order.
func (d *Directory) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, len(d.people))
	for i, p := range d.people {
		names[i] = p.Name
	}
	return names
}
