// Package enrich resolves a character's film, species, vehicle and starship
// references into display names.
//
// The four reference lists resolve concurrently and independently. A
// reference that fails to resolve is left out of the result and reported to
// the logger and telemetry stream; it never fails the other references.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"

	"github.com/papapumpkin/holocron/internal/swapi"
	"github.com/papapumpkin/holocron/internal/telemetry"
)

// DefaultSpecies is shown when a character lists no species.
const DefaultSpecies = "Human"

// Resolver turns one reference into a display label.
type Resolver interface {
	Resolve(ctx context.Context, kind swapi.Kind, ref string) (string, error)
}

// Details is the resolved, display-ready view of a person's references.
type Details struct {
	Films     []string
	Species   []string
	Vehicles  []string
	Starships []string

	// Failed counts references that did not resolve.
	Failed int
}

// Names returns the resolved labels for kind.
func (d Details) Names(kind swapi.Kind) []string {
	switch kind {
	case swapi.KindFilm:
		return d.Films
	case swapi.KindSpecies:
		return d.Species
	case swapi.KindVehicle:
		return d.Vehicles
	case swapi.KindStarship:
		return d.Starships
	}
	return nil
}

func (d *Details) set(kind swapi.Kind, names []string) {
	switch kind {
	case swapi.KindFilm:
		d.Films = names
	case swapi.KindSpecies:
		d.Species = names
	case swapi.KindVehicle:
		d.Vehicles = names
	case swapi.KindStarship:
		d.Starships = names
	}
}

// ResolveError records a single reference that could not be resolved.
type ResolveError struct {
	Kind swapi.Kind
	Ref  string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s %s: %v", e.Kind, e.Ref, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Aggregator fans reference resolution out over a Resolver.
type Aggregator struct {
	resolver   Resolver
	logger     *slog.Logger
	events     *telemetry.Emitter
	maxFetches int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) { a.logger = l }
}

// WithEvents sets the telemetry emitter.
func WithEvents(e *telemetry.Emitter) Option {
	return func(a *Aggregator) { a.events = e }
}

// WithMaxFetches caps in-flight requests per reference list. Zero or less
// means unlimited.
func WithMaxFetches(n int) Option {
	return func(a *Aggregator) { a.maxFetches = n }
}

// New creates an Aggregator.
func New(resolver Resolver, opts ...Option) *Aggregator {
	a := &Aggregator{
		resolver: resolver,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Enrich resolves every reference of p. The returned Details always holds
// whatever did resolve; the error joins every ResolveError, or is the
// context's error when ctx ended first.
func (a *Aggregator) Enrich(ctx context.Context, p swapi.Person) (Details, error) {
	start := time.Now()
	a.emit(telemetry.KindEnrichStart, p.Name, map[string]int{
		"films":     len(p.Films),
		"species":   len(p.Species),
		"vehicles":  len(p.Vehicles),
		"starships": len(p.Starships),
	})

	type listResult struct {
		names []string
		err   error
	}
	results := make([]listResult, len(swapi.Kinds))

	var wg conc.WaitGroup
	for i, kind := range swapi.Kinds {
		refs := p.Refs(kind)
		wg.Go(func() {
			names, err := a.resolveAll(ctx, p.Name, kind, refs)
			results[i] = listResult{names: names, err: err}
		})
	}
	wg.Wait()

	var (
		d    Details
		errs []error
	)
	for i, kind := range swapi.Kinds {
		r := results[i]
		names := r.names
		if names == nil {
			names = []string{}
		}
		d.set(kind, names)
		d.Failed += len(p.Refs(kind)) - len(r.names)
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	if len(d.Species) == 0 && len(p.Species) == 0 {
		d.Species = []string{DefaultSpecies}
	}

	if err := ctx.Err(); err != nil {
		return d, err
	}

	a.logger.Debug("enrichment finished",
		"character", p.Name,
		"failed", d.Failed,
		"elapsed", time.Since(start),
	)
	a.emit(telemetry.KindEnrichDone, p.Name, map[string]any{
		"failed":     d.Failed,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return d, errors.Join(errs...)
}

type indexed struct {
	pos  int
	name string
}

// resolveAll resolves refs concurrently, preserving their order in the
// output and dropping the ones that fail.
func (a *Aggregator) resolveAll(ctx context.Context, character string, kind swapi.Kind, refs []string) ([]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	rp := pool.NewWithResults[indexed]()
	if a.maxFetches > 0 {
		rp = rp.WithMaxGoroutines(a.maxFetches)
	}
	p := rp.WithErrors().WithContext(ctx)

	for i, ref := range refs {
		p.Go(func(ctx context.Context) (indexed, error) {
			name, err := a.resolver.Resolve(ctx, kind, ref)
			if err != nil {
				rerr := &ResolveError{Kind: kind, Ref: ref, Err: err}
				a.reportFailure(ctx, character, rerr)
				return indexed{}, rerr
			}
			return indexed{pos: i, name: name}, nil
		})
	}

	res, err := p.Wait()
	sort.Slice(res, func(i, j int) bool { return res[i].pos < res[j].pos })

	names := make([]string, len(res))
	for i, r := range res {
		names[i] = r.name
	}
	return names, err
}

// reportFailure is the observer for unresolved references. Failures caused
// by cancellation are expected when the selection moves on and stay quiet.
func (a *Aggregator) reportFailure(ctx context.Context, character string, rerr *ResolveError) {
	if ctx.Err() != nil {
		return
	}
	a.logger.Warn("reference unresolved",
		"character", character,
		"kind", string(rerr.Kind),
		"ref", rerr.Ref,
		"error", rerr.Err,
	)
	a.emit(telemetry.KindReferenceFailed, character, map[string]string{
		"kind":  string(rerr.Kind),
		"ref":   rerr.Ref,
		"error": rerr.Err.Error(),
	})
}

func (a *Aggregator) emit(kind, character string, data any) {
	if err := a.events.Record(kind, character, data); err != nil {
		a.logger.Warn("telemetry emit failed", "kind", kind, "error", err)
	}
}
