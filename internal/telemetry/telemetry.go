// Package telemetry provides a JSONL event stream for recording what a browse
// session did: directory loads, enrichment runs, unresolved references, and
// roster changes. Each event is one JSON object per line so a session can be
// inspected after the fact without scraping the log.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart    = "session_start"
	KindDirectoryLoaded = "directory_loaded"
	KindDirectoryFailed = "directory_failed"
	KindEnrichStart     = "enrich_start"
	KindEnrichDone      = "enrich_done"
	KindEnrichStale     = "enrich_stale"
	KindReferenceFailed = "reference_failed"
	KindRosterAdded     = "roster_added"
)

// Event represents a single telemetry record. Each event carries a timestamp,
// a kind tag, the session it belongs to, the character it concerns (if any),
// and arbitrary structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Session   string    `json:"session,omitempty"`
	Character string    `json:"character,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file    *os.File
	enc     *json.Encoder
	session string
	mu      sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
// Every event written through the emitter is stamped with a fresh session id.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:    f,
		enc:     json.NewEncoder(f),
		session: uuid.NewString(),
	}, nil
}

// Session returns the id stamped on this emitter's events. Empty for nil.
func (e *Emitter) Session() string {
	if e == nil {
		return ""
	}
	return e.session
}

// Emit writes a single event to the JSONL file. Zero timestamps are set to
// now and an empty session is filled in. Calling Emit on a nil Emitter is a
// no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	if evt.Session == "" {
		evt.Session = e.session
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Record is shorthand for emitting an event built from its parts.
func (e *Emitter) Record(kind, character string, data any) error {
	return e.Emit(Event{Kind: kind, Character: character, Data: data})
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
