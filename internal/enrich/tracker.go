package enrich

import (
	"context"
	"sync"

	"github.com/papapumpkin/holocron/internal/swapi"
)

// Ticket ties an enrichment run to the selection that started it.
type Ticket struct {
	Seq    uint64
	Person swapi.Person
}

// Tracker hands out tickets, one per selection. Starting a new ticket
// cancels the previous run's context and makes its ticket stale, so a late
// result can be recognized and dropped.
type Tracker struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// Begin starts a run for p and returns the context the run must use.
func (t *Tracker) Begin(parent context.Context, p swapi.Person) (context.Context, Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel
	t.seq++
	return ctx, Ticket{Seq: t.seq, Person: p}
}

// Reset invalidates the outstanding ticket without starting a new run, for
// when the selection clears.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.seq++
}

// Current reports whether tk belongs to the latest selection and has not
// been finished yet.
func (t *Tracker) Current(tk Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tk.Seq == t.seq && t.cancel != nil
}

// Finish releases the context of tk's run if tk is still current.
func (t *Tracker) Finish(tk Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tk.Seq == t.seq && t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
