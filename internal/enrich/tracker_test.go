package enrich

import (
	"context"
	"testing"

	"github.com/papapumpkin/holocron/internal/swapi"
)

func TestTracker_NewTicketMakesOldStale(t *testing.T) {
	t.Parallel()

	var tr Tracker
	lukeCtx, lukeTicket := tr.Begin(context.Background(), swapi.Person{Name: "Luke Skywalker"})
	if !tr.Current(lukeTicket) {
		t.Fatal("fresh ticket should be current")
	}

	_, leiaTicket := tr.Begin(context.Background(), swapi.Person{Name: "Leia Organa"})
	if tr.Current(lukeTicket) {
		t.Error("Luke's ticket should be stale after selecting Leia")
	}
	if !tr.Current(leiaTicket) {
		t.Error("Leia's ticket should be current")
	}
	if lukeCtx.Err() == nil {
		t.Error("Luke's run context should be cancelled")
	}
	if leiaTicket.Person.Name != "Leia Organa" {
		t.Errorf("ticket person = %q", leiaTicket.Person.Name)
	}
}

func TestTracker_Reset(t *testing.T) {
	t.Parallel()

	var tr Tracker
	ctx, tk := tr.Begin(context.Background(), swapi.Person{Name: "Yoda"})
	tr.Reset()

	if tr.Current(tk) {
		t.Error("ticket should be stale after Reset")
	}
	if ctx.Err() == nil {
		t.Error("context should be cancelled after Reset")
	}
}

func TestTracker_Finish(t *testing.T) {
	t.Parallel()

	var tr Tracker
	ctx, tk := tr.Begin(context.Background(), swapi.Person{Name: "Yoda"})
	tr.Finish(tk)

	if ctx.Err() == nil {
		t.Error("Finish should release the run context")
	}
	if tr.Current(tk) {
		t.Error("a finished ticket is no longer current")
	}

	// Finishing a stale ticket must not touch the live run.
	liveCtx, live := tr.Begin(context.Background(), swapi.Person{Name: "Han Solo"})
	tr.Finish(tk)
	if liveCtx.Err() != nil {
		t.Error("finishing a stale ticket cancelled the live run")
	}
	if !tr.Current(live) {
		t.Error("live ticket should still be current")
	}
}

func TestTracker_ZeroTicketNeverCurrent(t *testing.T) {
	t.Parallel()

	var tr Tracker
	if tr.Current(Ticket{}) {
		t.Error("zero ticket should not be current on a fresh tracker")
	}
}
