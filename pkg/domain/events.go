package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRoundStart EventType = "round_start"
	EventGuess      EventType = "guess"
	EventRoundEnd   EventType = "round_end"
	EventEntryAdded EventType = "entry_added"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// RoundEvent represents the start or the end of a round.
type RoundEvent struct {
	EventBase
	Round      int    `json:"round"`
	WordLength int    `json:"word_length"`
	Status     Status `json:"status"`
	WrongCount int    `json:"wrong_count"`
}

// GuessEvent represents a guess applied to a round.
type GuessEvent struct {
	EventBase
	Round   int     `json:"round"`
	Letter  string  `json:"letter"`
	Outcome Outcome `json:"outcome"`
}

// EntryEvent represents a word added through the admin flow.
type EntryEvent struct {
	EventBase
	Word string `json:"word"`
}

// LifecycleHooks defines callbacks for session observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnRoundStart func(context.Context, *RoundEvent)
	OnGuess      func(context.Context, *GuessEvent)
	OnRoundEnd   func(context.Context, *RoundEvent)
	OnEntryAdded func(context.Context, *EntryEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnRoundStart: chain(h.OnRoundStart, other.OnRoundStart),
		OnGuess:      chain(h.OnGuess, other.OnGuess),
		OnRoundEnd:   chain(h.OnRoundEnd, other.OnRoundEnd),
		OnEntryAdded: chain(h.OnEntryAdded, other.OnEntryAdded),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
