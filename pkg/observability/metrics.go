package observability

import (
	"context"

	"github.com/aretw0/hangman/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts rounds, guesses and added words.
// It is exposed to the session through Hooks.
type Metrics struct {
	RoundsStarted  prometheus.Counter
	RoundsFinished *prometheus.CounterVec
	Guesses        *prometheus.CounterVec
	WrongGuesses   prometheus.Histogram
	EntriesAdded   prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		RoundsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hangman_rounds_started_total",
			Help: "Total number of rounds started",
		}),
		RoundsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hangman_rounds_finished_total",
			Help: "Total number of rounds finished, by status",
		}, []string{"status"}),
		Guesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hangman_guesses_total",
			Help: "Total number of applied guesses, by outcome",
		}, []string{"outcome"}),
		WrongGuesses: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hangman_round_wrong_guesses",
			Help:    "Wrong guesses per finished round",
			Buckets: prometheus.LinearBuckets(0, 1, 6),
		}),
		EntriesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hangman_entries_added_total",
			Help: "Total number of words added through the admin flow",
		}),
	}

	for _, c := range []prometheus.Collector{m.RoundsStarted, m.RoundsFinished, m.Guesses, m.WrongGuesses, m.EntriesAdded} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRoundStart: func(ctx context.Context, e *domain.RoundEvent) {
			m.RoundsStarted.Inc()
		},
		OnGuess: func(ctx context.Context, e *domain.GuessEvent) {
			m.Guesses.WithLabelValues(string(e.Outcome)).Inc()
		},
		OnRoundEnd: func(ctx context.Context, e *domain.RoundEvent) {
			m.RoundsFinished.WithLabelValues(string(e.Status)).Inc()
			m.WrongGuesses.Observe(float64(e.WrongCount))
		},
		OnEntryAdded: func(ctx context.Context, e *domain.EntryEvent) {
			m.EntriesAdded.Inc()
		},
	}
}
