package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/hangman/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that write every event to logger at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRoundStart: func(ctx context.Context, e *domain.RoundEvent) {
			logger.Debug("Round Start", "round", e.Round, "word_length", e.WordLength)
		},
		OnGuess: func(ctx context.Context, e *domain.GuessEvent) {
			logger.Debug("Guess", "round", e.Round, "letter", e.Letter, "outcome", e.Outcome)
		},
		OnRoundEnd: func(ctx context.Context, e *domain.RoundEvent) {
			logger.Debug("Round End", "round", e.Round, "status", e.Status, "wrong", e.WrongCount)
		},
		OnEntryAdded: func(ctx context.Context, e *domain.EntryEvent) {
			logger.Debug("Entry Added", "word", e.Word)
		},
	}
}
