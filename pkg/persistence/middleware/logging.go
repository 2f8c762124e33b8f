package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/hangman/pkg/domain"
	"github.com/aretw0/hangman/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.WordStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store operation at debug level, failures at warn.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.WordStore) ports.WordStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Load(ctx context.Context) ([]domain.WordEntry, error) {
	start := time.Now()
	entries, err := m.next.Load(ctx)
	if err != nil {
		m.logger.Warn("Store load failed", "error", err)
		return nil, err
	}
	m.logger.Debug("Store loaded", "entries", len(entries), "took", time.Since(start))
	return entries, nil
}

func (m *loggingMiddleware) Append(ctx context.Context, entry domain.WordEntry) error {
	if err := m.next.Append(ctx, entry); err != nil {
		m.logger.Warn("Store append failed", "word", entry.Word, "error", err)
		return err
	}
	m.logger.Debug("Store appended", "word", entry.Word)
	return nil
}
