package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/hangman/internal/config"
	"github.com/aretw0/hangman/pkg/adapters/file"
	"github.com/aretw0/hangman/pkg/adapters/memory"
	"github.com/aretw0/hangman/pkg/adapters/redis"
	"github.com/aretw0/hangman/pkg/ports"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newStore creates the word store selected by cfg.Store.
// The returned closer releases backend connections.
func newStore(cfg config.Config, logger *slog.Logger) (ports.WordStore, io.Closer, error) {
	switch cfg.Store {
	case config.StoreFile:
		return file.New(cfg.Words, file.WithLogger(logger)), nopCloser{}, nil
	case config.StoreMemory:
		return memory.NewDefaultStore(), nopCloser{}, nil
	case config.StoreRedis:
		opts := []redis.Option{redis.WithLogger(logger)}
		if cfg.RedisKey != "" {
			opts = append(opts, redis.WithKey(cfg.RedisKey))
		}
		store, err := redis.New(cfg.RedisURL, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
