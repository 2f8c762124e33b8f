package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/hangman/internal/config"
	"github.com/aretw0/hangman/pkg/adapters/file"
	"github.com/aretw0/hangman/pkg/adapters/redis"
	"github.com/aretw0/hangman/pkg/words"
)

// SeedWords replaces the Redis word list with the valid entries of the word file at from.
// An empty from uses the configured words path.
func SeedWords(ctx context.Context, opts RunOptions, from string) error {
	opts.defaults()
	if opts.Config.Store != config.StoreRedis {
		return fmt.Errorf("seeding needs the redis store, got %q", opts.Config.Store)
	}
	if err := opts.Config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if from == "" {
		from = opts.Config.Words
	}

	logger, err := createLogger(opts.Config, opts.Debug, opts.ErrOut)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	source := words.NewSource(file.New(from, file.WithLogger(logger)), words.WithLogger(logger))
	entries, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", from, err)
	}

	store, err := redis.New(opts.Config.RedisURL, redis.WithKey(opts.Config.RedisKey), redis.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer store.Close()

	if err := store.Seed(ctx, entries); err != nil {
		return err
	}
	printSystemMessage(opts.Out, "Seeded %d words from %s.", len(entries), from)
	return nil
}
