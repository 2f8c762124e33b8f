package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/hangman/internal/config"
	"github.com/aretw0/hangman/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfig(t *testing.T) (config.Config, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.Store = config.StoreRedis
	cfg.RedisURL = "redis://" + mr.Addr()
	return cfg, mr
}

func TestSeedWords_ThenPlayFromRedis(t *testing.T) {
	cfg, mr := redisConfig(t)
	path := writeWords(t, "word,clue\nGo,Short language name\nbad word,Skipped\n")
	ctx := context.Background()

	var out bytes.Buffer
	err := SeedWords(ctx, RunOptions{Config: cfg, Out: &out, ErrOut: &bytes.Buffer{}}, path)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Seeded 1 words")

	items, err := mr.List(config.Default().RedisKey)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	out.Reset()
	err = ListWords(ctx, RunOptions{Config: cfg, Out: &out, ErrOut: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, "go,Short language name\n", out.String())
}

func TestSeedWords_ReplacesExistingList(t *testing.T) {
	cfg, mr := redisConfig(t)
	_, err := mr.RPush(cfg.RedisKey, `{"word":"old","clue":"Stale"}`)
	require.NoError(t, err)

	path := writeWords(t, "word,clue\ncat,Animal\ndog,Animal\n")
	require.NoError(t, SeedWords(context.Background(), RunOptions{Config: cfg, Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}}, path))

	items, err := mr.List(cfg.RedisKey)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NotContains(t, items, `{"word":"old","clue":"Stale"}`)
}

func TestSeedWords_Errors(t *testing.T) {
	ctx := context.Background()

	err := SeedWords(ctx, RunOptions{Config: config.Default(), Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}}, "")
	assert.ErrorContains(t, err, "redis store")

	cfg, _ := redisConfig(t)
	err = SeedWords(ctx, RunOptions{Config: cfg, Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}}, writeWords(t, "word,clue\n"))
	assert.ErrorIs(t, err, domain.ErrEmptySource)
}
