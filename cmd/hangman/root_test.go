package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/hangman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	chdir(t, t.TempDir())

	out := execute(t, "version")
	assert.Equal(t, "hangman version "+strings.TrimSpace(hangman.Version)+"\n", out)
}

func TestWordsListCommand_Memory(t *testing.T) {
	chdir(t, t.TempDir())

	out := execute(t, "words", "ls", "--store", "memory")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Contains(t, line, ",")
	}
}

func TestPlayFlagsRegistered(t *testing.T) {
	for _, name := range []string{"json", "no-clue", "admin", "max-wrong", "seed", "metrics-addr"} {
		assert.NotNil(t, playCmd.Flags().Lookup(name), name)
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
}

func TestWordsSeedCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	mr := miniredis.RunT(t)
	path := filepath.Join(dir, "seed.csv")
	require.NoError(t, os.WriteFile(path, []byte("word,clue\ncat,Animal\ndog,Animal\n"), 0644))

	out := execute(t, "words", "seed", "--store", "redis", "--redis-url", "redis://"+mr.Addr(), "--from", path)
	assert.Contains(t, out, "Seeded 2 words")

	items, err := mr.List("hangman:words")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
