package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRound(t *testing.T, word string) *Round {
	t.Helper()
	r, err := NewRound(WordEntry{Word: word, Clue: "clue"}, DefaultMaxWrong)
	require.NoError(t, err)
	return r
}

func TestNewRound(t *testing.T) {
	t.Run("Empty word is rejected", func(t *testing.T) {
		_, err := NewRound(WordEntry{Word: "", Clue: "x"}, 3)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("Non-positive max falls back to default", func(t *testing.T) {
		r, err := NewRound(WordEntry{Word: "go", Clue: "x"}, 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultMaxWrong, r.MaxWrong)
	})

	t.Run("Starts in progress with a hidden word", func(t *testing.T) {
		r := newTestRound(t, "cat")
		assert.Equal(t, StatusInProgress, r.Status())
		assert.Equal(t, "___", r.Reveal())
		assert.False(t, r.Over())
	})
}

func TestRound_CatIsWon(t *testing.T) {
	r := newTestRound(t, "cat")

	assert.Equal(t, Hit, r.Apply('a'))
	assert.Equal(t, "_a_", r.Reveal())
	assert.False(t, r.Won())

	assert.Equal(t, Hit, r.Apply('t'))
	assert.Equal(t, "_at", r.Reveal())
	assert.False(t, r.Won())

	assert.Equal(t, Hit, r.Apply('c'))
	assert.Equal(t, "cat", r.Reveal())
	assert.True(t, r.Won())
	assert.False(t, r.Lost())
	assert.Equal(t, StatusWon, r.Status())
	assert.Equal(t, []rune{'a', 't', 'c'}, r.CorrectGuesses())
}

func TestRound_DogIsLost(t *testing.T) {
	r := newTestRound(t, "dog")

	for i, l := range []rune{'x', 'y', 'z'} {
		assert.False(t, r.Lost(), "lost before miss %d", i+1)
		assert.Equal(t, Miss, r.Apply(l))
	}

	assert.True(t, r.Lost())
	assert.Equal(t, StatusLost, r.Status())
	assert.Equal(t, []rune{'x', 'y', 'z'}, r.WrongGuesses())
	assert.Equal(t, "___", r.Reveal())
}

func TestRound_RepeatedLetters(t *testing.T) {
	r := newTestRound(t, "banana")

	r.Apply('a')
	assert.Equal(t, "_a_a_a", r.Reveal())
	r.Apply('n')
	r.Apply('b')
	assert.True(t, r.Won())
}

func TestRound_OneLetterWord(t *testing.T) {
	r, err := NewRound(WordEntry{Word: "a", Clue: "article"}, 1)
	require.NoError(t, err)

	r.Apply('z')
	assert.Equal(t, StatusLost, r.Status())

	r2, err := NewRound(WordEntry{Word: "a", Clue: "article"}, 1)
	require.NoError(t, err)
	r2.Apply('a')
	assert.Equal(t, StatusWon, r2.Status())
}

func TestRound_Guessed(t *testing.T) {
	r := newTestRound(t, "cat")
	r.Apply('c')
	r.Apply('q')

	assert.True(t, r.Guessed('c'))
	assert.True(t, r.Guessed('q'))
	assert.False(t, r.Guessed('a'))
}

func TestRound_GuessSetsAreDisjoint(t *testing.T) {
	r := newTestRound(t, "gopher")
	for _, l := range "abcdefghijklmnopqrstuvwxyz" {
		if r.Over() {
			break
		}
		r.Apply(l)
	}
	for _, c := range r.CorrectGuesses() {
		assert.NotContains(t, r.WrongGuesses(), c)
	}
}

func TestRound_RevealProperties(t *testing.T) {
	words := []string{"a", "go", "hangman", "mississippi", "rhythm"}
	guesses := []rune("eisaxmhgnqopr")

	for _, w := range words {
		t.Run(w, func(t *testing.T) {
			r, err := NewRound(WordEntry{Word: w, Clue: "c"}, len(guesses))
			require.NoError(t, err)

			for _, g := range guesses {
				if r.Over() {
					break
				}
				r.Apply(g)

				reveal := []rune(r.Reveal())
				require.Len(t, reveal, len(w))
				for i, c := range reveal {
					if c != Placeholder {
						assert.Equal(t, rune(w[i]), c)
					}
				}

				distinct := map[rune]bool{}
				for _, c := range w {
					distinct[c] = true
				}
				subset := true
				for c := range distinct {
					if !r.Guessed(c) {
						subset = false
					}
				}
				assert.Equal(t, subset, r.Won())
				assert.Equal(t, len(r.WrongGuesses()) >= r.MaxWrong, r.Lost())
			}
		})
	}
}

func TestRound_View(t *testing.T) {
	r := newTestRound(t, "cat")
	r.Apply('x')
	r.Apply('a')

	v := r.View()
	assert.Equal(t, "_a_", v.Reveal)
	assert.Equal(t, 1, v.WrongCount)
	assert.Equal(t, 3, v.MaxWrong)
	assert.Equal(t, []string{"x"}, v.WrongLetters())
}
