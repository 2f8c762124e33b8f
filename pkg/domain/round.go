package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Placeholder is shown in the reveal pattern for letters not yet guessed.
const Placeholder = '_'

// DefaultMaxWrong is the number of wrong guesses that loses a round.
const DefaultMaxWrong = 3

// Status is the state of a round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Outcome is the result of applying a single guess.
type Outcome string

const (
	Hit  Outcome = "hit"
	Miss Outcome = "miss"
)

// Round tracks the guesses made against one secret word.
// It is created at the start of a round and mutated only by Apply.
type Round struct {
	// Word is the secret word, lowercase a-z.
	Word string

	// Clue is the hint shown for the word, if clues are enabled.
	Clue string

	// MaxWrong is the number of wrong guesses at which the round is lost.
	MaxWrong int

	correct map[rune]struct{}
	wrong   map[rune]struct{}

	// order of guesses, kept for display
	correctOrder []rune
	wrongOrder   []rune
}

// NewRound starts a round for the given entry.
// A non-positive maxWrong falls back to DefaultMaxWrong.
func NewRound(entry WordEntry, maxWrong int) (*Round, error) {
	if entry.Word == "" {
		return nil, fmt.Errorf("%w: secret word cannot be empty", ErrInvalidEntry)
	}
	if maxWrong <= 0 {
		maxWrong = DefaultMaxWrong
	}
	return &Round{
		Word:     entry.Word,
		Clue:     entry.Clue,
		MaxWrong: maxWrong,
		correct:  make(map[rune]struct{}),
		wrong:    make(map[rune]struct{}),
	}, nil
}

// Apply records a guess. The caller must reject duplicates (see Guessed)
// and must not call Apply once the round is over.
func (r *Round) Apply(letter rune) Outcome {
	if strings.ContainsRune(r.Word, letter) {
		if _, seen := r.correct[letter]; !seen {
			r.correct[letter] = struct{}{}
			r.correctOrder = append(r.correctOrder, letter)
		}
		return Hit
	}
	if _, seen := r.wrong[letter]; !seen {
		r.wrong[letter] = struct{}{}
		r.wrongOrder = append(r.wrongOrder, letter)
	}
	return Miss
}

// Guessed reports whether letter is already in either guess set.
func (r *Round) Guessed(letter rune) bool {
	_, hit := r.correct[letter]
	_, miss := r.wrong[letter]
	return hit || miss
}

// Reveal returns the word with unguessed letters replaced by Placeholder.
func (r *Round) Reveal() string {
	var b strings.Builder
	b.Grow(len(r.Word))
	for _, c := range r.Word {
		if _, ok := r.correct[c]; ok {
			b.WriteRune(c)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// Won reports whether every letter of the word has been guessed.
func (r *Round) Won() bool {
	for _, c := range r.Word {
		if _, ok := r.correct[c]; !ok {
			return false
		}
	}
	return true
}

// Lost reports whether the wrong guesses reached MaxWrong.
func (r *Round) Lost() bool {
	return len(r.wrong) >= r.MaxWrong
}

// Status returns the current state. Win is checked before loss.
func (r *Round) Status() Status {
	switch {
	case r.Won():
		return StatusWon
	case r.Lost():
		return StatusLost
	default:
		return StatusInProgress
	}
}

// Over reports whether the round reached a terminal state.
func (r *Round) Over() bool {
	return r.Status() != StatusInProgress
}

// CorrectGuesses returns the letters found in the word, in guess order.
func (r *Round) CorrectGuesses() []rune {
	return slices.Clone(r.correctOrder)
}

// WrongGuesses returns the letters not in the word, in guess order.
func (r *Round) WrongGuesses() []rune {
	return slices.Clone(r.wrongOrder)
}

// View captures what a display needs to render the round.
func (r *Round) View() RoundView {
	return RoundView{
		Reveal:     r.Reveal(),
		Wrong:      r.WrongGuesses(),
		WrongCount: len(r.wrong),
		MaxWrong:   r.MaxWrong,
	}
}

// RoundView is a read-only snapshot of a round for rendering.
type RoundView struct {
	Reveal     string `json:"reveal"`
	Wrong      []rune `json:"-"`
	WrongCount int    `json:"wrong_count"`
	MaxWrong   int    `json:"max_wrong"`
}

// WrongLetters returns the wrong guesses as strings, for rendering and encoding.
func (v RoundView) WrongLetters() []string {
	out := make([]string, len(v.Wrong))
	for i, r := range v.Wrong {
		out[i] = string(r)
	}
	return out
}
