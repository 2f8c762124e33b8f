package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/hangman/pkg/domain"
)

// ParseLetter turns a raw input line into a guess.
// The line is trimmed and lowercased and must then be exactly one letter a-z.
func ParseLetter(input string) (rune, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("%w: empty guess", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(input) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single letter", domain.ErrInvalidInput, input)
	}
	r, _ := utf8.DecodeRuneInString(input)
	if !domain.IsLetter(r) {
		return 0, fmt.Errorf("%w: %q is not a letter a-z", domain.ErrInvalidInput, input)
	}
	return r, nil
}

// Guess validates input against the round and applies it.
// Invalid input and repeated letters leave the round untouched and return
// an error wrapping domain.ErrInvalidInput or domain.ErrAlreadyGuessed.
func Guess(round *domain.Round, input string) (rune, domain.Outcome, error) {
	letter, err := ParseLetter(input)
	if err != nil {
		return 0, "", err
	}
	if round.Guessed(letter) {
		return letter, "", fmt.Errorf("%w: %q", domain.ErrAlreadyGuessed, letter)
	}
	return letter, round.Apply(letter), nil
}
