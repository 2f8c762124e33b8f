package domain

import "errors"

// ErrSourceNotFound is returned when the backing store of a word source does not exist.
var ErrSourceNotFound = errors.New("word source not found")

// ErrEmptySource is returned when a word source holds no valid entries.
var ErrEmptySource = errors.New("word source is empty")

// ErrInvalidEntry is returned when a word/clue pair fails validation on append.
var ErrInvalidEntry = errors.New("invalid word entry")

// ErrInvalidInput is returned when a guess is not exactly one letter a-z.
var ErrInvalidInput = errors.New("invalid input")

// ErrAlreadyGuessed is returned when a letter was already guessed in the current round.
var ErrAlreadyGuessed = errors.New("letter already guessed")
