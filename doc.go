/*
Package hangman is a console word-guessing game.

The player guesses the letters of a hidden word one at a time and loses the
round after a fixed number of wrong guesses (three by default). Each word may
carry a clue, and an optional admin mode appends new word/clue pairs to the
word list.

# Architecture

The game follows a hexagonal layout. The core has no I/O of its own:

  - pkg/domain holds the value types, the per-word Round state machine and
    the lifecycle events.
  - pkg/ports declares the collaborators: WordStore (persistence), WordSource
    (validated, randomized access to the words) and Display (player IO).
  - pkg/game drives a Session through those ports.

Adapters live at the edges: a comma-delimited file, an in-memory list and a
Redis list for the words (pkg/adapters), a colored terminal and an NDJSON
display (pkg/console), and Prometheus metrics (pkg/observability).

# Word file

The default store is a text file whose first line is a header:

	word,clue
	golang,Language with goroutines
	channel,Typed conduit between goroutines

# Usage

	hangman              # play with clues
	hangman --no-clue    # play without clues
	hangman --admin      # mode menu with word management
	hangman words ls     # list the valid entries
*/
package hangman
