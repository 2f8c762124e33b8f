/*
Package domain contains the core models of the hangman game.

It defines the word entries served by a word source, the per-word round state
machine and the error kinds shared by the rest of the module. This package is
kept pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - WordEntry: A (word, clue) pair loaded from a word source.
  - Round: The state of a single secret word (correct and wrong guesses, reveal pattern).
  - Settings: The feature flags that unify the game variants (clues, admin mode, wrong-guess limit).
  - LifecycleHooks: Callbacks invoked by the session loop for logging and metrics.
*/
package domain
