/*
Package game implements the session loop of hangman.

It acts as the bridge between the round state machine (domain.Round), the word
source and the outside world. The Session asks a ports.Display for letters,
validates them, applies them to the round and tells the display what changed.
Rendering decisions stay in the display; the session only picks which
notification to send.

# Key Components

  - Session: Plays rounds until the player exits, optionally behind the mode menu.
  - Guess: Validates a raw input line against a round and applies it.
  - Admin: The word-admin flow that appends new entries to the word source.

# Usage

	s := game.NewSession(src, console.NewTextDisplay(os.Stdin, os.Stdout),
		game.WithSettings(domain.DefaultSettings()),
		game.WithLogger(logger),
	)

	if err := s.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package game
