package ports

import (
	"context"

	"github.com/aretw0/hangman/pkg/domain"
)

// Display is the rendering and input collaborator of the session loop.
// The session decides which notification to send; the display decides how it looks.
type Display interface {
	// ShowWelcome presents the rules for the given settings.
	ShowWelcome(settings domain.Settings)

	// ShowRoundState presents the reveal pattern and the wrong guesses.
	ShowRoundState(view domain.RoundView)

	// ShowClue presents the clue of the current word.
	ShowClue(clue string)

	// RequestLetter blocks until the player submits a line.
	RequestLetter(ctx context.Context) (string, error)

	// ShowInvalidInput reports a guess that is not a single letter a-z.
	ShowInvalidInput()

	// ShowAlreadyGuessed reports a letter guessed earlier in the round.
	ShowAlreadyGuessed(letter rune)

	// ShowOutcome reports the end of a round and reveals the word.
	ShowOutcome(won bool, word string)

	// PromptContinueOrExit asks whether to play another round.
	// Returns true to continue.
	PromptContinueOrExit(ctx context.Context) (bool, error)

	// ShowGoodbye is called once when the session ends normally.
	ShowGoodbye()
}

// AdminPrompter is the collaborator of the word-admin flow and the mode menu.
type AdminPrompter interface {
	// ChooseMode asks whether to add words, play or exit.
	ChooseMode(ctx context.Context) (domain.Mode, error)

	// RequestEntry asks for a new word and its clue.
	RequestEntry(ctx context.Context) (domain.WordEntry, error)

	// ShowEntryAdded confirms that an entry was persisted.
	ShowEntryAdded(entry domain.WordEntry)

	// ShowInvalidEntry reports why an entry was rejected.
	ShowInvalidEntry(err error)

	// PromptAddAnother asks whether to add another entry.
	PromptAddAnother(ctx context.Context) (bool, error)
}
