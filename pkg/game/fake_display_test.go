package game_test

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/hangman/pkg/domain"
)

// scriptedDisplay replays a fixed list of answers and records every notification.
// It returns io.EOF once the script runs out.
type scriptedDisplay struct {
	script []string
	events []string
	views  []domain.RoundView
}

func newScriptedDisplay(script ...string) *scriptedDisplay {
	return &scriptedDisplay{script: script}
}

func (d *scriptedDisplay) next() (string, error) {
	if len(d.script) == 0 {
		return "", io.EOF
	}
	line := d.script[0]
	d.script = d.script[1:]
	return line, nil
}

func (d *scriptedDisplay) record(format string, args ...any) {
	d.events = append(d.events, fmt.Sprintf(format, args...))
}

func (d *scriptedDisplay) ShowWelcome(settings domain.Settings) { d.record("welcome") }

func (d *scriptedDisplay) ShowRoundState(view domain.RoundView) {
	d.views = append(d.views, view)
	d.record("state %s %d", view.Reveal, view.WrongCount)
}

func (d *scriptedDisplay) ShowClue(clue string) { d.record("clue %s", clue) }

func (d *scriptedDisplay) RequestLetter(ctx context.Context) (string, error) { return d.next() }

func (d *scriptedDisplay) ShowInvalidInput() { d.record("invalid") }

func (d *scriptedDisplay) ShowAlreadyGuessed(letter rune) { d.record("already %c", letter) }

func (d *scriptedDisplay) ShowOutcome(won bool, word string) { d.record("outcome %t %s", won, word) }

func (d *scriptedDisplay) PromptContinueOrExit(ctx context.Context) (bool, error) {
	line, err := d.next()
	if err != nil {
		return false, err
	}
	return line != "x", nil
}

func (d *scriptedDisplay) ShowGoodbye() { d.record("goodbye") }

func (d *scriptedDisplay) ChooseMode(ctx context.Context) (domain.Mode, error) {
	line, err := d.next()
	return domain.Mode(line), err
}

func (d *scriptedDisplay) RequestEntry(ctx context.Context) (domain.WordEntry, error) {
	word, err := d.next()
	if err != nil {
		return domain.WordEntry{}, err
	}
	clue, err := d.next()
	if err != nil {
		return domain.WordEntry{}, err
	}
	return domain.WordEntry{Word: word, Clue: clue}, nil
}

func (d *scriptedDisplay) ShowEntryAdded(entry domain.WordEntry) { d.record("added %s", entry.Word) }

func (d *scriptedDisplay) ShowInvalidEntry(err error) { d.record("invalid entry") }

func (d *scriptedDisplay) PromptAddAnother(ctx context.Context) (bool, error) {
	line, err := d.next()
	if err != nil {
		return false, err
	}
	return line == "y", nil
}
