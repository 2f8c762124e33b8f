package console

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/hangman/pkg/domain"
)

// Event is one line of JSONDisplay output.
type Event struct {
	Type     string            `json:"type"`
	State    *RoundState       `json:"state,omitempty"`
	Settings *domain.Settings  `json:"settings,omitempty"`
	Text     string            `json:"text,omitempty"`
	Letter   string            `json:"letter,omitempty"`
	Won      *bool             `json:"won,omitempty"`
	Word     string            `json:"word,omitempty"`
	Entry    *domain.WordEntry `json:"entry,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// RoundState is the JSON form of domain.RoundView.
type RoundState struct {
	Reveal     string   `json:"reveal"`
	Wrong      []string `json:"wrong"`
	WrongCount int      `json:"wrong_count"`
	MaxWrong   int      `json:"max_wrong"`
}

// Event types emitted by JSONDisplay. Types ending in "request" expect one input line.
const (
	EventWelcome         = "welcome"
	EventRoundState      = "round_state"
	EventClue            = "clue"
	EventLetterRequest   = "letter_request"
	EventInvalidInput    = "invalid_input"
	EventAlreadyGuessed  = "already_guessed"
	EventOutcome         = "outcome"
	EventContinueRequest = "continue_request"
	EventGoodbye         = "goodbye"
	EventModeRequest     = "mode_request"
	EventWordRequest     = "word_request"
	EventClueRequest     = "clue_request"
	EventEntryAdded      = "entry_added"
	EventInvalidEntry    = "invalid_entry"
	EventAnotherRequest  = "another_request"
)

// JSONDisplay implements ports.Display and ports.AdminPrompter over JSON Lines.
// Each notification is written as one Event; answers are read one per line,
// either as a JSON string ("a") or as raw text (a).
type JSONDisplay struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONDisplay creates a display for JSON IO.
func NewJSONDisplay(r io.Reader, w io.Writer) *JSONDisplay {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONDisplay{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (d *JSONDisplay) emit(e Event) {
	_ = d.Encoder.Encode(e)
}

func (d *JSONDisplay) ShowWelcome(settings domain.Settings) {
	d.emit(Event{Type: EventWelcome, Settings: &settings})
}

func (d *JSONDisplay) ShowRoundState(view domain.RoundView) {
	d.emit(Event{Type: EventRoundState, State: &RoundState{
		Reveal:     view.Reveal,
		Wrong:      view.WrongLetters(),
		WrongCount: view.WrongCount,
		MaxWrong:   view.MaxWrong,
	}})
}

func (d *JSONDisplay) ShowClue(clue string) {
	d.emit(Event{Type: EventClue, Text: clue})
}

func (d *JSONDisplay) RequestLetter(ctx context.Context) (string, error) {
	return d.ask(ctx, Event{Type: EventLetterRequest})
}

func (d *JSONDisplay) ShowInvalidInput() {
	d.emit(Event{Type: EventInvalidInput})
}

func (d *JSONDisplay) ShowAlreadyGuessed(letter rune) {
	d.emit(Event{Type: EventAlreadyGuessed, Letter: string(letter)})
}

func (d *JSONDisplay) ShowOutcome(won bool, word string) {
	d.emit(Event{Type: EventOutcome, Won: &won, Word: word})
}

func (d *JSONDisplay) PromptContinueOrExit(ctx context.Context) (bool, error) {
	answer, err := d.ask(ctx, Event{Type: EventContinueRequest})
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "x", "exit", "false", "no":
		return false, nil
	}
	return true, nil
}

func (d *JSONDisplay) ShowGoodbye() {
	d.emit(Event{Type: EventGoodbye})
}

func (d *JSONDisplay) ChooseMode(ctx context.Context) (domain.Mode, error) {
	for {
		answer, err := d.ask(ctx, Event{Type: EventModeRequest})
		if err != nil {
			return "", err
		}
		switch mode := domain.Mode(strings.ToLower(answer)); mode {
		case domain.ModeAdmin, domain.ModePlay, domain.ModeExit:
			return mode, nil
		}
		d.emit(Event{Type: EventInvalidInput, Text: answer})
	}
}

func (d *JSONDisplay) RequestEntry(ctx context.Context) (domain.WordEntry, error) {
	word, err := d.ask(ctx, Event{Type: EventWordRequest})
	if err != nil {
		return domain.WordEntry{}, err
	}
	clue, err := d.ask(ctx, Event{Type: EventClueRequest})
	if err != nil {
		return domain.WordEntry{}, err
	}
	return domain.WordEntry{Word: word, Clue: clue}, nil
}

func (d *JSONDisplay) ShowEntryAdded(entry domain.WordEntry) {
	d.emit(Event{Type: EventEntryAdded, Entry: &entry})
}

func (d *JSONDisplay) ShowInvalidEntry(err error) {
	d.emit(Event{Type: EventInvalidEntry, Error: err.Error()})
}

func (d *JSONDisplay) PromptAddAnother(ctx context.Context) (bool, error) {
	answer, err := d.ask(ctx, Event{Type: EventAnotherRequest})
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "true":
		return true, nil
	}
	return false, nil
}

// ask emits the request and reads the answer line.
// Lines rejected by SanitizeLine are reported as invalid_input and the next line is read.
func (d *JSONDisplay) ask(ctx context.Context, request Event) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d.emit(request)

	for {
		text, err := d.Reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return "", err
		}
		text = strings.TrimSpace(text)

		// Try to unquote if it's a JSON string
		var val string
		if err := json.Unmarshal([]byte(text), &val); err == nil {
			text = val
		}

		clean, err := SanitizeLine(text)
		if err != nil {
			d.emit(Event{Type: EventInvalidInput, Error: err.Error()})
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			continue
		}
		return strings.TrimSpace(clean), nil
	}
}
