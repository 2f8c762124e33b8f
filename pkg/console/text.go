package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/hangman/pkg/domain"
	"github.com/muesli/termenv"
)

// ContentRenderer is a function that transforms markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling this package.
type ContentRenderer func(string) (string, error)

// TextDisplay implements ports.Display and ports.AdminPrompter for an interactive terminal.
type TextDisplay struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	out *termenv.Output

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextOption defines configuration for TextDisplay.
type TextOption func(*TextDisplay)

// WithRenderer configures the markdown renderer used for the rules.
func WithRenderer(renderer ContentRenderer) TextOption {
	return func(d *TextDisplay) {
		d.Renderer = renderer
	}
}

// WithProfile forces a color profile. termenv.Ascii disables colors.
func WithProfile(profile termenv.Profile) TextOption {
	return func(d *TextDisplay) {
		d.out = termenv.NewOutput(d.Writer, termenv.WithProfile(profile))
	}
}

// NewTextDisplay creates a display for standard text IO.
// Colors are enabled only when w is a terminal.
func NewTextDisplay(r io.Reader, w io.Writer, opts ...TextOption) *TextDisplay {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	d := &TextDisplay{
		Reader: bufio.NewReader(r),
		Writer: w,
		out:    termenv.NewOutput(w),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *TextDisplay) colored(hex, s string) termenv.Style {
	return d.out.String(s).Foreground(d.out.Color(hex))
}

func (d *TextDisplay) println(a ...any) {
	fmt.Fprintln(d.Writer, a...)
}

const (
	colorRed     = "#f87171"
	colorGreen   = "#4ade80"
	colorYellow  = "#facc15"
	colorMagenta = "#e879f9"
)

func (d *TextDisplay) ShowWelcome(settings domain.Settings) {
	rules := fmt.Sprintf(`# Welcome to Hangman

- Guess one letter at a time (a-z).
- Only %d wrong guesses allowed.
- After each round press ENTER to play again, or X to exit.
`, settings.MaxWrong)

	output := rules
	if d.Renderer != nil {
		if rendered, err := d.Renderer(rules); err == nil {
			output = rendered
		}
	}
	d.println(d.colored(colorMagenta, strings.TrimSpace(output)))
}

func (d *TextDisplay) ShowRoundState(view domain.RoundView) {
	letters := strings.Split(strings.ToUpper(view.Reveal), "")
	d.println()
	d.println("Word:", strings.Join(letters, " "))
	d.println(fmt.Sprintf("Wrong guesses (%d/%d): %s", view.WrongCount, view.MaxWrong, strings.Join(view.WrongLetters(), ", ")))

	art := gallowsStage(view.WrongCount, view.MaxWrong)
	if art == "" {
		return
	}
	if view.WrongCount >= view.MaxWrong {
		d.println(d.colored(colorRed, art))
		return
	}
	d.println(art)
}

func (d *TextDisplay) ShowClue(clue string) {
	d.println()
	d.println(d.colored(colorYellow, "Clue: "+strings.ToUpper(clue)))
}

func (d *TextDisplay) RequestLetter(ctx context.Context) (string, error) {
	return d.ask(ctx, "\nEnter a letter: ")
}

func (d *TextDisplay) ShowInvalidInput() {
	d.println(d.colored(colorRed, "Invalid input. Enter one letter (a-z)."))
}

func (d *TextDisplay) ShowAlreadyGuessed(letter rune) {
	d.println(d.colored(colorYellow, fmt.Sprintf("You already guessed '%c'. Try another.", letter)))
}

func (d *TextDisplay) ShowOutcome(won bool, word string) {
	word = strings.ToUpper(word)
	if won {
		d.println(d.colored(colorGreen, "\nYOU WON!"))
		d.println(d.colored(colorGreen, "The word was: "+word))
		d.println(d.colored(colorGreen, winnerArt))
		return
	}
	d.println(d.colored(colorRed, "\nGAME OVER"))
	d.println(d.colored(colorRed, "The word was: "+word))
}

func (d *TextDisplay) PromptContinueOrExit(ctx context.Context) (bool, error) {
	d.println("\n-----------------------------------------")
	answer, err := d.ask(ctx, "Press ENTER to play again, or X to exit: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "x", "exit":
		return false, nil
	}
	return true, nil
}

func (d *TextDisplay) ShowGoodbye() {
	d.println("\nThanks for playing Hangman! Goodbye.")
}

func (d *TextDisplay) ChooseMode(ctx context.Context) (domain.Mode, error) {
	for {
		answer, err := d.ask(ctx, "\nAre you an Admin (A) or a User (U)? (X to exit): ")
		if err != nil {
			return "", err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "a", "admin":
			return domain.ModeAdmin, nil
		case "u", "user":
			return domain.ModePlay, nil
		case "x", "exit":
			return domain.ModeExit, nil
		}
		d.println(d.colored(colorRed, "Invalid choice. Please enter A, U, or X."))
	}
}

func (d *TextDisplay) RequestEntry(ctx context.Context) (domain.WordEntry, error) {
	word, err := d.ask(ctx, "Enter a new word: ")
	if err != nil {
		return domain.WordEntry{}, err
	}
	clue, err := d.ask(ctx, "Enter a clue for this word: ")
	if err != nil {
		return domain.WordEntry{}, err
	}
	return domain.WordEntry{Word: word, Clue: clue}, nil
}

func (d *TextDisplay) ShowEntryAdded(entry domain.WordEntry) {
	d.println(d.colored(colorGreen, fmt.Sprintf("Word '%s' with clue '%s' added.", entry.Word, entry.Clue)))
}

func (d *TextDisplay) ShowInvalidEntry(err error) {
	d.println(d.colored(colorRed, fmt.Sprintf("Invalid input: %v", err)))
}

func (d *TextDisplay) PromptAddAnother(ctx context.Context) (bool, error) {
	answer, err := d.ask(ctx, "Do you want to add another word? (Y/N): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// ask prints the prompt and waits for one sanitized line.
// It returns ctx.Err() if the context ends first, io.EOF once input is closed.
func (d *TextDisplay) ask(ctx context.Context, prompt string) (string, error) {
	d.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(d.Writer, prompt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-d.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeLine(strings.TrimRight(res.text, "\r\n"))
			if err != nil {
				fmt.Fprintf(d.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return strings.TrimSpace(clean), nil
		}
	}
}

func (d *TextDisplay) initPump() {
	d.startOnce.Do(func() {
		d.inputChan = make(chan inputResult)
		go d.pump()
	})
}

// pump reads lines in the background so a blocked read can be abandoned on cancellation.
func (d *TextDisplay) pump() {
	defer close(d.inputChan)
	for {
		text, err := d.Reader.ReadString('\n')
		if text != "" {
			d.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				d.inputChan <- inputResult{err: err}
			}
			return
		}
	}
}
