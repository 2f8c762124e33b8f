package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/hangman/pkg/domain"
	"github.com/aretw0/hangman/pkg/ports"
)

// Session plays rounds against a word source until the player exits.
// It is single-threaded: every suspension point is a blocking display call.
type Session struct {
	source   ports.WordSource
	display  ports.Display
	admin    ports.AdminPrompter
	settings domain.Settings
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	id       string

	rounds int
}

// NewSession creates a Session with default settings.
func NewSession(source ports.WordSource, display ports.Display, opts ...Option) *Session {
	s := &Session{
		source:   source,
		display:  display,
		settings: domain.DefaultSettings(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.admin == nil {
		if p, ok := display.(ports.AdminPrompter); ok {
			s.admin = p
		}
	}
	if s.settings.MaxWrong <= 0 {
		s.settings.MaxWrong = domain.DefaultMaxWrong
	}
	if s.id != "" {
		s.logger = s.logger.With("session_id", s.id)
	}
	return s
}

// Rounds returns the number of rounds started so far.
func (s *Session) Rounds() int {
	return s.rounds
}

// Run starts the session. With admin enabled it shows the mode menu,
// otherwise it goes straight to the game loop.
// Returns domain.ErrSourceNotFound or domain.ErrEmptySource when the words
// cannot be loaded, and the display error (e.g. io.EOF, context.Canceled)
// when input stops.
func (s *Session) Run(ctx context.Context) error {
	if s.settings.EnableAdmin {
		if s.admin == nil {
			return errors.New("admin mode requires an admin prompter")
		}
		return s.menu(ctx)
	}

	if err := s.Play(ctx); err != nil {
		return err
	}
	s.display.ShowGoodbye()
	return nil
}

func (s *Session) menu(ctx context.Context) error {
	for {
		mode, err := s.admin.ChooseMode(ctx)
		if err != nil {
			return err
		}
		s.logger.Debug("Mode selected", "mode", mode)

		switch mode {
		case domain.ModeAdmin:
			if err := s.Admin(ctx); err != nil {
				return err
			}
		case domain.ModePlay:
			if err := s.Play(ctx); err != nil {
				return err
			}
		case domain.ModeExit:
			s.display.ShowGoodbye()
			return nil
		default:
			return fmt.Errorf("unknown mode %q", mode)
		}
	}
}

// Play (re)loads the word source and plays rounds until the player exits.
func (s *Session) Play(ctx context.Context) error {
	if _, err := s.source.Load(ctx); err != nil {
		return fmt.Errorf("failed to load words: %w", err)
	}

	s.display.ShowWelcome(s.settings)
	for {
		if _, err := s.PlayRound(ctx); err != nil {
			return err
		}

		again, err := s.display.PromptContinueOrExit(ctx)
		if err != nil {
			return err
		}
		if !again {
			s.logger.Info("Player exited", "rounds", s.rounds)
			return nil
		}
		s.display.ShowWelcome(s.settings)
	}
}

// PlayRound picks a word and asks for letters until the round is won or lost.
// Invalid and repeated guesses are reported and do not consume a turn.
func (s *Session) PlayRound(ctx context.Context) (domain.Status, error) {
	entry, err := s.source.PickRandom()
	if err != nil {
		return "", err
	}
	round, err := domain.NewRound(entry, s.settings.MaxWrong)
	if err != nil {
		return "", err
	}

	s.rounds++
	if s.hooks.OnRoundStart != nil {
		s.hooks.OnRoundStart(ctx, s.roundEvent(domain.EventRoundStart, round))
	}

	if s.settings.ShowClue {
		s.display.ShowClue(entry.Clue)
	}
	s.display.ShowRoundState(round.View())

	for !round.Over() {
		input, err := s.display.RequestLetter(ctx)
		if err != nil {
			return "", err
		}

		letter, outcome, err := Guess(round, input)
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			s.logger.Debug("Rejected guess", "err", err)
			s.display.ShowInvalidInput()
			continue
		case errors.Is(err, domain.ErrAlreadyGuessed):
			s.display.ShowAlreadyGuessed(letter)
			continue
		case err != nil:
			return "", err
		}

		if s.hooks.OnGuess != nil {
			s.hooks.OnGuess(ctx, &domain.GuessEvent{
				EventBase: s.eventBase(domain.EventGuess),
				Round:     s.rounds,
				Letter:    string(letter),
				Outcome:   outcome,
			})
		}
		s.display.ShowRoundState(round.View())
	}

	status := round.Status()
	s.display.ShowOutcome(status == domain.StatusWon, round.Word)
	if s.hooks.OnRoundEnd != nil {
		s.hooks.OnRoundEnd(ctx, s.roundEvent(domain.EventRoundEnd, round))
	}
	s.logger.Info("Round finished", "round", s.rounds, "status", status, "wrong", len(round.WrongGuesses()))

	return status, nil
}

// Admin asks for new entries and appends them to the word source until the
// player declines to add another. Rejected entries are reported, not returned.
func (s *Session) Admin(ctx context.Context) error {
	if s.admin == nil {
		return errors.New("admin flow requires an admin prompter")
	}

	for {
		entry, err := s.admin.RequestEntry(ctx)
		if err != nil {
			return err
		}

		saved, err := s.source.Append(ctx, entry)
		switch {
		case errors.Is(err, domain.ErrInvalidEntry):
			s.admin.ShowInvalidEntry(err)
		case err != nil:
			return err
		default:
			s.admin.ShowEntryAdded(saved)
			s.logger.Info("Entry added", "word", saved.Word)
			if s.hooks.OnEntryAdded != nil {
				s.hooks.OnEntryAdded(ctx, &domain.EntryEvent{
					EventBase: s.eventBase(domain.EventEntryAdded),
					Word:      saved.Word,
				})
			}
		}

		again, err := s.admin.PromptAddAnother(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) eventBase(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		SessionID: s.id,
	}
}

func (s *Session) roundEvent(t domain.EventType, round *domain.Round) *domain.RoundEvent {
	return &domain.RoundEvent{
		EventBase:  s.eventBase(t),
		Round:      s.rounds,
		WordLength: len(round.Word),
		Status:     round.Status(),
		WrongCount: len(round.WrongGuesses()),
	}
}
