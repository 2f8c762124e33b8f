package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/hangman/pkg/domain"
)

// DefaultPath is the word file used when none is configured.
const DefaultPath = "words.csv"

// Header is written as the first line of a new word file.
const Header = "word,clue"

// Store implements ports.WordStore over a comma-delimited text file.
// The first line is a header and is always skipped; every other line is "word,clue".
// Fields beyond the second are ignored and quoting is not supported.
type Store struct {
	Path   string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report skipped lines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store for the given path.
// If path is empty, it defaults to DefaultPath.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{
		Path:   path,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the file and returns the entries of every line with at least two fields.
func (s *Store) Load(ctx context.Context) ([]domain.WordEntry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, s.Path)
		}
		return nil, fmt.Errorf("failed to open word file: %w", err)
	}
	defer f.Close()

	return s.parse(f)
}

func (s *Store) parse(r io.Reader) ([]domain.WordEntry, error) {
	var entries []domain.WordEntry

	reader := bufio.NewReader(r)
	line := 0
	for {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read word file: %w", err)
		}
		if text == "" && err == io.EOF {
			break
		}
		line++
		if line > 1 { // line 1 is the header
			if entry, ok := s.parseLine(strings.TrimRight(text, "\r\n"), line); ok {
				entries = append(entries, entry)
			}
		}
		if err == io.EOF {
			break
		}
	}

	return entries, nil
}

func (s *Store) parseLine(text string, line int) (domain.WordEntry, bool) {
	parts := strings.Split(text, ",")
	if len(parts) < 2 {
		if strings.TrimSpace(text) != "" {
			s.logger.Debug("Skipping malformed line", "path", s.Path, "line", line)
		}
		return domain.WordEntry{}, false
	}
	return domain.WordEntry{
		Word: strings.ToLower(strings.TrimSpace(parts[0])),
		Clue: strings.TrimSpace(parts[1]),
	}, true
}

// Append adds "word,clue" at the end of the file.
// A missing file is created with the header line first.
func (s *Store) Append(ctx context.Context, entry domain.WordEntry) error {
	prefix, err := s.appendPrefix()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open word file for append: %w", err)
	}

	_, err = fmt.Fprintf(f, "%s%s,%s\n", prefix, entry.Word, entry.Clue)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to append to word file: %w", err)
	}
	return nil
}

// appendPrefix returns what must precede the new line: the header for a
// missing or empty file, a newline when the last line is unterminated.
func (s *Store) appendPrefix() (string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Header + "\n", nil
		}
		return "", fmt.Errorf("failed to open word file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat word file: %w", err)
	}
	if info.Size() == 0 {
		return Header + "\n", nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return "", fmt.Errorf("failed to read word file: %w", err)
	}
	if last[0] != '\n' {
		return "\n", nil
	}
	return "", nil
}
