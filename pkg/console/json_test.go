package console

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/hangman/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEvents(t *testing.T, out *bytes.Buffer) []Event {
	t.Helper()
	var events []Event
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		var e Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		events = append(events, e)
	}
	return events
}

func TestJSONDisplay_Output(t *testing.T) {
	out := &bytes.Buffer{}
	d := NewJSONDisplay(strings.NewReader(""), out)

	d.ShowClue("animal")
	d.ShowRoundState(domain.RoundView{Reveal: "_a_", Wrong: []rune{'x'}, WrongCount: 1, MaxWrong: 3})
	d.ShowAlreadyGuessed('x')
	d.ShowOutcome(false, "cat")

	events := decodeEvents(t, out)
	require.Len(t, events, 4)

	assert.Equal(t, EventClue, events[0].Type)
	assert.Equal(t, "animal", events[0].Text)

	require.NotNil(t, events[1].State)
	assert.Equal(t, RoundState{Reveal: "_a_", Wrong: []string{"x"}, WrongCount: 1, MaxWrong: 3}, *events[1].State)

	assert.Equal(t, "x", events[2].Letter)

	require.NotNil(t, events[3].Won)
	assert.False(t, *events[3].Won)
	assert.Equal(t, "cat", events[3].Word)
}

func TestJSONDisplay_Input(t *testing.T) {
	out := &bytes.Buffer{}
	d := NewJSONDisplay(strings.NewReader("\"a\"\nb\n"), out)
	ctx := context.Background()

	got, err := d.RequestLetter(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	got, err = d.RequestLetter(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = d.RequestLetter(ctx)
	assert.ErrorIs(t, err, io.EOF)

	events := decodeEvents(t, out)
	require.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, EventLetterRequest, e.Type)
	}
}

func TestJSONDisplay_Prompts(t *testing.T) {
	d := NewJSONDisplay(strings.NewReader("nope\nadmin\ncat\nAnimal\nyes\nexit\n"), &bytes.Buffer{})
	ctx := context.Background()

	mode, err := d.ChooseMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAdmin, mode)

	entry, err := d.RequestEntry(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.WordEntry{Word: "cat", Clue: "Animal"}, entry)

	again, err := d.PromptAddAnother(ctx)
	require.NoError(t, err)
	assert.True(t, again)

	cont, err := d.PromptContinueOrExit(ctx)
	require.NoError(t, err)
	assert.False(t, cont)
}

func TestJSONDisplay_Cancelled(t *testing.T) {
	out := &bytes.Buffer{}
	d := NewJSONDisplay(strings.NewReader("a\n"), out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.RequestLetter(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestJSONDisplay_RejectedLinesArePrompted(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{"Oversized", strings.Repeat("a", DefaultMaxInputSize+44), ErrInputTooLarge.Error()},
		{"Invalid UTF-8", "\xff", ErrInvalidUTF8.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			d := NewJSONDisplay(strings.NewReader(tt.line+"\ng\n"), out)

			letter, err := d.RequestLetter(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "g", letter)

			events := decodeEvents(t, out)
			require.Len(t, events, 2)
			assert.Equal(t, EventLetterRequest, events[0].Type)
			assert.Equal(t, EventInvalidInput, events[1].Type)
			assert.Contains(t, events[1].Error, tt.wantErr)
		})
	}
}

func TestJSONDisplay_RejectedLastLineIsEOF(t *testing.T) {
	d := NewJSONDisplay(strings.NewReader("\xff"), &bytes.Buffer{})

	_, err := d.RequestLetter(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
