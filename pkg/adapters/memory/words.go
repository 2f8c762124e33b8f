package memory

import "github.com/aretw0/hangman/pkg/domain"

// DefaultWords returns the built-in word bank.
func DefaultWords() []domain.WordEntry {
	return []domain.WordEntry{
		{Word: "computer", Clue: "Machine that runs programs"},
		{Word: "hangman", Clue: "The game you are playing"},
		{Word: "architecture", Clue: "Overall structure of a system"},
		{Word: "programming", Clue: "Writing instructions for machines"},
		{Word: "variable", Clue: "Named storage for a value"},
		{Word: "function", Clue: "Reusable block of code"},
		{Word: "inheritance", Clue: "Deriving a type from another"},
		{Word: "polymorphism", Clue: "One interface with many forms"},
		{Word: "encapsulation", Clue: "Hiding internal state"},
		{Word: "abstraction", Clue: "Modeling only what matters"},
		{Word: "console", Clue: "Text terminal"},
		{Word: "application", Clue: "Program for end users"},
		{Word: "randomize", Clue: "Shuffle without a pattern"},
		{Word: "controller", Clue: "Coordinates model and view"},
		{Word: "view", Clue: "What the user sees"},
		{Word: "model", Clue: "Holds the data and rules"},
		{Word: "exception", Clue: "Unexpected event during execution"},
		{Word: "threading", Clue: "Running work in parallel"},
		{Word: "dictionary", Clue: "Key value collection"},
		{Word: "interface", Clue: "Contract between components"},
		{Word: "delegate", Clue: "Hand off a task"},
		{Word: "namespace", Clue: "Scope for names"},
		{Word: "algorithm", Clue: "Step by step procedure"},
		{Word: "iteration", Clue: "One pass of a loop"},
		{Word: "recursion", Clue: "A function calling itself"},
	}
}
