/*
Package words implements the word source of the game.

A Source wraps any ports.WordStore (file, memory, redis) and adds the rules the
stores do not enforce: normalization (trimmed, lowercase words), validation
(non-blank fields, letters a-z only) and uniform random selection through an
injected ports.Picker.

# Usage

	src := words.NewSource(file.New("words.csv"), words.WithSeed(42))
	if _, err := src.Load(ctx); err != nil {
		return err // domain.ErrSourceNotFound or domain.ErrEmptySource
	}
	entry, _ := src.PickRandom()
*/
package words
