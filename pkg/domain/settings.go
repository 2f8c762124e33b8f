package domain

// Settings are the feature flags shared by every game variant.
type Settings struct {
	// ShowClue displays the clue of the secret word at the start of each round.
	ShowClue bool `json:"show_clue"`

	// EnableAdmin offers the mode menu, which allows adding words before playing.
	EnableAdmin bool `json:"enable_admin"`

	// MaxWrong is the number of wrong guesses that loses a round.
	MaxWrong int `json:"max_wrong"`
}

// DefaultSettings returns the settings of the standard game.
func DefaultSettings() Settings {
	return Settings{
		ShowClue:    true,
		EnableAdmin: false,
		MaxWrong:    DefaultMaxWrong,
	}
}

// Mode is an entry of the mode menu.
type Mode string

const (
	ModePlay  Mode = "play"
	ModeAdmin Mode = "admin"
	ModeExit  Mode = "exit"
)
