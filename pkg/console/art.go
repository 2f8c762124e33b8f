package console

// gallows holds one drawing per stage, from an empty scene to the full figure.
var gallows = []string{
	"",
	`
 +---+
     |
     |
     |
    ===`,
	`
 +---+
 O   |
     |
     |
    ===`,
	`
 +---+
 O   |
/|\  |
/ \  |
    ===`,
}

const winnerArt = `
 \O/
  |
 / \`

// gallowsStage maps a wrong-guess count onto the available drawings,
// so any limit ends on the full figure.
func gallowsStage(wrong, max int) string {
	if wrong <= 0 || max <= 0 {
		return gallows[0]
	}
	last := len(gallows) - 1
	if wrong >= max {
		return gallows[last]
	}
	stage := wrong * last / max
	if stage == 0 {
		stage = 1
	}
	return gallows[stage]
}
