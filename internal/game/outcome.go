package game

// Outcome is the result of comparing two revealed choices.
type Outcome uint8

const (
	Draw Outcome = iota
	FirstWins
	SecondWins
)

// beats is the fixed dominance cycle: Rock beats Scissors, Paper beats
// Rock, Scissors beats Paper.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Resolve compares two choices under the dominance cycle. Both inputs
// must be in {Rock, Paper, Scissors}; None never reaches this point.
func Resolve(a, b Choice) Outcome {
	if a == b {
		return Draw
	}
	if beats[a] == b {
		return FirstWins
	}
	return SecondWins
}
