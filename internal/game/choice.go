package game

// Choice is a player's move. The zero value None marks an unrevealed
// choice and is never a legal reveal.
type Choice uint8

const (
	None Choice = iota
	Rock
	Paper
	Scissors
)

// choiceLabels is the canonical preimage text per choice. The order is
// fixed: it must byte-for-byte match the text a committing party used
// off-system to produce its commitment.
var choiceLabels = [...]string{
	None:     "None",
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
}

func (c Choice) Label() string {
	if int(c) >= len(choiceLabels) {
		return choiceLabels[None]
	}
	return choiceLabels[c]
}

func (c Choice) String() string {
	return c.Label()
}

// ChoiceFromInt maps the wire values 1/2/3 to Rock/Paper/Scissors.
// 0 is reserved for None and rejected along with everything else.
func ChoiceFromInt(v int) (Choice, error) {
	switch v {
	case 1:
		return Rock, nil
	case 2:
		return Paper, nil
	case 3:
		return Scissors, nil
	}
	return None, ErrInvalidChoiceRange
}
