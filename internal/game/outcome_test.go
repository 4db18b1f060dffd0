package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDrawOnEqual(t *testing.T) {
	for _, choice := range []Choice{Rock, Paper, Scissors} {
		assert.Equal(t, Draw, Resolve(choice, choice))
	}
}

func TestResolveCycle(t *testing.T) {
	tests := []struct {
		name string
		a, b Choice
		want Outcome
	}{
		{"rock beats scissors", Rock, Scissors, FirstWins},
		{"paper beats rock", Paper, Rock, FirstWins},
		{"scissors beats paper", Scissors, Paper, FirstWins},
		{"scissors loses to rock", Scissors, Rock, SecondWins},
		{"rock loses to paper", Rock, Paper, SecondWins},
		{"paper loses to scissors", Paper, Scissors, SecondWins},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Resolve(test.a, test.b))
		})
	}
}

func TestResolveAntisymmetric(t *testing.T) {
	choices := []Choice{Rock, Paper, Scissors}
	for _, a := range choices {
		for _, b := range choices {
			if a == b {
				continue
			}
			forward := Resolve(a, b)
			backward := Resolve(b, a)
			if forward == FirstWins {
				assert.Equal(t, SecondWins, backward)
			} else {
				assert.Equal(t, FirstWins, backward)
			}
		}
	}
}

func TestChoiceFromInt(t *testing.T) {
	tests := []struct {
		in      int
		want    Choice
		wantErr error
	}{
		{1, Rock, nil},
		{2, Paper, nil},
		{3, Scissors, nil},
		{0, None, ErrInvalidChoiceRange},
		{4, None, ErrInvalidChoiceRange},
		{-1, None, ErrInvalidChoiceRange},
	}
	for _, test := range tests {
		choice, err := ChoiceFromInt(test.in)
		assert.Equal(t, test.want, choice)
		assert.ErrorIs(t, err, test.wantErr)
	}
}

func TestChoiceLabels(t *testing.T) {
	assert.Equal(t, "None", None.Label())
	assert.Equal(t, "Rock", Rock.Label())
	assert.Equal(t, "Paper", Paper.Label())
	assert.Equal(t, "Scissors", Scissors.Label())
}
