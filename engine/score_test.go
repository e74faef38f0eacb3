package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideWinnerByScore(t *testing.T) {
	winner, loser, err := DecideWinner(Result{Team1: "LitEnergy", Team2: "K9", Team1Score: 16, Team2Score: 9})
	require.NoError(t, err)
	assert.Equal(t, "LitEnergy", winner)
	assert.Equal(t, "K9", loser)

	winner, loser, err = DecideWinner(Result{Team1: "LitEnergy", Team2: "K9", Team1Score: 7, Team2Score: 16})
	require.NoError(t, err)
	assert.Equal(t, "K9", winner)
	assert.Equal(t, "LitEnergy", loser)
}

func TestDecideWinnerRejectsTies(t *testing.T) {
	_, _, err := DecideWinner(Result{Team1: "A", Team2: "B", Team1Score: 15, Team2Score: 15})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMatch)
	assert.True(t, IsInvalidMatch(err))
}

func TestDecideWinnerRejectsNegativeScores(t *testing.T) {
	_, _, err := DecideWinner(Result{Team1: "A", Team2: "B", Team1Score: -1, Team2Score: 16})
	assert.ErrorIs(t, err, ErrInvalidMatch)
}

func TestDecideWinnerTechnicalWin(t *testing.T) {
	winner, loser, err := DecideWinner(Result{Team1: "A", Team2: "B", TechnicalWin: true, TechnicalWinner: "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", winner)
	assert.Equal(t, "A", loser)

	// Scores are ignored entirely on a technical win, even tied ones.
	winner, _, err = DecideWinner(Result{Team1: "A", Team2: "B", Team1Score: 10, Team2Score: 10, TechnicalWin: true, TechnicalWinner: "A"})
	require.NoError(t, err)
	assert.Equal(t, "A", winner)
}

func TestDecideWinnerTechnicalWinnerMustParticipate(t *testing.T) {
	_, _, err := DecideWinner(Result{Team1: "A", Team2: "B", TechnicalWin: true, TechnicalWinner: "C"})
	assert.ErrorIs(t, err, ErrInvalidMatch)

	_, _, err = DecideWinner(Result{Team1: "A", Team2: "B", TechnicalWin: true})
	assert.ErrorIs(t, err, ErrInvalidMatch)
}
