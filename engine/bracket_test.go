package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

func str(s string) *string { return &s }

func playedBracketMatch(stage models.BracketStage, round, pos int, t1, t2, winner string) models.BracketMatch {
	return models.BracketMatch{
		Stage: stage, BracketRound: round, Position: pos,
		Team1: str(t1), Team2: str(t2), WinnerName: str(winner), IsPlayed: true,
	}
}

func TestResolvedWinnerPendingWhenUnplayed(t *testing.T) {
	m := models.BracketMatch{
		Stage: models.StageBracket, BracketRound: 1, Position: 1,
		Team1: str("A"), Team2: str("B"), IsPlayed: false,
	}
	_, ok := ResolvedWinner(m)
	assert.False(t, ok)
}

func TestResolvedWinnerRequiresParticipant(t *testing.T) {
	m := playedBracketMatch(models.StageBracket, 1, 1, "A", "B", "C")
	_, ok := ResolvedWinner(m)
	assert.False(t, ok)

	m = playedBracketMatch(models.StageBracket, 1, 1, "A", "B", "B")
	w, ok := ResolvedWinner(m)
	require.True(t, ok)
	assert.Equal(t, "B", w)
}

func TestResolvedWinnerTBDSlots(t *testing.T) {
	// Next-round slot waiting on prior results: no teams assigned yet.
	m := models.BracketMatch{Stage: models.StagePlayoff, BracketRound: 2, Position: 1, IsPlayed: false}
	_, ok := ResolvedWinner(m)
	assert.False(t, ok)
}

func TestValidateBracketResult(t *testing.T) {
	assert.NoError(t, ValidateBracketResult(models.BracketMatch{IsPlayed: false}))

	err := ValidateBracketResult(models.BracketMatch{
		Team1: str("A"), Team2: str("B"), IsPlayed: true,
	})
	assert.ErrorIs(t, err, ErrInvalidMatch)

	err = ValidateBracketResult(playedBracketMatch(models.StageBracket, 1, 1, "A", "B", "C"))
	assert.ErrorIs(t, err, ErrInvalidMatch)

	assert.NoError(t, ValidateBracketResult(playedBracketMatch(models.StageBracket, 1, 1, "A", "B", "A")))
}

func TestRoundWinnersSkipsPending(t *testing.T) {
	matches := []models.BracketMatch{
		playedBracketMatch(models.StageBracket, 2, 2, "C", "D", "D"),
		playedBracketMatch(models.StageBracket, 2, 1, "A", "B", "A"),
		{Stage: models.StageBracket, BracketRound: 2, Position: 3, Team1: str("E"), Team2: str("F")},
		playedBracketMatch(models.StagePlayoff, 2, 1, "P", "Q", "Q"), // other stage
	}

	winners := RoundWinners(matches, models.StageBracket, 2)
	assert.Equal(t, []string{"A", "D"}, winners)
}

func TestResolveBracketOrdersAndAnnotates(t *testing.T) {
	matches := []models.BracketMatch{
		{Stage: models.StagePlayoff, BracketRound: 2, Position: 1, Team1: str("A"), Team2: str("C")},
		playedBracketMatch(models.StagePlayoff, 1, 2, "C", "D", "C"),
		playedBracketMatch(models.StagePlayoff, 1, 1, "A", "B", "A"),
	}

	state := ResolveBracket(matches, models.StagePlayoff)
	require.Len(t, state.Matches, 3)
	assert.Equal(t, 1, state.Matches[0].Match.BracketRound)
	assert.Equal(t, 1, state.Matches[0].Match.Position)
	require.NotNil(t, state.Matches[0].Winner)
	assert.Equal(t, "A", *state.Matches[0].Winner)
	assert.Nil(t, state.Matches[2].Winner)
}
