package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

func TestSeedPoolFromGroups(t *testing.T) {
	groups := []GroupConfig{
		{Name: "A", Teams: []string{"X", "Y", "Z"}, AdvanceCount: 2},
	}
	matches := []models.GroupMatch{
		groupMatch(1, "A", "X", "Y", 16, 5),
		groupMatch(2, "A", "X", "Z", 16, 10),
		groupMatch(3, "A", "Y", "Z", 16, 3),
	}

	pool, warnings := SeedPoolFromGroups(groups, matches)
	require.Empty(t, warnings)
	assert.Equal(t, []string{"X", "Y"}, pool)
}

func TestQualifiedFromStage2(t *testing.T) {
	matches := []models.BracketMatch{
		playedBracketMatch(models.StageBracket, 3, 1, "A", "B", "A"),
		playedBracketMatch(models.StageBracket, 3, 2, "C", "D", "D"),
		{Stage: models.StageBracket, BracketRound: 3, Position: 3, Team1: str("E"), Team2: str("F")},
		playedBracketMatch(models.StageBracket, 2, 1, "A", "X", "A"), // earlier round
	}

	qualified := QualifiedFromStage2(matches, 3)
	assert.Equal(t, []string{"A", "D"}, qualified)
}

func TestQualifiedFromSwiss(t *testing.T) {
	records := []models.SwissTeamRecord{
		{TeamName: "A", Wins: 3, Losses: 0, Status: models.SwissQualified},
		{TeamName: "B", Wins: 3, Losses: 2, Status: models.SwissQualified},
		{TeamName: "C", Wins: 2, Losses: 2, Status: models.SwissActive},
		{TeamName: "D", Wins: 0, Losses: 3, Status: models.SwissEliminated},
	}
	assert.Equal(t, []string{"A", "B"}, QualifiedFromSwiss(records))
}

func TestPlayoffChampion(t *testing.T) {
	matches := []models.BracketMatch{
		playedBracketMatch(models.StagePlayoff, 3, 1, "A", "B", "B"),
	}
	champion, ok := PlayoffChampion(matches, 3)
	require.True(t, ok)
	assert.Equal(t, "B", champion)

	_, ok = PlayoffChampion(nil, 3)
	assert.False(t, ok)
}
