package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

func groupMatch(id int, group, t1, t2 string, s1, s2 int) models.GroupMatch {
	return models.GroupMatch{ID: id, GroupName: group, Team1: t1, Team2: t2, Team1Score: s1, Team2Score: s2}
}

func TestComputeGroupStandingsRanking(t *testing.T) {
	teams := []string{"X", "Y", "Z"}
	matches := []models.GroupMatch{
		groupMatch(1, "A", "X", "Y", 16, 5),
		groupMatch(2, "A", "X", "Z", 16, 10),
		groupMatch(3, "A", "Y", "Z", 16, 3),
	}

	standings, warnings := ComputeGroupStandings("A", teams, matches)
	require.Empty(t, warnings)
	require.Len(t, standings, 3)

	x := standings[0]
	assert.Equal(t, "X", x.TeamName)
	assert.Equal(t, 2, x.Wins)
	assert.Equal(t, 0, x.Losses)
	assert.Equal(t, 4, x.Points)
	assert.Equal(t, 17, x.RoundDifference)
	assert.Equal(t, 1, x.Position)

	y := standings[1]
	assert.Equal(t, "Y", y.TeamName)
	assert.Equal(t, 1, y.Wins)
	assert.Equal(t, 1, y.Losses)
	assert.Equal(t, 2, y.Points)
	assert.Equal(t, -2, y.RoundDifference)
	assert.Equal(t, 2, y.Position)

	z := standings[2]
	assert.Equal(t, "Z", z.TeamName)
	assert.Equal(t, 0, z.Wins)
	assert.Equal(t, 2, z.Losses)
	assert.Equal(t, 0, z.Points)
	assert.Equal(t, -15, z.RoundDifference)
	assert.Equal(t, 3, z.Position)
}

func TestComputeGroupStandingsTechnicalWin(t *testing.T) {
	winner := "A"
	matches := []models.GroupMatch{
		{ID: 1, GroupName: "B", Team1: "A", Team2: "B", TechnicalWin: true, TechnicalWinner: &winner},
	}

	standings, warnings := ComputeGroupStandings("B", []string{"A", "B"}, matches)
	require.Empty(t, warnings)

	a, b := standings[0], standings[1]
	assert.Equal(t, "A", a.TeamName)
	assert.Equal(t, 1, a.Wins)
	assert.Equal(t, 1, a.MatchesPlayed)
	assert.Equal(t, 0, a.RoundsWon)
	assert.Equal(t, 0, a.RoundsLost)
	assert.Equal(t, 2, a.Points)

	assert.Equal(t, "B", b.TeamName)
	assert.Equal(t, 1, b.Losses)
	assert.Equal(t, 1, b.MatchesPlayed)
	assert.Equal(t, 0, b.RoundsLost)
}

func TestComputeGroupStandingsDeterministic(t *testing.T) {
	teams := []string{"X", "Y", "Z"}
	matches := []models.GroupMatch{
		groupMatch(1, "A", "X", "Y", 16, 5),
		groupMatch(2, "A", "Y", "Z", 16, 14),
	}

	first, _ := ComputeGroupStandings("A", teams, matches)
	second, _ := ComputeGroupStandings("A", teams, matches)
	assert.Equal(t, first, second)
}

func TestComputeGroupStandingsSkipsInvalidMatch(t *testing.T) {
	matches := []models.GroupMatch{
		groupMatch(1, "A", "X", "Y", 16, 12),
		groupMatch(2, "A", "X", "Z", 13, 13), // tied, must be rejected but not abort
	}

	standings, warnings := ComputeGroupStandings("A", []string{"X", "Y", "Z"}, matches)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnInvalidMatch, warnings[0].Code)

	assert.Equal(t, "X", standings[0].TeamName)
	assert.Equal(t, 1, standings[0].MatchesPlayed)
	assert.Equal(t, 0, standings[2].MatchesPlayed)
}

func TestComputeGroupStandingsPointsMonotonic(t *testing.T) {
	teams := []string{"X", "Y", "Z"}
	matches := []models.GroupMatch{groupMatch(1, "A", "X", "Y", 16, 2)}

	pointsOf := func(standings []models.GroupStanding, name string) int {
		for _, s := range standings {
			if s.TeamName == name {
				return s.Points
			}
		}
		t.Fatalf("team %s missing from standings", name)
		return 0
	}

	before, _ := ComputeGroupStandings("A", teams, matches)
	matches = append(matches, groupMatch(2, "A", "Z", "X", 3, 16), groupMatch(3, "A", "X", "Y", 2, 16))
	after, _ := ComputeGroupStandings("A", teams, matches)

	assert.GreaterOrEqual(t, pointsOf(after, "X"), pointsOf(before, "X"))
}

func TestComputeGroupStandingsEmptyGroup(t *testing.T) {
	standings, warnings := ComputeGroupStandings("C", []string{"M", "N"}, nil)
	require.Empty(t, warnings)
	require.Len(t, standings, 2)
	// Roster order, zero stats, still ranked.
	assert.Equal(t, "M", standings[0].TeamName)
	assert.Equal(t, 1, standings[0].Position)
	assert.Equal(t, 0, standings[0].MatchesPlayed)
	assert.Equal(t, "N", standings[1].TeamName)
	assert.Equal(t, 2, standings[1].Position)
}
