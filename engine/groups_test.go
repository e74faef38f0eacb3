package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

func TestAdvancingTeamsTopKPerGroup(t *testing.T) {
	groups := []GroupConfig{
		{Name: "A", Teams: []string{"X", "Y", "Z"}, AdvanceCount: 2},
		{Name: "B", Teams: []string{"P", "Q", "R"}, AdvanceCount: 1},
	}
	matches := []models.GroupMatch{
		groupMatch(1, "A", "X", "Y", 16, 5),
		groupMatch(2, "A", "X", "Z", 16, 10),
		groupMatch(3, "A", "Y", "Z", 16, 3),
		groupMatch(4, "B", "Q", "P", 16, 11),
		groupMatch(5, "B", "Q", "R", 16, 4),
	}

	advancing, warnings := AdvancingTeams(groups, matches)
	require.Empty(t, warnings)
	assert.Equal(t, []string{"X", "Y", "Q"}, advancing)
}

func TestComputeAllGroupsIsolation(t *testing.T) {
	groups := []GroupConfig{
		{Name: "A", Teams: []string{"X", "Y"}, AdvanceCount: 1},
		{Name: "B", Teams: []string{"P", "Q"}, AdvanceCount: 1},
	}
	// A match filed under group B must not touch group A's numbers.
	matches := []models.GroupMatch{
		groupMatch(1, "B", "P", "Q", 16, 9),
	}

	results, _ := ComputeAllGroups(groups, matches)
	require.Len(t, results, 2)
	for _, s := range results[0].Standings {
		assert.Equal(t, 0, s.MatchesPlayed)
	}
	assert.Equal(t, 1, results[1].Standings[0].MatchesPlayed)
}

func TestAdvancingTeamsCutoffAboveRosterSize(t *testing.T) {
	groups := []GroupConfig{{Name: "A", Teams: []string{"X", "Y"}, AdvanceCount: 5}}
	advancing, _ := AdvancingTeams(groups, nil)
	assert.Equal(t, []string{"X", "Y"}, advancing)
}
