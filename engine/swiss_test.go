package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

func swissMatch(id, round int, t1, t2 string, s1, s2 int) models.SwissMatch {
	return models.SwissMatch{
		ID: id, RoundNumber: round, Team1: t1, Team2: t2,
		Team1Score: &s1, Team2Score: &s2, IsPlayed: true,
		MatchType: models.MatchTypeBO1,
	}
}

func recordOf(t *testing.T, records []models.SwissTeamRecord, name string) models.SwissTeamRecord {
	t.Helper()
	for _, rec := range records {
		if rec.TeamName == name {
			return rec
		}
	}
	t.Fatalf("team %s missing from records", name)
	return models.SwissTeamRecord{}
}

func TestRecomputeStandingsTally(t *testing.T) {
	teams := []string{"A", "B", "C", "D"}
	matches := []models.SwissMatch{
		swissMatch(1, 1, "A", "B", 16, 7),
		swissMatch(2, 1, "C", "D", 13, 16),
		swissMatch(3, 2, "A", "D", 16, 14),
	}

	records, warnings := RecomputeStandings(teams, matches, DefaultThresholds())
	require.Empty(t, warnings)

	a := recordOf(t, records, "A")
	assert.Equal(t, 2, a.Wins)
	assert.Equal(t, 0, a.Losses)
	assert.Equal(t, 32, a.RoundsWon)
	assert.Equal(t, 21, a.RoundsLost)
	assert.Equal(t, models.SwissActive, a.Status)

	c := recordOf(t, records, "C")
	assert.Equal(t, 0, c.Wins)
	assert.Equal(t, 1, c.Losses)
}

func TestRecomputeStandingsOrderIndependent(t *testing.T) {
	teams := []string{"A", "B", "C", "D"}
	matches := []models.SwissMatch{
		swissMatch(1, 1, "A", "B", 16, 7),
		swissMatch(2, 2, "A", "C", 16, 9),
		swissMatch(3, 3, "A", "D", 16, 3),
	}
	reversed := []models.SwissMatch{matches[2], matches[1], matches[0]}

	first, _ := RecomputeStandings(teams, matches, DefaultThresholds())
	second, _ := RecomputeStandings(teams, reversed, DefaultThresholds())
	assert.Equal(t, recordOf(t, first, "A"), recordOf(t, second, "A"))
}

func TestSwissStatusThresholds(t *testing.T) {
	teams := []string{"A", "B", "C", "D", "E"}
	matches := []models.SwissMatch{
		// A: 3-1, qualified despite the loss.
		swissMatch(1, 1, "A", "B", 16, 5),
		swissMatch(2, 2, "A", "C", 16, 8),
		swissMatch(3, 3, "A", "D", 9, 16),
		swissMatch(4, 4, "A", "E", 16, 12),
		// B: two more losses, eliminated at 0-3.
		swissMatch(5, 2, "B", "D", 10, 16),
		swissMatch(6, 3, "B", "E", 3, 16),
	}

	records, warnings := RecomputeStandings(teams, matches, DefaultThresholds())
	require.Empty(t, warnings)

	assert.Equal(t, models.SwissQualified, recordOf(t, records, "A").Status)
	assert.Equal(t, models.SwissEliminated, recordOf(t, records, "B").Status)
	assert.Equal(t, models.SwissActive, recordOf(t, records, "C").Status)
}

func TestSwissQualifiedIsTerminal(t *testing.T) {
	teams := []string{"A", "B"}
	matches := []models.SwissMatch{
		swissMatch(1, 1, "A", "B", 16, 5),
		swissMatch(2, 2, "A", "B", 16, 5),
		swissMatch(3, 3, "A", "B", 16, 5),
	}
	records, _ := RecomputeStandings(teams, matches, DefaultThresholds())
	require.Equal(t, models.SwissQualified, recordOf(t, records, "A").Status)

	// A later recorded loss (data edit) must not flip the status back to
	// active: with 3 wins on the books the team stays qualified.
	matches = append(matches, swissMatch(4, 4, "B", "A", 16, 10))
	records, _ = RecomputeStandings(teams, matches, DefaultThresholds())
	assert.Equal(t, models.SwissQualified, recordOf(t, records, "A").Status)
}

func TestSwissAmbiguousStatusQualifiedWins(t *testing.T) {
	teams := []string{"A", "B"}
	var matches []models.SwissMatch
	// Malformed edit history: A somehow has 3 wins and 3 losses.
	for i := 0; i < 3; i++ {
		matches = append(matches, swissMatch(i+1, i+1, "A", "B", 16, 5))
		matches = append(matches, swissMatch(i+4, i+4, "A", "B", 5, 16))
	}

	records, warnings := RecomputeStandings(teams, matches, DefaultThresholds())
	assert.Equal(t, models.SwissQualified, recordOf(t, records, "A").Status)

	var found bool
	for _, w := range warnings {
		if w.Code == WarnAmbiguousStatus {
			found = true
		}
	}
	assert.True(t, found, "expected an ambiguous-status warning")
}

func TestSwissTechnicalWinNoRounds(t *testing.T) {
	winner := "A"
	matches := []models.SwissMatch{
		{ID: 1, RoundNumber: 1, Team1: "A", Team2: "B", TechnicalWin: true, TechnicalWinner: &winner, IsPlayed: true},
	}
	records, warnings := RecomputeStandings([]string{"A", "B"}, matches, DefaultThresholds())
	require.Empty(t, warnings)

	a := recordOf(t, records, "A")
	assert.Equal(t, 1, a.Wins)
	assert.Equal(t, 0, a.RoundsWon)
	assert.Equal(t, 0, a.RoundsLost)
}

func TestSwissUnplayedMatchesIgnored(t *testing.T) {
	matches := []models.SwissMatch{
		{ID: 1, RoundNumber: 1, Team1: "A", Team2: "B", IsPlayed: false},
	}
	records, warnings := RecomputeStandings([]string{"A", "B"}, matches, DefaultThresholds())
	require.Empty(t, warnings)
	assert.Equal(t, 0, recordOf(t, records, "A").Wins)
	assert.Equal(t, 0, recordOf(t, records, "B").Losses)
}

func TestSuggestNextRoundPairsByRecordBucket(t *testing.T) {
	records := []models.SwissTeamRecord{
		{TeamName: "A", Wins: 2, Losses: 0, Status: models.SwissActive},
		{TeamName: "B", Wins: 2, Losses: 0, Status: models.SwissActive},
		{TeamName: "C", Wins: 1, Losses: 1, Status: models.SwissActive},
		{TeamName: "D", Wins: 1, Losses: 1, Status: models.SwissActive},
		{TeamName: "E", Wins: 3, Losses: 0, Status: models.SwissQualified},
		{TeamName: "F", Wins: 0, Losses: 3, Status: models.SwissEliminated},
	}

	pairings, unpaired := SuggestNextRound(records, nil, AdjacentPairing{})
	require.Empty(t, unpaired)
	require.Len(t, pairings, 2)

	assert.Equal(t, Pairing{Team1: "A", Team2: "B", Wins: 2, Losses: 0}, pairings[0])
	assert.Equal(t, Pairing{Team1: "C", Team2: "D", Wins: 1, Losses: 1}, pairings[1])

	for _, p := range pairings {
		assert.NotEqual(t, p.Team1, p.Team2)
		for _, name := range []string{"E", "F"} {
			assert.NotEqual(t, name, p.Team1)
			assert.NotEqual(t, name, p.Team2)
		}
	}
}

func TestSuggestNextRoundOddBucketLeftover(t *testing.T) {
	records := []models.SwissTeamRecord{
		{TeamName: "A", Wins: 1, Losses: 0, Status: models.SwissActive},
		{TeamName: "B", Wins: 1, Losses: 0, Status: models.SwissActive},
		{TeamName: "C", Wins: 1, Losses: 0, Status: models.SwissActive},
	}

	pairings, unpaired := SuggestNextRound(records, nil, nil)
	require.Len(t, pairings, 1)
	assert.Equal(t, []string{"C"}, unpaired)
}

func TestPairKeyOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey("A", "B"), PairKey("B", "A"))
}
