package engine

import (
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

// Stage transitions are deliberately separate, named functions instead of
// a generic advance(): some transitions are pure computation, others are
// policy the admins apply by hand, and that difference should stay
// visible. No match logic lives here, only the read contract the next
// stage's admin forms use to fill their team dropdowns.

// SeedPoolFromGroups is the ranked pool the second stage is seeded from.
// Actual Stage1→Stage2 seeding is administrative: the admins pick from
// this pool, the engine never commits the seed itself.
func SeedPoolFromGroups(groups []GroupConfig, matches []models.GroupMatch) ([]string, []Warning) {
	return AdvancingTeams(groups, matches)
}

// QualifiedFromStage2 feeds the Swiss stage: the resolved winners of the
// configured qualifying round of the 10-team bracket. Unresolved slots
// simply do not contribute yet.
func QualifiedFromStage2(matches []models.BracketMatch, qualifyingRound int) []string {
	return RoundWinners(matches, models.StageBracket, qualifyingRound)
}

// QualifiedFromSwiss feeds the playoff bracket: every team whose record
// reached the win threshold, best record first (records are assumed to
// come from RecomputeStandings, which sorts).
func QualifiedFromSwiss(records []models.SwissTeamRecord) []string {
	var qualified []string
	for _, rec := range records {
		if rec.Status == models.SwissQualified {
			qualified = append(qualified, rec.TeamName)
		}
	}
	return qualified
}

// PlayoffChampion resolves the playoff final, if decided. The final is
// just the highest round of the playoff bracket; the third-place match
// lives in its own round and needs no special handling.
func PlayoffChampion(matches []models.BracketMatch, finalRound int) (string, bool) {
	winners := RoundWinners(matches, models.StagePlayoff, finalRound)
	if len(winners) != 1 {
		return "", false
	}
	return winners[0], true
}
