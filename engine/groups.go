package engine

import (
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

// GroupConfig enumerates one group's roster and its advancement cutoff.
// The cutoff is external configuration: this engine ranks, it does not
// decide how many advance.
type GroupConfig struct {
	Name         string
	Teams        []string
	AdvanceCount int
}

// GroupResult is the ranked outcome of one group.
type GroupResult struct {
	Config    GroupConfig
	Standings []models.GroupStanding
}

// ComputeAllGroups runs the standings calculator per group independently.
// Matches are partitioned by group name; there is no cross-group
// interaction. A group with zero recorded matches still yields its full
// roster in stable order with zero stats — that must not be read as
// "qualified" by the caller.
func ComputeAllGroups(groups []GroupConfig, matches []models.GroupMatch) ([]GroupResult, []Warning) {
	byGroup := make(map[string][]models.GroupMatch)
	for _, m := range matches {
		byGroup[m.GroupName] = append(byGroup[m.GroupName], m)
	}

	results := make([]GroupResult, 0, len(groups))
	var warnings []Warning
	for _, g := range groups {
		standings, w := ComputeGroupStandings(g.Name, g.Teams, byGroup[g.Name])
		warnings = append(warnings, w...)
		results = append(results, GroupResult{Config: g, Standings: standings})
	}
	return results, warnings
}

// AdvancingTeams returns, per group in order, the top-K team names per
// the group's configured cutoff.
func AdvancingTeams(groups []GroupConfig, matches []models.GroupMatch) ([]string, []Warning) {
	results, warnings := ComputeAllGroups(groups, matches)

	var advancing []string
	for _, res := range results {
		cutoff := res.Config.AdvanceCount
		if cutoff > len(res.Standings) {
			cutoff = len(res.Standings)
		}
		for _, s := range res.Standings[:cutoff] {
			advancing = append(advancing, s.TeamName)
		}
	}
	return advancing, warnings
}
