package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

const (
	pointsPerWin  = 2
	pointsPerLoss = 0
)

// ComputeGroupStandings aggregates the full match set of one group into
// ranked standings. Pure function: same inputs, same output. Every team
// from the roster appears, teams without matches rank last with zero
// stats. Malformed matches are skipped and reported, never fatal.
func ComputeGroupStandings(groupName string, teams []string, matches []models.GroupMatch) ([]models.GroupStanding, []Warning) {
	byTeam := make(map[string]*models.GroupStanding, len(teams))
	order := make([]string, 0, len(teams))
	for _, name := range teams {
		if _, ok := byTeam[name]; ok {
			continue
		}
		byTeam[name] = &models.GroupStanding{TeamName: name, GroupName: groupName}
		order = append(order, name)
	}

	var warnings []Warning
	for _, m := range matches {
		r := groupResult(m)
		winner, _, err := DecideWinner(r)
		if err != nil {
			warnings = append(warnings, Warning{Code: WarnInvalidMatch, Message: fmt.Sprintf("%s: %v", r.Ref, err)})
			continue
		}

		s1, ok1 := byTeam[m.Team1]
		s2, ok2 := byTeam[m.Team2]
		if !ok1 || !ok2 {
			warnings = append(warnings, Warning{Code: WarnInvalidMatch, Message: fmt.Sprintf("%s: team not in group roster", r.Ref)})
			continue
		}

		s1.MatchesPlayed++
		s2.MatchesPlayed++

		// Technical wins carry no rounds: 0-0 on both sides.
		if !m.TechnicalWin {
			s1.RoundsWon += m.Team1Score
			s1.RoundsLost += m.Team2Score
			s2.RoundsWon += m.Team2Score
			s2.RoundsLost += m.Team1Score
		}

		if winner == m.Team1 {
			s1.Wins++
			s1.Points += pointsPerWin
			s2.Losses++
			s2.Points += pointsPerLoss
		} else {
			s2.Wins++
			s2.Points += pointsPerWin
			s1.Losses++
			s1.Points += pointsPerLoss
		}
	}

	standings := make([]models.GroupStanding, 0, len(order))
	for _, name := range order {
		s := byTeam[name]
		s.RoundDifference = s.RoundsWon - s.RoundsLost
		standings = append(standings, *s)
	}

	// Points, then round difference, then rounds won. Stable beyond that:
	// remaining ties keep roster order, positions are strictly sequential.
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		if standings[i].RoundDifference != standings[j].RoundDifference {
			return standings[i].RoundDifference > standings[j].RoundDifference
		}
		return standings[i].RoundsWon > standings[j].RoundsWon
	})
	for i := range standings {
		standings[i].Position = i + 1
	}

	return standings, warnings
}

func groupResult(m models.GroupMatch) Result {
	r := Result{
		Ref:          fmt.Sprintf("group %s match #%d", m.GroupName, m.ID),
		Team1:        m.Team1,
		Team2:        m.Team2,
		Team1Score:   m.Team1Score,
		Team2Score:   m.Team2Score,
		TechnicalWin: m.TechnicalWin,
	}
	if m.TechnicalWinner != nil {
		r.TechnicalWinner = *m.TechnicalWinner
	}
	return r
}

// IsInvalidMatch reports whether err is the per-match rejection error.
func IsInvalidMatch(err error) bool {
	return errors.Is(err, ErrInvalidMatch)
}
