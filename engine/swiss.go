package engine

import (
	"fmt"
	"sort"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

// Thresholds are the Swiss qualification/elimination boundaries.
// Defaults fit a 16→8 Swiss: three wins qualify, three losses eliminate.
type Thresholds struct {
	Wins   int
	Losses int
}

func DefaultThresholds() Thresholds {
	return Thresholds{Wins: 3, Losses: 3}
}

// RecomputeStandings replays every played Swiss match and derives one
// record per team. The terminal tally is order-independent: wins and
// losses are plain counts of decided matches, only pairing cares about
// round order. Status is a pure function of (wins, losses); it is never
// stored as an independent source of truth, so edits can never leave a
// stale status behind.
//
// Both thresholds met at once means the raw data is malformed (an
// out-of-order edit); qualified takes precedence and an
// ambiguous-status warning is emitted instead of silently resolving.
func RecomputeStandings(teams []string, matches []models.SwissMatch, th Thresholds) ([]models.SwissTeamRecord, []Warning) {
	if th.Wins <= 0 || th.Losses <= 0 {
		th = DefaultThresholds()
	}

	byTeam := make(map[string]*models.SwissTeamRecord, len(teams))
	order := make([]string, 0, len(teams))
	add := func(name string) *models.SwissTeamRecord {
		if rec, ok := byTeam[name]; ok {
			return rec
		}
		rec := &models.SwissTeamRecord{TeamName: name, Status: models.SwissActive}
		byTeam[name] = rec
		order = append(order, name)
		return rec
	}
	for _, name := range teams {
		add(name)
	}

	var warnings []Warning
	for _, m := range matches {
		if !m.IsPlayed {
			continue
		}
		r, err := swissResult(m)
		var winner, loser string
		if err == nil {
			winner, loser, err = DecideWinner(r)
		}
		if err != nil {
			warnings = append(warnings, Warning{Code: WarnInvalidMatch, Message: fmt.Sprintf("%s: %v", r.Ref, err)})
			continue
		}

		// Teams missing from the seed list still get a record; the seed
		// list only fixes the output order for teams without matches.
		wrec := add(winner)
		lrec := add(loser)
		wrec.Wins++
		lrec.Losses++

		if !m.TechnicalWin {
			rec1, rec2 := add(m.Team1), add(m.Team2)
			rec1.RoundsWon += *m.Team1Score
			rec1.RoundsLost += *m.Team2Score
			rec2.RoundsWon += *m.Team2Score
			rec2.RoundsLost += *m.Team1Score
		}
	}

	records := make([]models.SwissTeamRecord, 0, len(order))
	for _, name := range order {
		rec := byTeam[name]
		qualified := rec.Wins >= th.Wins
		eliminated := rec.Losses >= th.Losses
		switch {
		case qualified && eliminated:
			rec.Status = models.SwissQualified
			warnings = append(warnings, Warning{
				Code:    WarnAmbiguousStatus,
				Message: fmt.Sprintf("team %s has %d wins and %d losses, both thresholds met; keeping qualified", name, rec.Wins, rec.Losses),
			})
		case qualified:
			rec.Status = models.SwissQualified
		case eliminated:
			rec.Status = models.SwissEliminated
		default:
			rec.Status = models.SwissActive
		}
		records = append(records, *rec)
	}

	// Wins desc, losses asc, then round difference desc. Stable for the rest.
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Wins != records[j].Wins {
			return records[i].Wins > records[j].Wins
		}
		if records[i].Losses != records[j].Losses {
			return records[i].Losses < records[j].Losses
		}
		di := records[i].RoundsWon - records[i].RoundsLost
		dj := records[j].RoundsWon - records[j].RoundsLost
		return di > dj
	})

	return records, warnings
}

func swissResult(m models.SwissMatch) (Result, error) {
	r := Result{
		Ref:          fmt.Sprintf("swiss round %d match #%d", m.RoundNumber, m.ID),
		Team1:        m.Team1,
		Team2:        m.Team2,
		TechnicalWin: m.TechnicalWin,
	}
	if m.TechnicalWinner != nil {
		r.TechnicalWinner = *m.TechnicalWinner
	}
	if m.TechnicalWin {
		return r, nil
	}
	if m.Team1Score == nil || m.Team2Score == nil {
		return r, fmt.Errorf("%w: marked played but scores are missing", ErrInvalidMatch)
	}
	r.Team1Score = *m.Team1Score
	r.Team2Score = *m.Team2Score
	return r, nil
}
