package engine

import (
	"sort"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

// Pairing is a suggested next-round Swiss match. Advisory output: the
// admin reviews it, decides the BO1/BO3 format and the decisive flag,
// and only then creates the actual match.
type Pairing struct {
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// PairHistory records which pairs already met, keyed via PairKey.
type PairHistory map[string]bool

// PairKey is order-independent.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func HistoryFromMatches(matches []models.SwissMatch) PairHistory {
	h := make(PairHistory, len(matches))
	for _, m := range matches {
		h[PairKey(m.Team1, m.Team2)] = true
	}
	return h
}

// PairingStrategy pairs the teams of one (wins, losses) bucket. The
// history is available so a smarter strategy can avoid rematches; the
// observed site behavior does not, hence the pluggable seam rather than
// a hardcoded "the" Swiss algorithm.
type PairingStrategy interface {
	Name() string
	PairBucket(teams []string, history PairHistory) (pairs [][2]string, leftover []string)
}

// AdjacentPairing pairs teams in bucket order: first vs second, third vs
// fourth, and so on. No rematch avoidance. An odd bucket leaves its last
// team unpaired for the caller to handle.
type AdjacentPairing struct{}

func (AdjacentPairing) Name() string { return "adjacent" }

func (AdjacentPairing) PairBucket(teams []string, _ PairHistory) ([][2]string, []string) {
	var pairs [][2]string
	for i := 0; i+1 < len(teams); i += 2 {
		pairs = append(pairs, [2]string{teams[i], teams[i+1]})
	}
	if len(teams)%2 == 1 {
		return pairs, []string{teams[len(teams)-1]}
	}
	return pairs, nil
}

// SuggestNextRound proposes pairings for the next Swiss round. Only
// active teams are considered; qualified and eliminated teams are done.
// Teams are bucketed by exact (wins, losses) record, buckets are visited
// best record first, and the strategy pairs within each bucket. Leftover
// teams from odd buckets are returned unpaired — byes are a caller
// decision, not engine behavior.
func SuggestNextRound(records []models.SwissTeamRecord, history PairHistory, strategy PairingStrategy) (pairings []Pairing, unpaired []string) {
	if strategy == nil {
		strategy = AdjacentPairing{}
	}

	type bucketKey struct{ wins, losses int }
	buckets := make(map[bucketKey][]string)
	var keys []bucketKey
	for _, rec := range records {
		if rec.Status != models.SwissActive {
			continue
		}
		k := bucketKey{rec.Wins, rec.Losses}
		if _, ok := buckets[k]; !ok {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], rec.TeamName)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].wins != keys[j].wins {
			return keys[i].wins > keys[j].wins
		}
		return keys[i].losses < keys[j].losses
	})

	for _, k := range keys {
		pairs, left := strategy.PairBucket(buckets[k], history)
		for _, p := range pairs {
			pairings = append(pairings, Pairing{Team1: p[0], Team2: p[1], Wins: k.wins, Losses: k.losses})
		}
		unpaired = append(unpaired, left...)
	}
	return pairings, unpaired
}
