package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidMatch marks a single malformed result: a tied non-technical
// score, a negative score, or a technical winner that is not one of the
// two teams. Callers exclude the match from aggregation and carry on.
var ErrInvalidMatch = errors.New("invalid match result")

// Result is the common currency every stage's matches are reduced to
// before scoring. Unplayed matches must be filtered out before this point.
type Result struct {
	Ref             string // human-readable reference for warnings, e.g. "group A #12"
	Team1           string
	Team2           string
	Team1Score      int
	Team2Score      int
	TechnicalWin    bool
	TechnicalWinner string
}

// Warning reports a non-fatal data problem found during recomputation.
// Nothing in the engine is fatal: a bad match is skipped, standings for
// the rest are still produced, and the caller decides whether to publish.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	WarnInvalidMatch    = "invalid_match"
	WarnAmbiguousStatus = "ambiguous_status"
)

// DecideWinner applies the single-match outcome rule. A technical win is
// decided by the recorded technical winner and ignores scores; otherwise
// the strictly higher score wins. Every counted CS2 match has a winner,
// so equal scores are rejected.
func DecideWinner(r Result) (winner, loser string, err error) {
	if r.TechnicalWin {
		switch r.TechnicalWinner {
		case r.Team1:
			return r.Team1, r.Team2, nil
		case r.Team2:
			return r.Team2, r.Team1, nil
		default:
			return "", "", fmt.Errorf("%w: technical winner %q is not %q or %q", ErrInvalidMatch, r.TechnicalWinner, r.Team1, r.Team2)
		}
	}

	if r.Team1Score < 0 || r.Team2Score < 0 {
		return "", "", fmt.Errorf("%w: negative score %d:%d", ErrInvalidMatch, r.Team1Score, r.Team2Score)
	}
	if r.Team1Score == r.Team2Score {
		return "", "", fmt.Errorf("%w: tied score %d:%d, draws are not possible", ErrInvalidMatch, r.Team1Score, r.Team2Score)
	}

	if r.Team1Score > r.Team2Score {
		return r.Team1, r.Team2, nil
	}
	return r.Team2, r.Team1, nil
}
