package engine

import (
	"fmt"
	"sort"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

// ResolvedWinner resolves one single-elimination slot. A position is
// resolved iff the match is played and the recorded winner is one of the
// two teams; anything else is pending and propagates as TBD into the
// dependent next-round slot. Pending is not an error (an unplayed
// prior-round dependency is the normal state of a live bracket).
func ResolvedWinner(m models.BracketMatch) (string, bool) {
	if !m.IsPlayed || m.WinnerName == nil {
		return "", false
	}
	w := *m.WinnerName
	if (m.Team1 != nil && *m.Team1 == w) || (m.Team2 != nil && *m.Team2 == w) {
		return w, true
	}
	return "", false
}

// ValidateBracketResult checks a bracket result before it is stored.
// Unlike resolution, storing a played match whose winner is not a
// participant is a caller error.
func ValidateBracketResult(m models.BracketMatch) error {
	if !m.IsPlayed {
		return nil
	}
	if m.WinnerName == nil {
		return fmt.Errorf("%w: played bracket match without a winner", ErrInvalidMatch)
	}
	if _, ok := ResolvedWinner(m); !ok {
		return fmt.Errorf("%w: winner %q is not a participant of the match", ErrInvalidMatch, *m.WinnerName)
	}
	return nil
}

// RoundWinners returns the resolved winners of one bracket round, in
// position order. Unresolved positions are simply absent; the engine
// never auto-populates next-round slots, that linkage stays
// administrative.
func RoundWinners(matches []models.BracketMatch, stage models.BracketStage, round int) []string {
	var inRound []models.BracketMatch
	for _, m := range matches {
		if m.Stage == stage && m.BracketRound == round {
			inRound = append(inRound, m)
		}
	}
	sort.SliceStable(inRound, func(i, j int) bool {
		return inRound[i].Position < inRound[j].Position
	})

	var winners []string
	for _, m := range inRound {
		if w, ok := ResolvedWinner(m); ok {
			winners = append(winners, w)
		}
	}
	return winners
}

// BracketState is the resolved view of one bracket, keyed for the UI.
type BracketState struct {
	Stage   models.BracketStage   `json:"stage"`
	Matches []ResolvedBracketSlot `json:"matches"`
}

type ResolvedBracketSlot struct {
	Match  models.BracketMatch `json:"match"`
	Winner *string             `json:"winner,omitempty"`
}

// ResolveBracket annotates every slot of a stage's bracket with its
// resolved winner, ordered by round then position.
func ResolveBracket(matches []models.BracketMatch, stage models.BracketStage) BracketState {
	state := BracketState{Stage: stage}
	for _, m := range matches {
		if m.Stage != stage {
			continue
		}
		slot := ResolvedBracketSlot{Match: m}
		if w, ok := ResolvedWinner(m); ok {
			winner := w
			slot.Winner = &winner
		}
		state.Matches = append(state.Matches, slot)
	}
	sort.SliceStable(state.Matches, func(i, j int) bool {
		if state.Matches[i].Match.BracketRound != state.Matches[j].Match.BracketRound {
			return state.Matches[i].Match.BracketRound < state.Matches[j].Match.BracketRound
		}
		return state.Matches[i].Match.Position < state.Matches[j].Match.Position
	})
	return state
}
