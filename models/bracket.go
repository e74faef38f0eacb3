package models

import "time"

type BracketStage string

const (
	// StageBracket is the 10-team single-elimination second stage.
	StageBracket BracketStage = "stage2"
	// StagePlayoff is the final 8-team playoff bracket.
	StagePlayoff BracketStage = "playoff"
)

// BracketMatch is one slot in a single-elimination tree. The topology is
// configuration: BracketRound/Position values on newly created matches
// carry the linkage, advancement into the next round is administrative.
// Third-place and final matches are just distinct rounds.
type BracketMatch struct {
	ID           int          `json:"id" db:"id"`
	Stage        BracketStage `json:"stage" db:"stage"`
	BracketRound int          `json:"bracket_round" db:"bracket_round"`
	Position     int          `json:"position" db:"position"`
	Team1        *string      `json:"team1,omitempty" db:"team1"`
	Team2        *string      `json:"team2,omitempty" db:"team2"`
	Team1Score   *int         `json:"team1_score,omitempty" db:"team1_score"`
	Team2Score   *int         `json:"team2_score,omitempty" db:"team2_score"`
	WinnerName   *string      `json:"winner_name,omitempty" db:"winner_name"`
	IsPlayed     bool         `json:"is_played" db:"is_played"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}
