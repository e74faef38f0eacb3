package models

import "time"

// Group is one round-robin group of the first stage.
// AdvanceCount is how many of its teams move on to the next stage;
// it is configuration, the engine only ranks.
type Group struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	AdvanceCount int       `json:"advance_count" db:"advance_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Teams []string `json:"teams,omitempty" db:"-"`
}

// GroupMatch is an authoritative group-stage result. Teams are referenced
// by name, the way results come in from the admin forms.
// If TechnicalWin is false, scores must differ (CS2 rounds never tie).
type GroupMatch struct {
	ID              int       `json:"id" db:"id"`
	GroupName       string    `json:"group_name" db:"group_name"`
	Team1           string    `json:"team1" db:"team1"`
	Team2           string    `json:"team2" db:"team2"`
	Team1Score      int       `json:"team1_score" db:"team1_score"`
	Team2Score      int       `json:"team2_score" db:"team2_score"`
	TechnicalWin    bool      `json:"technical_win" db:"technical_win"`
	TechnicalWinner *string   `json:"technical_winner,omitempty" db:"technical_winner"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// GroupStanding is derived data: it is recomputed from the full match set
// of its group on every change and persisted as a snapshot for the public
// site. It is never patched incrementally and never hand-edited.
type GroupStanding struct {
	ID              int       `json:"id" db:"id"`
	TeamName        string    `json:"team_name" db:"team_name"`
	GroupName       string    `json:"group_name" db:"group_name"`
	MatchesPlayed   int       `json:"matches_played" db:"matches_played"`
	Wins            int       `json:"wins" db:"wins"`
	Losses          int       `json:"losses" db:"losses"`
	RoundsWon       int       `json:"rounds_won" db:"rounds_won"`
	RoundsLost      int       `json:"rounds_lost" db:"rounds_lost"`
	RoundDifference int       `json:"round_difference" db:"round_difference"`
	Points          int       `json:"points" db:"points"`
	Position        int       `json:"position" db:"position"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
