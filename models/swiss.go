package models

import "time"

type SwissStatus string

const (
	SwissActive     SwissStatus = "active"
	SwissQualified  SwissStatus = "qualified"
	SwissEliminated SwissStatus = "eliminated"
)

type SwissMatchType string

const (
	MatchTypeBO1 SwissMatchType = "BO1"
	MatchTypeBO3 SwissMatchType = "BO3"
)

// SwissMatch is an authoritative Swiss-stage result. Scores are nil until
// the match is played. IsDecisive is advisory input set when the match is
// created (qualification/elimination boundary, usually BO3); the engine
// never derives it.
type SwissMatch struct {
	ID              int            `json:"id" db:"id"`
	RoundNumber     int            `json:"round_number" db:"round_number"`
	Team1           string         `json:"team1" db:"team1"`
	Team2           string         `json:"team2" db:"team2"`
	Team1Score      *int           `json:"team1_score,omitempty" db:"team1_score"`
	Team2Score      *int           `json:"team2_score,omitempty" db:"team2_score"`
	TechnicalWin    bool           `json:"technical_win" db:"technical_win"`
	TechnicalWinner *string        `json:"technical_winner,omitempty" db:"technical_winner"`
	IsPlayed        bool           `json:"is_played" db:"is_played"`
	MatchType       SwissMatchType `json:"match_type" db:"match_type"`
	IsDecisive      bool           `json:"is_decisive" db:"is_decisive"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
}

// SwissTeamRecord is derived by replaying all Swiss matches; status is a
// pure function of (wins, losses) against the stage thresholds.
type SwissTeamRecord struct {
	TeamName   string      `json:"team_name"`
	Wins       int         `json:"wins"`
	Losses     int         `json:"losses"`
	RoundsWon  int         `json:"rounds_won"`
	RoundsLost int         `json:"rounds_lost"`
	Status     SwissStatus `json:"status"`
}
