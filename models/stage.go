package models

import "time"

type TournamentStage string

const (
	StageGroups TournamentStage = "groups"
	StageTwo    TournamentStage = "stage2"
	StageSwiss  TournamentStage = "swiss"
	StageFour   TournamentStage = "playoff"
)

// StageConfig holds the externally supplied knobs per stage: Swiss
// qualification/elimination thresholds, how many teams a stage passes on,
// and which bracket round decides advancement out of stage 2.
type StageConfig struct {
	ID              int             `json:"id" db:"id"`
	Stage           TournamentStage `json:"stage" db:"stage"`
	WinThreshold    int             `json:"win_threshold" db:"win_threshold"`
	LossThreshold   int             `json:"loss_threshold" db:"loss_threshold"`
	AdvanceCount    int             `json:"advance_count" db:"advance_count"`
	QualifyingRound int             `json:"qualifying_round" db:"qualifying_round"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}
