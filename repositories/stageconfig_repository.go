package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

var ErrStageConfigNotFound = errors.New("stage config not found")

type StageConfigRepository interface {
	GetByStage(ctx context.Context, stage models.TournamentStage) (*models.StageConfig, error)
	Upsert(ctx context.Context, cfg *models.StageConfig) error
	List(ctx context.Context) ([]*models.StageConfig, error)
}

type postgresStageConfigRepository struct {
	db *sql.DB
}

func NewPostgresStageConfigRepository(db *sql.DB) StageConfigRepository {
	return &postgresStageConfigRepository{db: db}
}

func (r *postgresStageConfigRepository) GetByStage(ctx context.Context, stage models.TournamentStage) (*models.StageConfig, error) {
	query := `
		SELECT id, stage, win_threshold, loss_threshold, advance_count, qualifying_round, updated_at
		FROM stage_configs WHERE stage = $1`

	var cfg models.StageConfig
	err := r.db.QueryRowContext(ctx, query, stage).Scan(
		&cfg.ID, &cfg.Stage, &cfg.WinThreshold, &cfg.LossThreshold,
		&cfg.AdvanceCount, &cfg.QualifyingRound, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStageConfigNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *postgresStageConfigRepository) Upsert(ctx context.Context, cfg *models.StageConfig) error {
	query := `
		INSERT INTO stage_configs (stage, win_threshold, loss_threshold, advance_count, qualifying_round, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (stage) DO UPDATE SET
			win_threshold = EXCLUDED.win_threshold,
			loss_threshold = EXCLUDED.loss_threshold,
			advance_count = EXCLUDED.advance_count,
			qualifying_round = EXCLUDED.qualifying_round,
			updated_at = NOW()
		RETURNING id, updated_at`

	return r.db.QueryRowContext(ctx, query,
		cfg.Stage, cfg.WinThreshold, cfg.LossThreshold, cfg.AdvanceCount, cfg.QualifyingRound,
	).Scan(&cfg.ID, &cfg.UpdatedAt)
}

func (r *postgresStageConfigRepository) List(ctx context.Context) ([]*models.StageConfig, error) {
	query := `
		SELECT id, stage, win_threshold, loss_threshold, advance_count, qualifying_round, updated_at
		FROM stage_configs ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := make([]*models.StageConfig, 0)
	for rows.Next() {
		var cfg models.StageConfig
		if err := rows.Scan(
			&cfg.ID, &cfg.Stage, &cfg.WinThreshold, &cfg.LossThreshold,
			&cfg.AdvanceCount, &cfg.QualifyingRound, &cfg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		configs = append(configs, &cfg)
	}
	return configs, rows.Err()
}
