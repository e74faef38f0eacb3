package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

var ErrBracketMatchNotFound = errors.New("bracket match not found")

type BracketMatchRepository interface {
	Create(ctx context.Context, match *models.BracketMatch) error
	GetByID(ctx context.Context, id int) (*models.BracketMatch, error)
	ListByStage(ctx context.Context, stage models.BracketStage) ([]*models.BracketMatch, error)
	Update(ctx context.Context, match *models.BracketMatch) error
	Delete(ctx context.Context, id int) error
}

type postgresBracketMatchRepository struct {
	db *sql.DB
}

func NewPostgresBracketMatchRepository(db *sql.DB) BracketMatchRepository {
	return &postgresBracketMatchRepository{db: db}
}

func (r *postgresBracketMatchRepository) Create(ctx context.Context, match *models.BracketMatch) error {
	query := `
		INSERT INTO bracket_matches
			(stage, bracket_round, position, team1, team2, team1_score, team2_score, winner_name, is_played)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		match.Stage, match.BracketRound, match.Position,
		match.Team1, match.Team2, match.Team1Score, match.Team2Score,
		match.WinnerName, match.IsPlayed,
	).Scan(&match.ID, &match.CreatedAt)
}

func (r *postgresBracketMatchRepository) scanMatch(rowScanner interface{ Scan(...interface{}) error }) (*models.BracketMatch, error) {
	var m models.BracketMatch
	err := rowScanner.Scan(
		&m.ID, &m.Stage, &m.BracketRound, &m.Position,
		&m.Team1, &m.Team2, &m.Team1Score, &m.Team2Score,
		&m.WinnerName, &m.IsPlayed, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBracketMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresBracketMatchRepository) GetByID(ctx context.Context, id int) (*models.BracketMatch, error) {
	query := `
		SELECT id, stage, bracket_round, position, team1, team2, team1_score, team2_score,
		       winner_name, is_played, created_at
		FROM bracket_matches WHERE id = $1`
	return r.scanMatch(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresBracketMatchRepository) ListByStage(ctx context.Context, stage models.BracketStage) ([]*models.BracketMatch, error) {
	query := `
		SELECT id, stage, bracket_round, position, team1, team2, team1_score, team2_score,
		       winner_name, is_played, created_at
		FROM bracket_matches
		WHERE stage = $1
		ORDER BY bracket_round ASC, position ASC`

	rows, err := r.db.QueryContext(ctx, query, stage)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.BracketMatch, 0)
	for rows.Next() {
		m, errScan := r.scanMatch(rows)
		if errScan != nil {
			return nil, errScan
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *postgresBracketMatchRepository) Update(ctx context.Context, match *models.BracketMatch) error {
	query := `
		UPDATE bracket_matches SET
			bracket_round = $1, position = $2, team1 = $3, team2 = $4,
			team1_score = $5, team2_score = $6, winner_name = $7, is_played = $8
		WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		match.BracketRound, match.Position, match.Team1, match.Team2,
		match.Team1Score, match.Team2Score, match.WinnerName, match.IsPlayed, match.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrBracketMatchNotFound)
}

func (r *postgresBracketMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bracket_matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrBracketMatchNotFound)
}
