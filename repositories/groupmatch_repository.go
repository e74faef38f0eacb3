package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

var ErrGroupMatchNotFound = errors.New("group match not found")

type GroupMatchRepository interface {
	Create(ctx context.Context, match *models.GroupMatch) error
	GetByID(ctx context.Context, id int) (*models.GroupMatch, error)
	List(ctx context.Context, groupName *string) ([]*models.GroupMatch, error)
	Update(ctx context.Context, match *models.GroupMatch) error
	Delete(ctx context.Context, id int) error
}

type postgresGroupMatchRepository struct {
	db *sql.DB
}

func NewPostgresGroupMatchRepository(db *sql.DB) GroupMatchRepository {
	return &postgresGroupMatchRepository{db: db}
}

func (r *postgresGroupMatchRepository) Create(ctx context.Context, match *models.GroupMatch) error {
	query := `
		INSERT INTO group_matches
			(group_name, team1, team2, team1_score, team2_score, technical_win, technical_winner)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		match.GroupName, match.Team1, match.Team2,
		match.Team1Score, match.Team2Score,
		match.TechnicalWin, match.TechnicalWinner,
	).Scan(&match.ID, &match.CreatedAt)
}

func (r *postgresGroupMatchRepository) scanMatch(rowScanner interface{ Scan(...interface{}) error }) (*models.GroupMatch, error) {
	var m models.GroupMatch
	err := rowScanner.Scan(
		&m.ID, &m.GroupName, &m.Team1, &m.Team2,
		&m.Team1Score, &m.Team2Score,
		&m.TechnicalWin, &m.TechnicalWinner, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresGroupMatchRepository) GetByID(ctx context.Context, id int) (*models.GroupMatch, error) {
	query := `
		SELECT id, group_name, team1, team2, team1_score, team2_score, technical_win, technical_winner, created_at
		FROM group_matches WHERE id = $1`
	return r.scanMatch(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresGroupMatchRepository) List(ctx context.Context, groupName *string) ([]*models.GroupMatch, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, group_name, team1, team2, team1_score, team2_score, technical_win, technical_winner, created_at
		FROM group_matches`)

	args := []interface{}{}
	if groupName != nil {
		queryBuilder.WriteString(" WHERE group_name = $" + strconv.Itoa(len(args)+1))
		args = append(args, *groupName)
	}
	queryBuilder.WriteString(" ORDER BY id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.GroupMatch, 0)
	for rows.Next() {
		m, errScan := r.scanMatch(rows)
		if errScan != nil {
			return nil, errScan
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *postgresGroupMatchRepository) Update(ctx context.Context, match *models.GroupMatch) error {
	query := `
		UPDATE group_matches SET
			team1 = $1, team2 = $2, team1_score = $3, team2_score = $4,
			technical_win = $5, technical_winner = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		match.Team1, match.Team2, match.Team1Score, match.Team2Score,
		match.TechnicalWin, match.TechnicalWinner, match.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupMatchNotFound)
}

func (r *postgresGroupMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM group_matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupMatchNotFound)
}
