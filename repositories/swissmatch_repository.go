package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

var ErrSwissMatchNotFound = errors.New("swiss match not found")

type SwissMatchRepository interface {
	Create(ctx context.Context, match *models.SwissMatch) error
	GetByID(ctx context.Context, id int) (*models.SwissMatch, error)
	List(ctx context.Context, round *int) ([]*models.SwissMatch, error)
	Update(ctx context.Context, match *models.SwissMatch) error
	Delete(ctx context.Context, id int) error
	ListSeedTeams(ctx context.Context) ([]string, error)
	ReplaceSeedTeams(ctx context.Context, exec SQLExecutor, teams []string) error
}

type postgresSwissMatchRepository struct {
	db *sql.DB
}

func NewPostgresSwissMatchRepository(db *sql.DB) SwissMatchRepository {
	return &postgresSwissMatchRepository{db: db}
}

func (r *postgresSwissMatchRepository) Create(ctx context.Context, match *models.SwissMatch) error {
	query := `
		INSERT INTO swiss_matches
			(round_number, team1, team2, team1_score, team2_score,
			 technical_win, technical_winner, is_played, match_type, is_decisive)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		match.RoundNumber, match.Team1, match.Team2,
		match.Team1Score, match.Team2Score,
		match.TechnicalWin, match.TechnicalWinner,
		match.IsPlayed, match.MatchType, match.IsDecisive,
	).Scan(&match.ID, &match.CreatedAt)
}

func (r *postgresSwissMatchRepository) scanMatch(rowScanner interface{ Scan(...interface{}) error }) (*models.SwissMatch, error) {
	var m models.SwissMatch
	err := rowScanner.Scan(
		&m.ID, &m.RoundNumber, &m.Team1, &m.Team2,
		&m.Team1Score, &m.Team2Score,
		&m.TechnicalWin, &m.TechnicalWinner,
		&m.IsPlayed, &m.MatchType, &m.IsDecisive, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwissMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresSwissMatchRepository) GetByID(ctx context.Context, id int) (*models.SwissMatch, error) {
	query := `
		SELECT id, round_number, team1, team2, team1_score, team2_score,
		       technical_win, technical_winner, is_played, match_type, is_decisive, created_at
		FROM swiss_matches WHERE id = $1`
	return r.scanMatch(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresSwissMatchRepository) List(ctx context.Context, round *int) ([]*models.SwissMatch, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, round_number, team1, team2, team1_score, team2_score,
		       technical_win, technical_winner, is_played, match_type, is_decisive, created_at
		FROM swiss_matches`)

	args := []interface{}{}
	if round != nil {
		queryBuilder.WriteString(" WHERE round_number = $" + strconv.Itoa(len(args)+1))
		args = append(args, *round)
	}
	queryBuilder.WriteString(" ORDER BY round_number ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.SwissMatch, 0)
	for rows.Next() {
		m, errScan := r.scanMatch(rows)
		if errScan != nil {
			return nil, errScan
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *postgresSwissMatchRepository) Update(ctx context.Context, match *models.SwissMatch) error {
	query := `
		UPDATE swiss_matches SET
			round_number = $1, team1 = $2, team2 = $3,
			team1_score = $4, team2_score = $5,
			technical_win = $6, technical_winner = $7,
			is_played = $8, match_type = $9, is_decisive = $10
		WHERE id = $11`
	result, err := r.db.ExecContext(ctx, query,
		match.RoundNumber, match.Team1, match.Team2,
		match.Team1Score, match.Team2Score,
		match.TechnicalWin, match.TechnicalWinner,
		match.IsPlayed, match.MatchType, match.IsDecisive, match.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSwissMatchNotFound)
}

func (r *postgresSwissMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM swiss_matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSwissMatchNotFound)
}

// ListSeedTeams returns the 16 teams seeded into the Swiss stage in seed
// order. Teams without played matches must still show up in standings,
// which is why the seed list is stored rather than inferred.
func (r *postgresSwissMatchRepository) ListSeedTeams(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT team_name FROM swiss_seed_teams ORDER BY seed ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		teams = append(teams, name)
	}
	return teams, rows.Err()
}

func (r *postgresSwissMatchRepository) ReplaceSeedTeams(ctx context.Context, exec SQLExecutor, teams []string) error {
	if exec == nil {
		exec = r.db
	}
	if _, err := exec.ExecContext(ctx, `DELETE FROM swiss_seed_teams`); err != nil {
		return err
	}
	for i, name := range teams {
		if _, err := exec.ExecContext(ctx,
			`INSERT INTO swiss_seed_teams (seed, team_name) VALUES ($1, $2)`, i+1, name); err != nil {
			return err
		}
	}
	return nil
}
