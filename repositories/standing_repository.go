package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

var ErrStandingNotFound = errors.New("group standing not found")

// GroupStandingRepository persists the derived standings snapshot read by
// the public site. The snapshot is replaced wholesale from a fresh
// recomputation; there is no row-level update on purpose.
type GroupStandingRepository interface {
	ListByGroup(ctx context.Context, groupName string) ([]*models.GroupStanding, error)
	ListAll(ctx context.Context) ([]*models.GroupStanding, error)
	ReplaceForGroup(ctx context.Context, exec SQLExecutor, groupName string, standings []models.GroupStanding) error
}

type postgresGroupStandingRepository struct {
	db *sql.DB
}

func NewPostgresGroupStandingRepository(db *sql.DB) GroupStandingRepository {
	return &postgresGroupStandingRepository{db: db}
}

const standingColumns = `id, team_name, group_name, matches_played, wins, losses,
	rounds_won, rounds_lost, round_difference, points, position, updated_at`

func (r *postgresGroupStandingRepository) scanStanding(rowScanner interface{ Scan(...interface{}) error }) (*models.GroupStanding, error) {
	var s models.GroupStanding
	err := rowScanner.Scan(
		&s.ID, &s.TeamName, &s.GroupName, &s.MatchesPlayed, &s.Wins, &s.Losses,
		&s.RoundsWon, &s.RoundsLost, &s.RoundDifference, &s.Points, &s.Position, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStandingNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresGroupStandingRepository) ListByGroup(ctx context.Context, groupName string) ([]*models.GroupStanding, error) {
	query := `SELECT ` + standingColumns + ` FROM group_standings WHERE group_name = $1 ORDER BY position ASC`
	return r.list(ctx, query, groupName)
}

func (r *postgresGroupStandingRepository) ListAll(ctx context.Context) ([]*models.GroupStanding, error) {
	query := `SELECT ` + standingColumns + ` FROM group_standings ORDER BY group_name ASC, position ASC`
	return r.list(ctx, query)
}

func (r *postgresGroupStandingRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.GroupStanding, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standings := make([]*models.GroupStanding, 0)
	for rows.Next() {
		s, errScan := r.scanStanding(rows)
		if errScan != nil {
			return nil, errScan
		}
		standings = append(standings, s)
	}
	return standings, rows.Err()
}

func (r *postgresGroupStandingRepository) ReplaceForGroup(ctx context.Context, exec SQLExecutor, groupName string, standings []models.GroupStanding) error {
	if exec == nil {
		exec = r.db
	}

	if _, err := exec.ExecContext(ctx, `DELETE FROM group_standings WHERE group_name = $1`, groupName); err != nil {
		return fmt.Errorf("failed to clear standings for group %s: %w", groupName, err)
	}

	query := `
		INSERT INTO group_standings
			(team_name, group_name, matches_played, wins, losses,
			 rounds_won, rounds_lost, round_difference, points, position, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now()
	for _, s := range standings {
		if _, err := exec.ExecContext(ctx, query,
			s.TeamName, groupName, s.MatchesPlayed, s.Wins, s.Losses,
			s.RoundsWon, s.RoundsLost, s.RoundDifference, s.Points, s.Position, now,
		); err != nil {
			return fmt.Errorf("failed to insert standing for %s: %w", s.TeamName, err)
		}
	}
	return nil
}
