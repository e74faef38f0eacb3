package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

var ErrGroupNotFound = errors.New("group not found")

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	List(ctx context.Context) ([]*models.Group, error)
	GetByName(ctx context.Context, name string) (*models.Group, error)
	AddTeam(ctx context.Context, groupID int, teamName string) error
	RemoveTeam(ctx context.Context, groupID int, teamName string) error
	UpdateAdvanceCount(ctx context.Context, groupID int, advanceCount int) error
	Delete(ctx context.Context, groupID int) error
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

func (r *postgresGroupRepository) Create(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO tournament_groups (name, advance_count)
		VALUES ($1, $2)
		RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, group.Name, group.AdvanceCount).Scan(&group.ID, &group.CreatedAt)
}

// List returns all groups with their rosters loaded, in the fixed
// roster order used by the standings calculator for tie stability.
func (r *postgresGroupRepository) List(ctx context.Context) ([]*models.Group, error) {
	query := `SELECT id, name, advance_count, created_at FROM tournament_groups ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*models.Group, 0)
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.AdvanceCount, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, g := range groups {
		teams, err := r.listGroupTeams(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load roster for group %s: %w", g.Name, err)
		}
		g.Teams = teams
	}
	return groups, nil
}

func (r *postgresGroupRepository) GetByName(ctx context.Context, name string) (*models.Group, error) {
	query := `SELECT id, name, advance_count, created_at FROM tournament_groups WHERE name = $1`
	var g models.Group
	err := r.db.QueryRowContext(ctx, query, name).Scan(&g.ID, &g.Name, &g.AdvanceCount, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	teams, err := r.listGroupTeams(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	g.Teams = teams
	return &g, nil
}

func (r *postgresGroupRepository) listGroupTeams(ctx context.Context, groupID int) ([]string, error) {
	query := `SELECT team_name FROM group_teams WHERE group_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, groupID)
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

func (r *postgresGroupRepository) AddTeam(ctx context.Context, groupID int, teamName string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO group_teams (group_id, team_name) VALUES ($1, $2)`, groupID, teamName)
	return err
}

func (r *postgresGroupRepository) RemoveTeam(ctx context.Context, groupID int, teamName string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM group_teams WHERE group_id = $1 AND team_name = $2`, groupID, teamName)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupNotFound)
}

func (r *postgresGroupRepository) UpdateAdvanceCount(ctx context.Context, groupID int, advanceCount int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tournament_groups SET advance_count = $1 WHERE id = $2`, advanceCount, groupID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupNotFound)
}

func (r *postgresGroupRepository) Delete(ctx context.Context, groupID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournament_groups WHERE id = $1`, groupID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupNotFound)
}
