package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/cache"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/engine"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/live"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/repositories"
)

const (
	cacheKeyGroupStandings = "public:group_standings"
	standingsCacheTTL      = 5 * time.Minute
)

// GroupStageService owns the group stage: authoritative match CRUD plus
// the derived standings snapshot. Every write triggers a full
// recomputation of the affected group from its complete match set — the
// snapshot is never patched, so edits and deletes cannot cause drift.
type GroupStageService interface {
	CreateMatch(ctx context.Context, match *models.GroupMatch) ([]engine.Warning, error)
	UpdateMatch(ctx context.Context, match *models.GroupMatch) ([]engine.Warning, error)
	DeleteMatch(ctx context.Context, matchID int) ([]engine.Warning, error)
	ListMatches(ctx context.Context, groupName *string) ([]*models.GroupMatch, error)
	ListStandings(ctx context.Context) ([]*models.GroupStanding, error)
	RecomputeGroup(ctx context.Context, groupName string) ([]models.GroupStanding, []engine.Warning, error)
	AdvancingTeams(ctx context.Context) ([]string, error)
}

type groupStageService struct {
	db           *sql.DB
	groupRepo    repositories.GroupRepository
	matchRepo    repositories.GroupMatchRepository
	standingRepo repositories.GroupStandingRepository
	cache        cache.Cache
	hub          *live.Hub
	logger       *slog.Logger
}

func NewGroupStageService(
	db *sql.DB,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.GroupMatchRepository,
	standingRepo repositories.GroupStandingRepository,
	c cache.Cache,
	hub *live.Hub,
	logger *slog.Logger,
) GroupStageService {
	return &groupStageService{
		db:           db,
		groupRepo:    groupRepo,
		matchRepo:    matchRepo,
		standingRepo: standingRepo,
		cache:        c,
		hub:          hub,
		logger:       logger,
	}
}

func (s *groupStageService) CreateMatch(ctx context.Context, match *models.GroupMatch) ([]engine.Warning, error) {
	if err := s.validateMatch(ctx, match); err != nil {
		return nil, err
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create group match: %w", err)
	}
	_, warnings, err := s.RecomputeGroup(ctx, match.GroupName)
	return warnings, err
}

func (s *groupStageService) UpdateMatch(ctx context.Context, match *models.GroupMatch) ([]engine.Warning, error) {
	existing, err := s.matchRepo.GetByID(ctx, match.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	match.GroupName = existing.GroupName
	if err := s.validateMatch(ctx, match); err != nil {
		return nil, err
	}
	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update group match %d: %w", match.ID, err)
	}
	_, warnings, err := s.RecomputeGroup(ctx, match.GroupName)
	return warnings, err
}

func (s *groupStageService) DeleteMatch(ctx context.Context, matchID int) ([]engine.Warning, error) {
	existing, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return nil, err
	}
	_, warnings, err := s.RecomputeGroup(ctx, existing.GroupName)
	return warnings, err
}

func (s *groupStageService) ListMatches(ctx context.Context, groupName *string) ([]*models.GroupMatch, error) {
	return s.matchRepo.List(ctx, groupName)
}

func (s *groupStageService) ListStandings(ctx context.Context) ([]*models.GroupStanding, error) {
	var cached []*models.GroupStanding
	if err := s.cache.GetJSON(ctx, cacheKeyGroupStandings, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("standings cache read failed", slog.Any("error", err))
	}

	standings, err := s.standingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, cacheKeyGroupStandings, standings, standingsCacheTTL); err != nil {
		s.logger.Warn("standings cache write failed", slog.Any("error", err))
	}
	return standings, nil
}

// RecomputeGroup rebuilds one group's standings snapshot from its full
// match set inside a transaction, invalidates the public cache and
// notifies live subscribers. Warnings (skipped invalid matches) are
// returned so the admin UI can decide whether to block publishing.
func (s *groupStageService) RecomputeGroup(ctx context.Context, groupName string) ([]models.GroupStanding, []engine.Warning, error) {
	group, err := s.groupRepo.GetByName(ctx, groupName)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, nil, ErrGroupNotFound
		}
		return nil, nil, err
	}

	matches, err := s.matchRepo.List(ctx, &groupName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list matches for group %s: %w", groupName, err)
	}
	snapshot := make([]models.GroupMatch, 0, len(matches))
	for _, m := range matches {
		snapshot = append(snapshot, *m)
	}

	standings, warnings := engine.ComputeGroupStandings(group.Name, group.Teams, snapshot)
	for _, w := range warnings {
		s.logger.Warn("group recomputation warning",
			slog.String("group", groupName),
			slog.String("code", w.Code),
			slog.String("message", w.Message))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := s.standingRepo.ReplaceForGroup(ctx, tx, groupName, standings); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("rollback failed", slog.Any("error", rbErr))
		}
		return nil, nil, fmt.Errorf("failed to replace standings for group %s: %w", groupName, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit standings for group %s: %w", groupName, err)
	}

	if err := s.cache.Invalidate(ctx, cacheKeyGroupStandings); err != nil {
		s.logger.Warn("standings cache invalidation failed", slog.Any("error", err))
	}
	s.hub.BroadcastToRoom(string(models.StageGroups), live.Message{
		Type:    "STANDINGS_UPDATED",
		Payload: map[string]interface{}{"group": groupName, "standings": standings},
	})

	return standings, warnings, nil
}

func (s *groupStageService) AdvancingTeams(ctx context.Context) ([]string, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	configs := make([]engine.GroupConfig, 0, len(groups))
	for _, g := range groups {
		configs = append(configs, engine.GroupConfig{Name: g.Name, Teams: g.Teams, AdvanceCount: g.AdvanceCount})
	}
	snapshot := make([]models.GroupMatch, 0, len(matches))
	for _, m := range matches {
		snapshot = append(snapshot, *m)
	}

	advancing, _ := engine.AdvancingTeams(configs, snapshot)
	return advancing, nil
}

// validateMatch applies the entry-time checks; the recomputation path
// defends against already-stored bad data on its own, so these are a
// convenience for the admin forms, not the only line of defense.
func (s *groupStageService) validateMatch(ctx context.Context, match *models.GroupMatch) error {
	if match.Team1 == match.Team2 {
		return ErrSameTeamTwice
	}
	group, err := s.groupRepo.GetByName(ctx, match.GroupName)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return ErrGroupNotFound
		}
		return err
	}
	inRoster := func(name string) bool {
		for _, t := range group.Teams {
			if t == name {
				return true
			}
		}
		return false
	}
	if !inRoster(match.Team1) || !inRoster(match.Team2) {
		return ErrTeamNotInStage
	}

	r := engine.Result{
		Team1: match.Team1, Team2: match.Team2,
		Team1Score: match.Team1Score, Team2Score: match.Team2Score,
		TechnicalWin: match.TechnicalWin,
	}
	if match.TechnicalWinner != nil {
		r.TechnicalWinner = *match.TechnicalWinner
	}
	if _, _, err := engine.DecideWinner(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMatchResult, err)
	}
	return nil
}
