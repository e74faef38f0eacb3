package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/engine"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/live"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/repositories"
)

// BracketService serves both single-elimination stages: the 10-team
// second stage and the 8-team playoff. Advancement is administrative —
// admins create next-round matches with explicit round/position values;
// the service resolves winners, it never auto-populates slots.
type BracketService interface {
	State(ctx context.Context, stage models.BracketStage) (engine.BracketState, error)
	CreateMatch(ctx context.Context, match *models.BracketMatch) error
	RecordResult(ctx context.Context, match *models.BracketMatch) error
	DeleteMatch(ctx context.Context, matchID int) error
	RoundWinners(ctx context.Context, stage models.BracketStage, round int) ([]string, error)
}

type bracketService struct {
	matchRepo repositories.BracketMatchRepository
	hub       *live.Hub
	logger    *slog.Logger
}

func NewBracketService(matchRepo repositories.BracketMatchRepository, hub *live.Hub, logger *slog.Logger) BracketService {
	return &bracketService{matchRepo: matchRepo, hub: hub, logger: logger}
}

func (s *bracketService) State(ctx context.Context, stage models.BracketStage) (engine.BracketState, error) {
	matches, err := s.matchRepo.ListByStage(ctx, stage)
	if err != nil {
		return engine.BracketState{}, fmt.Errorf("failed to list %s bracket: %w", stage, err)
	}
	snapshot := make([]models.BracketMatch, 0, len(matches))
	for _, m := range matches {
		snapshot = append(snapshot, *m)
	}
	return engine.ResolveBracket(snapshot, stage), nil
}

func (s *bracketService) CreateMatch(ctx context.Context, match *models.BracketMatch) error {
	if match.Team1 != nil && match.Team2 != nil && *match.Team1 == *match.Team2 {
		return ErrSameTeamTwice
	}
	if err := engine.ValidateBracketResult(*match); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMatchResult, err)
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return fmt.Errorf("failed to create bracket match: %w", err)
	}
	s.broadcast(ctx, match.Stage)
	return nil
}

func (s *bracketService) RecordResult(ctx context.Context, match *models.BracketMatch) error {
	existing, err := s.matchRepo.GetByID(ctx, match.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrBracketMatchNotFound) {
			return ErrBracketMatchNotFound
		}
		return err
	}
	match.Stage = existing.Stage

	if err := engine.ValidateBracketResult(*match); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMatchResult, err)
	}
	if err := s.matchRepo.Update(ctx, match); err != nil {
		return fmt.Errorf("failed to update bracket match %d: %w", match.ID, err)
	}
	s.broadcast(ctx, match.Stage)
	return nil
}

func (s *bracketService) DeleteMatch(ctx context.Context, matchID int) error {
	existing, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrBracketMatchNotFound) {
			return ErrBracketMatchNotFound
		}
		return err
	}
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return err
	}
	s.broadcast(ctx, existing.Stage)
	return nil
}

func (s *bracketService) RoundWinners(ctx context.Context, stage models.BracketStage, round int) ([]string, error) {
	matches, err := s.matchRepo.ListByStage(ctx, stage)
	if err != nil {
		return nil, err
	}
	snapshot := make([]models.BracketMatch, 0, len(matches))
	for _, m := range matches {
		snapshot = append(snapshot, *m)
	}
	return engine.RoundWinners(snapshot, stage, round), nil
}

func (s *bracketService) broadcast(ctx context.Context, stage models.BracketStage) {
	state, err := s.State(ctx, stage)
	if err != nil {
		s.logger.Error("failed to resolve bracket for broadcast", slog.String("stage", string(stage)), slog.Any("error", err))
		return
	}
	s.hub.BroadcastToRoom(string(stage), live.Message{
		Type:    "BRACKET_UPDATED",
		Payload: state,
	})
}
