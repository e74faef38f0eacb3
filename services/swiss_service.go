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

// SwissService owns the Swiss stage. Standings are never stored: every
// read replays the full match set through the engine, so an edited or
// deleted match can never leave a stale qualified/eliminated status
// behind.
type SwissService interface {
	Standings(ctx context.Context) ([]models.SwissTeamRecord, []engine.Warning, error)
	SuggestNextRound(ctx context.Context) ([]engine.Pairing, []string, error)
	CreateMatch(ctx context.Context, match *models.SwissMatch) error
	UpdateMatch(ctx context.Context, match *models.SwissMatch) error
	DeleteMatch(ctx context.Context, matchID int) error
	ListMatches(ctx context.Context, round *int) ([]*models.SwissMatch, error)
	ReplaceSeedTeams(ctx context.Context, teams []string) error
}

type swissService struct {
	matchRepo       repositories.SwissMatchRepository
	stageConfigRepo repositories.StageConfigRepository
	pairing         engine.PairingStrategy
	hub             *live.Hub
	logger          *slog.Logger
}

func NewSwissService(
	matchRepo repositories.SwissMatchRepository,
	stageConfigRepo repositories.StageConfigRepository,
	pairing engine.PairingStrategy,
	hub *live.Hub,
	logger *slog.Logger,
) SwissService {
	if pairing == nil {
		pairing = engine.AdjacentPairing{}
	}
	return &swissService{
		matchRepo:       matchRepo,
		stageConfigRepo: stageConfigRepo,
		pairing:         pairing,
		hub:             hub,
		logger:          logger,
	}
}

func (s *swissService) thresholds(ctx context.Context) engine.Thresholds {
	cfg, err := s.stageConfigRepo.GetByStage(ctx, models.StageSwiss)
	if err != nil {
		if !errors.Is(err, repositories.ErrStageConfigNotFound) {
			s.logger.Warn("failed to load swiss config, using defaults", slog.Any("error", err))
		}
		return engine.DefaultThresholds()
	}
	return engine.Thresholds{Wins: cfg.WinThreshold, Losses: cfg.LossThreshold}
}

func (s *swissService) snapshot(ctx context.Context) ([]string, []models.SwissMatch, error) {
	seed, err := s.matchRepo.ListSeedTeams(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list swiss seed teams: %w", err)
	}
	matches, err := s.matchRepo.List(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list swiss matches: %w", err)
	}
	snapshot := make([]models.SwissMatch, 0, len(matches))
	for _, m := range matches {
		snapshot = append(snapshot, *m)
	}
	return seed, snapshot, nil
}

func (s *swissService) Standings(ctx context.Context) ([]models.SwissTeamRecord, []engine.Warning, error) {
	seed, matches, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	records, warnings := engine.RecomputeStandings(seed, matches, s.thresholds(ctx))
	for _, w := range warnings {
		s.logger.Warn("swiss recomputation warning", slog.String("code", w.Code), slog.String("message", w.Message))
	}
	return records, warnings, nil
}

func (s *swissService) SuggestNextRound(ctx context.Context) ([]engine.Pairing, []string, error) {
	seed, matches, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	records, _ := engine.RecomputeStandings(seed, matches, s.thresholds(ctx))
	history := engine.HistoryFromMatches(matches)
	pairings, unpaired := engine.SuggestNextRound(records, history, s.pairing)
	return pairings, unpaired, nil
}

func (s *swissService) CreateMatch(ctx context.Context, match *models.SwissMatch) error {
	if err := s.validateMatch(match); err != nil {
		return err
	}
	if match.MatchType == "" {
		match.MatchType = models.MatchTypeBO1
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return fmt.Errorf("failed to create swiss match: %w", err)
	}
	s.broadcast(ctx)
	return nil
}

func (s *swissService) UpdateMatch(ctx context.Context, match *models.SwissMatch) error {
	if err := s.validateMatch(match); err != nil {
		return err
	}
	if err := s.matchRepo.Update(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrSwissMatchNotFound) {
			return ErrMatchNotFound
		}
		return err
	}
	s.broadcast(ctx)
	return nil
}

func (s *swissService) DeleteMatch(ctx context.Context, matchID int) error {
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		if errors.Is(err, repositories.ErrSwissMatchNotFound) {
			return ErrMatchNotFound
		}
		return err
	}
	s.broadcast(ctx)
	return nil
}

func (s *swissService) ListMatches(ctx context.Context, round *int) ([]*models.SwissMatch, error) {
	return s.matchRepo.List(ctx, round)
}

func (s *swissService) ReplaceSeedTeams(ctx context.Context, teams []string) error {
	if len(teams) == 0 {
		return ErrValidationFailed
	}
	return s.matchRepo.ReplaceSeedTeams(ctx, nil, teams)
}

// Invariant from the stored-data contract: is_played implies either both
// scores present or a technical win.
func (s *swissService) validateMatch(match *models.SwissMatch) error {
	if match.Team1 == match.Team2 {
		return ErrSameTeamTwice
	}
	if !match.IsPlayed {
		return nil
	}
	if match.TechnicalWin {
		if match.TechnicalWinner == nil {
			return fmt.Errorf("%w: technical win requires a technical winner", ErrInvalidMatchResult)
		}
	} else if match.Team1Score == nil || match.Team2Score == nil {
		return fmt.Errorf("%w: played match requires both scores", ErrInvalidMatchResult)
	}

	r := engine.Result{Team1: match.Team1, Team2: match.Team2, TechnicalWin: match.TechnicalWin}
	if match.TechnicalWinner != nil {
		r.TechnicalWinner = *match.TechnicalWinner
	}
	if !match.TechnicalWin {
		r.Team1Score = *match.Team1Score
		r.Team2Score = *match.Team2Score
	}
	if _, _, err := engine.DecideWinner(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMatchResult, err)
	}
	return nil
}

func (s *swissService) broadcast(ctx context.Context) {
	records, _, err := s.Standings(ctx)
	if err != nil {
		s.logger.Error("failed to recompute swiss standings for broadcast", slog.Any("error", err))
		return
	}
	s.hub.BroadcastToRoom(string(models.StageSwiss), live.Message{
		Type:    "SWISS_UPDATED",
		Payload: map[string]interface{}{"records": records},
	})
}
