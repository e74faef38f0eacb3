package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/engine"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/repositories"
)

// StageService is the stage coordinator: it exposes the stable
// qualified-teams read contract per stage so the next stage's admin
// forms can fill their team dropdowns without re-deriving qualification
// logic. It holds no match logic of its own.
type StageService interface {
	QualifiedTeams(ctx context.Context, stage models.TournamentStage) ([]string, error)
	Overview(ctx context.Context) (*TournamentOverview, error)
	GetConfig(ctx context.Context, stage models.TournamentStage) (*models.StageConfig, error)
	UpdateConfig(ctx context.Context, cfg *models.StageConfig) error
}

// TournamentOverview aggregates all four stages for the front page.
type TournamentOverview struct {
	GroupStandings []*models.GroupStanding  `json:"group_standings"`
	Stage2         engine.BracketState      `json:"stage2"`
	SwissRecords   []models.SwissTeamRecord `json:"swiss_records"`
	Playoff        engine.BracketState      `json:"playoff"`
	Champion       *string                  `json:"champion,omitempty"`
}

type stageService struct {
	groupStage      GroupStageService
	swiss           SwissService
	brackets        BracketService
	standingRepo    repositories.GroupStandingRepository
	stageConfigRepo repositories.StageConfigRepository
}

func NewStageService(
	groupStage GroupStageService,
	swiss SwissService,
	brackets BracketService,
	standingRepo repositories.GroupStandingRepository,
	stageConfigRepo repositories.StageConfigRepository,
) StageService {
	return &stageService{
		groupStage:      groupStage,
		swiss:           swiss,
		brackets:        brackets,
		standingRepo:    standingRepo,
		stageConfigRepo: stageConfigRepo,
	}
}

// QualifiedTeams maps each stage to its advancement output. The
// groups→stage2 transition is administrative: the returned pool is what
// admins seed the bracket from, it is not auto-committed anywhere.
func (s *stageService) QualifiedTeams(ctx context.Context, stage models.TournamentStage) ([]string, error) {
	switch stage {
	case models.StageGroups:
		return s.groupStage.AdvancingTeams(ctx)

	case models.StageTwo:
		cfg, err := s.stageConfigRepo.GetByStage(ctx, models.StageTwo)
		if err != nil {
			if errors.Is(err, repositories.ErrStageConfigNotFound) {
				return nil, ErrStageNotConfigured
			}
			return nil, err
		}
		return s.brackets.RoundWinners(ctx, models.StageBracket, cfg.QualifyingRound)

	case models.StageSwiss:
		records, _, err := s.swiss.Standings(ctx)
		if err != nil {
			return nil, err
		}
		return engine.QualifiedFromSwiss(records), nil

	case models.StageFour:
		cfg, err := s.stageConfigRepo.GetByStage(ctx, models.StageFour)
		if err != nil {
			if errors.Is(err, repositories.ErrStageConfigNotFound) {
				return nil, ErrStageNotConfigured
			}
			return nil, err
		}
		return s.brackets.RoundWinners(ctx, models.StagePlayoff, cfg.QualifyingRound)

	default:
		return nil, fmt.Errorf("%w: unknown stage %q", ErrValidationFailed, stage)
	}
}

func (s *stageService) Overview(ctx context.Context) (*TournamentOverview, error) {
	overview := &TournamentOverview{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		standings, err := s.standingRepo.ListAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load group standings: %w", err)
		}
		overview.GroupStandings = standings
		return nil
	})

	g.Go(func() error {
		state, err := s.brackets.State(gCtx, models.StageBracket)
		if err != nil {
			return err
		}
		overview.Stage2 = state
		return nil
	})

	g.Go(func() error {
		records, _, err := s.swiss.Standings(gCtx)
		if err != nil {
			return err
		}
		overview.SwissRecords = records
		return nil
	})

	g.Go(func() error {
		state, err := s.brackets.State(gCtx, models.StagePlayoff)
		if err != nil {
			return err
		}
		overview.Playoff = state
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg, err := s.stageConfigRepo.GetByStage(ctx, models.StageFour); err == nil {
		matches := make([]models.BracketMatch, 0, len(overview.Playoff.Matches))
		for _, slot := range overview.Playoff.Matches {
			matches = append(matches, slot.Match)
		}
		if champion, ok := engine.PlayoffChampion(matches, cfg.QualifyingRound); ok {
			overview.Champion = &champion
		}
	}

	return overview, nil
}

func (s *stageService) GetConfig(ctx context.Context, stage models.TournamentStage) (*models.StageConfig, error) {
	cfg, err := s.stageConfigRepo.GetByStage(ctx, stage)
	if err != nil {
		if errors.Is(err, repositories.ErrStageConfigNotFound) {
			return nil, ErrStageNotConfigured
		}
		return nil, err
	}
	return cfg, nil
}

func (s *stageService) UpdateConfig(ctx context.Context, cfg *models.StageConfig) error {
	if cfg.Stage == models.StageSwiss && (cfg.WinThreshold <= 0 || cfg.LossThreshold <= 0) {
		return fmt.Errorf("%w: swiss thresholds must be positive", ErrValidationFailed)
	}
	return s.stageConfigRepo.Upsert(ctx, cfg)
}
