package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/live"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/repositories"
)

type fakeSwissMatchRepo struct {
	seed    []string
	matches []models.SwissMatch
	nextID  int
}

func (f *fakeSwissMatchRepo) Create(_ context.Context, match *models.SwissMatch) error {
	f.nextID++
	match.ID = f.nextID
	f.matches = append(f.matches, *match)
	return nil
}

func (f *fakeSwissMatchRepo) GetByID(_ context.Context, id int) (*models.SwissMatch, error) {
	for i := range f.matches {
		if f.matches[i].ID == id {
			m := f.matches[i]
			return &m, nil
		}
	}
	return nil, repositories.ErrSwissMatchNotFound
}

func (f *fakeSwissMatchRepo) List(_ context.Context, round *int) ([]*models.SwissMatch, error) {
	out := make([]*models.SwissMatch, 0, len(f.matches))
	for i := range f.matches {
		if round != nil && f.matches[i].RoundNumber != *round {
			continue
		}
		m := f.matches[i]
		out = append(out, &m)
	}
	return out, nil
}

func (f *fakeSwissMatchRepo) Update(_ context.Context, match *models.SwissMatch) error {
	for i := range f.matches {
		if f.matches[i].ID == match.ID {
			f.matches[i] = *match
			return nil
		}
	}
	return repositories.ErrSwissMatchNotFound
}

func (f *fakeSwissMatchRepo) Delete(_ context.Context, id int) error {
	for i := range f.matches {
		if f.matches[i].ID == id {
			f.matches = append(f.matches[:i], f.matches[i+1:]...)
			return nil
		}
	}
	return repositories.ErrSwissMatchNotFound
}

func (f *fakeSwissMatchRepo) ListSeedTeams(context.Context) ([]string, error) {
	return f.seed, nil
}

func (f *fakeSwissMatchRepo) ReplaceSeedTeams(_ context.Context, _ repositories.SQLExecutor, teams []string) error {
	f.seed = teams
	return nil
}

type fakeStageConfigRepo struct {
	configs map[models.TournamentStage]*models.StageConfig
}

func (f *fakeStageConfigRepo) GetByStage(_ context.Context, stage models.TournamentStage) (*models.StageConfig, error) {
	if cfg, ok := f.configs[stage]; ok {
		return cfg, nil
	}
	return nil, repositories.ErrStageConfigNotFound
}

func (f *fakeStageConfigRepo) Upsert(_ context.Context, cfg *models.StageConfig) error {
	if f.configs == nil {
		f.configs = make(map[models.TournamentStage]*models.StageConfig)
	}
	f.configs[cfg.Stage] = cfg
	return nil
}

func (f *fakeStageConfigRepo) List(context.Context) ([]*models.StageConfig, error) {
	out := make([]*models.StageConfig, 0, len(f.configs))
	for _, cfg := range f.configs {
		out = append(out, cfg)
	}
	return out, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSwissService(repo *fakeSwissMatchRepo, cfgRepo *fakeStageConfigRepo) SwissService {
	hub := live.NewHub()
	go hub.Run()
	return NewSwissService(repo, cfgRepo, nil, hub, testLogger())
}

func playedSwiss(round int, t1, t2 string, s1, s2 int) models.SwissMatch {
	return models.SwissMatch{
		RoundNumber: round, Team1: t1, Team2: t2,
		Team1Score: &s1, Team2Score: &s2, IsPlayed: true,
		MatchType: models.MatchTypeBO1,
	}
}

func TestSwissServiceCreateMatchRejectsSameTeam(t *testing.T) {
	svc := newTestSwissService(&fakeSwissMatchRepo{}, &fakeStageConfigRepo{})

	m := playedSwiss(1, "NAVI", "NAVI", 13, 7)
	err := svc.CreateMatch(context.Background(), &m)
	assert.ErrorIs(t, err, ErrSameTeamTwice)
}

func TestSwissServiceCreateMatchRejectsPlayedWithoutScores(t *testing.T) {
	svc := newTestSwissService(&fakeSwissMatchRepo{}, &fakeStageConfigRepo{})

	m := models.SwissMatch{RoundNumber: 1, Team1: "NAVI", Team2: "G2", IsPlayed: true}
	err := svc.CreateMatch(context.Background(), &m)
	assert.ErrorIs(t, err, ErrInvalidMatchResult)
}

func TestSwissServiceCreateMatchDefaultsToBO1(t *testing.T) {
	repo := &fakeSwissMatchRepo{}
	svc := newTestSwissService(repo, &fakeStageConfigRepo{})

	m := models.SwissMatch{RoundNumber: 1, Team1: "NAVI", Team2: "G2"}
	require.NoError(t, svc.CreateMatch(context.Background(), &m))
	assert.Equal(t, models.MatchTypeBO1, repo.matches[0].MatchType)
}

func TestSwissServiceStandingsUseConfiguredThresholds(t *testing.T) {
	repo := &fakeSwissMatchRepo{seed: []string{"NAVI", "G2", "FaZe", "Spirit"}}
	cfgRepo := &fakeStageConfigRepo{configs: map[models.TournamentStage]*models.StageConfig{
		models.StageSwiss: {Stage: models.StageSwiss, WinThreshold: 2, LossThreshold: 2},
	}}
	svc := newTestSwissService(repo, cfgRepo)
	ctx := context.Background()

	for _, m := range []models.SwissMatch{
		playedSwiss(1, "NAVI", "G2", 13, 7),
		playedSwiss(1, "FaZe", "Spirit", 13, 11),
		playedSwiss(2, "NAVI", "FaZe", 13, 9),
		playedSwiss(2, "G2", "Spirit", 13, 10),
	} {
		match := m
		require.NoError(t, svc.CreateMatch(ctx, &match))
	}

	records, warnings, err := svc.Standings(ctx)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	byName := make(map[string]models.SwissTeamRecord, len(records))
	for _, r := range records {
		byName[r.TeamName] = r
	}
	assert.Equal(t, models.SwissQualified, byName["NAVI"].Status)
	assert.Equal(t, models.SwissEliminated, byName["Spirit"].Status)
	assert.Equal(t, models.SwissActive, byName["G2"].Status)
	assert.Equal(t, models.SwissActive, byName["FaZe"].Status)
}

func TestSwissServiceUpdateMatchNotFound(t *testing.T) {
	svc := newTestSwissService(&fakeSwissMatchRepo{}, &fakeStageConfigRepo{})

	m := playedSwiss(1, "NAVI", "G2", 13, 7)
	m.ID = 42
	err := svc.UpdateMatch(context.Background(), &m)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestSwissServiceEditedMatchShiftsStandings(t *testing.T) {
	repo := &fakeSwissMatchRepo{seed: []string{"NAVI", "G2"}}
	svc := newTestSwissService(repo, &fakeStageConfigRepo{})
	ctx := context.Background()

	m := playedSwiss(1, "NAVI", "G2", 13, 7)
	require.NoError(t, svc.CreateMatch(ctx, &m))

	records, _, err := svc.Standings(ctx)
	require.NoError(t, err)
	require.Equal(t, "NAVI", records[0].TeamName)
	assert.Equal(t, 1, records[0].Wins)

	flipped := playedSwiss(1, "NAVI", "G2", 7, 13)
	flipped.ID = m.ID
	require.NoError(t, svc.UpdateMatch(ctx, &flipped))

	records, _, err = svc.Standings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "G2", records[0].TeamName)
	assert.Equal(t, 1, records[0].Wins)
}

func TestSwissServiceSuggestNextRoundPairsByRecord(t *testing.T) {
	repo := &fakeSwissMatchRepo{seed: []string{"NAVI", "G2", "FaZe", "Spirit"}}
	svc := newTestSwissService(repo, &fakeStageConfigRepo{})
	ctx := context.Background()

	for _, m := range []models.SwissMatch{
		playedSwiss(1, "NAVI", "G2", 13, 7),
		playedSwiss(1, "FaZe", "Spirit", 13, 11),
	} {
		match := m
		require.NoError(t, svc.CreateMatch(ctx, &match))
	}

	pairings, unpaired, err := svc.SuggestNextRound(ctx)
	require.NoError(t, err)
	assert.Empty(t, unpaired)
	require.Len(t, pairings, 2)

	// 1-0 bucket first, then 0-1.
	assert.Equal(t, 1, pairings[0].Wins)
	assert.ElementsMatch(t, []string{"NAVI", "FaZe"}, []string{pairings[0].Team1, pairings[0].Team2})
	assert.ElementsMatch(t, []string{"G2", "Spirit"}, []string{pairings[1].Team1, pairings[1].Team2})
}

func TestSwissServiceReplaceSeedTeamsRejectsEmpty(t *testing.T) {
	svc := newTestSwissService(&fakeSwissMatchRepo{}, &fakeStageConfigRepo{})

	err := svc.ReplaceSeedTeams(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrValidationFailed))
}
