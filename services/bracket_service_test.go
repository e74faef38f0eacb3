package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/live"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/repositories"
)

type fakeBracketMatchRepo struct {
	matches []models.BracketMatch
	nextID  int
}

func (f *fakeBracketMatchRepo) Create(_ context.Context, match *models.BracketMatch) error {
	f.nextID++
	match.ID = f.nextID
	f.matches = append(f.matches, *match)
	return nil
}

func (f *fakeBracketMatchRepo) GetByID(_ context.Context, id int) (*models.BracketMatch, error) {
	for i := range f.matches {
		if f.matches[i].ID == id {
			m := f.matches[i]
			return &m, nil
		}
	}
	return nil, repositories.ErrBracketMatchNotFound
}

func (f *fakeBracketMatchRepo) ListByStage(_ context.Context, stage models.BracketStage) ([]*models.BracketMatch, error) {
	var out []*models.BracketMatch
	for i := range f.matches {
		if f.matches[i].Stage == stage {
			m := f.matches[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

func (f *fakeBracketMatchRepo) Update(_ context.Context, match *models.BracketMatch) error {
	for i := range f.matches {
		if f.matches[i].ID == match.ID {
			f.matches[i] = *match
			return nil
		}
	}
	return repositories.ErrBracketMatchNotFound
}

func (f *fakeBracketMatchRepo) Delete(_ context.Context, id int) error {
	for i := range f.matches {
		if f.matches[i].ID == id {
			f.matches = append(f.matches[:i], f.matches[i+1:]...)
			return nil
		}
	}
	return repositories.ErrBracketMatchNotFound
}

func newTestBracketService(repo *fakeBracketMatchRepo) BracketService {
	hub := live.NewHub()
	go hub.Run()
	return NewBracketService(repo, hub, testLogger())
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestBracketServiceCreateMatchRejectsSameTeam(t *testing.T) {
	svc := newTestBracketService(&fakeBracketMatchRepo{})

	m := models.BracketMatch{
		Stage: models.StagePlayoff, BracketRound: 1, Position: 1,
		Team1: strPtr("NAVI"), Team2: strPtr("NAVI"),
	}
	err := svc.CreateMatch(context.Background(), &m)
	assert.ErrorIs(t, err, ErrSameTeamTwice)
}

func TestBracketServiceRecordResultRejectsOutsideWinner(t *testing.T) {
	repo := &fakeBracketMatchRepo{}
	svc := newTestBracketService(repo)
	ctx := context.Background()

	m := models.BracketMatch{
		Stage: models.StagePlayoff, BracketRound: 1, Position: 1,
		Team1: strPtr("NAVI"), Team2: strPtr("G2"),
	}
	require.NoError(t, svc.CreateMatch(ctx, &m))

	result := m
	result.Team1Score = intPtr(2)
	result.Team2Score = intPtr(0)
	result.WinnerName = strPtr("FaZe")
	result.IsPlayed = true
	err := svc.RecordResult(ctx, &result)
	assert.ErrorIs(t, err, ErrInvalidMatchResult)
}

func TestBracketServiceRecordResultNotFound(t *testing.T) {
	svc := newTestBracketService(&fakeBracketMatchRepo{})

	m := models.BracketMatch{ID: 99, Stage: models.StagePlayoff}
	err := svc.RecordResult(context.Background(), &m)
	assert.ErrorIs(t, err, ErrBracketMatchNotFound)
}

func TestBracketServiceStateResolvesOnlyPlayedMatches(t *testing.T) {
	repo := &fakeBracketMatchRepo{}
	svc := newTestBracketService(repo)
	ctx := context.Background()

	played := models.BracketMatch{
		Stage: models.StagePlayoff, BracketRound: 1, Position: 1,
		Team1: strPtr("NAVI"), Team2: strPtr("G2"),
		Team1Score: intPtr(2), Team2Score: intPtr(1),
		WinnerName: strPtr("NAVI"), IsPlayed: true,
	}
	pending := models.BracketMatch{
		Stage: models.StagePlayoff, BracketRound: 1, Position: 2,
		Team1: strPtr("FaZe"), Team2: strPtr("Spirit"),
	}
	require.NoError(t, svc.CreateMatch(ctx, &played))
	require.NoError(t, svc.CreateMatch(ctx, &pending))

	state, err := svc.State(ctx, models.StagePlayoff)
	require.NoError(t, err)
	require.Len(t, state.Matches, 2)

	require.NotNil(t, state.Matches[0].Winner)
	assert.Equal(t, "NAVI", *state.Matches[0].Winner)
	assert.Nil(t, state.Matches[1].Winner)
}

func TestBracketServiceRoundWinnersKeepPositionOrder(t *testing.T) {
	repo := &fakeBracketMatchRepo{}
	svc := newTestBracketService(repo)
	ctx := context.Background()

	for _, m := range []models.BracketMatch{
		{
			Stage: models.StageBracket, BracketRound: 1, Position: 2,
			Team1: strPtr("FaZe"), Team2: strPtr("Spirit"),
			Team1Score: intPtr(0), Team2Score: intPtr(2),
			WinnerName: strPtr("Spirit"), IsPlayed: true,
		},
		{
			Stage: models.StageBracket, BracketRound: 1, Position: 1,
			Team1: strPtr("NAVI"), Team2: strPtr("G2"),
			Team1Score: intPtr(2), Team2Score: intPtr(1),
			WinnerName: strPtr("NAVI"), IsPlayed: true,
		},
	} {
		match := m
		require.NoError(t, svc.CreateMatch(ctx, &match))
	}

	winners, err := svc.RoundWinners(ctx, models.StageBracket, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"NAVI", "Spirit"}, winners)
}

func TestBracketServiceDeleteMatchNotFound(t *testing.T) {
	svc := newTestBracketService(&fakeBracketMatchRepo{})

	err := svc.DeleteMatch(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBracketMatchNotFound)
}
