package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/repositories"
)

// GroupService manages group definitions and rosters. Roster edits do
// not touch standings directly; callers recompute via GroupStageService
// after changing a roster.
type GroupService interface {
	Create(ctx context.Context, name string, advanceCount int) (*models.Group, error)
	List(ctx context.Context) ([]*models.Group, error)
	GetByName(ctx context.Context, name string) (*models.Group, error)
	AddTeam(ctx context.Context, groupName, teamName string) error
	RemoveTeam(ctx context.Context, groupName, teamName string) error
	UpdateAdvanceCount(ctx context.Context, groupName string, advanceCount int) error
	Delete(ctx context.Context, groupName string) error
}

type groupService struct {
	groupRepo repositories.GroupRepository
	teamRepo  repositories.TeamRepository
}

func NewGroupService(groupRepo repositories.GroupRepository, teamRepo repositories.TeamRepository) GroupService {
	return &groupService{groupRepo: groupRepo, teamRepo: teamRepo}
}

func (s *groupService) Create(ctx context.Context, name string, advanceCount int) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrValidationFailed)
	}
	if advanceCount < 0 {
		return nil, fmt.Errorf("%w: advance count must not be negative", ErrValidationFailed)
	}
	group := &models.Group{Name: name, AdvanceCount: advanceCount}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group %s: %w", name, err)
	}
	return group, nil
}

func (s *groupService) List(ctx context.Context) ([]*models.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *groupService) GetByName(ctx context.Context, name string) (*models.Group, error) {
	group, err := s.groupRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

// AddTeam requires the team to exist in the registry so standings never
// reference a team that was never created.
func (s *groupService) AddTeam(ctx context.Context, groupName, teamName string) error {
	group, err := s.GetByName(ctx, groupName)
	if err != nil {
		return err
	}
	if _, err := s.teamRepo.GetByName(ctx, teamName); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	for _, t := range group.Teams {
		if t == teamName {
			return fmt.Errorf("%w: team %s is already in group %s", ErrValidationFailed, teamName, groupName)
		}
	}
	return s.groupRepo.AddTeam(ctx, group.ID, teamName)
}

func (s *groupService) RemoveTeam(ctx context.Context, groupName, teamName string) error {
	group, err := s.GetByName(ctx, groupName)
	if err != nil {
		return err
	}
	err = s.groupRepo.RemoveTeam(ctx, group.ID, teamName)
	if errors.Is(err, repositories.ErrGroupNotFound) {
		return ErrTeamNotInStage
	}
	return err
}

func (s *groupService) UpdateAdvanceCount(ctx context.Context, groupName string, advanceCount int) error {
	if advanceCount < 0 {
		return fmt.Errorf("%w: advance count must not be negative", ErrValidationFailed)
	}
	group, err := s.GetByName(ctx, groupName)
	if err != nil {
		return err
	}
	err = s.groupRepo.UpdateAdvanceCount(ctx, group.ID, advanceCount)
	if errors.Is(err, repositories.ErrGroupNotFound) {
		return ErrGroupNotFound
	}
	return err
}

func (s *groupService) Delete(ctx context.Context, groupName string) error {
	group, err := s.GetByName(ctx, groupName)
	if err != nil {
		return err
	}
	err = s.groupRepo.Delete(ctx, group.ID)
	if errors.Is(err, repositories.ErrGroupNotFound) {
		return ErrGroupNotFound
	}
	return err
}
