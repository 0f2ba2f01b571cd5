package service

import (
	"context"

	"user-group-service/internal/entity"
	"user-group-service/internal/repository"
)

type GroupService struct {
	repo repository.GroupRepository
}

// NewGroupService creates a new instance of GroupService.
func NewGroupService(repo repository.GroupRepository) *GroupService {
	return &GroupService{repo: repo}
}

// ListGroups retrieves all groups ordered by ascending id.
func (s *GroupService) ListGroups(ctx context.Context) ([]entity.Group, error) {
	groups, err := s.repo.ListGroups(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing groups")
		return nil, err
	}

	return groups, nil
}

// CreateGroup inserts a new group and returns it with the assigned id.
// A duplicate name surfaces as repository.ErrDuplicateGroupName.
func (s *GroupService) CreateGroup(ctx context.Context, group *entity.Group) (*entity.Group, error) {
	createdGroup, err := s.repo.CreateGroup(ctx, group)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating group")
		return nil, err
	}

	return createdGroup, nil
}
