package service

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"user-group-service/internal/entity"
	"user-group-service/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers retrieves all users ordered by ascending id.
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}

	return users, nil
}

// CreateUser inserts a new user and returns it with the assigned id.
func (s *UserService) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	createdUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	return createdUser, nil
}

// UpdateMarks sets the marks for the user with the given id. Returns
// repository.ErrUserNotFound when no row matches.
func (s *UserService) UpdateMarks(ctx context.Context, id int, marks int) error {
	affected, err := s.repo.UpdateMarks(ctx, id, marks)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating marks for user %d", id)
		return err
	}
	if affected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes the user with the given id. Returns
// repository.ErrUserNotFound when no row matches.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting user %d", id)
		return err
	}
	if affected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
