package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// UserService implements account management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// List returns one page of accounts matching filter.
func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	filter.Search = strings.TrimSpace(filter.Search)

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &ports.ListUsersResult{
		Items:      users,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies profile changes. Role and active flag are only writable by
// admins; anyone else gets ErrForbidden when attempting to change them.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	changes := input.Changes
	if input.Caller.Role != domain.RoleAdmin && (changes.Role != nil || changes.IsActive != nil) {
		return nil, domain.ErrForbidden
	}
	if changes.Role != nil && !changes.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, *changes.Role)
	}
	if changes.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*changes.Email))
		changes.Email = &email
	}
	if changes.Username != nil {
		username := strings.TrimSpace(*changes.Username)
		changes.Username = &username
	}

	user, err := s.repo.Update(ctx, input.ID, changes)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", input.ID).Str("by", input.Caller.SubjectID).Msg("account updated")
	return user, nil
}

// SetActive enables or disables an account.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	user, err := s.repo.Update(ctx, id, ports.UserChanges{IsActive: &active})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Bool("active", active).Msg("account activation changed")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("account deleted")
	return nil
}
