package ports

import (
	"context"

	"github.com/albumhub/album-api/internal/core/domain"
)

// ListUsersResult is returned by UserService.List.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UpdateUserInput carries a profile edit together with the caller, whose role
// decides whether privileged fields may change.
type UpdateUserInput struct {
	Caller  domain.Identity
	ID      string
	Changes UserChanges
}

// UserService defines account management use cases.
type UserService interface {
	List(ctx context.Context, filter ListUsersFilter) (*ListUsersResult, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
