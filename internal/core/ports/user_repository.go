package ports

import (
	"context"
	"time"

	"github.com/albumhub/album-api/internal/core/domain"
)

// ListUsersFilter carries the query parameters for listing accounts.
type ListUsersFilter struct {
	Role     string // optional: exact role match
	IsActive *bool  // optional: nil = both
	Search   string // optional: case-insensitive match on username, email, first or last name
	Page     int    // 1-based
	Limit    int    // capped at 100 by the service
}

// UserChanges holds the mutable profile fields. Nil fields are left untouched.
type UserChanges struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Role      *domain.Role
	IsActive  *bool
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ExistsByUsernameOrEmail runs a single combined lookup on both unique keys.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, id string, changes UserChanges) (*domain.User, error)
	SetPasswordHash(ctx context.Context, id, hash string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
