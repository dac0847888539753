package ports

import (
	"context"
	"time"

	"github.com/albumhub/album-api/internal/core/domain"
)

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	Issue(subjectID, username string, role domain.Role, ttl time.Duration) (string, error)
}

// TokenVerifier validates session tokens. It returns domain.ErrTokenExpired or
// domain.ErrTokenMalformed on failure.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// RegisterInput is the DTO passed from the transport layer on sign-up.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role // empty = domain.RoleUser
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// CredentialService owns password handling and token minting for accounts.
type CredentialService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
}

// LoginRecorder persists last-login timestamps off the request path.
type LoginRecorder interface {
	Record(userID string, at time.Time)
}
