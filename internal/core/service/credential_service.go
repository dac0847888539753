package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
	"github.com/albumhub/album-api/internal/pkg/metrics"
)

// CredentialService implements registration, login and password changes.
type CredentialService struct {
	users      ports.UserRepository
	tokens     ports.TokenIssuer
	logins     ports.LoginRecorder
	bcryptCost int
	logger     zerolog.Logger
	now        func() time.Time
}

func NewCredentialService(
	users ports.UserRepository,
	tokens ports.TokenIssuer,
	logins ports.LoginRecorder,
	bcryptCost int,
	logger zerolog.Logger,
) *CredentialService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &CredentialService{
		users:      users,
		tokens:     tokens,
		logins:     logins,
		bcryptCost: bcryptCost,
		logger:     logger,
		now:        time.Now,
	}
}

// Register creates an account and signs the caller in.
func (s *CredentialService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "conflict").Inc()
		return nil, domain.ErrIdentityConflict
	}

	hash, err := s.hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrIdentityConflict) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "conflict").Inc()
		}
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Username, created.Role, 0)
	if err != nil {
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("account registered")

	return &ports.AuthResult{User: created, Token: token}, nil
}

// Login checks the credential and returns a fresh token. The last-login
// timestamp is recorded asynchronously and never fails the call.
func (s *CredentialService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthAttemptsTotal.WithLabelValues("login", "not_found").Inc()
		}
		return nil, err
	}

	if !user.IsActive {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "disabled").Inc()
		return nil, domain.ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "bad_credential").Inc()
		return nil, domain.ErrBadCredential
	}

	if s.logins != nil {
		s.logins.Record(user.ID, s.now().UTC())
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Role, 0)
	if err != nil {
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return &ports.AuthResult{User: user, Token: token}, nil
}

// ChangePassword replaces the stored hash after verifying the current password.
func (s *CredentialService) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrBadCredential
	}

	hash, err := s.hash(next)
	if err != nil {
		return err
	}

	if err := s.users.SetPasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

// hash rejects passwords bcrypt cannot represent as validation failures.
func (s *CredentialService) hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: password must be at most 72 bytes", domain.ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
