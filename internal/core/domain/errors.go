package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrForbidden        = errors.New("access forbidden")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("invalid token")
	ErrIdentityConflict = errors.New("username or email already in use")
	ErrAccountDisabled  = errors.New("account disabled")
	ErrBadCredential    = errors.New("invalid credentials")
	ErrValidation       = errors.New("validation failed")

	// ErrProviderUnavailable is absorbed by the profile generator and never
	// reaches a client.
	ErrProviderUnavailable = errors.New("provider unavailable")

	ErrNotFound      = errors.New("not found")
	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
	ErrAlbumNotFound = fmt.Errorf("album %w", ErrNotFound)
	ErrPhotoNotFound = fmt.Errorf("photo %w", ErrNotFound)
)
