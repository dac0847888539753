package ports

import (
	"context"

	"github.com/albumhub/album-api/internal/core/domain"
)

// ProfileSources is the set of upstream providers the profile generator
// fans out to. Each call may fail independently.
type ProfileSources interface {
	RandomUser(ctx context.Context) (domain.RandomUser, error)
	PhoneNumber(ctx context.Context) (string, error)
	IBAN(ctx context.Context) (string, error)
	CreditCard(ctx context.Context) (domain.CreditCard, error)
	FirstName(ctx context.Context) (string, error)
	Animal(ctx context.Context) (string, error)
	Quote(ctx context.Context) (domain.Quote, error)
	Joke(ctx context.Context) (domain.RawJoke, error)
}

// ProfileGenerator builds a composite profile.
type ProfileGenerator interface {
	Generate(ctx context.Context) (*domain.CompositeProfile, error)
}
