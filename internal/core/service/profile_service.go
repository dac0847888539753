package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
	"github.com/albumhub/album-api/internal/pkg/metrics"
)

const defaultProviderTimeout = 5 * time.Second

// Provider names, also used as metric labels and timeout keys.
const (
	ProviderRandomUser = "random_user"
	ProviderPhone      = "phone_number"
	ProviderIBAN       = "iban"
	ProviderCreditCard = "credit_card"
	ProviderName       = "random_name"
	ProviderPet        = "pet"
	ProviderQuote      = "quote"
	ProviderJoke       = "joke"
)

// ProfileService fans out to every upstream provider concurrently and merges
// the results. A failing provider is replaced by its static fallback; only a
// panicking provider fails the whole call.
type ProfileService struct {
	sources  ports.ProfileSources
	timeouts map[string]time.Duration
	fallback time.Duration
	logger   zerolog.Logger
}

// NewProfileService builds the generator. timeouts overrides the per-provider
// deadline by provider name; missing entries use defaultTimeout.
func NewProfileService(
	sources ports.ProfileSources,
	defaultTimeout time.Duration,
	timeouts map[string]time.Duration,
	logger zerolog.Logger,
) *ProfileService {
	if defaultTimeout <= 0 {
		defaultTimeout = defaultProviderTimeout
	}
	return &ProfileService{sources: sources, timeouts: timeouts, fallback: defaultTimeout, logger: logger}
}

// Generate returns a composite profile once every provider has settled.
func (s *ProfileService) Generate(ctx context.Context) (*domain.CompositeProfile, error) {
	profile := &domain.CompositeProfile{}

	// Branches share no cancellation: one failure must not abort the others.
	var g errgroup.Group
	g.Go(branch(ctx, s, ProviderRandomUser, s.sources.RandomUser, domain.FallbackRandomUser, &profile.User))
	g.Go(branch(ctx, s, ProviderPhone, s.sources.PhoneNumber, domain.FallbackPhoneNumber, &profile.PhoneNumber))
	g.Go(branch(ctx, s, ProviderIBAN, s.sources.IBAN, domain.FallbackIBAN, &profile.IBAN))
	g.Go(branch(ctx, s, ProviderCreditCard, s.sources.CreditCard, domain.FallbackCreditCard, &profile.CreditCard))
	g.Go(branch(ctx, s, ProviderName, s.sources.FirstName, domain.FallbackName, &profile.RandomName))
	g.Go(branch(ctx, s, ProviderPet, s.sources.Animal, domain.FallbackPet, &profile.Pet))
	g.Go(branch(ctx, s, ProviderQuote, s.sources.Quote, domain.FallbackQuote, &profile.Quote))
	g.Go(branch(ctx, s, ProviderJoke, s.joke, domain.FallbackJoke, &profile.Joke))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) joke(ctx context.Context) (domain.Joke, error) {
	raw, err := s.sources.Joke(ctx)
	if err != nil {
		return domain.Joke{}, err
	}
	return domain.NormalizeJoke(raw), nil
}

func (s *ProfileService) timeoutFor(name string) time.Duration {
	if d, ok := s.timeouts[name]; ok && d > 0 {
		return d
	}
	return s.fallback
}

// branch runs one provider under its own deadline and writes the result, or
// the fallback, into dst. Each branch owns a distinct dst.
func branch[T any](
	ctx context.Context,
	s *ProfileService,
	name string,
	fetch func(context.Context) (T, error),
	fallback T,
	dst *T,
) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error().Str("provider", name).Interface("panic", r).Msg("profile provider panicked")
				err = fmt.Errorf("profile provider %s panicked: %v", name, r)
			}
		}()

		start := time.Now()
		branchCtx, cancel := context.WithTimeout(ctx, s.timeoutFor(name))
		defer cancel()

		v, fetchErr := fetch(branchCtx)
		metrics.ProviderDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if fetchErr != nil {
			s.logger.Warn().Err(fetchErr).Str("provider", name).Msg("profile provider failed, using fallback")
			metrics.ProviderRequestsTotal.WithLabelValues(name, "fallback").Inc()
			*dst = fallback
			return nil
		}

		metrics.ProviderRequestsTotal.WithLabelValues(name, "ok").Inc()
		*dst = v
		return nil
	}
}
