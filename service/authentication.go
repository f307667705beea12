package service

import (
	"context"

	"backoffice-service/domain"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
)

type AuthenticationCache interface {
	Get(ctx context.Context, token string) (*domain.Principal, error)
	Set(ctx context.Context, token string, principal domain.Principal) error
	Delete(ctx context.Context, token string)
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.AuthenticateResponse, error)
}

type Authentication struct {
	cache    AuthenticationCache
	verifier TokenVerifier
	logger   log.Logger
}

func NewAuthentication(cache AuthenticationCache, verifier TokenVerifier, logger log.Logger) Authentication {
	return Authentication{
		cache:    cache,
		verifier: verifier,
		logger:   logger,
	}
}

func (s Authentication) Authenticate(ctx context.Context, token string) (*domain.AuthenticateResponse, error) {
	principal, err := s.cache.Get(ctx, token)
	switch {
	case errors.Is(err, domain.ErrAuthenticationCacheMiss):
	case err != nil:
		return nil, errors.WithMessage(err, "get principal from cache")
	default:
		return &domain.AuthenticateResponse{
			Authenticated: true,
			CacheHit:      true,
			Principal:     principal,
		}, nil
	}

	response, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, errors.WithMessage(err, "verify token")
	}

	if response.Authenticated {
		err = s.cache.Set(ctx, token, *response.Principal)
		if err != nil {
			s.logger.Warn(ctx, errors.WithMessage(err, "cache principal"))
		}
	}

	return response, nil
}

// Logout drops the cached principal so the token has to be
// verified again on the next request.
func (s Authentication) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	s.cache.Delete(ctx, token)
}
