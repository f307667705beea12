package repository

import (
	"context"
	"time"

	"backoffice-service/cache"
	"backoffice-service/domain"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
)

type AuthenticationCache struct {
	cache    *cache.Cache
	duration time.Duration
}

func NewAuthenticationCache(duration time.Duration) AuthenticationCache {
	return AuthenticationCache{
		duration: duration,
		cache:    cache.New(),
	}
}

func (r AuthenticationCache) Get(ctx context.Context, token string) (*domain.Principal, error) {
	data, ok := r.cache.Get(token)
	if !ok {
		return nil, domain.ErrAuthenticationCacheMiss
	}

	result := domain.Principal{}
	err := json.Unmarshal(data, &result)
	if err != nil {
		return nil, errors.WithMessage(err, "json unmarshal principal")
	}

	return &result, nil
}

func (r AuthenticationCache) Set(ctx context.Context, token string, principal domain.Principal) error {
	value, err := json.Marshal(principal)
	if err != nil {
		return errors.WithMessage(err, "json marshal principal")
	}

	r.cache.Set(token, value, r.duration)

	return nil
}

func (r AuthenticationCache) Delete(ctx context.Context, token string) {
	r.cache.Delete(token)
}
