package service

import (
	"context"
	"time"

	"shortlink/internal/model"
	"shortlink/internal/repository"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 24 * time.Hour

type Service struct {
	Repo  *repository.Repo
	Redis *redis.Client // may be nil if disabled
}

func NewService(r *repository.Repo, rc *redis.Client) *Service {
	return &Service{Repo: r, Redis: rc}
}

// Resolve returns the long URL for code. With Redis enabled it is a
// read-through cache; the database stays authoritative either way.
func (s *Service) Resolve(ctx context.Context, code string) (string, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, cacheKey(code)).Result(); err == nil {
			return val, nil
		}
	}

	longURL, err := s.Repo.Get(ctx, code)
	if err != nil {
		return "", err
	}
	if s.Redis != nil {
		_ = s.Redis.Set(ctx, cacheKey(code), longURL, cacheTTL).Err()
	}
	return longURL, nil
}

// Save creates or replaces the mapping for code. The cached entry is dropped
// first so a failed write never leaves a stale hit behind.
func (s *Service) Save(ctx context.Context, code, longURL string) error {
	if s.Redis != nil {
		_ = s.Redis.Del(ctx, cacheKey(code)).Err()
	}
	return s.Repo.Upsert(ctx, code, longURL)
}

// Remove deletes the mapping for code, if any.
func (s *Service) Remove(ctx context.Context, code string) error {
	if s.Redis != nil {
		_ = s.Redis.Del(ctx, cacheKey(code)).Err()
	}
	return s.Repo.Delete(ctx, code)
}

func (s *Service) List(ctx context.Context) ([]model.Mapping, error) {
	return s.Repo.ListAll(ctx)
}

func cacheKey(code string) string {
	return "short:" + code
}
