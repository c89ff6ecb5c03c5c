package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/devnetwork/devnetwork-service/internal/github"
)

// RepoLister fetches repositories for a GitHub user.
type RepoLister interface {
	ListRepos(ctx context.Context, username string) ([]github.Repo, error)
}

// GithubService proxies repository listings with a redis read-through cache.
// Cache failures degrade to a direct upstream fetch.
type GithubService struct {
	client   RepoLister
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewGithubService builds the service. cache may be nil to disable caching.
func NewGithubService(client RepoLister, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *GithubService {
	return &GithubService{client: client, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// ListRepos returns the user's recent repositories, cached per username.
func (s *GithubService) ListRepos(ctx context.Context, username string) ([]github.Repo, error) {
	key := cacheKey(username)

	if s.cache != nil && s.cacheTTL > 0 {
		cached, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var repos []github.Repo
			if unmarshalErr := json.Unmarshal(cached, &repos); unmarshalErr == nil {
				return repos, nil
			}
			s.logger.Warn("discarding corrupt github cache entry", zap.String("username", username))
		} else if err != redis.Nil {
			s.logger.Debug("github cache read failed", zap.Error(err))
		}
	}

	repos, err := s.client.ListRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if encoded, marshalErr := json.Marshal(repos); marshalErr == nil {
			if setErr := s.cache.Set(ctx, key, encoded, s.cacheTTL).Err(); setErr != nil {
				s.logger.Debug("github cache write failed", zap.Error(setErr))
			}
		}
	}
	return repos, nil
}

func cacheKey(username string) string {
	return "github:repos:" + username
}
