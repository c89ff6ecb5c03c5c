package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devnetwork/devnetwork-service/internal/github"
	"github.com/devnetwork/devnetwork-service/internal/service"
)

type fakeRepoLister struct {
	repos []github.Repo
	err   error
	calls int
}

func (f *fakeRepoLister) ListRepos(ctx context.Context, username string) ([]github.Repo, error) {
	f.calls++
	return f.repos, f.err
}

func TestGithubListReposWithoutCache(t *testing.T) {
	lister := &fakeRepoLister{repos: []github.Repo{{ID: 1, Name: "devnetwork"}}}
	svc := service.NewGithubService(lister, nil, time.Minute, zap.NewNop())

	repos, err := svc.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "devnetwork", repos[0].Name)
	assert.Equal(t, 1, lister.calls)
}

func TestGithubUserNotFoundPassesThrough(t *testing.T) {
	lister := &fakeRepoLister{err: github.ErrUserNotFound}
	svc := service.NewGithubService(lister, nil, time.Minute, zap.NewNop())

	_, err := svc.ListRepos(context.Background(), "ghost")
	assert.ErrorIs(t, err, github.ErrUserNotFound)
}
