package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devnetwork/devnetwork-service/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.GithubConfig{
		APIBaseURL:     baseURL,
		UserAgent:      "devnetwork-service-test",
		TimeoutSeconds: 5,
	})
}

func TestListReposRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created:asc", r.URL.Query().Get("sort"))
		assert.Equal(t, "devnetwork-service-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "hello-world", "html_url": "https://github.com/octocat/hello-world", "stargazers_count": 42},
			{"id": 2, "name": "spoon-knife", "language": "Go"}
		]`))
	}))
	defer server.Close()

	repos, err := newTestClient(server.URL).ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "hello-world", repos[0].Name)
	assert.Equal(t, 42, repos[0].Stargazers)
	assert.Equal(t, "Go", repos[1].Language)
}

func TestListReposUnknownUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ListRepos(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListReposAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(config.GithubConfig{
		APIBaseURL:     server.URL,
		Token:          "gh-token",
		UserAgent:      "devnetwork-service-test",
		TimeoutSeconds: 5,
	})

	repos, err := client.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, repos)
}
