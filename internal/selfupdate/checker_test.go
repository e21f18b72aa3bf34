package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/futurelink/pathfinder/releases/latest", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		tagName       string
		wantAvailable bool
	}{
		{"newer patch available", "v1.0.0", "v1.0.1", true},
		{"newer minor available", "v1.0.0", "v1.1.0", true},
		{"already latest", "v1.1.0", "v1.1.0", false},
		{"running ahead of release", "v2.0.0", "v1.1.0", false},
		{"tag without v prefix", "v1.0.0", "2.0.0", true},
		{"current without v prefix", "1.0.0", "v2.0.0", true},
		{"invalid current version", "(devel)", "v1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, `{"tag_name":"`+tt.tagName+`","html_url":"https://example.com/release"}`, http.StatusOK)

			checker := NewChecker(WithBaseURLs(server.URL, server.URL))
			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)

			assert.Equal(t, tt.wantAvailable, result.UpdateAvailable)
			assert.Equal(t, tt.tagName, result.LatestVersion)
			assert.Equal(t, "https://example.com/release", result.ReleaseURL)
		})
	}
}

func TestCheck_Errors(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		server := releaseServer(t, `{"message":"Not Found"}`, http.StatusNotFound)

		checker := NewChecker(WithBaseURLs(server.URL, server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := releaseServer(t, `not json`, http.StatusOK)

		checker := NewChecker(WithBaseURLs(server.URL, server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
	})

	t.Run("missing tag name", func(t *testing.T) {
		server := releaseServer(t, `{"html_url":"https://example.com"}`, http.StatusOK)

		checker := NewChecker(WithBaseURLs(server.URL, server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no tag name")
	})

	t.Run("invalid tag", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"latest","html_url":"https://example.com"}`, http.StatusOK)

		checker := NewChecker(WithBaseURLs(server.URL, server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid version")
	})
}

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{"  v1.2.3  ", "v1.2.3"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalVersion(tt.in))
	}
}
