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
		if r.URL.Path != "/repos/abhisek/vocabdrill/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		tag       string
		available bool
	}{
		{"newer release", "v1.0.0", "v1.2.0", true},
		{"same version", "v1.2.0", "v1.2.0", false},
		{"older release", "v2.0.0", "v1.9.9", false},
		{"missing v prefix", "1.0.0", "v1.0.1", true},
		{"prerelease is older", "v1.0.0", "v1.0.0-rc.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, `{"tag_name":"`+tt.tag+`","html_url":"https://example.com/r"}`, http.StatusOK)
			checker := NewChecker(WithBaseURL(server.URL))

			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.available, result.UpdateAvailable)
			assert.Equal(t, tt.tag, result.LatestVersion)
			assert.Equal(t, "https://example.com/r", result.ReleaseURL)
		})
	}
}

func TestCheck_Errors(t *testing.T) {
	t.Run("dev build", func(t *testing.T) {
		_, err := NewChecker().Check(context.Background(), &CheckInput{Version: "(devel)"})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("invalid current version", func(t *testing.T) {
		_, err := NewChecker().Check(context.Background(), &CheckInput{Version: "banana"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid current version")
	})

	t.Run("http error", func(t *testing.T) {
		server := releaseServer(t, `{}`, http.StatusForbidden)
		_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("bad tag", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"latest"}`, http.StatusOK)
		_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid release tag")
	})

	t.Run("custom repository", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"v9.0.0"}`, http.StatusOK)
		_, err := NewChecker(WithBaseURL(server.URL), WithRepository("someone", "else")).
			Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})
}
