package spotifyclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		apiClient, err := New(nil)
		require.ErrorIs(t, err, spotify.ErrConfigRequired)
		assert.Nil(t, apiClient)
	})

	t.Run("no auth source", func(t *testing.T) {
		t.Parallel()

		apiClient, err := New(&spotify.Config{})
		require.ErrorIs(t, err, spotify.ErrNoAuthConfigured)
		assert.Nil(t, apiClient)
	})

	t.Run("incomplete client credentials", func(t *testing.T) {
		t.Parallel()

		apiClient, err := New(&spotify.Config{ClientID: "only-id"})
		require.ErrorIs(t, err, spotify.ErrNoAuthConfigured)
		assert.Nil(t, apiClient)
	})

	t.Run("static access token", func(t *testing.T) {
		t.Parallel()

		apiClient, err := New(&spotify.Config{AccessToken: "test-token"})
		require.NoError(t, err)
		assert.NotNil(t, apiClient.Tracks())
		assert.NotNil(t, apiClient.Artists())
		assert.NotNil(t, apiClient.Albums())
		assert.NotNil(t, apiClient.Users())
		assert.NotNil(t, apiClient.Playlists())
	})

	t.Run("client credentials", func(t *testing.T) {
		t.Parallel()

		apiClient, err := New(&spotify.Config{
			ClientID:     "test-client",
			ClientSecret: "test-secret",
		})
		require.NoError(t, err)
		assert.NotNil(t, apiClient)
	})

	t.Run("config is not mutated", func(t *testing.T) {
		t.Parallel()

		config := &spotify.Config{AccessToken: "test-token"}

		_, err := New(config)
		require.NoError(t, err)
		assert.Empty(t, config.APIEndpoint)
		assert.Empty(t, config.TokenURL)
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{
			name:     "empty defaults to the v1 root",
			endpoint: "",
			want:     "https://api.spotify.com/v1",
		},
		{
			name:     "trailing slash is trimmed",
			endpoint: "https://api.spotify.com/v1/",
			want:     "https://api.spotify.com/v1",
		},
		{
			name:     "bare host gains https",
			endpoint: "api.spotify.com/v1",
			want:     "https://api.spotify.com/v1",
		},
		{
			name:     "http endpoint kept as-is",
			endpoint: "http://localhost:8080/v1",
			want:     "http://localhost:8080/v1",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, normalizeEndpoint(testCase.endpoint))
		})
	}
}

func TestNew_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/tracks/3n3Ppam7vgaVa1iaRUc9Lp", request.URL.Path)
		assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))

		_, _ = writer.Write([]byte(`{"id": "3n3Ppam7vgaVa1iaRUc9Lp", "name": "Mr. Brightside", "type": "track"}`))
	}))
	defer server.Close()

	apiClient, err := New(&spotify.Config{
		APIEndpoint: server.URL,
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	track, err := apiClient.Tracks().Get(context.Background(), "spotify:track:3n3Ppam7vgaVa1iaRUc9Lp")
	require.NoError(t, err)
	assert.Equal(t, "Mr. Brightside", track.Name)
}
