package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires API endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := New(&spotify.Config{AccessToken: "token"})
		require.ErrorIs(t, err, spotify.ErrAPIEndpointRequired)
	})

	t.Run("requires an auth source", func(t *testing.T) {
		t.Parallel()

		_, err := New(&spotify.Config{APIEndpoint: "https://api.example.com/v1"})
		require.ErrorIs(t, err, spotify.ErrNoAuthConfigured)
	})

	t.Run("client secret alone is not enough", func(t *testing.T) {
		t.Parallel()

		_, err := New(&spotify.Config{
			APIEndpoint:  "https://api.example.com/v1",
			ClientSecret: "secret",
		})
		require.ErrorIs(t, err, spotify.ErrNoAuthConfigured)
	})

	t.Run("static token", func(t *testing.T) {
		t.Parallel()

		client, err := New(&spotify.Config{
			APIEndpoint: "https://api.example.com/v1",
			AccessToken: "static-token",
		})
		require.NoError(t, err)

		token, err := client.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "static-token", token)

		assert.NotNil(t, client.Tracks())
		assert.NotNil(t, client.Artists())
		assert.NotNil(t, client.Albums())
		assert.NotNil(t, client.Users())
		assert.NotNil(t, client.Playlists())
	})

	t.Run("client credentials", func(t *testing.T) {
		t.Parallel()

		client, err := New(&spotify.Config{
			APIEndpoint:  "https://api.example.com/v1",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		})
		require.NoError(t, err)
		assert.NotNil(t, client.GetTokenManager())
	})
}

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	manager := &staticTokenManager{token: "abc"}

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.ErrorIs(t, manager.RefreshToken(context.Background()), ErrStaticTokenCannotRefresh)

	manager.SetToken("def", time.Now().Add(time.Hour))

	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "def", token)
}

func TestStaticTokenManager_ConcurrentUse(t *testing.T) {
	t.Parallel()

	manager := &staticTokenManager{token: "initial"}

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			manager.SetToken("replaced", time.Time{})
		}()

		go func() {
			defer wg.Done()

			token, err := manager.GetToken(context.Background())
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		}()
	}

	wg.Wait()
}
