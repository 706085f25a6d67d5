package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/spotify/internal/http"
	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

func TestUsersClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/wizzler", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		displayName := "JM Wizzler"
		user := spotify.PublicUser{
			ID:          "wizzler",
			DisplayName: &displayName,
			Followers:   spotify.Followers{Total: 42},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(user)
	}))
	defer server.Close()

	users := NewUsersClient(internalhttp.NewClient(server.URL, nil), nil)

	user, err := users.Get(context.Background(), "wizzler")
	require.NoError(t, err)
	assert.Equal(t, "wizzler", user.ID)
	require.NotNil(t, user.DisplayName)
	assert.Equal(t, "JM Wizzler", *user.DisplayName)
	assert.Equal(t, 42, user.Followers.Total)
}

func TestUsersClient_Get_URIForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/wizzler", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(spotify.PublicUser{ID: "wizzler"})
	}))
	defer server.Close()

	users := NewUsersClient(internalhttp.NewClient(server.URL, nil), nil)

	user, err := users.Get(context.Background(), "spotify:user:wizzler")
	require.NoError(t, err)
	assert.Equal(t, "wizzler", user.ID)
}
