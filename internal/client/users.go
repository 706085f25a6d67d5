package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/spotify/internal/http"
	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// UsersClient implements spotify.UsersClient.
type UsersClient struct {
	httpClient *http.Client
	logger     spotify.Logger
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client, logger spotify.Logger) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Get implements spotify.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID string) (*spotify.PublicUser, error) {
	path := "users/" + resolveID(c.logger, spotify.KindUser, userID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return decodeResource[spotify.PublicUser](c.logger, resp.Body)
}
