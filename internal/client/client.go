// Package client implements the spotify.Client interface on top of the
// internal transport and token management.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/spotify/internal/auth"
	"github.com/fivetwenty-io/spotify/internal/constants"
	"github.com/fivetwenty-io/spotify/internal/http"
	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
)

// Client implements the spotify.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       spotify.Logger

	// Resource clients
	tracks    spotify.TracksClient
	artists   spotify.ArtistsClient
	albums    spotify.AlbumsClient
	users     spotify.UsersClient
	playlists spotify.PlaylistsClient
}

// createTokenManager creates the appropriate token manager based on config.
// A static token takes precedence over client credentials.
func createTokenManager(config *spotify.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return &staticTokenManager{token: config.AccessToken}
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     config.TokenURL,
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
		})
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *spotify.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client. The config must carry an API endpoint and at
// least one auth source.
func New(config *spotify.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, spotify.ErrAPIEndpointRequired
	}

	tokenManager := createTokenManager(config)
	if tokenManager == nil {
		return nil, spotify.ErrNoAuthConfigured
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.APIEndpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithTokenManager creates a new API client with a custom token manager.
func NewWithTokenManager(config *spotify.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, spotify.ErrAPIEndpointRequired
	}

	if tokenManager == nil {
		return nil, ErrNoTokenManagerConfigured
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.APIEndpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// Resource client accessors

// Tracks implements spotify.Client.Tracks.
func (c *Client) Tracks() spotify.TracksClient {
	return c.tracks
}

// Artists implements spotify.Client.Artists.
func (c *Client) Artists() spotify.ArtistsClient {
	return c.artists
}

// Albums implements spotify.Client.Albums.
func (c *Client) Albums() spotify.AlbumsClient {
	return c.albums
}

// Users implements spotify.Client.Users.
func (c *Client) Users() spotify.UsersClient {
	return c.users
}

// Playlists implements spotify.Client.Playlists.
func (c *Client) Playlists() spotify.PlaylistsClient {
	return c.playlists
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.tracks = NewTracksClient(c.httpClient, c.logger)
	c.artists = NewArtistsClient(c.httpClient, c.logger)
	c.albums = NewAlbumsClient(c.httpClient, c.logger)
	c.users = NewUsersClient(c.httpClient, c.logger)
	c.playlists = NewPlaylistsClient(c.httpClient, c.logger)
}

// staticTokenManager provides a static token. SetToken may race with
// in-flight requests, so the token sits behind a read-write lock.
type staticTokenManager struct {
	mu    sync.RWMutex
	token string
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

func (m *staticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}

// loggerAdapter adapts spotify.Logger to http.Logger.
type loggerAdapter struct {
	logger spotify.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
