// Package spotifyclient provides the main entry point for creating Spotify
// Web API clients.
package spotifyclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/spotify/internal/client"
	"github.com/fivetwenty-io/spotify/internal/constants"
	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// New creates a new Spotify Web API client.
//
// The config must carry at least one auth source: a static AccessToken, or a
// ClientID/ClientSecret pair for the client-credentials grant. APIEndpoint
// and TokenURL default to the documented service endpoints.
func New(config *spotify.Config) (spotify.Client, error) {
	if config == nil {
		return nil, spotify.ErrConfigRequired
	}

	if config.AccessToken == "" && (config.ClientID == "" || config.ClientSecret == "") {
		return nil, spotify.ErrNoAuthConfigured
	}

	cfg := *config
	cfg.APIEndpoint = normalizeEndpoint(cfg.APIEndpoint)

	if cfg.TokenURL == "" {
		cfg.TokenURL = constants.DefaultTokenURL
	}

	apiClient, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// normalizeEndpoint applies the default v1 root and makes a bare host usable.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
