package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/spotify/internal/http"
	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// TracksClient implements spotify.TracksClient.
type TracksClient struct {
	httpClient *http.Client
	logger     spotify.Logger
}

// NewTracksClient creates a new tracks client.
func NewTracksClient(httpClient *http.Client, logger spotify.Logger) *TracksClient {
	return &TracksClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// fullTrackSet is the wire shape of the several-tracks response.
type fullTrackSet struct {
	Tracks []spotify.FullTrack `json:"tracks"`
}

// Get implements spotify.TracksClient.Get.
func (c *TracksClient) Get(ctx context.Context, trackID string) (*spotify.FullTrack, error) {
	path := "tracks/" + resolveID(c.logger, spotify.KindTrack, trackID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting track: %w", err)
	}

	return decodeResource[spotify.FullTrack](c.logger, resp.Body)
}

// GetSeveral implements spotify.TracksClient.GetSeveral.
func (c *TracksClient) GetSeveral(ctx context.Context, trackIDs []string, market string) ([]spotify.FullTrack, error) {
	ids := resolveIDs(c.logger, spotify.KindTrack, trackIDs)

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	if market != "" {
		query.Set("market", market)
	}

	resp, err := c.httpClient.Get(ctx, "tracks", query)
	if err != nil {
		return nil, fmt.Errorf("getting tracks: %w", err)
	}

	set, err := decodeResource[fullTrackSet](c.logger, resp.Body)
	if err != nil {
		return nil, err
	}

	return set.Tracks, nil
}
