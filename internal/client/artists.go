package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/spotify/internal/constants"
	"github.com/fivetwenty-io/spotify/internal/http"
	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// ArtistsClient implements spotify.ArtistsClient.
type ArtistsClient struct {
	httpClient *http.Client
	logger     spotify.Logger
}

// NewArtistsClient creates a new artists client.
func NewArtistsClient(httpClient *http.Client, logger spotify.Logger) *ArtistsClient {
	return &ArtistsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// fullArtistSet is the wire shape of the several-artists and related-artists
// responses.
type fullArtistSet struct {
	Artists []spotify.FullArtist `json:"artists"`
}

// Get implements spotify.ArtistsClient.Get.
func (c *ArtistsClient) Get(ctx context.Context, artistID string) (*spotify.FullArtist, error) {
	path := "artists/" + resolveID(c.logger, spotify.KindArtist, artistID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting artist: %w", err)
	}

	return decodeResource[spotify.FullArtist](c.logger, resp.Body)
}

// GetSeveral implements spotify.ArtistsClient.GetSeveral.
func (c *ArtistsClient) GetSeveral(ctx context.Context, artistIDs []string) ([]spotify.FullArtist, error) {
	ids := resolveIDs(c.logger, spotify.KindArtist, artistIDs)

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	resp, err := c.httpClient.Get(ctx, "artists", query)
	if err != nil {
		return nil, fmt.Errorf("getting artists: %w", err)
	}

	set, err := decodeResource[fullArtistSet](c.logger, resp.Body)
	if err != nil {
		return nil, err
	}

	return set.Artists, nil
}

// Albums implements spotify.ArtistsClient.Albums.
func (c *ArtistsClient) Albums(ctx context.Context, artistID string, params *spotify.QueryParams) (*spotify.Page[spotify.SimplifiedAlbum], error) {
	if params == nil {
		params = spotify.NewQueryParams()
	}

	path := "artists/" + resolveID(c.logger, spotify.KindArtist, artistID) + "/albums"

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing artist albums: %w", err)
	}

	return decodeResource[spotify.Page[spotify.SimplifiedAlbum]](c.logger, resp.Body)
}

// TopTracks implements spotify.ArtistsClient.TopTracks.
func (c *ArtistsClient) TopTracks(ctx context.Context, artistID string, country string) ([]spotify.FullTrack, error) {
	if country == "" {
		country = constants.DefaultTopTracksCountry
	}

	path := "artists/" + resolveID(c.logger, spotify.KindArtist, artistID) + "/top-tracks"

	query := url.Values{}
	query.Set("country", country)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting artist top tracks: %w", err)
	}

	set, err := decodeResource[fullTrackSet](c.logger, resp.Body)
	if err != nil {
		return nil, err
	}

	return set.Tracks, nil
}

// RelatedArtists implements spotify.ArtistsClient.RelatedArtists.
func (c *ArtistsClient) RelatedArtists(ctx context.Context, artistID string) ([]spotify.FullArtist, error) {
	path := "artists/" + resolveID(c.logger, spotify.KindArtist, artistID) + "/related-artists"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting related artists: %w", err)
	}

	set, err := decodeResource[fullArtistSet](c.logger, resp.Body)
	if err != nil {
		return nil, err
	}

	return set.Artists, nil
}
