package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/spotify/internal/http"
	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// AlbumsClient implements spotify.AlbumsClient.
type AlbumsClient struct {
	httpClient *http.Client
	logger     spotify.Logger
}

// NewAlbumsClient creates a new albums client.
func NewAlbumsClient(httpClient *http.Client, logger spotify.Logger) *AlbumsClient {
	return &AlbumsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// fullAlbumSet is the wire shape of the several-albums response.
type fullAlbumSet struct {
	Albums []spotify.FullAlbum `json:"albums"`
}

// Get implements spotify.AlbumsClient.Get.
func (c *AlbumsClient) Get(ctx context.Context, albumID string) (*spotify.FullAlbum, error) {
	path := "albums/" + resolveID(c.logger, spotify.KindAlbum, albumID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting album: %w", err)
	}

	return decodeResource[spotify.FullAlbum](c.logger, resp.Body)
}

// GetSeveral implements spotify.AlbumsClient.GetSeveral.
func (c *AlbumsClient) GetSeveral(ctx context.Context, albumIDs []string) ([]spotify.FullAlbum, error) {
	ids := resolveIDs(c.logger, spotify.KindAlbum, albumIDs)

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	resp, err := c.httpClient.Get(ctx, "albums", query)
	if err != nil {
		return nil, fmt.Errorf("getting albums: %w", err)
	}

	set, err := decodeResource[fullAlbumSet](c.logger, resp.Body)
	if err != nil {
		return nil, err
	}

	return set.Albums, nil
}

// Tracks implements spotify.AlbumsClient.Tracks.
func (c *AlbumsClient) Tracks(ctx context.Context, albumID string, params *spotify.QueryParams) (*spotify.Page[spotify.SimplifiedTrack], error) {
	if params == nil {
		params = spotify.NewQueryParams()
	}

	path := "albums/" + resolveID(c.logger, spotify.KindAlbum, albumID) + "/tracks"

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing album tracks: %w", err)
	}

	return decodeResource[spotify.Page[spotify.SimplifiedTrack]](c.logger, resp.Body)
}
