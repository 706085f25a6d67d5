package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/spotify/internal/http"
	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// PlaylistsClient implements spotify.PlaylistsClient.
type PlaylistsClient struct {
	httpClient *http.Client
	logger     spotify.Logger
}

// NewPlaylistsClient creates a new playlists client.
func NewPlaylistsClient(httpClient *http.Client, logger spotify.Logger) *PlaylistsClient {
	return &PlaylistsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Get implements spotify.PlaylistsClient.Get. An empty playlistID addresses
// the user's starred playlist.
func (c *PlaylistsClient) Get(ctx context.Context, userID, playlistID, fields string) (*spotify.FullPlaylist, error) {
	path := "users/" + resolveID(c.logger, spotify.KindUser, userID) + "/starred"
	if playlistID != "" {
		path = "users/" + resolveID(c.logger, spotify.KindUser, userID) +
			"/playlists/" + resolveID(c.logger, spotify.KindPlaylist, playlistID)
	}

	var query url.Values
	if fields != "" {
		query = url.Values{}
		query.Set("fields", fields)
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting playlist: %w", err)
	}

	return decodeResource[spotify.FullPlaylist](c.logger, resp.Body)
}

// ListForUser implements spotify.PlaylistsClient.ListForUser.
func (c *PlaylistsClient) ListForUser(ctx context.Context, userID string, params *spotify.QueryParams) (*spotify.Page[spotify.SimplifiedPlaylist], error) {
	if params == nil {
		params = spotify.NewQueryParams()
	}

	path := "users/" + resolveID(c.logger, spotify.KindUser, userID) + "/playlists"

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing user playlists: %w", err)
	}

	return decodeResource[spotify.Page[spotify.SimplifiedPlaylist]](c.logger, resp.Body)
}

// ListMine implements spotify.PlaylistsClient.ListMine.
func (c *PlaylistsClient) ListMine(ctx context.Context, params *spotify.QueryParams) (*spotify.Page[spotify.SimplifiedPlaylist], error) {
	if params == nil {
		params = spotify.NewQueryParams()
	}

	resp, err := c.httpClient.Get(ctx, "me/playlists", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing current user playlists: %w", err)
	}

	return decodeResource[spotify.Page[spotify.SimplifiedPlaylist]](c.logger, resp.Body)
}

// Tracks implements spotify.PlaylistsClient.Tracks.
func (c *PlaylistsClient) Tracks(ctx context.Context, userID, playlistID string, params *spotify.QueryParams) (*spotify.Page[spotify.PlaylistTrack], error) {
	if params == nil {
		params = spotify.NewQueryParams()
	}

	path := "users/" + resolveID(c.logger, spotify.KindUser, userID) +
		"/playlists/" + resolveID(c.logger, spotify.KindPlaylist, playlistID) + "/tracks"

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing playlist tracks: %w", err)
	}

	return decodeResource[spotify.Page[spotify.PlaylistTrack]](c.logger, resp.Body)
}

// Create implements spotify.PlaylistsClient.Create. Public defaults to true
// when the request leaves it nil.
func (c *PlaylistsClient) Create(ctx context.Context, userID string, request *spotify.PlaylistCreateRequest) (*spotify.FullPlaylist, error) {
	public := true
	if request.Public != nil {
		public = *request.Public
	}

	body := map[string]interface{}{
		"name":        request.Name,
		"public":      public,
		"description": request.Description,
	}

	path := "users/" + resolveID(c.logger, spotify.KindUser, userID) + "/playlists"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating playlist: %w", err)
	}

	return decodeResource[spotify.FullPlaylist](c.logger, resp.Body)
}

// ChangeDetails implements spotify.PlaylistsClient.ChangeDetails. The raw
// response body is returned without decoding.
func (c *PlaylistsClient) ChangeDetails(ctx context.Context, userID, playlistID string, request *spotify.PlaylistDetailsUpdate) ([]byte, error) {
	path := "users/" + resolveID(c.logger, spotify.KindUser, userID) +
		"/playlists/" + resolveID(c.logger, spotify.KindPlaylist, playlistID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("changing playlist details: %w", err)
	}

	return resp.Body, nil
}

// Unfollow implements spotify.PlaylistsClient.Unfollow. The raw response body
// is returned without decoding.
func (c *PlaylistsClient) Unfollow(ctx context.Context, userID, playlistID string) ([]byte, error) {
	path := "users/" + resolveID(c.logger, spotify.KindUser, userID) +
		"/playlists/" + resolveID(c.logger, spotify.KindPlaylist, playlistID) + "/followers"

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("unfollowing playlist: %w", err)
	}

	return resp.Body, nil
}

// AddTracks implements spotify.PlaylistsClient.AddTracks. Track identifiers
// are normalized to their canonical URIs before being sent.
func (c *PlaylistsClient) AddTracks(ctx context.Context, userID, playlistID string, trackIDs []string, position *int) (*spotify.SnapshotID, error) {
	uris := make([]string, 0, len(trackIDs))
	for _, id := range trackIDs {
		uris = append(uris, resourceURI(c.logger, spotify.KindTrack, id))
	}

	body := map[string]interface{}{
		"uris": uris,
	}
	if position != nil {
		body["position"] = *position
	}

	path := "users/" + resolveID(c.logger, spotify.KindUser, userID) +
		"/playlists/" + resolveID(c.logger, spotify.KindPlaylist, playlistID) + "/tracks"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("adding playlist tracks: %w", err)
	}

	return decodeResource[spotify.SnapshotID](c.logger, resp.Body)
}
