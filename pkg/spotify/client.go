package spotify

import (
	"context"
	"time"
)

// TracksClient provides access to track resources.
type TracksClient interface {
	// Get returns a single track given its ID, URI, or URL.
	Get(ctx context.Context, trackID string) (*FullTrack, error)
	// GetSeveral returns the tracks for a list of IDs, URIs, or URLs,
	// optionally restricted to one market.
	GetSeveral(ctx context.Context, trackIDs []string, market string) ([]FullTrack, error)
}

// ArtistsClient provides access to artist resources.
type ArtistsClient interface {
	// Get returns a single artist given its ID, URI, or URL.
	Get(ctx context.Context, artistID string) (*FullArtist, error)
	// GetSeveral returns the artists for a list of IDs, URIs, or URLs.
	GetSeveral(ctx context.Context, artistIDs []string) ([]FullArtist, error)
	// Albums returns one page of the artist's albums.
	Albums(ctx context.Context, artistID string, params *QueryParams) (*Page[SimplifiedAlbum], error)
	// TopTracks returns the artist's top tracks by country. An empty country
	// defaults to "US".
	TopTracks(ctx context.Context, artistID string, country string) ([]FullTrack, error)
	// RelatedArtists returns artists similar to the identified artist.
	RelatedArtists(ctx context.Context, artistID string) ([]FullArtist, error)
}

// AlbumsClient provides access to album resources.
type AlbumsClient interface {
	// Get returns a single album given its ID, URI, or URL.
	Get(ctx context.Context, albumID string) (*FullAlbum, error)
	// GetSeveral returns the albums for a list of IDs, URIs, or URLs.
	GetSeveral(ctx context.Context, albumIDs []string) ([]FullAlbum, error)
	// Tracks returns one page of the album's tracks.
	Tracks(ctx context.Context, albumID string, params *QueryParams) (*Page[SimplifiedTrack], error)
}

// UsersClient provides access to user resources.
type UsersClient interface {
	// Get returns a user's public profile.
	Get(ctx context.Context, userID string) (*PublicUser, error)
}

// PlaylistsClient provides access to playlist resources, including the
// mutating operations.
type PlaylistsClient interface {
	// Get returns a playlist owned by a user. An empty playlistID returns the
	// user's starred playlist.
	Get(ctx context.Context, userID, playlistID, fields string) (*FullPlaylist, error)
	// ListForUser returns one page of a user's playlists.
	ListForUser(ctx context.Context, userID string, params *QueryParams) (*Page[SimplifiedPlaylist], error)
	// ListMine returns one page of the current user's playlists.
	ListMine(ctx context.Context, params *QueryParams) (*Page[SimplifiedPlaylist], error)
	// Tracks returns one page of a playlist's tracks.
	Tracks(ctx context.Context, userID, playlistID string, params *QueryParams) (*Page[PlaylistTrack], error)
	// Create creates a playlist for a user.
	Create(ctx context.Context, userID string, request *PlaylistCreateRequest) (*FullPlaylist, error)
	// ChangeDetails updates a playlist's details and returns the raw response
	// body without decoding.
	ChangeDetails(ctx context.Context, userID, playlistID string, request *PlaylistDetailsUpdate) ([]byte, error)
	// Unfollow removes the playlist from the user's library and returns the
	// raw response body without decoding.
	Unfollow(ctx context.Context, userID, playlistID string) ([]byte, error)
	// AddTracks appends tracks to a playlist. Track identifiers are
	// normalized to spotify:track: URIs. A nil position appends at the end.
	AddTracks(ctx context.Context, userID, playlistID string, trackIDs []string, position *int) (*SnapshotID, error)
}

// Client provides access to all resource-specific clients.
type Client interface {
	Tracks() TracksClient
	Artists() ArtistsClient
	Albums() AlbumsClient
	Users() UsersClient
	Playlists() PlaylistsClient
}

// Logger interface for logging. It also serves as the diagnostics sink for
// dispatch failures, decode failures, and identifier kind mismatches.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a spotify.Client.
//
// Exactly one auth source must be usable: either AccessToken as a static
// Bearer token, or ClientID and ClientSecret for the client-credentials
// grant. Construction fails with ErrNoAuthConfigured when neither is set.
type Config struct {
	// APIEndpoint is the base URL of the catalog API. Defaults to the
	// documented v1 root when empty.
	APIEndpoint string

	// TokenURL is the accounts service token endpoint used by the
	// client-credentials grant. Defaults to the documented endpoint.
	TokenURL string

	// AccessToken is a static Bearer token used as-is on every request.
	AccessToken string

	// ClientID and ClientSecret identify the application for the
	// client-credentials grant.
	ClientID     string
	ClientSecret string

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// Debug enables request/response logging through Logger.
	Debug bool

	// RetryMax enables opt-in retries of failed requests. Zero (the default)
	// means a failed call is terminal.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Logger receives diagnostics. Nil disables logging.
	Logger Logger
}
