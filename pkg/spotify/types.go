package spotify

import "time"

// ExternalURLs maps a provider name (usually "spotify") to a public URL for
// the resource.
type ExternalURLs map[string]string

// ExternalIDs maps an external identifier type (isrc, ean, upc) to its value.
type ExternalIDs map[string]string

// Image represents a cover or profile image. Height and Width are nil when
// the API does not report dimensions.
type Image struct {
	Height *int   `json:"height"`
	URL    string `json:"url"`
	Width  *int   `json:"width"`
}

// Followers represents a follower count. Href is always nil in the current
// API version but kept for wire compatibility.
type Followers struct {
	Href  *string `json:"href"`
	Total int     `json:"total"`
}

// Copyright represents a single copyright statement on an album.
type Copyright struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Page represents one page of a paginated list response. Next and Previous
// hold full request URLs for the adjacent pages, or nil at either end. Pages
// are never traversed automatically; pass the Next URL back through the
// relevant list call if more items are needed.
type Page[T any] struct {
	Href     string  `json:"href"`
	Items    []T     `json:"items"`
	Limit    int     `json:"limit"`
	Next     *string `json:"next"`
	Offset   int     `json:"offset"`
	Previous *string `json:"previous"`
	Total    int     `json:"total"`
}

// SimplifiedArtist represents an artist reference embedded in track and album
// payloads.
type SimplifiedArtist struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// FullArtist represents a complete artist object.
type FullArtist struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Followers    Followers    `json:"followers"`
	Genres       []string     `json:"genres"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Images       []Image      `json:"images"`
	Name         string       `json:"name"`
	Popularity   int          `json:"popularity"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// SimplifiedAlbum represents an album reference without track listings.
type SimplifiedAlbum struct {
	AlbumType        string             `json:"album_type"`
	Artists          []SimplifiedArtist `json:"artists"`
	AvailableMarkets []string           `json:"available_markets"`
	ExternalURLs     ExternalURLs       `json:"external_urls"`
	Href             string             `json:"href"`
	ID               string             `json:"id"`
	Images           []Image            `json:"images"`
	Name             string             `json:"name"`
	Type             string             `json:"type"`
	URI              string             `json:"uri"`
}

// FullAlbum represents a complete album object including its track page.
type FullAlbum struct {
	AlbumType            string                `json:"album_type"`
	Artists              []SimplifiedArtist    `json:"artists"`
	AvailableMarkets     []string              `json:"available_markets"`
	Copyrights           []Copyright           `json:"copyrights"`
	ExternalIDs          ExternalIDs           `json:"external_ids"`
	ExternalURLs         ExternalURLs          `json:"external_urls"`
	Genres               []string              `json:"genres"`
	Href                 string                `json:"href"`
	ID                   string                `json:"id"`
	Images               []Image               `json:"images"`
	Label                string                `json:"label"`
	Name                 string                `json:"name"`
	Popularity           int                   `json:"popularity"`
	ReleaseDate          string                `json:"release_date"`
	ReleaseDatePrecision string                `json:"release_date_precision"`
	Tracks               Page[SimplifiedTrack] `json:"tracks"`
	Type                 string                `json:"type"`
	URI                  string                `json:"uri"`
}

// SimplifiedTrack represents a track reference embedded in album payloads.
type SimplifiedTrack struct {
	Artists          []SimplifiedArtist `json:"artists"`
	AvailableMarkets []string           `json:"available_markets"`
	DiscNumber       int                `json:"disc_number"`
	DurationMS       int                `json:"duration_ms"`
	Explicit         bool               `json:"explicit"`
	ExternalURLs     ExternalURLs       `json:"external_urls"`
	Href             string             `json:"href"`
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	PreviewURL       *string            `json:"preview_url"`
	TrackNumber      int                `json:"track_number"`
	Type             string             `json:"type"`
	URI              string             `json:"uri"`
}

// FullTrack represents a complete track object.
type FullTrack struct {
	Album            SimplifiedAlbum    `json:"album"`
	Artists          []SimplifiedArtist `json:"artists"`
	AvailableMarkets []string           `json:"available_markets"`
	DiscNumber       int                `json:"disc_number"`
	DurationMS       int                `json:"duration_ms"`
	Explicit         bool               `json:"explicit"`
	ExternalIDs      ExternalIDs        `json:"external_ids"`
	ExternalURLs     ExternalURLs       `json:"external_urls"`
	Href             string             `json:"href"`
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Popularity       int                `json:"popularity"`
	PreviewURL       *string            `json:"preview_url"`
	TrackNumber      int                `json:"track_number"`
	Type             string             `json:"type"`
	URI              string             `json:"uri"`
}

// PublicUser represents a user's public profile.
type PublicUser struct {
	DisplayName  *string      `json:"display_name"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	Followers    Followers    `json:"followers"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Images       []Image      `json:"images"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// PlaylistTracksRef summarizes a playlist's track collection in list
// responses without embedding the tracks themselves.
type PlaylistTracksRef struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// SimplifiedPlaylist represents a playlist as returned by list endpoints.
type SimplifiedPlaylist struct {
	Collaborative bool              `json:"collaborative"`
	ExternalURLs  ExternalURLs      `json:"external_urls"`
	Href          string            `json:"href"`
	ID            string            `json:"id"`
	Images        []Image           `json:"images"`
	Name          string            `json:"name"`
	Owner         PublicUser        `json:"owner"`
	Public        *bool             `json:"public"`
	SnapshotID    string            `json:"snapshot_id"`
	Tracks        PlaylistTracksRef `json:"tracks"`
	Type          string            `json:"type"`
	URI           string            `json:"uri"`
}

// FullPlaylist represents a complete playlist object including the first page
// of its tracks.
type FullPlaylist struct {
	Collaborative bool                `json:"collaborative"`
	Description   string              `json:"description"`
	ExternalURLs  ExternalURLs        `json:"external_urls"`
	Followers     Followers           `json:"followers"`
	Href          string              `json:"href"`
	ID            string              `json:"id"`
	Images        []Image             `json:"images"`
	Name          string              `json:"name"`
	Owner         PublicUser          `json:"owner"`
	Public        *bool               `json:"public"`
	SnapshotID    string              `json:"snapshot_id"`
	Tracks        Page[PlaylistTrack] `json:"tracks"`
	Type          string              `json:"type"`
	URI           string              `json:"uri"`
}

// PlaylistTrack represents a track entry in a playlist, with its addition
// metadata. AddedAt and AddedBy are nil for very old playlists.
type PlaylistTrack struct {
	AddedAt *time.Time  `json:"added_at"`
	AddedBy *PublicUser `json:"added_by"`
	IsLocal bool        `json:"is_local"`
	Track   FullTrack   `json:"track"`
}

// SnapshotID is the result of a playlist mutation. The snapshot identifier
// can be used to address the playlist version the mutation produced.
type SnapshotID struct {
	SnapshotID string `json:"snapshot_id"`
}

// PlaylistCreateRequest is the payload for creating a playlist. Public
// defaults to true when nil, matching the remote service's default.
type PlaylistCreateRequest struct {
	Name        string `json:"name"`
	Public      *bool  `json:"public"`
	Description string `json:"description"`
}

// PlaylistDetailsUpdate is the payload for changing a playlist's details.
// Only non-zero fields are sent.
type PlaylistDetailsUpdate struct {
	Name          string `json:"name,omitempty"`
	Public        *bool  `json:"public,omitempty"`
	Collaborative *bool  `json:"collaborative,omitempty"`
	Description   string `json:"description,omitempty"`
}
