package spotify

// ResourceKind is the closed category of remote entity. Its string value is
// the token used in both request path segments and URI kind segments.
type ResourceKind string

// Resource kinds known to the catalog service.
const (
	KindTrack    ResourceKind = "track"
	KindArtist   ResourceKind = "artist"
	KindAlbum    ResourceKind = "album"
	KindPlaylist ResourceKind = "playlist"
	KindUser     ResourceKind = "user"
)

// String returns the lowercase kind token.
func (k ResourceKind) String() string {
	return string(k)
}
