// Package spotify provides types, interfaces, and helpers for working with
// the Spotify Web API v1 catalog surface.
//
// # Overview
//
// The spotify package defines the domain types (e.g., FullTrack, FullArtist,
// FullAlbum, FullPlaylist, PublicUser) and the interfaces for
// resource-oriented clients (e.g., TracksClient, PlaylistsClient). A concrete
// implementation of these clients is provided by the spotifyclient package,
// which wires configuration, transport, and token acquisition. Most consumers
// should import spotifyclient to construct a client and then interact with
// the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/spotify/pkg/spotify"
//	  "github.com/fivetwenty-io/spotify/pkg/spotifyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := spotifyclient.New(&spotify.Config{
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  track, err := cli.Tracks().Get(ctx, "spotify:track:3n3Ppam7vgaVa1iaRUc9Lp")
//	  if err != nil { log.Fatal(err) }
//	  _ = track
//	}
//
// # Identifiers
//
// Every method that takes a resource identifier accepts a bare ID
// ("3n3Ppam7vgaVa1iaRUc9Lp"), a Spotify URI
// ("spotify:track:3n3Ppam7vgaVa1iaRUc9Lp"), or an open.spotify.com URL.
// Identifiers are normalized to the bare ID before the request path is built.
// A URI or URL whose kind segment does not match the requested resource kind
// is passed through unchanged and left for the remote service to reject; the
// mismatch is reported through the configured Logger.
//
// # Queries and pagination
//
// Use QueryParams to express list options (limit, offset, market, country,
// fields, album_type). Paged endpoints return Page values carrying the next
// and previous page URLs; the client never follows them automatically.
//
// # Errors
//
// Remote rejections are represented by APIError, decode failures by
// DecodeError. Helpers such as IsNotFound, IsUnauthorized, IsForbidden,
// IsRateLimited, and IsDecodeFailure make it easy to branch on common cases.
package spotify
