package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/spotify/internal/http"
	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

func TestArtistsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/artists/2WX2uTcsvV5OnS0inACecP", r.URL.Path)

		artist := spotify.FullArtist{
			ID:     "2WX2uTcsvV5OnS0inACecP",
			Name:   "Birdy",
			Genres: []string{"pop"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(artist)
	}))
	defer server.Close()

	artists := NewArtistsClient(internalhttp.NewClient(server.URL, nil), nil)

	artist, err := artists.Get(context.Background(), "spotify:artist:2WX2uTcsvV5OnS0inACecP")
	require.NoError(t, err)
	assert.Equal(t, "Birdy", artist.Name)
	assert.Equal(t, []string{"pop"}, artist.Genres)
}

func TestArtistsClient_GetSeveral(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/artists", r.URL.Path)
		assert.Equal(t, "2WX2uTcsvV5OnS0inACecP,0oSGxfWSnnOXhD2fKuz2Gy", r.URL.Query().Get("ids"))

		response := fullArtistSet{
			Artists: []spotify.FullArtist{
				{ID: "2WX2uTcsvV5OnS0inACecP"},
				{ID: "0oSGxfWSnnOXhD2fKuz2Gy"},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	artists := NewArtistsClient(internalhttp.NewClient(server.URL, nil), nil)

	result, err := artists.GetSeveral(context.Background(), []string{
		"2WX2uTcsvV5OnS0inACecP",
		"spotify:artist:0oSGxfWSnnOXhD2fKuz2Gy",
	})
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestArtistsClient_Albums_PaginationDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/artists/2WX2uTcsvV5OnS0inACecP/albums", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))

		page := spotify.Page[spotify.SimplifiedAlbum]{
			Limit: 50,
			Items: []spotify.SimplifiedAlbum{{ID: "1atjqOZTCdrjxjMyCPZc2g"}},
			Total: 1,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	artists := NewArtistsClient(internalhttp.NewClient(server.URL, nil), nil)

	page, err := artists.Albums(context.Background(), "2WX2uTcsvV5OnS0inACecP", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Items, 1)
}

func TestArtistsClient_Albums_WithFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "single", r.URL.Query().Get("album_type"))
		assert.Equal(t, "SE", r.URL.Query().Get("country"))

		page := spotify.Page[spotify.SimplifiedAlbum]{Limit: 10, Offset: 20}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	artists := NewArtistsClient(internalhttp.NewClient(server.URL, nil), nil)

	params := spotify.NewQueryParams().WithLimit(10).WithOffset(20).WithAlbumType("single").WithCountry("SE")
	_, err := artists.Albums(context.Background(), "2WX2uTcsvV5OnS0inACecP", params)
	require.NoError(t, err)
}

func TestArtistsClient_TopTracks_DefaultCountry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/artists/2WX2uTcsvV5OnS0inACecP/top-tracks", r.URL.Path)
		assert.Equal(t, "US", r.URL.Query().Get("country"))

		response := fullTrackSet{Tracks: []spotify.FullTrack{{ID: "track-1"}}}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	artists := NewArtistsClient(internalhttp.NewClient(server.URL, nil), nil)

	tracks, err := artists.TopTracks(context.Background(), "2WX2uTcsvV5OnS0inACecP", "")
	require.NoError(t, err)
	assert.Len(t, tracks, 1)
}

func TestArtistsClient_RelatedArtists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/artists/2WX2uTcsvV5OnS0inACecP/related-artists", r.URL.Path)

		response := fullArtistSet{Artists: []spotify.FullArtist{{Name: "Sleeping At Last"}}}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	artists := NewArtistsClient(internalhttp.NewClient(server.URL, nil), nil)

	related, err := artists.RelatedArtists(context.Background(), "2WX2uTcsvV5OnS0inACecP")
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "Sleeping At Last", related[0].Name)
}
