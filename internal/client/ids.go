package client

import (
	"strings"

	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// uriScheme prefixes every composed resource URI.
const uriScheme = "spotify"

// resolveID normalizes an identifier of the given kind to its canonical bare
// ID. The input may be a bare ID, a colon-delimited URI
// ("spotify:track:xyz"), or a slash-delimited URL (".../track/xyz").
//
// A URI or URL whose kind segment disagrees with the requested kind is
// returned verbatim after a warning; rejection of the resulting ID is left to
// the remote service.
func resolveID(logger spotify.Logger, kind spotify.ResourceKind, id string) string {
	if fields := strings.Split(id, ":"); len(fields) >= 3 {
		if fields[len(fields)-2] == kind.String() {
			return fields[len(fields)-1]
		}

		warnKindMismatch(logger, kind, fields[len(fields)-2], id)
	}

	if fields := strings.Split(id, "/"); len(fields) >= 3 {
		if fields[len(fields)-2] == kind.String() {
			return fields[len(fields)-1]
		}

		warnKindMismatch(logger, kind, fields[len(fields)-2], id)
	}

	return id
}

// resourceURI composes the canonical URI for an identifier of the given kind.
func resourceURI(logger spotify.Logger, kind spotify.ResourceKind, id string) string {
	return uriScheme + ":" + kind.String() + ":" + resolveID(logger, kind, id)
}

// resolveIDs normalizes a list of identifiers of the same kind.
func resolveIDs(logger spotify.Logger, kind spotify.ResourceKind, ids []string) []string {
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		resolved = append(resolved, resolveID(logger, kind, id))
	}

	return resolved
}

func warnKindMismatch(logger spotify.Logger, want spotify.ResourceKind, found, id string) {
	if logger == nil {
		return
	}

	logger.Warn("identifier kind mismatch", map[string]interface{}{
		"expected": want.String(),
		"found":    found,
		"id":       id,
	})
}
