package client

import (
	"encoding/json"

	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// decodeResource deserializes a successful response body into T. A body that
// does not match the schema is downgraded to a *spotify.DecodeError carrying
// the raw content, and the failure detail is reported through the logger.
func decodeResource[T any](logger spotify.Logger, body []byte) (*T, error) {
	var value T

	err := json.Unmarshal(body, &value)
	if err != nil {
		if logger != nil {
			logger.Error("decoding response failed", map[string]interface{}{
				"error": err.Error(),
				"body":  string(body),
			})
		}

		return nil, &spotify.DecodeError{Err: err, Body: string(body)}
	}

	return &value, nil
}
