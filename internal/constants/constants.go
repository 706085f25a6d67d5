package constants

import "time"

// Service endpoints.
const (
	// DefaultAPIEndpoint is the documented v1 root of the catalog API.
	DefaultAPIEndpoint = "https://api.spotify.com/v1"

	// DefaultTokenURL is the accounts service token endpoint.
	DefaultTokenURL = "https://accounts.spotify.com/api/token"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for API requests.
	DefaultHTTPTimeout = 30 * time.Second

	// TokenHTTPTimeout is the timeout for token grant requests.
	TokenHTTPTimeout = 10 * time.Second
)

// Retry waits used when retries are enabled via config.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Endpoint defaults.
const (
	// DefaultTopTracksCountry is used when no country is supplied to the
	// artist top-tracks endpoint.
	DefaultTopTracksCountry = "US"
)
