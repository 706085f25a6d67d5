package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/spotify/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoValidCredentials = errors.New("no valid credentials available for token request")
)

// OAuth2Config holds the settings for the client-credentials grant against
// the accounts service.
type OAuth2Config struct {
	// TokenURL is the token endpoint. Defaults to the documented accounts
	// service endpoint when empty.
	TokenURL string

	// ClientID and ClientSecret are sent via HTTP Basic auth.
	ClientID     string
	ClientSecret string

	// AccessToken seeds the manager with an existing token.
	AccessToken string
}

// OAuth2TokenManager obtains tokens via the client-credentials grant and
// caches them until shortly before expiry. Concurrent readers share the
// cached token; the grant request itself is serialized.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	httpClient *http.Client
	mu         sync.Mutex
}

// NewOAuth2TokenManager creates a new token manager.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	if config.TokenURL == "" {
		config.TokenURL = constants.DefaultTokenURL
	}

	store := NewTokenStore()
	if config.AccessToken != "" {
		store.Set(&Token{AccessToken: config.AccessToken, TokenType: "bearer"})
	}

	return &OAuth2TokenManager{
		config: config,
		store:  store,
		httpClient: &http.Client{
			Timeout: constants.TokenHTTPTimeout,
		},
	}
}

// GetToken returns a valid access token, performing a grant if the cached
// token is missing or expiring.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.requestToken(ctx)
	if err != nil {
		return "", err
	}

	m.store.Set(token)

	return token.AccessToken, nil
}

// RefreshToken forces a new grant, discarding any cached token.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.requestToken(ctx)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken manually sets the access token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// tokenRequestError is the wire shape of a failed grant:
// {"error": "invalid_client", "error_description": "..."}.
type tokenRequestError struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (m *OAuth2TokenManager) requestToken(ctx context.Context) (*Token, error) {
	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return nil, ErrNoValidCredentials
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var reqErr tokenRequestError
		if json.Unmarshal(body, &reqErr) == nil && reqErr.Code != "" {
			return nil, fmt.Errorf("token request failed: %s: %s", reqErr.Code, reqErr.Description)
		}

		return nil, fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}
