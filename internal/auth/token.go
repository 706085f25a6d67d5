package auth

import (
	"context"
	"sync"
	"time"
)

// TokenManager provides access tokens for API requests. Implementations must
// be safe for concurrent use; GetToken is called once per request.
type TokenManager interface {
	// GetToken returns a valid access token, obtaining or refreshing one if
	// necessary.
	GetToken(ctx context.Context) (string, error)
	// RefreshToken forces a new token to be obtained.
	RefreshToken(ctx context.Context) error
	// SetToken manually sets the current token.
	SetToken(token string, expiresAt time.Time)
}

// expiryBuffer is subtracted from a token's lifetime so a token about to
// expire is not attached to an in-flight request.
const expiryBuffer = 30 * time.Second

// Token represents an access token returned by the accounts service.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	Scope       string    `json:"scope,omitempty"`
	ExpiresAt   time.Time `json:"-"`
}

// Valid reports whether the token can still be used. A zero ExpiresAt means
// the token does not expire.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(expiryBuffer).Before(t.ExpiresAt)
}

// TokenStore holds the current token behind a read-write lock so many
// requests can read it while a refresh replaces it.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the current token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}
