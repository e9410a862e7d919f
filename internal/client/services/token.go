package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/safepaws/internal/client/client"
	"github.com/dmitrijs2005/safepaws/internal/client/repositories/metadata"
)

const (
	keyAccessToken = "access_token"
	keyUsername    = "username"
)

// TokenStore keeps the session token in the local metadata table. It is the
// client.TokenSource of the HTTP client, so every authenticated call reads
// the current token from disk.
type TokenStore struct {
	repo metadata.Repository
}

var _ client.TokenSource = (*TokenStore)(nil)

func NewTokenStore(repo metadata.Repository) *TokenStore {
	return &TokenStore{repo: repo}
}

// Token returns the stored token or client.ErrNoToken.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	b, err := s.repo.Get(ctx, keyAccessToken)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if len(b) == 0 {
		return "", client.ErrNoToken
	}
	return string(b), nil
}

// Save stores token together with the username it was issued for.
func (s *TokenStore) Save(ctx context.Context, token, username string) error {
	return s.repo.SetMany(ctx, map[string][]byte{
		keyAccessToken: []byte(token),
		keyUsername:    []byte(username),
	})
}

// Username returns the username saved with the token, or "".
func (s *TokenStore) Username(ctx context.Context) (string, error) {
	b, err := s.repo.Get(ctx, keyUsername)
	if err != nil {
		return "", fmt.Errorf("read username: %w", err)
	}
	return string(b), nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, keyAccessToken, keyUsername)
}
