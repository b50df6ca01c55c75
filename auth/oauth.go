package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// OAuthTokenAuthenticator answers the AUTHENTICATE challenge with a bearer
// token minted from an oauth2.TokenSource, so a node fronted by a token
// broker can be authenticated the same way an HTTP API would be.
type OAuthTokenAuthenticator struct {
	Source oauth2.TokenSource
}

// NewOAuthTokenAuthenticator wraps an oauth2.TokenSource as an
// Authenticator.
func NewOAuthTokenAuthenticator(src oauth2.TokenSource) *OAuthTokenAuthenticator {
	return &OAuthTokenAuthenticator{Source: src}
}

// Challenge fetches a token from the source and returns it formatted as a
// bearer credential, ignoring the challenge bytes.
func (a *OAuthTokenAuthenticator) Challenge(ctx context.Context, challenge []byte) ([]byte, error) {
	tok, err := a.Source.Token()
	if err != nil {
		return nil, fmt.Errorf("fetch oauth token: %w", err)
	}
	return []byte(fmt.Sprintf("Bearer %s", tok.AccessToken)), nil
}
