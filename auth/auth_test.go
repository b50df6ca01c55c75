package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/nimbusdb/control-go/auth"
)

func TestPasswordAuthenticator_Challenge(t *testing.T) {
	a := &auth.PasswordAuthenticator{Username: "cassandra", Password: "cassandra"}
	resp, err := a.Challenge(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, "\x00cassandra\x00cassandra", string(resp))
}

func TestOAuthTokenAuthenticator_Challenge(t *testing.T) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "abc123"})
	a := auth.NewOAuthTokenAuthenticator(src)
	resp, err := a.Challenge(context.Background(), []byte("challenge"))
	require.NoError(t, err)
	require.Equal(t, "Bearer abc123", string(resp))
}
