// Package auth provides Authenticator implementations for the AUTHENTICATE
// handshake a Connector performs while establishing a connection.
package auth

import "context"

// Authenticator answers the AUTHENTICATE challenge a node issues during
// connection setup. Implementations must not block past ctx's deadline.
type Authenticator interface {
	// Challenge returns the response bytes for the given challenge bytes
	// sent by the node.
	Challenge(ctx context.Context, challenge []byte) ([]byte, error)
}

// PasswordAuthenticator implements the standard username/password SASL
// PLAIN exchange used by the built-in authenticator.
type PasswordAuthenticator struct {
	Username string
	Password string
}

// Challenge ignores the challenge bytes (PLAIN is a single round trip) and
// returns the SASL PLAIN response: a NUL, the username, a NUL, the password.
func (a *PasswordAuthenticator) Challenge(ctx context.Context, challenge []byte) ([]byte, error) {
	resp := make([]byte, 0, len(a.Username)+len(a.Password)+2)
	resp = append(resp, 0)
	resp = append(resp, a.Username...)
	resp = append(resp, 0)
	resp = append(resp, a.Password...)
	return resp, nil
}
