// Package errors defines the error taxonomy used across the driver.
//
// Every driver-specific error wraps the root sentinel ErrControl via %w, so
// callers can test broadly with errors.Is(err, errors.ErrControl) or narrow
// with errors.As against one of the typed values below. The package
// re-exports the standard library's constructors so call sites never need to
// import "errors" directly.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrControl is the base error for everything raised by this module.
	ErrControl = errors.New("control")

	// ErrConnectionClosed is returned by Connect while a caller-driven Close
	// is in progress, and by a connect attempt that a concurrent Close
	// overtook. Connect from the closed state starts a new connection.
	ErrConnectionClosed = fmt.Errorf("control connection is closed: %w", ErrControl)

	// ErrNotConnected names the condition of a refresh scheduled against a
	// connection that has since gone away. No code in this module returns
	// it: such a refresh fails with the RequestRunner's own error.
	ErrNotConnected = fmt.Errorf("not connected: %w", ErrControl)

	// ErrNoHosts is returned when a topology refresh finds no rows in either
	// system.local or system.peers.
	ErrNoHosts = fmt.Errorf("no hosts found in topology query results: %w", ErrControl)

	// ErrProtocolNegotiation is the sentinel a QueryError with code
	// CodeProtocolNegotiation also matches via Is, so callers can test for
	// the downgrade-triggering condition without importing the code
	// constant directly.
	ErrProtocolNegotiation = fmt.Errorf("protocol version negotiation failed: %w", ErrControl)
)

// Well-known query error codes consumed by the control connection.
//
// These mirror the native protocol's error body codes; the module does not
// interpret any other code and simply threads it through to the caller.
const (
	// CodeProtocolNegotiation is returned by a node when the client offered
	// a wire protocol version the node does not support.
	CodeProtocolNegotiation uint32 = 0x0A
	// CodeBadCredentials is returned by a node when authentication fails on
	// the query path (as opposed to during the AUTHENTICATE handshake).
	CodeBadCredentials uint32 = 0x100
)

// QueryError is returned by a Connector or RequestRunner when a node replies
// with a CQL native protocol error body.
type QueryError struct {
	code uint32
	Msg  string
}

// NewQueryError builds a QueryError for the given native protocol error code.
func NewQueryError(code uint32, msg string) *QueryError {
	return &QueryError{code: code, Msg: msg}
}

// Code returns the native protocol error code carried by this error.
func (e *QueryError) Code() uint32 {
	return e.code
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query error 0x%02X: %s", e.code, e.Msg)
}

// Is lets errors.Is(err, ErrControl) and errors.Is(err, ErrProtocolNegotiation)
// succeed against a QueryError without unwrapping it field by field.
func (e *QueryError) Is(target error) bool {
	if target == ErrControl {
		return true
	}
	if target == ErrProtocolNegotiation {
		return e.code == CodeProtocolNegotiation
	}
	return false
}

// AuthenticationError is surfaced when a node rejects credentials, either
// directly during the AUTHENTICATE handshake or indirectly via a QueryError
// carrying CodeBadCredentials.
type AuthenticationError struct {
	Host string
	Msg  string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for host %s: %s", e.Host, e.Msg)
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrControl
}

// AsAuthenticationError adapts a QueryError carrying CodeBadCredentials into
// an AuthenticationError: such a code is rewrapped and surfaced immediately
// rather than tried against the remaining hosts in the plan.
func AsAuthenticationError(host string, err error) (*AuthenticationError, bool) {
	var qe *QueryError
	if As(err, &qe) && qe.Code() == CodeBadCredentials {
		return &AuthenticationError{Host: host, Msg: qe.Msg}, true
	}
	var ae *AuthenticationError
	if As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// NoHostsAvailable is returned when a connection plan is exhausted without a
// successful connection. It carries the last error seen for each host that
// was tried, keyed by host address.
type NoHostsAvailable struct {
	Errors map[string]error
}

func (e *NoHostsAvailable) Error() string {
	return fmt.Sprintf("no hosts available, tried %d host(s): %s", len(e.Errors), formatHostErrors(e.Errors))
}

func (e *NoHostsAvailable) Is(target error) bool {
	return target == ErrControl
}

func formatHostErrors(errs map[string]error) string {
	if len(errs) == 0 {
		return "<none>"
	}
	s := ""
	for host, err := range errs {
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%s: %v", host, err)
	}
	return s
}

func New(text string) error {
	return errors.New(text)
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
