package session

import "errors"

// Sentinel errors returned by [Manager.CurrentIdentity] and
// [Manager.Establish]. Callers should use [errors.Is] to match against these
// values; both identity errors mean "treat the request as unauthenticated".
var (
	// ErrNoSession is returned when the request carries no session cookie.
	ErrNoSession = errors.New("no session cookie present")

	// ErrInvalidSession is returned when the session cookie is present but
	// its token is expired, tampered with, or otherwise unverifiable.
	ErrInvalidSession = errors.New("session token is expired or invalid")

	// ErrTokenCreationFailed is returned when a session token cannot be
	// generated or signed.
	ErrTokenCreationFailed = errors.New("session token creation failed")
)
