package auth

import "errors"

// Verification failures. Messages intentionally never include the token or
// any key material.
var (
	ErrKeySetUnavailable = errors.New("unable to verify token: key set unavailable")
	ErrMalformedToken    = errors.New("malformed token")
	ErrInvalidSignature  = errors.New("invalid token signature")
	ErrExpired           = errors.New("token has expired")
	ErrInvalidAudience   = errors.New("invalid token audience")
	ErrInvalidIssuer     = errors.New("invalid token issuer")
	ErrNoSubject         = errors.New("token does not contain a user identifier")
	ErrUnknownKeyID      = errors.New("token references an unknown signing key")
)
