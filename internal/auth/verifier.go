package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// AllowedAlgorithms lists the signature algorithms the identity provider may
// sign with. Anything else, including unsigned tokens, is rejected.
var AllowedAlgorithms = []string{"EdDSA", "ES256", "RS256"}

// Verifier turns a bearer token string into a verified subject identifier.
// The authority URL is expected as both issuer and audience of every token.
type Verifier struct {
	cache     *KeySetCache
	authority string
	parser    *jwt.Parser
}

func NewVerifier(cache *KeySetCache, authority string) *Verifier {
	return &Verifier{
		cache:     cache,
		authority: authority,
		parser: jwt.NewParser(
			jwt.WithValidMethods(AllowedAlgorithms),
			jwt.WithIssuer(authority),
			jwt.WithAudience(authority),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify checks signature, expiry, issuer and audience, then extracts the
// subject claim. It fails on the first violated check and never returns a
// subject from a token that failed any of them.
func (v *Verifier) Verify(ctx context.Context, tokenStr string) (string, error) {
	keys, err := v.cache.Active(ctx)
	if err != nil {
		return "", err
	}

	token, err := v.parser.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrUnknownKeyID
		}
		key, ok := keys[kid]
		if !ok {
			return nil, ErrUnknownKeyID
		}
		return key, nil
	})
	if err != nil {
		return "", classify(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrNoSubject
	}
	return claims.Subject, nil
}

// classify maps golang-jwt parse errors onto the package's sentinel
// taxonomy so callers and logs never see library internals.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrUnknownKeyID):
		return ErrUnknownKeyID
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrInvalidAudience
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrInvalidIssuer
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return ErrMalformedToken
	default:
		return ErrInvalidSignature
	}
}
