package auth

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net/http"
	"sync"
	"time"
)

// KeySet maps a key ID (kid) to the public key published under it.
type KeySet map[string]crypto.PublicKey

// FetchFunc retrieves the identity provider's current key set.
type FetchFunc func(ctx context.Context) (KeySet, error)

// KeySetCache caches the provider's key set for a TTL so that token
// verification does not hit the network on every request. The cache fails
// closed: if a refresh fails, verification fails with ErrKeySetUnavailable
// even when a stale set is still held.
type KeySetCache struct {
	fetch FetchFunc
	ttl   time.Duration
	now   func() time.Time

	mu        sync.RWMutex
	keys      KeySet
	fetchedAt time.Time
}

func NewKeySetCache(fetch FetchFunc, ttl time.Duration) *KeySetCache {
	return &KeySetCache{
		fetch: fetch,
		ttl:   ttl,
		now:   time.Now,
	}
}

// WithClock replaces the cache's clock. Tests use it to move time forward
// without sleeping.
func (c *KeySetCache) WithClock(now func() time.Time) *KeySetCache {
	c.now = now
	return c
}

// Active returns the cached key set while it is younger than the TTL,
// refreshing it otherwise. Readers always observe either the previous
// complete set or the new complete set.
func (c *KeySetCache) Active(ctx context.Context) (KeySet, error) {
	c.mu.RLock()
	if c.keys != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		keys := c.keys
		c.mu.RUnlock()
		return keys, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if c.keys != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.keys, nil
	}

	keys, err := c.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeySetUnavailable, err)
	}

	c.keys = keys
	c.fetchedAt = c.now()
	return keys, nil
}

// jwk is one entry of a JWKS document, carrying the superset of fields used
// by the supported key types.
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Crv string `json:"crv"`
	N   string `json:"n"`
	E   string `json:"e"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

// FetchJWKS returns a FetchFunc that downloads and decodes the JWKS document
// at url. Keys of unsupported types are skipped; a document that yields no
// usable key at all is an error.
func FetchJWKS(client *http.Client, url string) FetchFunc {
	if client == nil {
		client = http.DefaultClient
	}

	return func(ctx context.Context) (KeySet, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("jwks endpoint returned status %d", resp.StatusCode)
		}

		var doc jwksDocument
		if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding jwks document: %w", err)
		}

		return ParseKeySet(doc.Keys)
	}
}

// ParseKeySet converts JWKS entries into verification keys, indexed by kid.
func ParseKeySet(keys []jwk) (KeySet, error) {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		if k.Kid == "" {
			continue
		}
		pub, err := k.publicKey()
		if err != nil {
			if errors.Is(err, errUnsupportedKeyType) {
				continue
			}
			return nil, fmt.Errorf("parsing key %q: %w", k.Kid, err)
		}
		set[k.Kid] = pub
	}
	if len(set) == 0 {
		return nil, errors.New("jwks document contains no usable keys")
	}
	return set, nil
}

var errUnsupportedKeyType = errors.New("unsupported key type")

func (k jwk) publicKey() (crypto.PublicKey, error) {
	switch k.Kty {
	case "RSA":
		n, err := b64Int(k.N)
		if err != nil {
			return nil, fmt.Errorf("modulus: %w", err)
		}
		e, err := b64Int(k.E)
		if err != nil {
			return nil, fmt.Errorf("exponent: %w", err)
		}
		if !e.IsInt64() || e.Int64() <= 1 || e.Int64() > math.MaxInt32 {
			return nil, fmt.Errorf("exponent out of range")
		}
		return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil

	case "EC":
		if k.Crv != "P-256" {
			return nil, errUnsupportedKeyType
		}
		x, err := b64Int(k.X)
		if err != nil {
			return nil, fmt.Errorf("x coordinate: %w", err)
		}
		y, err := b64Int(k.Y)
		if err != nil {
			return nil, fmt.Errorf("y coordinate: %w", err)
		}
		return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil

	case "OKP":
		if k.Crv != "Ed25519" {
			return nil, errUnsupportedKeyType
		}
		raw, err := base64.RawURLEncoding.DecodeString(k.X)
		if err != nil {
			return nil, fmt.Errorf("public key bytes: %w", err)
		}
		if len(raw) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("ed25519 key has %d bytes", len(raw))
		}
		return ed25519.PublicKey(raw), nil

	default:
		return nil, errUnsupportedKeyType
	}
}

func b64Int(s string) (*big.Int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(raw), nil
}
