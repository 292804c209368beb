package telegram

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Verifier checks initData payloads, caching successful verifications so
// a busy mini-app session does not pay the double HMAC on every request.
// Only a byte-identical payload hits the cache; anything else falls
// through to a full verification. Failures are never cached.
type Verifier struct {
	botToken string
	cache    *expirable.LRU[string, Identity]
}

// NewVerifier creates a verifier for the given bot token. A size or TTL
// of zero disables caching.
func NewVerifier(botToken string, cacheSize int, ttl time.Duration) *Verifier {
	v := &Verifier{botToken: botToken}
	if cacheSize > 0 && ttl > 0 {
		v.cache = expirable.NewLRU[string, Identity](cacheSize, nil, ttl)
	}
	return v
}

// Verify validates an initData payload and returns the authenticated
// identity.
func (v *Verifier) Verify(initData string) (*Identity, error) {
	if v.cache != nil {
		if id, ok := v.cache.Get(initData); ok {
			return &id, nil
		}
	}
	id, err := VerifyInitData(initData, v.botToken)
	if err != nil {
		return nil, err
	}
	if v.cache != nil {
		v.cache.Add(initData, *id)
	}
	return id, nil
}
