package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/psenarath/floodline/internal/model"
)

// CachedClient serves repeated identical requests from memory instead
// of re-calling the transport. Only successful non-empty responses are
// cached; requests with temperature above zero are passed through, so
// stress-test runs stay non-deterministic.
type CachedClient struct {
	inner Client
	cache *gocache.Cache
}

// NewCachedClient wraps client with an in-memory response cache.
func NewCachedClient(client Client, ttl time.Duration) *CachedClient {
	return &CachedClient{
		inner: client,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Name returns the wrapped provider's name.
func (c *CachedClient) Name() string { return c.inner.Name() }

// IsAvailable delegates to the wrapped client.
func (c *CachedClient) IsAvailable(ctx context.Context) bool {
	return c.inner.IsAvailable(ctx)
}

// Chat returns a cached response when the identical request was served
// before, otherwise calls through and caches the result.
func (c *CachedClient) Chat(ctx context.Context, req model.CallRequest) (string, error) {
	if req.Temperature > 0 {
		return c.inner.Chat(ctx, req)
	}

	key := requestKey(req)
	if cached, found := c.cache.Get(key); found {
		return cached.(string), nil
	}

	text, err := c.inner.Chat(ctx, req)
	if err != nil {
		return "", err
	}
	if text != "" {
		c.cache.Set(key, text, gocache.DefaultExpiration)
	}
	return text, nil
}

// requestKey hashes the full request so prompt collisions are
// practically impossible.
func requestKey(req model.CallRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%v|%d|", req.Temperature, req.MaxTokens)
	for _, m := range req.Messages {
		fmt.Fprintf(h, "%s\x00%s\x00", m.Role, m.Content)
	}
	return hex.EncodeToString(h.Sum(nil))
}
