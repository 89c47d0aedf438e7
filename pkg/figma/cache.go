package figma

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// ResponseCache keeps decoded API responses in memory for a limited time.
// A single ResponseCache can back many clients; entries are namespaced by access token.
// Cached responses are shared between callers and must not be modified.
type ResponseCache struct {
	store *cache.Cache
}

// NewResponseCache creates a cache whose entries expire after ttl.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{store: cache.New(ttl, 2*ttl)}
}

// Wrap returns an API that serves repeated calls from the cache.
// accessToken only scopes the cache keys; the wrapped API does the actual authentication.
func (rc *ResponseCache) Wrap(api API, accessToken string) *CachedClient {
	sum := sha256.Sum256([]byte(accessToken))
	return &CachedClient{api: api, cache: rc, namespace: hex.EncodeToString(sum[:8])}
}

// Flush drops every cached response.
func (rc *ResponseCache) Flush() {
	rc.store.Flush()
}

// CachedClient is an API decorator backed by a ResponseCache.
type CachedClient struct {
	api       API
	cache     *ResponseCache
	namespace string
}

var _ API = (*CachedClient)(nil)

// GetFile returns the cached file response or fetches it.
func (c *CachedClient) GetFile(ctx context.Context, fileKey string) (*FileResponse, error) {
	return cached(c, "file:"+fileKey, func() (*FileResponse, error) {
		return c.api.GetFile(ctx, fileKey)
	})
}

// GetFileStyles returns the cached style metadata or fetches it.
func (c *CachedClient) GetFileStyles(ctx context.Context, fileKey string) (*StylesResponse, error) {
	return cached(c, "styles:"+fileKey, func() (*StylesResponse, error) {
		return c.api.GetFileStyles(ctx, fileKey)
	})
}

// GetFileNodes returns the cached nodes response or fetches it.
// The cache key does not depend on the order of ids.
func (c *CachedClient) GetFileNodes(ctx context.Context, fileKey string, ids []string) (*NodesResponse, error) {
	sorted := slices.Clone(deduplicateNodeIDs(ids))
	slices.Sort(sorted)
	return cached(c, "nodes:"+fileKey+":"+strings.Join(sorted, ","), func() (*NodesResponse, error) {
		return c.api.GetFileNodes(ctx, fileKey, ids)
	})
}

// cached looks key up in the namespace of c and falls back to fetch.
// Errors are never cached.
func cached[T any](c *CachedClient, key string, fetch func() (*T, error)) (*T, error) {
	fullKey := c.namespace + ":" + key
	if v, found := c.cache.store.Get(fullKey); found {
		if resp, ok := v.(*T); ok {
			return resp, nil
		}
	}

	resp, err := fetch()
	if err != nil {
		return nil, err
	}

	c.cache.store.Set(fullKey, resp, cache.DefaultExpiration)
	return resp, nil
}
