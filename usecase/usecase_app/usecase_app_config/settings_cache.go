package usecase_app_config

import (
	"context"
	"sync"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
)

const DefaultSettingsTTL = time.Hour

// CacheOutcome says how a SettingsCache read was served.
type CacheOutcome string

const (
	CacheHit     CacheOutcome = "hit"
	CacheFetched CacheOutcome = "fetched"
	CacheStale   CacheOutcome = "stale"
	CacheDefault CacheOutcome = "default"
)

// SettingsFetcher loads the stored patch. (nil, nil) means nothing stored.
type SettingsFetcher func(ctx context.Context) (*domain_app_config.SiteSettingsPatch, error)

// SettingsCache memoises the merged site settings for a fixed TTL. The lock
// only guards the slot; it is released while fetching, so concurrent misses
// may each fetch.
type SettingsCache struct {
	mu        sync.Mutex
	value     *domain_app_config.SiteSettings
	fetchedAt time.Time
	ttl       time.Duration
	defaults  domain_app_config.SiteSettings
}

func NewSettingsCache(ttl time.Duration, defaults domain_app_config.SiteSettings) *SettingsCache {
	if ttl <= 0 {
		ttl = DefaultSettingsTTL
	}
	return &SettingsCache{
		ttl:      ttl,
		defaults: defaults.Clone(),
	}
}

// Get returns the cached value while it is younger than the TTL. Otherwise
// it calls fetch and merges the result over the defaults. A failed or empty
// fetch falls back to the last good value, then to the defaults. The error
// is reported alongside the outcome but the settings are always usable.
func (c *SettingsCache) Get(
	ctx context.Context,
	now time.Time,
	fetch SettingsFetcher,
) (domain_app_config.SiteSettings, CacheOutcome, error) {
	c.mu.Lock()
	if c.value != nil && now.Sub(c.fetchedAt) < c.ttl {
		v := c.value.Clone()
		c.mu.Unlock()
		return v, CacheHit, nil
	}
	c.mu.Unlock()

	patch, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil && patch != nil {
		merged := patch.Merge(c.defaults)
		c.value = &merged
		c.fetchedAt = now
		return merged.Clone(), CacheFetched, nil
	}

	if c.value != nil {
		return c.value.Clone(), CacheStale, err
	}
	return c.defaults.Clone(), CacheDefault, err
}

// Invalidate drops the cached value so the next Get fetches.
func (c *SettingsCache) Invalidate() {
	c.mu.Lock()
	c.value = nil
	c.mu.Unlock()
}
