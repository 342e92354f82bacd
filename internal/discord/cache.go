package discord

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/br0k3x/osul-bot/internal/osu"
)

// Default profile cache settings
const (
	DefaultProfileCacheSize = 256
	DefaultProfileCacheTTL  = 2 * time.Minute
)

// profileCache keeps recently fetched osu! profiles so repeated lookups
// within the TTL skip the osu! API.
type profileCache struct {
	lru *expirable.LRU[string, *osu.User]
}

func newProfileCache(size int, ttl time.Duration) *profileCache {
	return &profileCache{
		lru: expirable.NewLRU[string, *osu.User](size, nil, ttl),
	}
}

func profileCacheKey(discordID, username, mode string) string {
	return discordID + ":" + strings.ToLower(username) + ":" + mode
}

func (c *profileCache) Get(discordID, username, mode string) (*osu.User, bool) {
	return c.lru.Get(profileCacheKey(discordID, username, mode))
}

func (c *profileCache) Set(discordID, username, mode string, user *osu.User) {
	c.lru.Add(profileCacheKey(discordID, username, mode), user)
}

// InvalidateUser drops every cached profile requested by discordID.
func (c *profileCache) InvalidateUser(discordID string) {
	prefix := discordID + ":"
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}
