package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"granitereply/domain/model"
	"granitereply/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const brandVoiceTTL = 10 * time.Minute

// BrandVoiceCache keeps recently read voice settings in Redis so repeated
// generations for the same organization skip the database. The client may be
// nil; every method then misses silently.
type BrandVoiceCache struct {
	client *redis.Client
}

func NewBrandVoiceCache(client *redis.Client) *BrandVoiceCache {
	return &BrandVoiceCache{client: client}
}

func brandVoiceKey(organizationID string) string {
	return fmt.Sprintf("brand_voice:%s", organizationID)
}

// Get returns the cached settings or nil on miss. Errors are logged and
// treated as misses.
func (c *BrandVoiceCache) Get(ctx context.Context, organizationID string) *model.BrandVoiceSettings {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, brandVoiceKey(organizationID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("Brand voice cache read failed")
		}
		return nil
	}
	var settings model.BrandVoiceSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Brand voice cache entry corrupt")
		return nil
	}
	return &settings
}

// Set stores the settings with a short TTL. Best effort.
func (c *BrandVoiceCache) Set(ctx context.Context, settings *model.BrandVoiceSettings) {
	if c == nil || c.client == nil || settings == nil {
		return
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, brandVoiceKey(settings.OrganizationID), raw, brandVoiceTTL).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Brand voice cache write failed")
	}
}
