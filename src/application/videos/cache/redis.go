package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/lib/cerr"

	"github.com/redis/go-redis/v9"
)

var _ entity.MetadataCache = RedisMetadataCache{}

const keyPrefix = "video_metadata:"

func NewRedisMetadataCache(redisURL string, ttl time.Duration) (RedisMetadataCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return RedisMetadataCache{}, cerr.Wrap(err).Error("Failed to parse redis URL")
	}

	return NewRedisMetadataCacheFromClient(redis.NewClient(opts), ttl), nil
}

func NewRedisMetadataCacheFromClient(client *redis.Client, ttl time.Duration) RedisMetadataCache {
	return RedisMetadataCache{
		client: client,
		ttl:    ttl,
	}
}

type RedisMetadataCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (r RedisMetadataCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return cerr.Wrap(err).Error("Failed to ping redis")
	}

	return nil
}

func (r RedisMetadataCache) Get(ctx context.Context, videoID string) (entity.VideoMetadata, bool, error) {
	errctx := cerr.Field("video_id", videoID)

	payload, err := r.client.Get(ctx, keyPrefix+videoID).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.VideoMetadata{}, false, nil
	}
	if err != nil {
		return entity.VideoMetadata{}, false, errctx.Wrap(err).Error("Failed to get cached video info")
	}

	var video entity.VideoMetadata
	if err := json.Unmarshal(payload, &video); err != nil {
		return entity.VideoMetadata{}, false, errctx.Wrap(err).Error("Failed to unmarshal cached video info")
	}

	return video, true, nil
}

func (r RedisMetadataCache) Set(ctx context.Context, videoID string, video entity.VideoMetadata) error {
	errctx := cerr.Field("video_id", videoID)

	payload, err := json.Marshal(video)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to marshal video info")
	}

	if err := r.client.Set(ctx, keyPrefix+videoID, payload, r.ttl).Err(); err != nil {
		return errctx.Wrap(err).Error("Failed to cache video info")
	}

	return nil
}

func (r RedisMetadataCache) Close() error {
	return r.client.Close()
}
