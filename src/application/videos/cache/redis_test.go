package cache_test

import (
	"context"
	"time"

	"video-fetch-be/src/application/videos/cache"
	"video-fetch-be/src/application/videos/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("RedisMetadataCache", func() {
	It("rejects malformed URLs", func() {
		_, err := cache.NewRedisMetadataCache("definitely not redis", time.Minute)
		Expect(err).To(HaveOccurred())
	})

	Describe("When redis is up", func() {
		var (
			server     *miniredis.Miniredis
			redisCache cache.RedisMetadataCache
			video      entity.VideoMetadata
		)

		BeforeEach(func() {
			var err error
			server, err = miniredis.Run()
			Expect(err).NotTo(HaveOccurred())

			redisCache, err = cache.NewRedisMetadataCache("redis://"+server.Addr(), time.Minute)
			Expect(err).NotTo(HaveOccurred())

			video = entity.VideoMetadata{
				ID:              "abc123",
				Title:           "Some video",
				ThumbnailURL:    "https://i.ytimg.com/vi/abc123/hqdefault.jpg",
				DurationDisplay: "3:25",
				ChannelName:     "Some channel",
				ViewsDisplay:    "1.2M",
				Description:     "About the video",
			}
		})

		AfterEach(func() {
			_ = redisCache.Close()
			server.Close()
		})

		It("answers the ping", func() {
			Expect(redisCache.Ping(context.Background())).To(Succeed())
		})

		It("misses a video that was never cached", func() {
			_, found, err := redisCache.Get(context.Background(), "abc123")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("reads back what was written", func() {
			err := redisCache.Set(context.Background(), "abc123", video)
			Expect(err).NotTo(HaveOccurred())

			cached, found, err := redisCache.Get(context.Background(), "abc123")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(cached).To(Equal(video))
		})

		It("stores the video as JSON under a prefixed key with the ttl", func() {
			err := redisCache.Set(context.Background(), "abc123", video)
			Expect(err).NotTo(HaveOccurred())

			Expect(server.Exists("video_metadata:abc123")).To(BeTrue())
			Expect(server.Exists("abc123")).To(BeFalse())
			Expect(server.TTL("video_metadata:abc123")).To(Equal(time.Minute))

			payload, err := server.Get("video_metadata:abc123")
			Expect(err).NotTo(HaveOccurred())
			Expect(payload).To(MatchJSON(`{
				"video_id": "abc123",
				"title": "Some video",
				"thumbnail_url": "https://i.ytimg.com/vi/abc123/hqdefault.jpg",
				"duration": "3:25",
				"channel_name": "Some channel",
				"views": "1.2M",
				"description": "About the video"
			}`))
		})

		It("forgets the video once the ttl runs out", func() {
			err := redisCache.Set(context.Background(), "abc123", video)
			Expect(err).NotTo(HaveOccurred())

			server.FastForward(time.Minute + time.Second)

			_, found, err := redisCache.Get(context.Background(), "abc123")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("reports corrupted entries", func() {
			Expect(server.Set("video_metadata:abc123", "not json")).To(Succeed())

			_, found, err := redisCache.Get(context.Background(), "abc123")
			Expect(err).To(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})

	Describe("When redis is unreachable", func() {
		var redisCache cache.RedisMetadataCache

		BeforeEach(func() {
			client := redis.NewClient(&redis.Options{
				Addr:        "127.0.0.1:1",
				DialTimeout: 100 * time.Millisecond,
				MaxRetries:  -1,
			})
			redisCache = cache.NewRedisMetadataCacheFromClient(client, time.Minute)
		})

		AfterEach(func() {
			_ = redisCache.Close()
		})

		It("reports errors instead of a miss", func() {
			_, found, err := redisCache.Get(context.Background(), "abc123")
			Expect(err).To(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("reports errors on write", func() {
			err := redisCache.Set(context.Background(), "abc123", entity.VideoMetadata{ID: "abc123"})
			Expect(err).To(HaveOccurred())
		})

		It("fails the ping", func() {
			Expect(redisCache.Ping(context.Background())).NotTo(Succeed())
		})
	})
})
