package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"video-fetch-be/src/application/apperr"
	"video-fetch-be/src/application/videos/display"
	"video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/application/videos/videourl"
	"video-fetch-be/src/lib/cerr"

	"github.com/apex/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var videoParts = []string{"snippet", "contentDetails", "statistics"}

func NewYoutubeFetcher(apiKey string, endpoint string, timeout time.Duration, cache entity.MetadataCache) (YoutubeFetcher, error) {
	fetcher := YoutubeFetcher{
		cache:   cache,
		timeout: timeout,
	}

	// a missing key is reported per call as NotConfigured instead of failing startup
	if apiKey == "" {
		log.Warn("No YouTube API key configured, video info requests will fail")
		return fetcher, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	service, err := youtube.NewService(context.Background(), opts...)
	if err != nil {
		return YoutubeFetcher{}, cerr.Field("endpoint", endpoint).Wrap(err).Error("Failed to create YouTube service")
	}

	fetcher.service = service
	return fetcher, nil
}

type YoutubeFetcher struct {
	service *youtube.Service
	cache   entity.MetadataCache
	timeout time.Duration
}

func (y YoutubeFetcher) GetVideoInfo(ctx context.Context, url string) (entity.VideoMetadata, error) {
	videoID, ok := videourl.ExtractVideoID(url)
	if !ok {
		return entity.VideoMetadata{}, apperr.New(apperr.InvalidURL, "Invalid YouTube URL")
	}

	return y.GetVideoInfoByID(ctx, videoID)
}

func (y YoutubeFetcher) GetVideoInfoByID(ctx context.Context, videoID string) (entity.VideoMetadata, error) {
	logger := log.WithField("video_id", videoID)

	if y.service == nil {
		return entity.VideoMetadata{}, apperr.New(apperr.NotConfigured, "YouTube API key not configured")
	}

	if cached, found := y.fromCache(ctx, videoID); found {
		logger.Info("Serving video info from cache")
		return cached, nil
	}

	logger.Info("Fetching video info from YouTube")
	video, err := y.fetchVideo(ctx, videoID)
	if err != nil {
		return entity.VideoMetadata{}, err
	}

	metadata := toVideoMetadata(videoID, video)
	y.toCache(ctx, videoID, metadata)

	return metadata, nil
}

func (y YoutubeFetcher) LookupTitle(ctx context.Context, videoID string) (string, error) {
	video, err := y.GetVideoInfoByID(ctx, videoID)
	if err != nil {
		return "", err
	}

	return video.Title, nil
}

func (y YoutubeFetcher) fetchVideo(ctx context.Context, videoID string) (*youtube.Video, error) {
	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	response, err := y.service.Videos.List(videoParts).Id(videoID).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return nil, apperr.Wrap(apperr.ProviderUnavailable, fmt.Sprintf("YouTube API error: %d", apiErr.Code), err)
		}

		return nil, apperr.Wrap(apperr.ProviderUnavailable, "YouTube API is unreachable", err)
	}

	if len(response.Items) == 0 || response.Items[0] == nil {
		return nil, apperr.New(apperr.NotFound, "Video not found")
	}

	return response.Items[0], nil
}

func toVideoMetadata(videoID string, video *youtube.Video) entity.VideoMetadata {
	metadata := entity.VideoMetadata{
		ID:              videoID,
		DurationDisplay: display.ParseDuration(""),
		ViewsDisplay:    display.FormatViewCount(0),
	}

	if snippet := video.Snippet; snippet != nil {
		metadata.Title = snippet.Title
		metadata.ChannelName = snippet.ChannelTitle
		metadata.Description = snippet.Description
		metadata.ThumbnailURL = bestThumbnail(snippet.Thumbnails)
	}

	if video.ContentDetails != nil {
		metadata.DurationDisplay = display.ParseDuration(video.ContentDetails.Duration)
	}

	if video.Statistics != nil {
		metadata.ViewsDisplay = display.FormatViewCount(video.Statistics.ViewCount)
	}

	return metadata
}

func bestThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}

	for _, thumbnail := range []*youtube.Thumbnail{thumbnails.Maxres, thumbnails.High, thumbnails.Default} {
		if thumbnail != nil && thumbnail.Url != "" {
			return thumbnail.Url
		}
	}

	return ""
}

func (y YoutubeFetcher) fromCache(ctx context.Context, videoID string) (entity.VideoMetadata, bool) {
	if y.cache == nil {
		return entity.VideoMetadata{}, false
	}

	cached, found, err := y.cache.Get(ctx, videoID)
	if err != nil {
		cerr.Warn(cerr.Field("video_id", videoID).Wrap(err).Error("Failed to read video info from cache"))
		return entity.VideoMetadata{}, false
	}

	return cached, found
}

func (y YoutubeFetcher) toCache(ctx context.Context, videoID string, metadata entity.VideoMetadata) {
	if y.cache == nil {
		return
	}

	if err := y.cache.Set(ctx, videoID, metadata); err != nil {
		cerr.Warn(cerr.Field("video_id", videoID).Wrap(err).Error("Failed to write video info to cache"))
	}
}
