package links

import (
	"context"
	"time"

	"video-fetch-be/src/application/apperr"
	"video-fetch-be/src/application/links/entity"
	"video-fetch-be/src/application/videos/display"
	videos "video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/application/videos/videourl"
	"video-fetch-be/src/lib/cerr"

	"github.com/apex/log"
)

const noLinkMessage = "No download link available"

func NewResolver(titleLookup entity.TitleLookup, providers []entity.Provider, providerTimeout time.Duration) Resolver {
	return Resolver{
		titleLookup:     titleLookup,
		providers:       providers,
		providerTimeout: providerTimeout,
	}
}

// Resolver walks the providers in priority order and returns the first usable link.
type Resolver struct {
	titleLookup     entity.TitleLookup
	providers       []entity.Provider
	providerTimeout time.Duration
}

func (r Resolver) Resolve(ctx context.Context, url string, format videos.Format, quality videos.Quality) (entity.Resolution, error) {
	videoID, ok := videourl.ExtractVideoID(url)
	if !ok {
		return entity.Resolution{}, apperr.New(apperr.InvalidURL, "Invalid YouTube URL")
	}

	logger := log.WithFields(log.Fields{
		"video_id": videoID,
		"format":   format,
		"quality":  quality,
	})

	stem := r.filenameStem(ctx, videoID)

	for _, provider := range r.providers {
		logger.WithField("provider", provider.Name()).Info("Trying download provider")

		link, err := r.tryProvider(ctx, provider, videoID, format, quality)
		if err != nil {
			cerr.Warn(cerr.Field("provider", provider.Name()).
				Field("video_id", videoID).
				Wrap(err).Error("Download provider failed, moving on"))
			continue
		}

		logger.WithField("provider", link.Provider).Info("Resolved download link")
		return entity.Resolution{
			DownloadURL: link.URL,
			Filename:    stem + "." + string(format),
			VideoID:     videoID,
			Provider:    link.Provider,
		}, nil
	}

	logger.Error("All download providers exhausted")
	return entity.Resolution{}, apperr.New(apperr.NoLinkAvailable, noLinkMessage)
}

func (r Resolver) tryProvider(ctx context.Context, provider entity.Provider, videoID string, format videos.Format, quality videos.Quality) (entity.Link, error) {
	if r.providerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.providerTimeout)
		defer cancel()
	}

	link, err := provider.TryResolve(ctx, videoID, format, quality)
	if err != nil {
		return entity.Link{}, err
	}

	if link.URL == "" {
		return entity.Link{}, cerr.Error("Provider returned an empty link")
	}

	if link.Provider == "" {
		link.Provider = provider.Name()
	}

	return link, nil
}

func (r Resolver) filenameStem(ctx context.Context, videoID string) string {
	if r.titleLookup == nil {
		return display.FallbackStem(videoID)
	}

	title, err := r.titleLookup.LookupTitle(ctx, videoID)
	if err != nil {
		cerr.Warn(cerr.Field("video_id", videoID).Wrap(err).Error("Failed to look up title, using a generated filename"))
		return display.FallbackStem(videoID)
	}

	return display.FilenameStem(title, videoID)
}
