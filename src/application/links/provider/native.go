package provider

import (
	"context"
	"net/http"
	"strings"

	"video-fetch-be/src/application/links/entity"
	videos "video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/lib/cerr"

	"github.com/kkdai/youtube/v2"
)

var _ entity.Provider = NativeProvider{}

const NativeName = "native"

type StreamClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetStreamURLContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (string, error)
}

func NewNativeProvider(httpClient *http.Client) NativeProvider {
	return NewNativeProviderFromClient(&youtube.Client{HTTPClient: httpClient})
}

func NewNativeProviderFromClient(client StreamClient) NativeProvider {
	return NativeProvider{client: client}
}

// NativeProvider talks to YouTube's player API directly instead of going through a third party.
type NativeProvider struct {
	client StreamClient
}

func (NativeProvider) Name() string {
	return NativeName
}

func (n NativeProvider) TryResolve(ctx context.Context, videoID string, format videos.Format, quality videos.Quality) (entity.Link, error) {
	errctx := cerr.Field("video_id", videoID)

	video, err := n.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return entity.Link{}, errctx.Wrap(err).Error("Failed to load video from YouTube")
	}

	var selected *youtube.Format
	if format.IsAudio() {
		selected = selectNativeAudio(video.Formats)
	} else {
		selected = selectNativeVideo(video.Formats, quality)
	}

	if selected == nil {
		return entity.Link{}, errctx.Field("format_count", len(video.Formats)).Error("No matching stream format")
	}

	streamURL, err := n.client.GetStreamURLContext(ctx, video, selected)
	if err != nil {
		return entity.Link{}, errctx.Field("itag", selected.ItagNo).Wrap(err).Error("Failed to get stream URL")
	}

	return entity.Link{
		URL:      streamURL,
		Provider: NativeName,
		FileSize: selected.ContentLength,
	}, nil
}

func selectNativeAudio(formats youtube.FormatList) *youtube.Format {
	var best *youtube.Format
	for i := range formats {
		format := &formats[i]
		if format.AudioChannels == 0 || format.Width != 0 || format.Height != 0 {
			continue
		}

		if best == nil || format.Bitrate > best.Bitrate {
			best = format
		}
	}

	return best
}

// progressive formats only, so the file has both audio and video
func selectNativeVideo(formats youtube.FormatList, quality videos.Quality) *youtube.Format {
	var first *youtube.Format
	for i := range formats {
		format := &formats[i]
		if format.AudioChannels == 0 || format.Height == 0 || !strings.HasPrefix(format.MimeType, "video/mp4") {
			continue
		}

		if format.QualityLabel == string(quality) {
			return format
		}

		if first == nil {
			first = format
		}
	}

	return first
}
