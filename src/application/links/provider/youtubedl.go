package provider

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"video-fetch-be/src/application/executor"
	"video-fetch-be/src/application/links/entity"
	videos "video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/application/videos/videourl"
	"video-fetch-be/src/lib/cerr"

	"github.com/apex/log"
)

var _ entity.Provider = YoutubeDLProvider{}

const YoutubeDLName = "youtube-dl"

var qualityHeights = map[videos.Quality]int{
	videos.Quality1080p: 1080,
	videos.Quality720p:  720,
	videos.Quality480p:  480,
	videos.Quality360p:  360,
}

func NewYoutubeDLProvider(youtubedlBinPath string, commandExecutor executor.Executor) YoutubeDLProvider {
	return YoutubeDLProvider{
		youtubedlBinPath: youtubedlBinPath,
		commandExecutor:  commandExecutor,
	}
}

// YoutubeDLProvider only asks the binary for the direct URL (-g), nothing is written to disk.
type YoutubeDLProvider struct {
	youtubedlBinPath string
	commandExecutor  executor.Executor
}

func (YoutubeDLProvider) Name() string {
	return YoutubeDLName
}

func (y YoutubeDLProvider) TryResolve(ctx context.Context, videoID string, format videos.Format, quality videos.Quality) (entity.Link, error) {
	log.WithField("video_id", videoID).Info("Running youtube-dl")

	selector := formatSelector(format, quality)
	cmd := y.commandExecutor.CommandContext(ctx, y.youtubedlBinPath, "-g", "-f", selector, videourl.WatchURL(videoID))
	output, err := cmd.Output()
	if err != nil {
		return entity.Link{}, cerr.Field("selector", selector).
			Field("output", string(output)).
			Wrap(err).Error("Failed to run youtube-dl")
	}

	streamURL := firstURL(output)
	if streamURL == "" {
		return entity.Link{}, cerr.Field("output", string(output)).Error("youtube-dl printed no URL")
	}

	return entity.Link{
		URL:      streamURL,
		Provider: YoutubeDLName,
	}, nil
}

func formatSelector(format videos.Format, quality videos.Quality) string {
	if format.IsAudio() {
		return "bestaudio[ext=m4a]/bestaudio"
	}

	height, ok := qualityHeights[quality]
	if !ok {
		height = qualityHeights[videos.DefaultQuality]
	}

	return fmt.Sprintf("best[height<=%d][ext=mp4]/best[ext=mp4]/best", height)
}

func firstURL(output []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			return line
		}
	}

	return ""
}
