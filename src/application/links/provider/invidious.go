package provider

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"video-fetch-be/src/application/links/entity"
	videos "video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/lib/cerr"

	"github.com/apex/log"
)

var _ entity.Provider = InvidiousProvider{}

const InvidiousName = "invidious"

var DefaultInvidiousHosts = []string{
	"https://yewtu.be",
	"https://inv.nadeko.net",
	"https://invidious.nerdvpn.de",
}

type invidiousVideo struct {
	AdaptiveFormats []invidiousFormat `json:"adaptiveFormats"`
	FormatStreams   []invidiousFormat `json:"formatStreams"`
}

// invidious reports bitrate and clen as strings
type invidiousFormat struct {
	URL           string `json:"url"`
	Type          string `json:"type"`
	Bitrate       string `json:"bitrate"`
	ContentLength string `json:"clen"`
	QualityLabel  string `json:"qualityLabel"`
}

func NewInvidiousProvider(client *http.Client, hosts []string) InvidiousProvider {
	return InvidiousProvider{
		client: client,
		hosts:  hosts,
	}
}

type InvidiousProvider struct {
	client *http.Client
	hosts  []string
}

func (InvidiousProvider) Name() string {
	return InvidiousName
}

func (i InvidiousProvider) TryResolve(ctx context.Context, videoID string, format videos.Format, quality videos.Quality) (entity.Link, error) {
	if len(i.hosts) == 0 {
		return entity.Link{}, cerr.Error("No invidious hosts configured")
	}

	for _, host := range i.hosts {
		link, err := i.tryHost(ctx, host, videoID, format, quality)
		if err != nil {
			log.WithFields(log.Fields{
				"host":     host,
				"video_id": videoID,
				"error":    err.Error(),
			}).Warn("Invidious mirror failed")
			continue
		}

		return link, nil
	}

	return entity.Link{}, cerr.Field("hosts", i.hosts).Error("All invidious mirrors failed")
}

func (i InvidiousProvider) tryHost(ctx context.Context, host string, videoID string, format videos.Format, quality videos.Quality) (entity.Link, error) {
	requestURL := fmt.Sprintf("%s/api/v1/videos/%s", strings.TrimRight(host, "/"), videoID)

	var video invidiousVideo
	if err := getJSON(ctx, i.client, requestURL, nil, &video); err != nil {
		return entity.Link{}, err
	}

	var selected *invidiousFormat
	if format.IsAudio() {
		selected = selectInvidiousAudio(video.AdaptiveFormats)
	} else {
		selected = selectInvidiousVideo(video.FormatStreams, quality)
	}

	if selected == nil {
		return entity.Link{}, cerr.Field("host", host).Error("No matching format on mirror")
	}

	size, _ := strconv.ParseInt(selected.ContentLength, 10, 64)

	return entity.Link{
		URL:      selected.URL,
		Provider: InvidiousName + ":" + host,
		FileSize: size,
	}, nil
}

func selectInvidiousAudio(formats []invidiousFormat) *invidiousFormat {
	var best *invidiousFormat
	var bestBitrate int64 = -1

	for i := range formats {
		format := &formats[i]
		if format.URL == "" || !strings.HasPrefix(format.Type, "audio/") {
			continue
		}

		bitrate, err := strconv.ParseInt(format.Bitrate, 10, 64)
		if err != nil {
			bitrate = 0
		}

		if bitrate > bestBitrate {
			best = format
			bestBitrate = bitrate
		}
	}

	return best
}

func selectInvidiousVideo(streams []invidiousFormat, quality videos.Quality) *invidiousFormat {
	var first *invidiousFormat
	for i := range streams {
		stream := &streams[i]
		if stream.URL == "" {
			continue
		}

		if stream.QualityLabel == string(quality) {
			return stream
		}

		if first == nil {
			first = stream
		}
	}

	return first
}
