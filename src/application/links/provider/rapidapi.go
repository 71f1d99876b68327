package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"video-fetch-be/src/application/apperr"
	"video-fetch-be/src/application/links/entity"
	videos "video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/lib/cerr"
)

var _ entity.Provider = RapidAPIProvider{}

const (
	RapidAPIName = "rapidapi"

	defaultQualityToken = "hd720"
)

// quality tokens as reported by the provider
var rapidAPIQualityTokens = map[videos.Quality]string{
	videos.Quality1080p: "hd1080",
	videos.Quality720p:  "hd720",
	videos.Quality480p:  "large",
	videos.Quality360p:  "medium",
}

type rapidAPIResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Title   string         `json:"title"`
	Links   []rapidAPILink `json:"links"`
}

type rapidAPILink struct {
	URL       string `json:"url"`
	Quality   string `json:"quality"`
	MimeType  string `json:"mimeType"`
	HasAudio  bool   `json:"hasAudio"`
	AudioOnly bool   `json:"audioOnly"`
	Bitrate   int64  `json:"bitrate"`
	Size      int64  `json:"size"`
}

func NewRapidAPIProvider(client *http.Client, endpoint string, host string, apiKey string) RapidAPIProvider {
	return RapidAPIProvider{
		client:   client,
		endpoint: endpoint,
		host:     host,
		apiKey:   apiKey,
	}
}

type RapidAPIProvider struct {
	client   *http.Client
	endpoint string
	host     string
	apiKey   string
}

func (RapidAPIProvider) Name() string {
	return RapidAPIName
}

func (r RapidAPIProvider) TryResolve(ctx context.Context, videoID string, format videos.Format, quality videos.Quality) (entity.Link, error) {
	if r.apiKey == "" {
		return entity.Link{}, apperr.New(apperr.NotConfigured, "RapidAPI key not configured")
	}

	query := url.Values{}
	query.Set("id", videoID)
	requestURL := r.endpoint + "?" + query.Encode()

	headers := map[string]string{
		"X-RapidAPI-Key":  r.apiKey,
		"X-RapidAPI-Host": r.host,
	}

	var response rapidAPIResponse
	if err := getJSON(ctx, r.client, requestURL, headers, &response); err != nil {
		return entity.Link{}, err
	}

	if !strings.EqualFold(response.Status, "ok") {
		return entity.Link{}, cerr.Field("status", response.Status).
			Field("message", response.Message).
			Error("Provider reported a failed lookup")
	}

	var selected *rapidAPILink
	if format.IsAudio() {
		selected = selectRapidAPIAudio(response.Links)
	} else {
		selected = selectRapidAPIVideo(response.Links, quality)
	}

	if selected == nil {
		return entity.Link{}, cerr.Field("link_count", len(response.Links)).Error("No matching link in provider response")
	}

	return entity.Link{
		URL:      selected.URL,
		Provider: RapidAPIName,
		FileSize: selected.Size,
	}, nil
}

func selectRapidAPIAudio(links []rapidAPILink) *rapidAPILink {
	var best *rapidAPILink
	for i := range links {
		link := &links[i]
		if link.URL == "" || !isAudioLink(link) {
			continue
		}

		if best == nil || link.Bitrate > best.Bitrate {
			best = link
		}
	}

	return best
}

func isAudioLink(link *rapidAPILink) bool {
	return link.AudioOnly || strings.HasPrefix(link.MimeType, "audio/")
}

// exact quality, then the 720p default, then any mp4
func selectRapidAPIVideo(links []rapidAPILink, quality videos.Quality) *rapidAPILink {
	candidates := []*rapidAPILink{}
	for i := range links {
		link := &links[i]
		if link.URL == "" || isAudioLink(link) || !strings.HasPrefix(link.MimeType, "video/mp4") {
			continue
		}
		candidates = append(candidates, link)
	}

	if token, ok := rapidAPIQualityTokens[quality]; ok {
		if link := findRapidAPIQuality(candidates, token); link != nil {
			return link
		}
	}

	if link := findRapidAPIQuality(candidates, defaultQualityToken); link != nil {
		return link
	}

	if len(candidates) > 0 {
		return candidates[0]
	}

	return nil
}

func findRapidAPIQuality(candidates []*rapidAPILink, token string) *rapidAPILink {
	for _, link := range candidates {
		if link.Quality == token {
			return link
		}
	}

	return nil
}
