package entity

import (
	"context"

	videos "video-fetch-be/src/application/videos/entity"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type Link struct {
	URL      string
	Provider string
	// 0 when the provider doesn't report it
	FileSize int64
}

//counterfeiter:generate . Provider
type Provider interface {
	Name() string
	TryResolve(ctx context.Context, videoID string, format videos.Format, quality videos.Quality) (Link, error)
}

//counterfeiter:generate . TitleLookup
type TitleLookup interface {
	LookupTitle(ctx context.Context, videoID string) (string, error)
}

type Resolution struct {
	DownloadURL string `json:"download_url"`
	Filename    string `json:"filename"`
	VideoID     string `json:"video_id"`
	Provider    string `json:"-"`
}
