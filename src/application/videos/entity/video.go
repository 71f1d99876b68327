package entity

import "video-fetch-be/src/lib/werror"

type VideoMetadata struct {
	ID              string `json:"video_id"`
	Title           string `json:"title"`
	ThumbnailURL    string `json:"thumbnail_url"`
	DurationDisplay string `json:"duration"`
	ChannelName     string `json:"channel_name"`
	ViewsDisplay    string `json:"views"`
	Description     string `json:"description,omitempty"`
}

type Format string

const (
	InvalidFormat Format = ""
	MP4Format     Format = "mp4"
	MP3Format     Format = "mp3"

	DefaultFormat = MP4Format
)

func ConvertToFormat(val string) (Format, error) {
	switch Format(val) {
	case MP4Format:
		return MP4Format, nil
	case MP3Format:
		return MP3Format, nil
	default:
		return InvalidFormat, werror.New("Value does not match any format")
	}
}

func (f Format) IsAudio() bool {
	return f == MP3Format
}

type Quality string

const (
	InvalidQuality Quality = ""
	Quality1080p   Quality = "1080p"
	Quality720p    Quality = "720p"
	Quality480p    Quality = "480p"
	Quality360p    Quality = "360p"

	DefaultQuality = Quality720p
)

func ConvertToQuality(val string) (Quality, error) {
	switch Quality(val) {
	case Quality1080p:
		return Quality1080p, nil
	case Quality720p:
		return Quality720p, nil
	case Quality480p:
		return Quality480p, nil
	case Quality360p:
		return Quality360p, nil
	default:
		return InvalidQuality, werror.New("Value does not match any quality")
	}
}
